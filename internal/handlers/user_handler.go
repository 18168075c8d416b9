package handlers

import (
	"github.com/gin-gonic/gin"

	"gemvault_backend/internal/services"
	"gemvault_backend/internal/services/dto"
)

type UserHandler struct {
	BaseHandler
	userService services.UserService
}

func NewUserHandler(userService services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// GetMe GET /api/users/me
func (h *UserHandler) GetMe(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.RespondOK(c, "", user)
}

// GetUser GET /api/users/:id
// Доступно самому пользователю и администратору
func (h *UserHandler) GetUser(c *gin.Context) {
	targetID, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}
	if !h.AuthorizeUserID(c, targetID) {
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), targetID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.RespondOK(c, "", user)
}

// UpdateUser PUT /api/users/:id
func (h *UserHandler) UpdateUser(c *gin.Context) {
	targetID, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}
	if !h.AuthorizeUserID(c, targetID) {
		return
	}

	var req dto.UpdateUserRequest
	if !h.BindJSON(c, &req) {
		return
	}

	user, err := h.userService.UpdateUser(c.Request.Context(), targetID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.RespondOK(c, "User updated successfully", user)
}

// DeleteUser DELETE /api/users/:id
func (h *UserHandler) DeleteUser(c *gin.Context) {
	targetID, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}
	if !h.AuthorizeUserID(c, targetID) {
		return
	}

	if err := h.userService.DeleteUser(c.Request.Context(), targetID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.RespondOK(c, "User deleted successfully", nil)
}

// UpdateMe PUT /api/user/profile
// То же, что UpdateUser, но для текущего пользователя
func (h *UserHandler) UpdateMe(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if !h.BindJSON(c, &req) {
		return
	}

	user, err := h.userService.UpdateUser(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.RespondOK(c, "User updated successfully", user)
}

// ChangePassword POST /api/users/me/change-password
// Требует текущий пароль даже при живой сессии
func (h *UserHandler) ChangePassword(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.ChangePasswordRequest
	if !h.BindJSON(c, &req) {
		return
	}

	if err := h.userService.ChangePassword(c.Request.Context(), userID, req); err != nil {
		h.HandleError(c, err)
		return
	}

	h.RespondOK(c, "Password changed successfully", nil)
}

// GetAllCutters GET /api/users/cutters
// Публичный каталог огранщиков
func (h *UserHandler) GetAllCutters(c *gin.Context) {
	cutters, err := h.userService.GetAllCutters(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.RespondOK(c, "", cutters)
}

// GetCutter GET /api/users/cutters/:id
// Публичная карточка огранщика
func (h *UserHandler) GetCutter(c *gin.Context) {
	cutterID, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	cutter, err := h.userService.GetCutterByID(c.Request.Context(), cutterID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.RespondOK(c, "", cutter)
}

// Ролевые профили. Обновлять можно только свой профиль,
// роль проверяет RequireRoles на маршруте.

// UpdateCutterProfile PUT /api/users/me/cutter-profile
func (h *UserHandler) UpdateCutterProfile(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateCutterProfileRequest
	if !h.BindJSON(c, &req) {
		return
	}

	profile, err := h.userService.UpdateCutterProfile(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.RespondOK(c, "Cutter profile updated successfully", profile)
}

// UpdateDealerProfile PUT /api/users/me/dealer-profile
func (h *UserHandler) UpdateDealerProfile(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateDealerProfileRequest
	if !h.BindJSON(c, &req) {
		return
	}

	profile, err := h.userService.UpdateDealerProfile(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.RespondOK(c, "Dealer profile updated successfully", profile)
}

// UpdateAppraiserProfile PUT /api/users/me/appraiser-profile
func (h *UserHandler) UpdateAppraiserProfile(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateAppraiserProfileRequest
	if !h.BindJSON(c, &req) {
		return
	}

	profile, err := h.userService.UpdateAppraiserProfile(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.RespondOK(c, "Appraiser profile updated successfully", profile)
}

// Портфолио

// GetPortfolio GET /api/users/:id/portfolio
// Публичный просмотр портфолио огранщика
func (h *UserHandler) GetPortfolio(c *gin.Context) {
	cutterUserID, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	items, err := h.userService.GetPortfolio(c.Request.Context(), cutterUserID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.RespondOK(c, "", items)
}

// AddPortfolioItem POST /api/users/me/portfolio
func (h *UserHandler) AddPortfolioItem(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.CreatePortfolioItemRequest
	if !h.BindJSON(c, &req) {
		return
	}

	item, err := h.userService.AddPortfolioItem(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.RespondCreated(c, "Portfolio item created successfully", item)
}

// UpdatePortfolioItem PUT /api/users/me/portfolio/:itemId
func (h *UserHandler) UpdatePortfolioItem(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}
	itemID, ok := h.ParseIDParam(c, "itemId")
	if !ok {
		return
	}

	var req dto.UpdatePortfolioItemRequest
	if !h.BindJSON(c, &req) {
		return
	}

	item, err := h.userService.UpdatePortfolioItem(c.Request.Context(), userID, itemID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.RespondOK(c, "Portfolio item updated successfully", item)
}

// DeletePortfolioItem DELETE /api/users/me/portfolio/:itemId
func (h *UserHandler) DeletePortfolioItem(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}
	itemID, ok := h.ParseIDParam(c, "itemId")
	if !ok {
		return
	}

	if err := h.userService.DeletePortfolioItem(c.Request.Context(), userID, itemID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.RespondOK(c, "Portfolio item deleted successfully", nil)
}
