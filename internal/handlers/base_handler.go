package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"gemvault_backend/internal/appErrors"
	"gemvault_backend/internal/middleware"
	"gemvault_backend/internal/validator"
)

// BaseHandler - общие помощники для всех обработчиков.
// Все ответы API - конверт {success, message?, data?}.
type BaseHandler struct{}

type successEnvelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// BindJSON валидирует тело запроса. При ошибке сам пишет ответ 400
// и возвращает false.
func (h *BaseHandler) BindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		appErrors.HandleError(c, appErrors.ValidationError(validator.FormatValidationErrors(err)))
		return false
	}
	return true
}

func (h *BaseHandler) RespondOK(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, successEnvelope{Success: true, Message: message, Data: data})
}

func (h *BaseHandler) RespondCreated(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, successEnvelope{Success: true, Message: message, Data: data})
}

func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	appErrors.HandleError(c, err)
}

// ParseIDParam парсит числовой path-параметр. При ошибке сам пишет
// ответ 400 и возвращает false.
func (h *BaseHandler) ParseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		appErrors.HandleError(c, appErrors.NewBadRequestError("Invalid "+name+" parameter"))
		return 0, false
	}
	return uint(id), true
}

// CurrentUserID возвращает ID аутентифицированного пользователя.
// Middleware обязан был его установить, поэтому отсутствие - это 401.
func (h *BaseHandler) CurrentUserID(c *gin.Context) (uint, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		appErrors.HandleError(c, appErrors.ErrUnauthorized)
		return 0, false
	}
	return userID, true
}

// AuthorizeUserID разрешает операцию над пользователем из path-параметра
// только самому пользователю или администратору
func (h *BaseHandler) AuthorizeUserID(c *gin.Context, targetID uint) bool {
	currentID, ok := h.CurrentUserID(c)
	if !ok {
		return false
	}

	if currentID == targetID {
		return true
	}
	if role, ok := middleware.GetUserRole(c); ok && role == "admin" {
		return true
	}

	appErrors.HandleError(c, appErrors.ErrForbidden)
	return false
}
