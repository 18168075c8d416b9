package handlers

import (
	"github.com/gin-gonic/gin"

	"gemvault_backend/internal/services"
	"gemvault_backend/internal/services/dto"
)

type ReferenceHandler struct {
	BaseHandler
	referenceService services.ReferenceService
}

func NewReferenceHandler(referenceService services.ReferenceService) *ReferenceHandler {
	return &ReferenceHandler{referenceService: referenceService}
}

// ListFamilies GET /api/reference/gemstone-families
func (h *ReferenceHandler) ListFamilies(c *gin.Context) {
	families, err := h.referenceService.ListFamilies(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.RespondOK(c, "", families)
}

// GetFamily GET /api/reference/gemstone-families/:id
func (h *ReferenceHandler) GetFamily(c *gin.Context) {
	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	family, err := h.referenceService.GetFamily(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.RespondOK(c, "", family)
}

// CreateFamily POST /api/reference/gemstone-families (admin)
func (h *ReferenceHandler) CreateFamily(c *gin.Context) {
	var req dto.CreateGemstoneFamilyRequest
	if !h.BindJSON(c, &req) {
		return
	}

	family, err := h.referenceService.CreateFamily(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.RespondCreated(c, "Gemstone family created successfully", family)
}

// UpdateFamily PUT /api/reference/gemstone-families/:id (admin)
func (h *ReferenceHandler) UpdateFamily(c *gin.Context) {
	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateGemstoneFamilyRequest
	if !h.BindJSON(c, &req) {
		return
	}

	family, err := h.referenceService.UpdateFamily(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.RespondOK(c, "Gemstone family updated successfully", family)
}

// DeleteFamily DELETE /api/reference/gemstone-families/:id (admin)
func (h *ReferenceHandler) DeleteFamily(c *gin.Context) {
	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.referenceService.DeleteFamily(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.RespondOK(c, "Gemstone family deleted successfully", nil)
}

// ListSkills GET /api/reference/cutting-skills
func (h *ReferenceHandler) ListSkills(c *gin.Context) {
	skills, err := h.referenceService.ListSkills(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.RespondOK(c, "", skills)
}
