package handlers

import (
	"vahub_backend/internal/middleware"
	"vahub_backend/internal/models"
	"vahub_backend/internal/services"
	"vahub_backend/internal/services/dto"
	"vahub_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	BaseHandler
	applicationService services.ApplicationService
}

func NewApplicationHandler(base BaseHandler, applicationService services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{BaseHandler: base, applicationService: applicationService}
}

func (h *ApplicationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	applications := rg.Group("/applications", middleware.AuthMiddleware())
	{
		applications.POST("",
			middleware.RequireRoles(models.UserRoleJobSeeker),
			h.Apply)
		applications.PUT("/:id/status",
			middleware.RequireRoles(models.UserRoleEmployer),
			h.UpdateStatus)
	}
}

func (h *ApplicationHandler) Apply(c *gin.Context) {
	seekerID, ok := h.AuthenticatedUserID(c)
	if !ok {
		return
	}

	var req dto.CreateApplicationRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.applicationService.Apply(seekerID, req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, resp)
}

func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	employerID, ok := h.AuthenticatedUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateApplicationStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	err := h.applicationService.UpdateStatus(employerID, c.Param("id"), models.ApplicationStatus(req.Status))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, dto.SuccessResponse{Success: true})
}
