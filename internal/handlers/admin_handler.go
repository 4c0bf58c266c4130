package handlers

import (
	"vahub_backend/internal/middleware"
	"vahub_backend/internal/models"
	"vahub_backend/internal/services"
	"vahub_backend/internal/services/dto"
	"vahub_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	BaseHandler
	moderationService services.ModerationService
	userService       services.UserService
	analyticsService  services.AnalyticsService
}

func NewAdminHandler(
	base BaseHandler,
	moderationService services.ModerationService,
	userService services.UserService,
	analyticsService services.AnalyticsService,
) *AdminHandler {
	return &AdminHandler{
		BaseHandler:       base,
		moderationService: moderationService,
		userService:       userService,
		analyticsService:  analyticsService,
	}
}

func (h *AdminHandler) RegisterRoutes(rg *gin.RouterGroup) {
	admin := rg.Group("/admin",
		middleware.AuthMiddleware(),
		middleware.RequireRoles(models.UserRoleAdmin, models.UserRoleModerator))
	{
		admin.GET("/stats", h.Stats)
		admin.GET("/pending-jobs", h.PendingJobs)
		admin.POST("/approve-job", h.ApproveJob)
		admin.POST("/reject-job", h.RejectJob)
		admin.POST("/flag-job", h.FlagJob)
		admin.GET("/users", h.SearchUsers)
		admin.POST("/update-user-status", h.UpdateUserStatus)
		admin.DELETE("/delete-user", h.DeleteUser)
		admin.GET("/logs", h.AuditLog)
	}
}

func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.analyticsService.PlatformStats()
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, stats)
}

func (h *AdminHandler) PendingJobs(c *gin.Context) {
	jobs, err := h.moderationService.GetPendingJobs()
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, jobs)
}

func (h *AdminHandler) ApproveJob(c *gin.Context) {
	adminID, ok := h.AuthenticatedUserID(c)
	if !ok {
		return
	}

	var req dto.ApproveJobRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.moderationService.ApproveJob(adminID, req.JobID); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, dto.SuccessResponse{Success: true})
}

func (h *AdminHandler) RejectJob(c *gin.Context) {
	adminID, ok := h.AuthenticatedUserID(c)
	if !ok {
		return
	}

	var req dto.RejectJobRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.moderationService.RejectJob(adminID, req.JobID, req.Reason); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, dto.SuccessResponse{Success: true})
}

func (h *AdminHandler) FlagJob(c *gin.Context) {
	adminID, ok := h.AuthenticatedUserID(c)
	if !ok {
		return
	}

	var req dto.FlagJobRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.moderationService.FlagJob(adminID, req.JobID, req.Reason); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, dto.SuccessResponse{Success: true})
}

func (h *AdminHandler) SearchUsers(c *gin.Context) {
	var req dto.SearchUsersRequest
	if !h.BindAndValidateQuery(c, &req) {
		return
	}

	users, err := h.userService.SearchUsers(req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, users)
}

func (h *AdminHandler) UpdateUserStatus(c *gin.Context) {
	adminID, ok := h.AuthenticatedUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateUserStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	err := h.moderationService.UpdateUserStatus(adminID, req.UserID, models.UserStatus(req.Status), req.Note)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, dto.SuccessResponse{Success: true})
}

func (h *AdminHandler) DeleteUser(c *gin.Context) {
	adminID, ok := h.AuthenticatedUserID(c)
	if !ok {
		return
	}

	var req dto.DeleteUserRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.moderationService.DeleteUser(adminID, req.UserID); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, dto.SuccessResponse{Success: true})
}

func (h *AdminHandler) AuditLog(c *gin.Context) {
	entries, err := h.moderationService.GetAuditLog()
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, entries)
}
