package handlers

import (
	"vahub_backend/internal/middleware"
	"vahub_backend/internal/models"
	"vahub_backend/internal/services"
	"vahub_backend/internal/services/dto"
	"vahub_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	BaseHandler
	jobService         services.JobService
	applicationService services.ApplicationService
}

func NewJobHandler(base BaseHandler, jobService services.JobService, applicationService services.ApplicationService) *JobHandler {
	return &JobHandler{
		BaseHandler:        base,
		jobService:         jobService,
		applicationService: applicationService,
	}
}

func (h *JobHandler) RegisterRoutes(rg *gin.RouterGroup) {
	jobs := rg.Group("/jobs")
	{
		jobs.GET("", h.List)
		jobs.GET("/:id", h.Detail)
		jobs.POST("",
			middleware.AuthMiddleware(),
			middleware.RequireRoles(models.UserRoleEmployer),
			h.Create)
		jobs.GET("/:id/applications",
			middleware.AuthMiddleware(),
			middleware.RequireRoles(models.UserRoleEmployer),
			h.ListApplications)
	}
}

// List returns approved jobs, featured first.
func (h *JobHandler) List(c *gin.Context) {
	jobs, err := h.jobService.ListApproved()
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, jobs)
}

func (h *JobHandler) Detail(c *gin.Context) {
	detail, err := h.jobService.GetJobDetail(c.Param("id"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, detail)
}

func (h *JobHandler) Create(c *gin.Context) {
	employerID, ok := h.AuthenticatedUserID(c)
	if !ok {
		return
	}

	var req dto.CreateJobRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.jobService.CreateJob(employerID, req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, resp)
}

func (h *JobHandler) ListApplications(c *gin.Context) {
	employerID, ok := h.AuthenticatedUserID(c)
	if !ok {
		return
	}

	applications, err := h.applicationService.ListByJob(employerID, c.Param("id"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, applications)
}
