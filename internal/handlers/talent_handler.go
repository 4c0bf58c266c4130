package handlers

import (
	"vahub_backend/internal/services"
	"vahub_backend/internal/services/dto"
	"vahub_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type TalentHandler struct {
	BaseHandler
	talentService services.TalentService
}

func NewTalentHandler(base BaseHandler, talentService services.TalentService) *TalentHandler {
	return &TalentHandler{BaseHandler: base, talentService: talentService}
}

func (h *TalentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/talents", h.Search)
}

// Search lists active job-seeker profiles matching the query filters.
func (h *TalentHandler) Search(c *gin.Context) {
	var req dto.TalentSearchRequest
	if !h.BindAndValidateQuery(c, &req) {
		return
	}

	talents, err := h.talentService.SearchTalent(req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, talents)
}
