package handlers

import (
	"vahub_backend/internal/middleware"
	"vahub_backend/internal/services"
	"vahub_backend/internal/services/dto"
	"vahub_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type SubscriptionHandler struct {
	BaseHandler
	subscriptionService services.SubscriptionService
}

func NewSubscriptionHandler(base BaseHandler, subscriptionService services.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{BaseHandler: base, subscriptionService: subscriptionService}
}

func (h *SubscriptionHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/plans", h.ListPlans)

	subscription := rg.Group("/subscription", middleware.AuthMiddleware())
	{
		subscription.GET("", h.Get)
		subscription.POST("/upgrade", h.Upgrade)
	}
}

func (h *SubscriptionHandler) ListPlans(c *gin.Context) {
	plans, err := h.subscriptionService.ListPlans()
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, plans)
}

func (h *SubscriptionHandler) Get(c *gin.Context) {
	userID, ok := h.AuthenticatedUserID(c)
	if !ok {
		return
	}

	subscription, err := h.subscriptionService.GetSubscription(userID)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, subscription)
}

func (h *SubscriptionHandler) Upgrade(c *gin.Context) {
	userID, ok := h.AuthenticatedUserID(c)
	if !ok {
		return
	}

	var req dto.UpgradeSubscriptionRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.subscriptionService.Upgrade(userID, req); err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, dto.SuccessResponse{Success: true})
}
