package handlers

import (
	"vahub_backend/internal/services"
	"vahub_backend/internal/services/dto"
	"vahub_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	BaseHandler
	authService services.AuthService
}

func NewAuthHandler(base BaseHandler, authService services.AuthService) *AuthHandler {
	return &AuthHandler{BaseHandler: base, authService: authService}
}

func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
	}
}

// Register creates an account and its role-specific profile row.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.authService.Register(req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, resp)
}

// Login authenticates by email and password.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.authService.Login(req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	h.OK(c, resp)
}
