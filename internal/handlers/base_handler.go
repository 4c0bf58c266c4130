package handlers

import (
	"errors"
	"net/http"

	"vahub_backend/internal/middleware"
	"vahub_backend/internal/validator"
	"vahub_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// BaseHandler carries the pieces every handler needs. Concrete handlers
// embed it.
type BaseHandler struct {
	validator *validator.Validator
}

func NewBaseHandler(v *validator.Validator) BaseHandler {
	return BaseHandler{validator: v}
}

// BindAndValidateJSON binds the request body and runs struct validation.
// On failure it writes the error response and returns false.
func (h *BaseHandler) BindAndValidateJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body"))
		return false
	}
	return h.runValidation(c, obj)
}

// BindAndValidateQuery does the same for query parameters.
func (h *BaseHandler) BindAndValidateQuery(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindQuery(obj); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid query parameters"))
		return false
	}
	return h.runValidation(c, obj)
}

func (h *BaseHandler) runValidation(c *gin.Context, obj interface{}) bool {
	if err := h.validator.Validate(obj); err != nil {
		var vErr *validator.ValidationError
		if errors.As(err, &vErr) {
			apperrors.HandleError(c, apperrors.ValidationError(vErr.Errors))
			return false
		}
		apperrors.HandleError(c, apperrors.InternalError(err))
		return false
	}
	return true
}

// AuthenticatedUserID returns the caller's id, or aborts with 401 when
// the auth middleware did not run.
func (h *BaseHandler) AuthenticatedUserID(c *gin.Context) (string, bool) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		apperrors.HandleError(c, apperrors.NewUnauthorizedError("Authentication required"))
		return "", false
	}
	return userID, true
}

func (h *BaseHandler) OK(c *gin.Context, body interface{}) {
	c.JSON(http.StatusOK, body)
}
