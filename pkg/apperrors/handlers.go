package apperrors

import (
	"log/slog"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the envelope for every failed request.
type ErrorResponse struct {
	Error *AppError `json:"error"`
}

// GinErrorHandler turns any error into a structured JSON response.
type GinErrorHandler struct {
	Debug bool
}

func (h *GinErrorHandler) HandleGinError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
	}
	if appErr.HTTPCode >= 500 && !h.Debug {
		// Hide internals in production responses.
		appErr = New(appErr.Code, appErr.Domain, "Internal server error", appErr.HTTPCode)
	}

	if appErr.HTTPCode >= 500 {
		slog.Error("server error", "error", appErr.Error())
	}

	c.JSON(appErr.HTTPCode, ErrorResponse{Error: appErr})
}

// HandleError is the helper handlers call at the boundary.
func HandleError(c *gin.Context, err error) {
	handler := &GinErrorHandler{Debug: gin.Mode() != gin.ReleaseMode}
	handler.HandleGinError(c, err)
}

func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
