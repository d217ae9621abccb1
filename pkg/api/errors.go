package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/vibecheck/vibecheck/pkg/services"
)

// ErrorDetail is the wire shape of one error.
type ErrorDetail struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Code    string `json:"code"`
	Param   string `json:"param,omitempty"`
}

// ErrorResponse is the envelope every error response uses.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// errorHandler translates service errors and echo errors into the error
// envelope. Anything unrecognized becomes a 500 internal_error.
func (s *Server) errorHandler(c *echo.Context, err error) {
	if resp, _ := echo.UnwrapResponse(c.Response()); resp != nil && resp.Committed {
		return
	}

	status := http.StatusInternalServerError
	detail := ErrorDetail{
		Type:    "internal_error",
		Code:    "INTERNAL_ERROR",
		Message: "An unexpected error occurred.",
	}

	if svcErr, ok := services.AsError(err); ok {
		status = svcErr.Status
		detail = ErrorDetail{
			Type:    svcErr.Type,
			Message: svcErr.Message,
			Code:    svcErr.Code,
			Param:   svcErr.Param,
		}
	} else if httpErr, ok := err.(*echo.HTTPError); ok {
		status = httpErr.Code
		detail = ErrorDetail{
			Type:    typeForStatus(httpErr.Code),
			Code:    codeForStatus(httpErr.Code),
			Message: http.StatusText(httpErr.Code),
		}
		if httpErr.Message != "" {
			detail.Message = httpErr.Message
		}
	} else {
		s.logger.Error("unexpected handler error", "error", err, "path", c.Request().URL.Path)
	}

	if writeErr := c.JSON(status, &ErrorResponse{Error: detail}); writeErr != nil {
		s.logger.Error("failed to write error response", "error", writeErr)
	}
}

func typeForStatus(status int) string {
	switch status {
	case http.StatusNotFound:
		return "not_found"
	case http.StatusBadRequest:
		return "validation_error"
	default:
		return "internal_error"
	}
}

func codeForStatus(status int) string {
	switch status {
	case http.StatusNotFound:
		return "NOT_FOUND"
	case http.StatusBadRequest:
		return "INVALID_REQUEST"
	default:
		return "INTERNAL_ERROR"
	}
}
