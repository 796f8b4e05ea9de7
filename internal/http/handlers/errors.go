package handlers

import (
	"net/http"

	"travelplanner/internal/domain"
	"travelplanner/internal/http/middleware"
	"travelplanner/internal/utils"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the payload of a failed request. Success is only set on 500s.
type ErrorResponse struct {
	Success   *bool  `json:"success,omitempty"`
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

func respondError(c *gin.Context, status int, message string) {
	resp := ErrorResponse{
		Error:     message,
		RequestID: middleware.GetRequestID(c),
	}
	if status >= http.StatusInternalServerError {
		failed := false
		resp.Success = &failed
	}
	c.JSON(status, resp)
}

// RespondDomainError logs err and maps its kind to an HTTP response.
// Validation errors are client errors; everything else is a 500 carrying the message.
func RespondDomainError(c *gin.Context, action string, err error) {
	reqID := middleware.GetRequestID(c)
	switch {
	case domain.IsValidation(err):
		utils.LogEvent(reqID, "itinerary", action, "rejected: "+err.Error())
		respondError(c, http.StatusBadRequest, err.Error())
	case domain.IsGeneration(err), domain.IsExport(err):
		utils.LogFailure(reqID, "itinerary", action, err)
		respondError(c, http.StatusInternalServerError, err.Error())
	default:
		utils.LogFailure(reqID, "itinerary", action, err)
		respondError(c, http.StatusInternalServerError, err.Error())
	}
}
