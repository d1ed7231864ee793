package handlers

import (
	"net/http"

	"tolet/errs"
	"tolet/utils"

	"github.com/gin-gonic/gin"
)

// statusFor maps error kinds to HTTP status codes.
func statusFor(err error) int {
	switch errs.KindOf(err) {
	case errs.Validation:
		return http.StatusBadRequest
	case errs.NotFound:
		return http.StatusNotFound
	case errs.Forbidden:
		return http.StatusForbidden
	case errs.Conflict:
		return http.StatusConflict
	case errs.Unauthenticated:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// respondError translates a service error into the JSON error envelope.
// Internal details are never exposed to the caller.
func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	message := errs.MessageOf(err)
	if status == http.StatusInternalServerError {
		message = "An unexpected error occurred. Please try again later."
	}
	utils.JSONError(c, status, message, errs.FieldOf(err))
}

// currentUserID returns the authenticated account ID set by the auth middleware.
func currentUserID(c *gin.Context) (string, bool) {
	id, exists := c.Get("userID")
	if !exists {
		return "", false
	}
	idStr, ok := id.(string)
	return idStr, ok && idStr != ""
}
