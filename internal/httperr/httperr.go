package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func Gone(c *gin.Context, code, message string) {
	Write(c, http.StatusGone, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

// FromError writes the response for an error returned by a use case.
// Business errors keep their code; unique violations become 409; anything
// else is logged and hidden behind a generic 500.
func FromError(c *gin.Context, err error, internalCode string) {
	if code, ok := AsBusiness(err); ok {
		Write(c, StatusFor(code), code, messageFor(code))
		return
	}

	if IsUniqueViolation(err) {
		Conflict(c, "duplicate", messageFor("duplicate"))
		return
	}

	zap.S().Errorw("request failed",
		"path", c.FullPath(),
		"code", internalCode,
		"error", err,
	)
	Internal(c, internalCode, "Internal server error.")
}

var messages = map[string]string{
	"insufficient_stock": "Not enough stock at the source location.",
	"invalid_transition": "The appointment cannot move to that status.",
	"invalid_status":     "Unknown appointment status.",
	"location_forbidden": "You do not have access to this location.",
	"admin_only":         "Only administrators may do this.",
	"duplicate":          "A record with the same key already exists.",
	"payments_disabled":  "Online payments are not configured.",
	"storage_disabled":   "Image storage is not configured.",
	"deprecated":         "This endpoint has been retired.",
}

func messageFor(code string) string {
	if m, ok := messages[code]; ok {
		return m
	}
	return code
}
