package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"nearbychat/pkg/errors"
)

func statusFromCode(code errors.Code) int {
	switch code {
	case errors.CodeInvalidArgument, errors.CodeFailedPrecondition:
		return http.StatusBadRequest
	case errors.CodeUnauthenticated:
		return http.StatusUnauthorized
	case errors.CodePermissionDenied:
		return http.StatusForbidden
	case errors.CodeNotFound:
		return http.StatusNotFound
	case errors.CodeAlreadyExists:
		return http.StatusConflict
	case errors.CodeDeadlineExceeded:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error) {
	code := errors.CodeOf(err)
	status := statusFromCode(code)

	message := err.Error()
	if status == http.StatusInternalServerError {
		// never leak internals
		message = "internal server error"
	}

	c.JSON(status, gin.H{"error": gin.H{"code": code, "message": message}})
}

func abortWithError(c *gin.Context, err error) {
	respondError(c, err)
	c.Abort()
}
