package api

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/flamtime/SomeNerts/internal/errors"
)

// respondError writes err as {"error", "code"}. Messages of server-side
// failures are not exposed.
func respondError(c *gin.Context, err error) {
	status := errors.HTTPStatus(err)
	body := gin.H{"code": errors.CodeOf(err)}

	var appErr *errors.AppError
	if status < http.StatusInternalServerError && stderrors.As(err, &appErr) {
		body["error"] = appErr.Message
		if appErr.Details != "" {
			body["details"] = appErr.Details
		}
	} else {
		body["error"] = "Internal server error"
	}

	_ = c.Error(err)
	c.AbortWithStatusJSON(status, body)
}

func respondBindError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
		"error": "Invalid request format: " + err.Error(),
		"code":  errors.ErrCodeInvalidInput,
	})
}

// paramUUID parses a path parameter, answering 400 when it is malformed
func paramUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error": "Invalid " + name,
			"code":  errors.ErrCodeInvalidInput,
		})
		return uuid.Nil, false
	}
	return id, true
}
