// internal/utils/response.go
package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/sooqhub/sooq-backend/internal/results"
)

// Respond writes a handler Result as JSON, deriving the HTTP status from the
// Result taxonomy. Conflict-style tags (AlreadyExists, AlreadyDeleted) map to
// 409 and Unauthorized to 403; other Failed results come back as 400.
func Respond[T any](c *gin.Context, r results.Result[T]) {
	if r.Status == results.StatusInternalError && r.Err != nil {
		logrus.WithError(r.Err).WithField("path", c.FullPath()).Error("Request failed")
	}
	c.JSON(httpStatus(r.Status, r.ErrorType), r)
}

// RespondCreated is Respond with 201 on success, for resource-creating
// endpoints.
func RespondCreated[T any](c *gin.Context, r results.Result[T]) {
	if r.Status == results.StatusSuccess {
		c.JSON(http.StatusCreated, r)
		return
	}
	Respond(c, r)
}

func httpStatus(status results.ResultStatus, errorType string) int {
	switch status {
	case results.StatusSuccess:
		return http.StatusOK
	case results.StatusValidationError:
		return http.StatusBadRequest
	case results.StatusNotFound:
		return http.StatusNotFound
	case results.StatusFailed:
		switch errorType {
		case results.ErrTypeAlreadyExists, results.ErrTypeAlreadyDeleted:
			return http.StatusConflict
		case results.ErrTypeUnauthorized:
			return http.StatusForbidden
		default:
			return http.StatusBadRequest
		}
	default:
		return http.StatusInternalServerError
	}
}

func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": message})
}

func Unauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": message})
}

// UserIDFromContext reads the authenticated user id stamped by the auth
// middleware.
func UserIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	raw, exists := c.Get("user_id")
	if !exists {
		return uuid.Nil, false
	}
	id, ok := raw.(uuid.UUID)
	return id, ok
}
