// Package middleware holds the gin middleware chain: request ids, request
// logging, the centralized error formatter and actor extraction.
package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"product-admin/internal/apperrors"
	"product-admin/internal/models"
)

const (
	actorKey     = "actor"
	requestIDKey = "request_id"
)

// RequestID assigns a request id, honoring one supplied by the client, and
// echoes it on the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := c.GetHeader("X-Request-Id")
		if reqID == "" {
			reqID = uuid.NewString()
		}
		c.Set(requestIDKey, reqID)
		c.Writer.Header().Set("X-Request-Id", reqID)
		c.Next()
	}
}

// RequestLogger logs one line per request after it completes.
func RequestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("http_request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("request_id", c.GetString(requestIDKey)),
		)
	}
}

// ErrorFormatter is the single place error response bodies are produced.
// Operational errors surface with their status and message; anything else is
// logged server-side and masked as a generic 500 so internal detail never
// reaches clients.
func ErrorFormatter(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) && appErr.Operational {
			c.JSON(appErr.StatusCode, gin.H{"status": appErr.Status, "message": appErr.Message})
			return
		}

		logger.Error("unhandled error",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("request_id", c.GetString(requestIDKey)),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "internal server error"})
	}
}

// Identity extracts the acting user from the headers set by the upstream
// auth gateway. Requests without a valid X-User-Id proceed with no actor,
// matching the permissive paths of the handlers.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-User-Id")
		if id == "" {
			c.Next()
			return
		}
		objID, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			c.Next()
			return
		}
		c.Set(actorKey, &models.Actor{
			ID:    objID,
			Name:  c.GetHeader("X-User-Name"),
			Email: c.GetHeader("X-User-Email"),
			Role:  c.GetHeader("X-User-Role"),
		})
		c.Next()
	}
}

// ActorFrom returns the actor extracted by Identity, or nil.
func ActorFrom(c *gin.Context) *models.Actor {
	v, ok := c.Get(actorKey)
	if !ok {
		return nil
	}
	actor, _ := v.(*models.Actor)
	return actor
}
