// internal/middleware/logging.go
package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/javajoker/hireswipe-backend/internal/models"
	"github.com/javajoker/hireswipe-backend/internal/repository"
	"github.com/javajoker/hireswipe-backend/internal/utils"
)

// Request body fields never written to the audit trail.
var redactedFields = []string{"password"}

// AuditLogMiddleware records one audit row per mutating request after the handler ran.
func AuditLogMiddleware(store repository.AuditStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Skip reads and health checks
		if c.Request.Method == http.MethodGet || c.Request.Method == http.MethodOptions || c.Request.URL.Path == "/health" {
			c.Next()
			return
		}

		var requestBody []byte
		if c.Request.Body != nil {
			requestBody, _ = io.ReadAll(c.Request.Body)
			c.Request.Body = io.NopCloser(bytes.NewBuffer(requestBody))
		}

		c.Next()

		var userUUID *uuid.UUID
		if uid, ok := c.Get(utils.ContextKeyUserID); ok {
			if s, ok := uid.(string); ok {
				if parsed, err := uuid.Parse(s); err == nil {
					userUUID = &parsed
				}
			}
		}

		var requestData map[string]interface{}
		if len(requestBody) > 0 {
			if err := json.Unmarshal(requestBody, &requestData); err == nil {
				for _, field := range redactedFields {
					delete(requestData, field)
				}
			}
		}

		auditLog := &models.AuditLog{
			UserID:       userUUID,
			Action:       c.Request.Method + " " + c.Request.URL.Path,
			ResourceType: extractResourceType(c.Request.URL.Path),
			NewValues:    models.JSONB(requestData),
			StatusCode:   c.Writer.Status(),
			IPAddress:    c.ClientIP(),
			UserAgent:    c.Request.UserAgent(),
		}

		// Extract resource ID from URL if present
		if resourceID := extractResourceID(c.Request.URL.Path); resourceID != "" {
			if parsed, err := uuid.Parse(resourceID); err == nil {
				auditLog.ResourceID = &parsed
			}
		}

		if err := store.CreateAuditLog(context.WithoutCancel(c.Request.Context()), auditLog); err != nil {
			logrus.WithError(err).Error("Failed to create audit log")
		}
	}
}

func extractResourceType(path string) string {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) >= 2 && parts[0] == "v1" {
		return parts[1]
	}
	if len(parts) >= 1 && parts[0] != "" {
		return parts[0]
	}
	return "unknown"
}

func extractResourceID(path string) string {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	for _, part := range parts {
		if _, err := uuid.Parse(part); err == nil {
			return part
		}
	}
	return ""
}

// RequestLogger logs every request once it has been served.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		userID, _ := c.Get(utils.ContextKeyUserID)
		entry := logrus.WithFields(logrus.Fields{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"duration":   time.Since(start).Milliseconds(),
			"ip":         c.ClientIP(),
			"user_agent": c.Request.UserAgent(),
			"user_id":    userID,
		})

		switch {
		case c.Writer.Status() >= http.StatusInternalServerError:
			entry.Error("Request processed")
		case c.Writer.Status() >= http.StatusBadRequest:
			entry.Warn("Request processed")
		default:
			entry.Info("Request processed")
		}
	}
}
