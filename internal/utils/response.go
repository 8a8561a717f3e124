// internal/utils/response.go
package utils

import (
	"net/http"

	"github.com/javajoker/hireswipe-backend/internal/i18n"

	"github.com/gin-gonic/gin"
)

// Keys AuthRequired and I18nMiddleware store on the gin context.
const (
	ContextKeyUserID = "user_id"
	ContextKeyName   = "name"
	ContextKeyRole   = "role"
	ContextKeyLang   = "lang"
)

// Error codes carried in APIError.Code.
const (
	CodeBadRequest   = "BAD_REQUEST"
	CodeValidation   = "VALIDATION_ERROR"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeForbidden    = "FORBIDDEN"
	CodeNotFound     = "NOT_FOUND"
	CodeConflict     = "CONFLICT"
	CodeRateLimited  = "RATE_LIMITED"
	CodeInternal     = "INTERNAL_ERROR"
)

type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
}

type APIError struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func SuccessResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

func CreatedResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{Success: true, Data: data})
}

func PaginatedResponse(c *gin.Context, result PaginationResult) {
	SetPaginationHeaders(c, result)
	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Data:    result.Data,
		Meta: gin.H{
			"pagination": gin.H{
				"page":        result.Page,
				"limit":       result.Limit,
				"total":       result.Total,
				"total_pages": result.TotalPages,
			},
		},
	})
}

// ErrorResponse writes the error envelope and aborts the remaining handlers.
func ErrorResponse(c *gin.Context, statusCode int, code, message string, details interface{}) {
	c.AbortWithStatusJSON(statusCode, APIResponse{
		Success: false,
		Error: &APIError{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

// orDefault returns message, or the translation of key when message is empty.
func orDefault(c *gin.Context, message, key string, args ...interface{}) string {
	if message != "" {
		return message
	}
	return i18n.T(GetLangFromContext(c), key, args...)
}

func BadRequestResponse(c *gin.Context, message string, details interface{}) {
	ErrorResponse(c, http.StatusBadRequest, CodeBadRequest, orDefault(c, message, i18n.KeyValidationInvalid, "request"), details)
}

func ValidationErrorResponse(c *gin.Context, message string, errors []ValidationError) {
	ErrorResponse(c, http.StatusBadRequest, CodeValidation, orDefault(c, message, i18n.KeyValidationInvalid, "input"), errors)
}

func UnauthorizedResponse(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusUnauthorized, CodeUnauthorized, orDefault(c, message, i18n.KeyAuthRequired), nil)
}

func ForbiddenResponse(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusForbidden, CodeForbidden, orDefault(c, message, i18n.KeyAccessDenied), nil)
}

func NotFoundResponse(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusNotFound, CodeNotFound, orDefault(c, message, i18n.KeyNotFound), nil)
}

func ConflictResponse(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusConflict, CodeConflict, orDefault(c, message, i18n.KeyConflict), nil)
}

func TooManyRequestsResponse(c *gin.Context) {
	ErrorResponse(c, http.StatusTooManyRequests, CodeRateLimited, orDefault(c, "", i18n.KeyRateLimited), nil)
}

func InternalErrorResponse(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusInternalServerError, CodeInternal, orDefault(c, message, i18n.KeyInternalError), nil)
}

func GetLangFromContext(c *gin.Context) string {
	if lang := c.GetString(ContextKeyLang); lang != "" {
		return lang
	}
	return "en"
}

func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userID := c.GetString(ContextKeyUserID)
	return userID, userID != ""
}

func GetUserRoleFromContext(c *gin.Context) (string, bool) {
	role := c.GetString(ContextKeyRole)
	return role, role != ""
}
