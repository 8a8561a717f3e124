// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Common
	KeyNotFound      = "common.not_found"
	KeyAccessDenied  = "common.access_denied"
	KeyConflict      = "common.conflict"
	KeyInternalError = "common.internal_error"

	// Authentication
	KeyAuthRequired           = "auth.required"
	KeyAuthInvalidToken       = "auth.invalid_token"
	KeyAuthTokenExpired       = "auth.token_expired"
	KeyAuthInvalidCredentials = "auth.invalid_credentials"
	KeyAuthUserExists         = "auth.user_exists"
	KeyAuthLoginSuccess       = "auth.login_success"
	KeyAuthSignupSuccess      = "auth.signup_success"

	// Jobs
	KeyJobCreated = "job.created"

	// Saved jobs
	KeySavedJobSaved   = "saved_job.saved"
	KeySavedJobRemoved = "saved_job.removed"

	// Applications
	KeyApplicationCreated       = "application.created"
	KeyApplicationWithdrawn     = "application.withdrawn"
	KeyApplicationStatusUpdated = "application.status_updated"
	KeyInterviewScheduled       = "application.interview_scheduled"
	KeyInterviewCancelled       = "application.interview_cancelled"

	// Validation
	KeyValidationInvalid = "validation.invalid"

	// Rate limiting
	KeyRateLimited = "rate_limit.exceeded"
)
