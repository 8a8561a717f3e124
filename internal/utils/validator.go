// internal/utils/validator.go
package utils

import (
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	// Report fields by their JSON names.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	validate.RegisterValidation("role", validateRole)
	validate.RegisterValidation("application_status", validateApplicationStatus)
	validate.RegisterValidation("single_line", validateSingleLine)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateRole(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "jobseeker", "recruiter":
		return true
	default:
		return false
	}
}

func validateApplicationStatus(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "applied", "hold", "accepted", "rejected":
		return true
	default:
		return false
	}
}

// validateSingleLine rejects control characters such as CR, LF and tab.
func validateSingleLine(fl validator.FieldLevel) bool {
	return strings.IndexFunc(fl.Field().String(), unicode.IsControl) < 0
}

// Validation tags for common fields
type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

func GetValidationErrors(err error) []ValidationError {
	var validationErrors []ValidationError

	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrs {
			validationErrors = append(validationErrors, ValidationError{
				Field:   strings.ToLower(e.Field()),
				Tag:     e.Tag(),
				Message: getValidationMessage(e),
			})
		}
	}

	return validationErrors
}

func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "email":
		return "Invalid email format"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "gte":
		return e.Field() + " must be " + e.Param() + " or above"
	case "role":
		return "Role must be jobseeker or recruiter"
	case "application_status":
		return "Status must be applied, hold, accepted or rejected"
	case "http_url":
		return e.Field() + " must be an http or https URL"
	case "single_line":
		return e.Field() + " must not contain line breaks or control characters"
	default:
		return e.Field() + " is invalid"
	}
}
