package models

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/sitestead/sitestead/internal/steadd/semver"
)

// ValidationError represents a validation error with field context
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Value   string `json:"value,omitempty"`
}

// Error implements the error interface
func (ve ValidationError) Error() string {
	if ve.Value != "" {
		return fmt.Sprintf("%s: %s (value: %q)", ve.Field, ve.Message, ve.Value)
	}
	return fmt.Sprintf("%s: %s", ve.Field, ve.Message)
}

// ValidationErrors represents multiple validation errors
type ValidationErrors []ValidationError

// Error implements the error interface
func (ves ValidationErrors) Error() string {
	if len(ves) == 0 {
		return ""
	}
	if len(ves) == 1 {
		return ves[0].Error()
	}

	var messages []string
	for _, ve := range ves {
		messages = append(messages, ve.Error())
	}
	return fmt.Sprintf("multiple validation errors: %s", strings.Join(messages, "; "))
}

var appKeyPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// NewValidator creates a new validator with custom validation rules
func NewValidator() *validator.Validate {
	v := validator.New()

	v.RegisterValidation("app_key", validateAppKey)
	v.RegisterValidation("semver", validateSemver)

	return v
}

// ValidateAppDefinition validates an app definition with detailed error messages
func ValidateAppDefinition(def *AppDefinition) error {
	v := NewValidator()
	if err := v.Struct(def); err != nil {
		return convertValidatorErrors(err)
	}
	return nil
}

// ValidateMarketplaceItem validates a marketplace catalog item
func ValidateMarketplaceItem(item *MarketplaceItem) error {
	v := NewValidator()
	if err := v.Struct(item); err != nil {
		return convertValidatorErrors(err)
	}
	return nil
}

// convertValidatorErrors converts go-playground validator errors to our custom format
func convertValidatorErrors(err error) error {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		var errors ValidationErrors

		for _, ve := range validationErrors {
			errors = append(errors, ValidationError{
				Field:   ve.Field(),
				Message: getValidationMessage(ve),
				Value:   fmt.Sprintf("%v", ve.Value()),
			})
		}

		return errors
	}

	return err
}

// getValidationMessage returns a human-readable message for validation errors
func getValidationMessage(ve validator.FieldError) string {
	switch ve.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", ve.Param())
	case "app_key":
		return "must be lowercase alphanumeric segments separated by hyphens"
	case "semver":
		return "must be a semantic version (major.minor.patch)"
	default:
		return ve.Error()
	}
}

// validateAppKey validates app and catalog item keys
func validateAppKey(fl validator.FieldLevel) bool {
	return appKeyPattern.MatchString(fl.Field().String())
}

// validateSemver validates strict three-part version strings
func validateSemver(fl validator.FieldLevel) bool {
	return semver.IsValid(fl.Field().String())
}
