package services

import (
	"errors"
	"fmt"

	apperrors "github.com/SAP-F-2025/workdna-service/internal/errors"
)

// ===== COMMON SERVICE ERRORS =====

var (
	// Generic errors
	ErrNotFound         = errors.New("resource not found")
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
	ErrInternalError    = errors.New("internal server error")

	// Catalog errors
	ErrCatalogNotFound = errors.New("job profile not found")
	ErrRoleNotFound    = errors.New("role not found")

	// Candidate errors
	ErrInvalidTestKey = errors.New("invalid test id")

	// Archive errors
	ErrResultNotFound        = errors.New("result not found")
	ErrGeneratedTestNotFound = errors.New("generated test not found")
)

// ===== CUSTOM ERROR TYPES =====

type ValidationError = apperrors.ValidationError
type ValidationErrors = apperrors.ValidationErrors

type BusinessRuleError struct {
	Rule    string                 `json:"rule"`
	Message string                 `json:"message"`
	Context map[string]interface{} `json:"context,omitempty"`
}

func (bre *BusinessRuleError) Error() string {
	return fmt.Sprintf("business rule violation (%s): %s", bre.Rule, bre.Message)
}

// ===== ERROR HELPERS =====

func NewValidationError(field, message string, value interface{}) *ValidationError {
	return apperrors.NewValidationError(field, message, value)
}

func NewBusinessRuleError(rule, message string, context map[string]interface{}) *BusinessRuleError {
	return &BusinessRuleError{
		Rule:    rule,
		Message: message,
		Context: context,
	}
}

// IsNotFound checks if error represents a "not found" condition
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrCatalogNotFound) ||
		errors.Is(err, ErrRoleNotFound) ||
		errors.Is(err, ErrResultNotFound) ||
		errors.Is(err, ErrGeneratedTestNotFound)
}

// IsUnauthorized checks if the caller presented credentials the service rejects
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrInvalidTestKey)
}

// IsValidation checks if error represents a validation failure
func IsValidation(err error) bool {
	if errors.Is(err, ErrValidationFailed) || errors.Is(err, ErrBadRequest) {
		return true
	}
	var ve apperrors.ValidationErrors
	if errors.As(err, &ve) {
		return true
	}
	var single *apperrors.ValidationError
	return errors.As(err, &single)
}

// IsBusinessRule checks if error represents a business rule violation
func IsBusinessRule(err error) bool {
	var bre *BusinessRuleError
	return errors.As(err, &bre)
}
