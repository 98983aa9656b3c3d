package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError is the Forbidden kind: the caller may not perform the
// operation, either because of who they are or because of the record's state
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// DependencyError wraps a failure of a downstream collaborator (mail server, queue)
type DependencyError struct {
	Dependency string
	Err        error
}

func (e *DependencyError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s unavailable", e.Dependency)
	}
	return fmt.Sprintf("%s failed: %v", e.Dependency, e.Err)
}

func (e *DependencyError) Unwrap() error {
	return e.Err
}

// Entity Not Found Errors
var (
	ErrEmergencyNotFound = &NotFoundError{Entity: "emergency"}
	ErrUserNotFound      = &NotFoundError{Entity: "user"}
)

// Authorization Errors
var (
	ErrEmergencyClosed        = &AuthorizationError{Message: "emergency is already resolved or cancelled"}
	ErrNotEmergencyOwner      = &AuthorizationError{Message: "not authorized to update this emergency"}
	ErrNotAuthorizedToView    = &AuthorizationError{Message: "not authorized to view this emergency"}
	ErrNotAuthorizedToResolve = &AuthorizationError{Message: "not authorized to resolve this emergency"}
	ErrAdminRequired          = &AuthorizationError{Message: "administrator role required"}
)

// Authentication Errors
var (
	ErrMissingPrincipal = &AuthenticationError{Message: "authentication required"}
)

// Business Logic Errors
var (
	ErrInvalidStatusTransition = &ValidationError{Field: "status", Message: "invalid status transition"}
	ErrResolveViaUpdate        = &ValidationError{Field: "status", Message: "use the resolve operation to resolve an emergency"}
	ErrInvalidScope            = &ValidationError{Field: "scope", Message: "scope must be one of: mine, all"}
)

// Dispatch Errors
var (
	ErrQueueFull         = errors.New("notification queue is full")
	ErrDispatcherStopped = errors.New("notification dispatcher is stopped")
	ErrSMTPNotConfigured = &ConfigurationError{Message: "SMTP_HOST must be set when EMAIL_ENABLED is true"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// IsDependency checks if an error is a DependencyError
func IsDependency(err error) bool {
	var depErr *DependencyError
	return errors.As(err, &depErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}

// NewDependencyError wraps err as a failure of the named dependency
func NewDependencyError(dependency string, err error) error {
	return &DependencyError{Dependency: dependency, Err: err}
}
