package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "emergency"}
		assert.Equal(t, "emergency not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "emergency"}
		err2 := &NotFoundError{Entity: "emergency"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "emergency"}
		err2 := &NotFoundError{Entity: "notification"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is with predefined errors", func(t *testing.T) {
		assert.True(t, errors.Is(ErrEmergencyNotFound, ErrEmergencyNotFound))
		assert.False(t, errors.Is(ErrEmergencyNotFound, ErrUserNotFound))
	})

	t.Run("errors.Is through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("failed to get emergency: %w", ErrEmergencyNotFound)
		assert.True(t, errors.Is(wrapped, ErrEmergencyNotFound))
		assert.True(t, IsNotFound(wrapped))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrUserNotFound))
		assert.False(t, IsNotFound(ErrEmergencyClosed))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "title", Message: "required"}
		assert.Equal(t, "validation error: title - required", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "invalid payload"}
		assert.Equal(t, "validation error: invalid payload", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		assert.True(t, IsValidation(NewValidationError("type", "unknown")))
		assert.True(t, IsValidation(ErrInvalidStatusTransition))
		assert.False(t, IsValidation(ErrEmergencyNotFound))
	})
}

func TestAuthorizationError(t *testing.T) {
	t.Run("predefined errors are authorization errors", func(t *testing.T) {
		for _, err := range []error{
			ErrEmergencyClosed,
			ErrNotEmergencyOwner,
			ErrNotAuthorizedToView,
			ErrNotAuthorizedToResolve,
			ErrAdminRequired,
		} {
			assert.True(t, IsAuthorization(err), err.Error())
			assert.False(t, IsNotFound(err))
		}
	})

	t.Run("wrapped identity is preserved", func(t *testing.T) {
		wrapped := fmt.Errorf("resolve: %w", ErrEmergencyClosed)
		assert.True(t, errors.Is(wrapped, ErrEmergencyClosed))
		assert.False(t, errors.Is(wrapped, ErrNotEmergencyOwner))
	})
}

func TestDependencyError(t *testing.T) {
	t.Run("Error message with cause", func(t *testing.T) {
		err := NewDependencyError("smtp", errors.New("connection refused"))
		assert.Equal(t, "smtp failed: connection refused", err.Error())
	})

	t.Run("Error message without cause", func(t *testing.T) {
		err := &DependencyError{Dependency: "redis"}
		assert.Equal(t, "redis unavailable", err.Error())
	})

	t.Run("Unwrap exposes cause", func(t *testing.T) {
		err := NewDependencyError("notification queue", ErrQueueFull)
		assert.True(t, errors.Is(err, ErrQueueFull))
		assert.True(t, IsDependency(err))
		assert.False(t, IsDependency(ErrQueueFull))
	})
}

func TestHelperFunctions(t *testing.T) {
	t.Run("NewNotFoundError", func(t *testing.T) {
		err := NewNotFoundError("volunteer")
		assert.True(t, IsNotFound(err))
		assert.Equal(t, "volunteer not found", err.Error())
	})

	t.Run("NewAuthenticationError", func(t *testing.T) {
		err := NewAuthenticationError("invalid token")
		assert.True(t, IsAuthentication(err))
		assert.True(t, IsAuthentication(ErrMissingPrincipal))
		assert.Equal(t, "invalid token", err.Error())
	})

	t.Run("NewAuthorizationError", func(t *testing.T) {
		err := NewAuthorizationError("nope")
		assert.True(t, IsAuthorization(err))
		assert.False(t, IsAuthentication(err))
	})

	t.Run("NewConfigurationError", func(t *testing.T) {
		err := NewConfigurationError("missing secret")
		assert.True(t, IsConfiguration(err))
		assert.True(t, IsConfiguration(ErrSMTPNotConfigured))
	})
}
