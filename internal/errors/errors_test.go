package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "team"}
		assert.Equal(t, "team not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "team"}
		err2 := &NotFoundError{Entity: "team"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "team"}
		err2 := &NotFoundError{Entity: "match"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is with predefined errors", func(t *testing.T) {
		assert.True(t, errors.Is(ErrMatchNotFound, ErrMatchNotFound))
		assert.False(t, errors.Is(ErrMatchNotFound, ErrSubmissionNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrMatchNotFound))
		assert.False(t, IsNotFound(ErrDuplicateSubmission))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "team", Context: "with this name in the league"}
		assert.Equal(t, "team already exists with this name in the league", err.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "team"}
		assert.Equal(t, "team already exists", err.Error())
	})

	t.Run("errors.Is comparison", func(t *testing.T) {
		err1 := &AlreadyExistsError{Entity: "team", Context: "in league"}
		err2 := &AlreadyExistsError{Entity: "team", Context: "in league"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrDuplicateSubmission))
		assert.False(t, IsAlreadyExists(ErrTeamNotFound))
	})
}

func TestInvalidStateError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		assert.Equal(t, "cannot submit a result for a completed match", ErrMatchAlreadyCompleted.Error())
	})

	t.Run("IsInvalidState helper", func(t *testing.T) {
		assert.True(t, IsInvalidState(ErrMatchAlreadyCompleted))
		assert.True(t, IsInvalidState(ErrMatchCancelled))
		assert.True(t, IsInvalidState(ErrSubmissionNotPending))
		assert.False(t, IsInvalidState(ErrMatchNotFound))
	})
}

func TestAuthorizationError(t *testing.T) {
	t.Run("IsAuthorization helper", func(t *testing.T) {
		assert.True(t, IsAuthorization(ErrNotMatchParticipant))
		assert.True(t, IsAuthorization(ErrNotLeagueManager))
		assert.True(t, IsAuthorization(ErrNotSubmissionOwner))
		assert.False(t, IsAuthorization(ErrUserIDMissing))
	})

	t.Run("IsAuthentication helper", func(t *testing.T) {
		assert.True(t, IsAuthentication(ErrUserIDMissing))
		assert.False(t, IsAuthentication(ErrNotLeagueManager))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "email", Message: "invalid format"}
		assert.Equal(t, "validation error: email - invalid format", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "invalid format"}
		assert.Equal(t, "validation error: invalid format", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		err := NewValidationError("email", "invalid")
		assert.True(t, IsValidation(err))
		assert.False(t, IsValidation(ErrTeamNotFound))
	})
}

func TestHelperFunctions(t *testing.T) {
	t.Run("NewNotFoundError", func(t *testing.T) {
		err := NewNotFoundError("custom entity")
		assert.Equal(t, "custom entity not found", err.Error())
		assert.True(t, IsNotFound(err))
	})

	t.Run("NewAlreadyExistsError", func(t *testing.T) {
		err := NewAlreadyExistsError("custom", "in scope")
		assert.Equal(t, "custom already exists in scope", err.Error())
		assert.True(t, IsAlreadyExists(err))
	})

	t.Run("NewInvalidStateError", func(t *testing.T) {
		err := NewInvalidStateError("match is locked")
		assert.Equal(t, "match is locked", err.Error())
		assert.True(t, IsInvalidState(err))
	})

	t.Run("NewValidationError", func(t *testing.T) {
		err := NewValidationError("field", "message")
		assert.Equal(t, "validation error: field - message", err.Error())
		assert.True(t, IsValidation(err))
	})
}

func TestBusinessLogicErrors(t *testing.T) {
	t.Run("Business logic errors", func(t *testing.T) {
		assert.Error(t, ErrSameTeamMatch)
		assert.Error(t, ErrTeamsNotInLeague)
		assert.Error(t, ErrInvalidStatus)
		assert.Error(t, ErrInvalidPaginationParams)
	})
}
