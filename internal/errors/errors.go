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

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "for this match"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// InvalidStateError represents an operation attempted against an entity whose
// lifecycle state forbids it, e.g. submitting a result for a completed match
type InvalidStateError struct {
	Message string
}

func (e *InvalidStateError) Error() string {
	return e.Message
}

// Is enables errors.Is() comparison for InvalidStateError
func (e *InvalidStateError) Is(target error) bool {
	_, ok := target.(*InvalidStateError)
	return ok
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

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// Is enables errors.Is() comparison for AuthorizationError
func (e *AuthorizationError) Is(target error) bool {
	_, ok := target.(*AuthorizationError)
	return ok
}

// Entity Not Found Errors
var (
	ErrUserNotFound         = &NotFoundError{Entity: "user"}
	ErrLeagueNotFound       = &NotFoundError{Entity: "league"}
	ErrLeagueMemberNotFound = &NotFoundError{Entity: "league member"}
	ErrTeamNotFound         = &NotFoundError{Entity: "team"}
	ErrTeamMemberNotFound   = &NotFoundError{Entity: "team member"}
	ErrLocationNotFound     = &NotFoundError{Entity: "location"}
	ErrMatchNotFound        = &NotFoundError{Entity: "match"}
	ErrSubmissionNotFound   = &NotFoundError{Entity: "match result submission"}
	ErrNotificationNotFound = &NotFoundError{Entity: "notification"}
)

// Already Exists Errors
var (
	ErrUserExists          = &AlreadyExistsError{Entity: "user", Context: "with this email"}
	ErrLeagueExists        = &AlreadyExistsError{Entity: "league", Context: "with this name and season"}
	ErrLeagueMemberExists  = &AlreadyExistsError{Entity: "league member", Context: "in this league"}
	ErrTeamExists          = &AlreadyExistsError{Entity: "team", Context: "with this name in the league"}
	ErrTeamMemberExists    = &AlreadyExistsError{Entity: "team member", Context: "on this team"}
	ErrDuplicateSubmission = &AlreadyExistsError{Entity: "match result submission", Context: "for this match and team"}
)

// Invalid State Errors
var (
	ErrMatchAlreadyCompleted = &InvalidStateError{Message: "cannot submit a result for a completed match"}
	ErrMatchCancelled        = &InvalidStateError{Message: "cannot submit a result for a cancelled match"}
	ErrSubmissionNotPending  = &InvalidStateError{Message: "submission has already been adjudicated"}
)

// Authorization Errors
var (
	ErrNotMatchParticipant = &AuthorizationError{Message: "user is not a member of either team"}
	ErrNotLeagueManager    = &AuthorizationError{Message: "user is not a manager of this league"}
	ErrNotSubmissionOwner  = &AuthorizationError{Message: "user may not modify this submission"}
	ErrUserIDMissing       = &AuthenticationError{Message: "user id not found in request context"}
)

// Business Logic Errors
var (
	ErrSameTeamMatch           = errors.New("home and away team must differ")
	ErrTeamsNotInLeague        = errors.New("both teams must belong to the match's league")
	ErrInvalidStatus           = errors.New("invalid status")
	ErrInvalidPaginationParams = errors.New("invalid pagination parameters")
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsInvalidState checks if an error is an InvalidStateError
func IsInvalidState(err error) bool {
	var stateErr *InvalidStateError
	return errors.As(err, &stateErr)
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

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewInvalidStateError creates a new InvalidStateError
func NewInvalidStateError(message string) error {
	return &InvalidStateError{Message: message}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}
