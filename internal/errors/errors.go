package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found.
// Link and merge targets that do not resolve are reported with it.
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

// MissingRequiredFieldError is returned when a create or edit request leaves a
// required field blank. State is never mutated when it is returned.
type MissingRequiredFieldError struct {
	Entity string
	Field  string
}

func (e *MissingRequiredFieldError) Error() string {
	return fmt.Sprintf("missing required field: %s %s", e.Entity, e.Field)
}

// Is enables errors.Is() comparison for MissingRequiredFieldError
func (e *MissingRequiredFieldError) Is(target error) bool {
	t, ok := target.(*MissingRequiredFieldError)
	if !ok {
		return false
	}
	return (t.Entity == "" || e.Entity == t.Entity) && (t.Field == "" || e.Field == t.Field)
}

// MalformedImportError wraps a failure to read an import file as the format
// the pipeline expects.
type MalformedImportError struct {
	Source string
	Err    error
}

func (e *MalformedImportError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("malformed import source %s", e.Source)
	}
	return fmt.Sprintf("malformed import source %s: %v", e.Source, e.Err)
}

func (e *MalformedImportError) Unwrap() error {
	return e.Err
}

// PersistenceError wraps a rejected durable-storage write for one key.
type PersistenceError struct {
	Key string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persist %s: %v", e.Key, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrEmployeeNotFound = &NotFoundError{Entity: "employee"}
	ErrTopicNotFound    = &NotFoundError{Entity: "topic"}
	ErrTeamNotFound     = &NotFoundError{Entity: "team"}
)

// Business Logic Errors
var (
	ErrInvalidItemKind      = errors.New("invalid item type: expected topic or team")
	ErrUnknownPipeline      = errors.New("unknown import pipeline")
	ErrUnsupportedSheetType = errors.New("unsupported sheet file type")
	ErrEmptyUpload          = errors.New("uploaded file is empty")
)

// Configuration Errors
var (
	ErrUnknownStorageDriver = &ConfigurationError{Message: "unknown storage driver"}
	ErrDatabaseNameMissing  = &ConfigurationError{Message: "database name is required for the postgres storage driver"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.Is(err, &NotFoundError{}) || errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.Is(err, &ValidationError{}) || errors.As(err, &validationErr)
}

// IsMissingRequiredField checks if an error is a MissingRequiredFieldError
func IsMissingRequiredField(err error) bool {
	var missingErr *MissingRequiredFieldError
	return errors.As(err, &missingErr)
}

// IsMalformedImport checks if an error is a MalformedImportError
func IsMalformedImport(err error) bool {
	var malformedErr *MalformedImportError
	return errors.As(err, &malformedErr)
}

// IsPersistence checks if an error is a PersistenceError
func IsPersistence(err error) bool {
	var persistErr *PersistenceError
	return errors.As(err, &persistErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.Is(err, &ConfigurationError{}) || errors.As(err, &configErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewMissingRequiredFieldError creates a new MissingRequiredFieldError
func NewMissingRequiredFieldError(entity, field string) error {
	return &MissingRequiredFieldError{Entity: entity, Field: field}
}

// NewMalformedImportError creates a new MalformedImportError
func NewMalformedImportError(source string, err error) error {
	return &MalformedImportError{Source: source, Err: err}
}

// NewPersistenceError creates a new PersistenceError
func NewPersistenceError(key string, err error) error {
	return &PersistenceError{Key: key, Err: err}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
