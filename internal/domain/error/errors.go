package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidRequest      = 4000
	CodeMassAssignment      = 4220
	CodeConstraintViolation = 4005
	CodeDuplicateRecord     = 4009
	CodeNotFound            = 4040

	// 5xxx - Server errors
	CodeInternalServer        = 5000
	CodeConfigurationConflict = 5001
	CodeUndefinedProperty     = 5002
	CodeDatabaseConnection    = 5030
)

// Base error types
var (
	// ErrMorphAlreadyConfigured is returned when a second morph relation is created on one migration
	ErrMorphAlreadyConfigured = errors.New("using multiple customizable morph calls is unsupported")

	// ErrUndefinedProperty is returned for an unsupported shorthand accessor on a migration
	ErrUndefinedProperty = errors.New("undefined property")

	// ErrUnknownMorphType is returned when a morph type name cannot be parsed
	ErrUnknownMorphType = errors.New("unknown morph type")

	// ErrMassAssignment is returned when a guarded attribute is mass assigned on a totally guarded model
	ErrMassAssignment = errors.New("mass assignment of guarded attribute")

	// ErrMigrationNotRegistered is returned when a migration name is unknown to the runner
	ErrMigrationNotRegistered = errors.New("migration not registered")

	// ErrDuplicateMigration is returned when two migrations are registered under one name
	ErrDuplicateMigration = errors.New("migration already registered")

	// ErrUnknownConnection is returned when a model asks for a connection that was never opened
	ErrUnknownConnection = errors.New("unknown database connection")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrNotFound is returned when a record is not found
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateRecord is returned when a record with the same key already exists
	ErrDuplicateRecord = errors.New("record already exists")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrDatabaseConnection is returned when there's a problem connecting to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	case errors.Is(err, ErrMassAssignment):
		return CodeMassAssignment
	case errors.Is(err, ErrConstraintViolation):
		return CodeConstraintViolation
	case errors.Is(err, ErrDuplicateRecord):
		return CodeDuplicateRecord
	case errors.Is(err, ErrNotFound):
		return CodeNotFound
	case errors.Is(err, ErrMorphAlreadyConfigured):
		return CodeConfigurationConflict
	case errors.Is(err, ErrUndefinedProperty):
		return CodeUndefinedProperty
	case errors.Is(err, ErrDatabaseConnection):
		return CodeDatabaseConnection
	default:
		return CodeInternalServer
	}
}

// ConfigurationConflictError reports a morph relation created twice on one migration
type ConfigurationConflictError struct {
	Table    string
	Relation string
	Previous string
}

// Error implements the error interface
func (e *ConfigurationConflictError) Error() string {
	return fmt.Sprintf("%s: table %s already has morph relation %q, cannot add %q",
		ErrMorphAlreadyConfigured, e.Table, e.Previous, e.Relation)
}

// Is checks if the target error is an ErrMorphAlreadyConfigured
func (e *ConfigurationConflictError) Is(target error) bool {
	return target == ErrMorphAlreadyConfigured
}

// LogFields returns a map of fields for structured logging
func (e *ConfigurationConflictError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "configuration_conflict",
		"table":      e.Table,
		"relation":   e.Relation,
		"previous":   e.Previous,
		"error_code": CodeConfigurationConflict,
	}
}

// NewConfigurationConflictError creates a new morph configuration conflict error
func NewConfigurationConflictError(table, relation, previous string) error {
	return &ConfigurationConflictError{
		Table:    table,
		Relation: relation,
		Previous: previous,
	}
}

// UndefinedPropertyError reports an unsupported shorthand accessor
type UndefinedPropertyError struct {
	Owner    string
	Property string
}

// Error implements the error interface
func (e *UndefinedPropertyError) Error() string {
	return fmt.Sprintf("undefined property: %s::%s", e.Owner, e.Property)
}

// Is checks if the target error is an ErrUndefinedProperty
func (e *UndefinedPropertyError) Is(target error) bool {
	return target == ErrUndefinedProperty
}

// NewUndefinedPropertyError creates a new undefined property error
func NewUndefinedPropertyError(owner, property string) error {
	return &UndefinedPropertyError{
		Owner:    owner,
		Property: property,
	}
}

// MassAssignmentError reports a guarded attribute passed to Fill on a totally guarded model
type MassAssignmentError struct {
	Table     string
	Attribute string
}

// Error implements the error interface
func (e *MassAssignmentError) Error() string {
	return fmt.Sprintf("add [%s] to fillable property to allow mass assignment on [%s]", e.Attribute, e.Table)
}

// Is checks if the target error is an ErrMassAssignment
func (e *MassAssignmentError) Is(target error) bool {
	return target == ErrMassAssignment
}

// LogFields returns a map of fields for structured logging
func (e *MassAssignmentError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "mass_assignment",
		"table":      e.Table,
		"attribute":  e.Attribute,
		"error_code": CodeMassAssignment,
	}
}

// NewMassAssignmentError creates a new mass assignment error
func NewMassAssignmentError(table, attribute string) error {
	return &MassAssignmentError{
		Table:     table,
		Attribute: attribute,
	}
}

// MigrationError wraps a failure of a single named migration
type MigrationError struct {
	Migration string
	Direction string
	Err       error
}

// Error implements the error interface for MigrationError
func (e *MigrationError) Error() string {
	return fmt.Sprintf("migration %s (%s) failed: %v", e.Migration, e.Direction, e.Err)
}

// Unwrap returns the underlying error
func (e *MigrationError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *MigrationError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "migration_error",
		"migration":  e.Migration,
		"direction":  e.Direction,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// IsConfigurationConflict checks if the error is a morph configuration conflict
func IsConfigurationConflict(err error) bool {
	return errors.Is(err, ErrMorphAlreadyConfigured)
}

// IsMassAssignmentError checks if the error is a mass assignment error
func IsMassAssignmentError(err error) bool {
	return errors.Is(err, ErrMassAssignment)
}

// IsNotFoundError checks if the error is a "not found" error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}
