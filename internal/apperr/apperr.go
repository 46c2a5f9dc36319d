package apperr

import (
  "errors"
  "fmt"
)

// Sentinels for the error categories handlers know how to map onto
// HTTP status codes. Services wrap these with %w and handlers test
// with errors.Is so the underlying cause never reaches a response body.
var (
  ErrNotFound         = errors.New("not found")
  ErrConflict         = errors.New("already exists")
  ErrModelUnavailable = errors.New("model not loaded")
  ErrGenerationFailed = errors.New("generation failed")
)

// ValidationError carries field-level detail for malformed input.
// Validation happens before any database work.
type ValidationError struct {
  Field   string
  Message string
}

func (ve *ValidationError) Error() string {
  return fmt.Sprintf("validation failed on '%s': %s", ve.Field, ve.Message)
}

func NewValidationError(field, message string) *ValidationError {
  return &ValidationError{Field: field, Message: message}
}

func IsValidation(err error) bool {
  var ve *ValidationError
  return errors.As(err, &ve)
}
