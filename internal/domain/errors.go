package domain

import (
	"errors"
	"fmt"
)

// ValidationError reports input the client must fix. Always a 400 at the boundary.
type ValidationError struct {
	Field string
	Msg   string
	Err   error
}

func (e ValidationError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Field != "" {
		return fmt.Sprintf("invalid %s", e.Field)
	}
	return "validation error"
}

func (e ValidationError) Unwrap() error { return e.Err }

// GenerationError wraps any failure of the text-generation collaborator.
// The message of the underlying error is passed through unchanged.
type GenerationError struct {
	Err error
}

func (e GenerationError) Error() string {
	if e.Err == nil {
		return "generation failed"
	}
	return e.Err.Error()
}

func (e GenerationError) Unwrap() error { return e.Err }

// ExportError wraps any failure while classifying, assembling or rendering a document.
type ExportError struct {
	Err error
}

func (e ExportError) Error() string {
	if e.Err == nil {
		return "export failed"
	}
	return e.Err.Error()
}

func (e ExportError) Unwrap() error { return e.Err }

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsGeneration(err error) bool {
	var target GenerationError
	return errors.As(err, &target)
}

func IsExport(err error) bool {
	var target ExportError
	return errors.As(err, &target)
}
