package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Error kinds, matched with errors.Is
var (
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrValidation = errors.New("validation failed")
)

// ServiceError is a client-facing failure of a single operation.
type ServiceError struct {
	Op      string // e.g. "enrollment.Enroll"
	Kind    error
	Message string // human-readable, safe to return to callers
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

func (e *ServiceError) Is(target error) bool {
	return errors.Is(e.Kind, target)
}

func notFound(op, format string, args ...any) error {
	return &ServiceError{Op: op, Kind: ErrNotFound, Message: fmt.Sprintf(format, args...)}
}

func conflict(op, format string, args ...any) error {
	return &ServiceError{Op: op, Kind: ErrConflict, Message: fmt.Sprintf(format, args...)}
}

// ValidationError carries one message per offending field.
type ValidationError struct {
	Op     string
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return fmt.Sprintf("%s: %s", e.Op, strings.Join(parts, "; "))
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func invalidField(op, field, message string) error {
	return &ValidationError{Op: op, Fields: map[string]string{field: message}}
}
