package errors

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrContactNotFound   = errors.New("contact not found")
	ErrInvalidContact    = errors.New("invalid contact")
	ErrInvalidListFilter = errors.New("invalid list filter")
	ErrDuplicateEmail    = errors.New("email already belongs to another contact")
	ErrRepositoryFailure = errors.New("repository invariant violated")
)

// ValidationError carries per-field messages and matches ErrInvalidContact
// under errors.Is.
type ValidationError struct {
	Fields map[string][]string
}

func (e *ValidationError) Add(field string, message string) {
	if e.Fields == nil {
		e.Fields = make(map[string][]string)
	}
	e.Fields[field] = append(e.Fields[field], message)
}

func (e *ValidationError) Empty() bool {
	return e == nil || len(e.Fields) == 0
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return ErrInvalidContact.Error() + ": " + strings.Join(fields, ", ")
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidContact
}
