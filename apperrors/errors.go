// Package apperrors defines the error kinds the services report, so the
// HTTP boundary can tell a missing resource apart from an internal failure.
package apperrors

import (
	"errors"
	"fmt"
)

// NotFoundError reports that an entity lookup came up empty. Entity is the
// human-readable type name ("Category", "Supplier", "Product").
type NotFoundError struct {
	Entity string
	ID     uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// NewNotFound builds a NotFoundError for the given entity type and id.
func NewNotFound(entity string, id uint) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}

// IsNotFound reports whether err is (or wraps) a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
