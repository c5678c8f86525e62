package model

import (
	"errors"
	"fmt"
)

// ErrNotFound reports a lookup against a row that does not exist.
var ErrNotFound = errors.New("not found")

// ValidationError rejects a write before any statement runs. Field names
// the offending input so the caller can point at it.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ConstraintWarning reports a single skipped row inside a batch write.
// Sibling rows in the same batch still proceed; only an unexpected error
// rolls the containing transaction back.
type ConstraintWarning struct {
	Item   string `json:"item"`
	Reason string `json:"reason"`
}
