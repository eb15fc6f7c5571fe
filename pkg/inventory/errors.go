package inventory

import (
	"errors"
	"fmt"
)

var (
	// ErrStorage is returned (wrapped) when the underlying database
	// rejects an operation that passed validation.
	ErrStorage = errors.New("storage failure")

	// ErrSupplierReferenced is returned by supplier deletes when the
	// referential guard is enabled and books still reference the supplier.
	ErrSupplierReferenced = errors.New("supplier is referenced by existing books")

	// ErrSchemaVersion is returned when the database file carries a schema
	// version this build does not know and destructive migration is not
	// enabled.
	ErrSchemaVersion = errors.New("unknown schema version")
)

// InvalidFieldError is returned when a proposed write violates a field
// rule. The write is rejected before any row is created or changed.
type InvalidFieldError struct {
	Field string
}

func (e InvalidFieldError) Error() string {
	return fmt.Sprintf("invalid value for field %q", e.Field)
}

// MalformedRowError is returned when a full row read from storage is
// missing a column the codec requires.
type MalformedRowError struct {
	Column string
}

func (e MalformedRowError) Error() string {
	return fmt.Sprintf("row is missing required column %q", e.Column)
}
