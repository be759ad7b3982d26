package journal

import "fmt"

// ValidationError rejects a save whose mandatory fields are missing or out of
// range. The attempted mutation is discarded entirely; nothing is persisted.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func required(field string) error {
	return &ValidationError{Field: field, Reason: "is required"}
}

// NotFoundError reports an update aimed at an identity that is not in the
// collection. Deletes never produce it; removing a missing identity is a
// no-op.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}
