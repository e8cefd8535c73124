package types

import "fmt"

// ValidationError represents a malformed candidate or requisition record.
// The engine surfaces it instead of silently computing nonsense scores.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error in %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}
