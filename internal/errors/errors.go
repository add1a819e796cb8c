// Package errors defines domain errors with stable machine-readable codes.
package errors

// DomainError carries a stable code alongside the human-readable message so
// clients can branch on failures without parsing text.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}
