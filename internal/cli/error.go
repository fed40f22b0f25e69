// ABOUTME: User-facing CLI error carrying one or more plain message lines
// ABOUTME: Printed trace-free at the command boundary, unlike internal errors

package cli

import "strings"

// Error is a command-line failure meant for the user. The entry point
// prints its lines as-is and exits non-zero, without the diagnostic
// wrapping internal errors get.
type Error struct {
	Lines []string
}

// NewError builds an Error from message lines.
func NewError(lines ...string) *Error {
	return &Error{Lines: lines}
}

// Error implements the error interface.
func (e *Error) Error() string {
	return strings.Join(e.Lines, "\n")
}
