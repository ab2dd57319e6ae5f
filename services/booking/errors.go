package booking

import (
	"errors"
	"fmt"
)

// ErrSessionNotFound is returned by stores when the user has no live session.
var ErrSessionNotFound = errors.New("booking session not found or expired")

// ValidationError is recoverable user input: the flow re-prompts and stays put.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// RenderingError covers both assembling the booking and rendering the ticket.
type RenderingError struct {
	TicketID string
	Err      error
}

func (e *RenderingError) Error() string {
	if e.TicketID == "" {
		return fmt.Sprintf("ticket rendering failed: %v", e.Err)
	}
	return fmt.Sprintf("ticket %s rendering failed: %v", e.TicketID, e.Err)
}

func (e *RenderingError) Unwrap() error { return e.Err }
