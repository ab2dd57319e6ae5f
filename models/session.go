package models

import "time"

// State is the position of a booking conversation.
type State string

const (
	StateIdle                State = "idle"
	StateAwaitingSource      State = "awaiting_source"
	StateAwaitingDestination State = "awaiting_destination"
	StateAwaitingMode        State = "awaiting_mode"
	StateAwaitingOption      State = "awaiting_option_selection"
	StateAwaitingName        State = "awaiting_passenger_name"
	StateAwaitingAge         State = "awaiting_passenger_age"
	StateAwaitingSeat        State = "awaiting_seat_number"
	StateComplete            State = "complete"
	StateCancelled           State = "cancelled"
)

// IsTerminal reports whether no further input is accepted in s.
func (s State) IsTerminal() bool {
	return s == StateComplete || s == StateCancelled
}

// Session holds one user's in-progress booking conversation.
// Fields are filled strictly in state order.
type Session struct {
	UserID         string            `json:"userId"`
	State          State             `json:"state"`
	Source         string            `json:"source,omitempty"`
	Destination    string            `json:"destination,omitempty"`
	Mode           Mode              `json:"mode,omitempty"`
	OfferedOptions []TransportOption `json:"offeredOptions,omitempty"` // Generated once the mode is known
	SelectedOption *TransportOption  `json:"selectedOption,omitempty"`
	PassengerName  string            `json:"passengerName,omitempty"`
	PassengerAge   *int              `json:"passengerAge,omitempty"`
	SeatNumber     string            `json:"seatNumber,omitempty"`
	StartedAt      time.Time         `json:"startedAt"`
	UpdatedAt      time.Time         `json:"updatedAt"`
}

// Clone returns a deep copy so stores never share slices or pointers with callers.
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	c := *s
	if s.OfferedOptions != nil {
		c.OfferedOptions = append([]TransportOption(nil), s.OfferedOptions...)
	}
	if s.SelectedOption != nil {
		opt := *s.SelectedOption
		c.SelectedOption = &opt
	}
	if s.PassengerAge != nil {
		age := *s.PassengerAge
		c.PassengerAge = &age
	}
	return &c
}
