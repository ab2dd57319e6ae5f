package models

import (
	"fmt"
	"strconv"
	"strings"
)

// EventKind identifies the shape of an inbound conversation event.
type EventKind string

const (
	EventStartBooking    EventKind = "start_booking"
	EventTextInput       EventKind = "text_input"
	EventModeSelected    EventKind = "mode_selected"
	EventOptionSelected  EventKind = "option_selected"
	EventCancelRequested EventKind = "cancel_requested"
)

// Event is one user message or button press delivered to a session.
type Event struct {
	Kind  EventKind
	Text  string
	Mode  Mode
	Index int
}

func StartBooking() Event { return Event{Kind: EventStartBooking} }

func TextInput(text string) Event { return Event{Kind: EventTextInput, Text: text} }

func ModeSelected(m Mode) Event { return Event{Kind: EventModeSelected, Mode: m} }

func OptionSelected(i int) Event { return Event{Kind: EventOptionSelected, Index: i} }

func CancelRequested() Event { return Event{Kind: EventCancelRequested} }

const (
	modeTokenPrefix   = "mode_"
	optionTokenPrefix = "opt_"
)

// ModeToken is the opaque selection token for a mode button.
func ModeToken(m Mode) string { return modeTokenPrefix + string(m) }

// OptionToken is the opaque selection token for the option at index i.
func OptionToken(i int) string { return optionTokenPrefix + strconv.Itoa(i) }

// ParseSelectionToken turns a button token back into the event it stands for.
// Mode tokens are passed through verbatim so the flow decides what an unknown mode means.
func ParseSelectionToken(token string) (Event, error) {
	switch {
	case strings.HasPrefix(token, modeTokenPrefix):
		return ModeSelected(Mode(strings.TrimPrefix(token, modeTokenPrefix))), nil
	case strings.HasPrefix(token, optionTokenPrefix):
		i, err := strconv.Atoi(strings.TrimPrefix(token, optionTokenPrefix))
		if err != nil {
			return Event{}, fmt.Errorf("malformed option token %q: %w", token, err)
		}
		return OptionSelected(i), nil
	}
	return Event{}, fmt.Errorf("unrecognized selection token %q", token)
}
