package models

import (
	"fmt"
	"strings"
)

// Mode is the means of transport a passenger travels by.
type Mode string

const (
	ModeBus    Mode = "Bus"
	ModeTrain  Mode = "Train"
	ModeFlight Mode = "Flight"
)

// Modes lists every supported mode in the order they are offered.
var Modes = []Mode{ModeBus, ModeTrain, ModeFlight}

// Valid reports whether m is one of Bus, Train or Flight.
func (m Mode) Valid() bool {
	switch m {
	case ModeBus, ModeTrain, ModeFlight:
		return true
	}
	return false
}

// Label returns the button caption shown to the user.
func (m Mode) Label() string {
	switch m {
	case ModeBus:
		return "🚌 Bus"
	case ModeTrain:
		return "🚆 Train"
	case ModeFlight:
		return "✈ Flight"
	}
	return string(m)
}

// ParseMode matches s case-insensitively against the supported modes.
func ParseMode(s string) (Mode, error) {
	for _, m := range Modes {
		if strings.EqualFold(strings.TrimSpace(s), string(m)) {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown travel mode %q", s)
}
