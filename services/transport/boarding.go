package transport

import (
	"fmt"
	"time"

	"goroute/models"
)

var boardingLead = map[models.Mode]time.Duration{
	models.ModeFlight: 45 * time.Minute,
	models.ModeTrain:  20 * time.Minute,
	models.ModeBus:    15 * time.Minute,
}

// BoardingLabel picks a gate, platform or bay number for mode.
func BoardingLabel(src Source, mode models.Mode) (string, error) {
	switch mode {
	case models.ModeFlight:
		return fmt.Sprintf("Gate %d", 1+src.IntN(40)), nil
	case models.ModeTrain:
		return fmt.Sprintf("Platform %d", 1+src.IntN(12)), nil
	case models.ModeBus:
		return fmt.Sprintf("Bay %d", 1+src.IntN(20)), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidMode, mode)
}

// BoardingTime is the departure ("HH:MM") minus the mode's boarding lead.
func BoardingTime(mode models.Mode, departure string) (string, error) {
	lead, ok := boardingLead[mode]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidMode, mode)
	}
	t, err := time.Parse("15:04", departure)
	if err != nil {
		return "", fmt.Errorf("parse departure %q: %w", departure, err)
	}
	return t.Add(-lead).Format("15:04"), nil
}
