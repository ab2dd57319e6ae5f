package transport

import (
	"fmt"

	"goroute/models"
)

var fareBase = map[models.Mode]int{
	models.ModeBus:    500,
	models.ModeTrain:  1200,
	models.ModeFlight: 4500,
}

// FareBase returns the per-seat base fare for mode.
func FareBase(mode models.Mode) (int, error) {
	base, ok := fareBase[mode]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidMode, mode)
	}
	return base, nil
}

// CalculateFare is the generic fallback used when no option has been selected.
func CalculateFare(mode models.Mode, seatCount int) (int, error) {
	base, err := FareBase(mode)
	if err != nil {
		return 0, err
	}
	return base * seatCount, nil
}
