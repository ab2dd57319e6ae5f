package transport

import (
	"fmt"
	"strconv"

	"goroute/models"
)

// SeatUniverse lists every seat code for mode:
// Flight rows 1-30 x A-D, Train S1-S72, Bus A1-A40.
func SeatUniverse(mode models.Mode) ([]string, error) {
	switch mode {
	case models.ModeFlight:
		seats := make([]string, 0, 30*4)
		for row := 1; row <= 30; row++ {
			for _, letter := range []string{"A", "B", "C", "D"} {
				seats = append(seats, strconv.Itoa(row)+letter)
			}
		}
		return seats, nil
	case models.ModeTrain:
		return numberedSeats("S", 72), nil
	case models.ModeBus:
		return numberedSeats("A", 40), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrInvalidMode, mode)
}

func numberedSeats(prefix string, n int) []string {
	seats := make([]string, n)
	for i := range seats {
		seats[i] = prefix + strconv.Itoa(i+1)
	}
	return seats
}

// AllocateSeats draws count distinct seats uniformly at random without replacement.
func AllocateSeats(src Source, mode models.Mode, count int) ([]string, error) {
	seats, err := SeatUniverse(mode)
	if err != nil {
		return nil, err
	}
	if count < 0 || count > len(seats) {
		return nil, fmt.Errorf("%w: %d seats requested, %s has %d", ErrSeatAllocation, count, mode, len(seats))
	}
	// Partial Fisher-Yates: the first count entries end up a uniform sample.
	for i := 0; i < count; i++ {
		j := i + src.IntN(len(seats)-i)
		seats[i], seats[j] = seats[j], seats[i]
	}
	return seats[:count:count], nil
}
