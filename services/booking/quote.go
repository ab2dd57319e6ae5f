package booking

import (
	"goroute/models"
	"goroute/services/transport"
)

// Quote is a multi-seat price and seat draw from the generic calculators.
// The conversation never uses it; it books exactly one user-chosen seat.
type Quote struct {
	Mode      models.Mode `json:"mode"`
	SeatCount int         `json:"seatCount"`
	Seats     []string    `json:"seats"`
	Fare      int         `json:"fare"`
}

// Quote prices seatCount seats on mode and allocates that many distinct seats.
func (f *Flow) Quote(mode models.Mode, seatCount int) (Quote, error) {
	if seatCount < 1 {
		return Quote{}, &ValidationError{Field: "seats", Message: "at least one seat is required"}
	}
	fare, err := transport.CalculateFare(mode, seatCount)
	if err != nil {
		return Quote{}, err
	}
	seats, err := transport.AllocateSeats(f.random, mode, seatCount)
	if err != nil {
		return Quote{}, err
	}
	return Quote{Mode: mode, SeatCount: seatCount, Seats: seats, Fare: fare}, nil
}
