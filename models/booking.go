package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrIncompleteBooking is returned when a required booking field is missing.
var ErrIncompleteBooking = errors.New("incomplete booking")

// Booking is the immutable record produced when a conversation completes.
type Booking struct {
	TicketID      string     `json:"ticketId"`
	PassengerName string     `json:"name"`
	PassengerAge  int        `json:"age"`
	Email         string     `json:"email"`
	Mode          Mode       `json:"mode"`
	From          string     `json:"from"`
	To            string     `json:"to"`
	FromCode      string     `json:"fromCode"`
	ToCode        string     `json:"toCode"`
	Operator      string     `json:"operator"`
	Seats         []string   `json:"seats"`
	Fare          int        `json:"fare"`
	DepartureTime string     `json:"departureTime"`
	ArrivalTime   string     `json:"arrivalTime"`
	BoardingTime  string     `json:"boardingTime"`
	DurationText  string     `json:"durationText,omitempty"`
	Gate          string     `json:"gate"` // Gate, platform or bay depending on the mode
	Hotel         *HotelStay `json:"hotel,omitempty"`
	BookedAt      time.Time  `json:"bookedAt"`
}

// BookingParams carries the values a Booking is assembled from.
type BookingParams struct {
	TicketID      string
	PassengerName string
	PassengerAge  int
	Email         string
	Mode          Mode
	From          string
	To            string
	FromCode      string
	ToCode        string
	Operator      string
	Seats         []string
	Fare          int
	DepartureTime string
	ArrivalTime   string
	BoardingTime  string
	DurationText  string
	Gate          string
	Hotel         *HotelStay
	BookedAt      time.Time
}

// NewBooking validates p and builds the booking record.
func NewBooking(p BookingParams) (Booking, error) {
	required := []struct {
		name  string
		value string
	}{
		{"ticket id", p.TicketID},
		{"passenger name", p.PassengerName},
		{"email", p.Email},
		{"from", p.From},
		{"to", p.To},
		{"from code", p.FromCode},
		{"to code", p.ToCode},
		{"operator", p.Operator},
		{"departure time", p.DepartureTime},
		{"arrival time", p.ArrivalTime},
		{"boarding time", p.BoardingTime},
		{"gate", p.Gate},
	}
	var missing []string
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if !p.Mode.Valid() {
		missing = append(missing, "mode")
	}
	if len(p.Seats) == 0 {
		missing = append(missing, "seats")
	}
	if len(missing) > 0 {
		return Booking{}, fmt.Errorf("%w: missing %s", ErrIncompleteBooking, strings.Join(missing, ", "))
	}
	if p.Fare < 0 || p.PassengerAge < 0 {
		return Booking{}, fmt.Errorf("%w: negative fare or age", ErrIncompleteBooking)
	}

	var hotel *HotelStay
	if p.Hotel != nil {
		h := *p.Hotel
		hotel = &h
	}
	bookedAt := p.BookedAt
	if bookedAt.IsZero() {
		bookedAt = time.Now()
	}

	return Booking{
		TicketID:      p.TicketID,
		PassengerName: p.PassengerName,
		PassengerAge:  p.PassengerAge,
		Email:         p.Email,
		Mode:          p.Mode,
		From:          p.From,
		To:            p.To,
		FromCode:      p.FromCode,
		ToCode:        p.ToCode,
		Operator:      p.Operator,
		Seats:         append([]string(nil), p.Seats...),
		Fare:          p.Fare,
		DepartureTime: p.DepartureTime,
		ArrivalTime:   p.ArrivalTime,
		BoardingTime:  p.BoardingTime,
		DurationText:  p.DurationText,
		Gate:          p.Gate,
		Hotel:         hotel,
		BookedAt:      bookedAt,
	}, nil
}

// HotelPrice returns the nightly hotel charge, or 0 without a hotel.
func (b Booking) HotelPrice() int {
	if b.Hotel == nil {
		return 0
	}
	return b.Hotel.NightlyPrice
}

// TotalAmount is the travel fare plus one hotel night.
func (b Booking) TotalAmount() int {
	return b.Fare + b.HotelPrice()
}
