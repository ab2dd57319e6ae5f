package booking

import (
	"errors"

	"goroute/models"
	"goroute/services/transport"
)

// assemble builds the single-seat booking for a session that reached the
// seat step. Fare and times come from the selected option, not the generic
// fare calculator.
func (f *Flow) assemble(s *models.Session) (models.Booking, error) {
	if s.SelectedOption == nil || s.PassengerAge == nil {
		return models.Booking{}, errors.New("session reached seat selection without option or age")
	}
	opt := s.SelectedOption

	gate, err := transport.BoardingLabel(f.random, s.Mode)
	if err != nil {
		return models.Booking{}, err
	}
	boarding, err := transport.BoardingTime(s.Mode, opt.DepartureTime)
	if err != nil {
		return models.Booking{}, err
	}

	return models.NewBooking(models.BookingParams{
		TicketID:      f.newTicketID(),
		PassengerName: s.PassengerName,
		PassengerAge:  *s.PassengerAge,
		Email:         f.email,
		Mode:          s.Mode,
		From:          s.Source,
		To:            s.Destination,
		FromCode:      transport.ResolveCityCode(s.Source),
		ToCode:        transport.ResolveCityCode(s.Destination),
		Operator:      opt.OperatorName,
		Seats:         []string{s.SeatNumber},
		Fare:          opt.Price,
		DepartureTime: opt.DepartureTime,
		ArrivalTime:   opt.ArrivalTime,
		BoardingTime:  boarding,
		DurationText:  opt.DurationText,
		Gate:          gate,
		BookedAt:      f.now(),
	})
}
