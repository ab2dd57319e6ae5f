package booking

import (
	"fmt"

	"goroute/models"
)

const (
	msgWelcome      = "Welcome to GoRoute 🌍\n\nUse /book to start booking."
	msgRestartHint  = "Use /book to start a new booking."
	msgNoSession    = "You have no booking in progress. " + msgRestartHint
	msgCancelled    = "Booking cancelled. " + msgRestartHint
	msgInternal     = "Something went wrong on our side and this booking was closed. " + msgRestartHint
	msgTicketFailed = "Sorry, we could not generate your ticket. " + msgRestartHint
	msgInvalidAge   = "Please enter a valid age as a whole number, for example 29."
	msgPickListed   = "Please pick one of the listed options."
)

var seatExamples = map[models.Mode]string{
	models.ModeFlight: "12A",
	models.ModeTrain:  "S14",
	models.ModeBus:    "A7",
}

// Welcome is the greeting for a first contact (/start).
func Welcome() models.Reply {
	return models.TextReply(msgWelcome)
}

// promptFor is the question a session in its current state is waiting on.
func promptFor(s *models.Session) models.Reply {
	switch s.State {
	case models.StateAwaitingSource:
		return models.TextReply("Let's plan your trip ✈\n\nWhere are you travelling from?")
	case models.StateAwaitingDestination:
		return models.TextReply(fmt.Sprintf("From %s to where? Enter your destination city.", s.Source))
	case models.StateAwaitingMode:
		choices := make([]models.Choice, 0, len(models.Modes))
		for _, m := range models.Modes {
			choices = append(choices, models.Choice{Label: m.Label(), Token: models.ModeToken(m)})
		}
		return models.ChoicesReply("Select Travel Mode:", choices)
	case models.StateAwaitingOption:
		choices := make([]models.Choice, 0, len(s.OfferedOptions))
		for i, opt := range s.OfferedOptions {
			choices = append(choices, models.Choice{Label: opt.Summary(), Token: models.OptionToken(i)})
		}
		return models.ChoicesReply(fmt.Sprintf("Available %s options from %s to %s:", s.Mode, s.Source, s.Destination), choices)
	case models.StateAwaitingName:
		return models.TextReply("Enter passenger name:")
	case models.StateAwaitingAge:
		return models.TextReply("Enter passenger age:")
	case models.StateAwaitingSeat:
		return models.TextReply(fmt.Sprintf("Enter preferred seat number (e.g. %s):", seatExamples[s.Mode]))
	}
	return models.TextReply(msgRestartHint)
}

func confirmationCaption(b models.Booking) string {
	return fmt.Sprintf(
		"🎫 Booking Confirmed!\n\n🆔 Ticket ID: %s\n👤 Passenger: %s\n🛣 Route: %s (%s) → %s (%s)\n🚉 %s · %s\n💺 Seat: %s\n🕒 Departs %s, boarding %s at %s\n💰 Fare: ₹%d",
		b.TicketID, b.PassengerName, b.From, b.FromCode, b.To, b.ToCode,
		b.Mode, b.Operator, b.Seats[0], b.DepartureTime, b.BoardingTime, b.Gate, b.Fare,
	)
}
