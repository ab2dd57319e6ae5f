package handlers

import (
	"context"
	"fmt"
	"strings"

	"goroute/models"
	"goroute/services/booking"
	"goroute/services/demodata"
)

// BookingFlow is what the inbound adapters need from the booking core.
type BookingFlow interface {
	Handle(ctx context.Context, userID string, ev models.Event) (booking.Outcome, error)
	Quote(mode models.Mode, seatCount int) (booking.Quote, error)
}

const (
	cmdStart  = "start"
	cmdBook   = "book"
	cmdCancel = "cancel"
	cmdHotels = "hotels"
)

// commandEvent maps the commands that drive a session to their events.
// Informational commands like start and hotels are answered by each adapter.
func commandEvent(name string) (models.Event, bool) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(name), "/")) {
	case cmdBook:
		return models.StartBooking(), true
	case cmdCancel:
		return models.CancelRequested(), true
	}
	return models.Event{}, false
}

// hotelListing renders the demo hotels for a city as a single text reply.
func hotelListing(city string) models.Reply {
	city = strings.TrimSpace(city)
	if city == "" {
		return models.TextReply("Usage: /hotels <city>\nCities: " + strings.Join(demodata.HotelCities(), ", "))
	}
	list := demodata.HotelsFor(city)
	if len(list) == 0 {
		return models.TextReply(fmt.Sprintf("No hotels listed for %s.", city))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🏨 Hotels in %s:", city)
	for _, h := range list {
		fmt.Fprintf(&b, "\n• %s | %d rooms | ₹%d / night", h.Name, h.Rooms, h.Price)
	}
	return models.TextReply(b.String())
}
