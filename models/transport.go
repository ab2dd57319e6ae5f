package models

import "fmt"

// TransportOption is one mock offering presented for selection.
type TransportOption struct {
	ID            string `json:"id"`
	OperatorName  string `json:"operatorName"`
	DepartureTime string `json:"departureTime"` // "HH:MM"
	ArrivalTime   string `json:"arrivalTime"`   // "HH:MM"
	Price         int    `json:"price"`         // Whole currency units
	DurationText  string `json:"durationText"`  // e.g. "2h 15m"
}

// Summary is the one-line description used on selection buttons.
func (o TransportOption) Summary() string {
	return fmt.Sprintf("%s | %s → %s | %s | ₹%d", o.OperatorName, o.DepartureTime, o.ArrivalTime, o.DurationText, o.Price)
}
