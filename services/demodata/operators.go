// Package demodata holds the read-only mock datasets the booking flow draws from.
package demodata

import "goroute/models"

var operators = map[models.Mode][]string{
	models.ModeBus:    {"RS Yadav Travels", "Vaishali Express", "Sharma Travels"},
	models.ModeTrain:  {"Rajdhani Express", "Shatabdi Express", "Vande Bharat"},
	models.ModeFlight: {"IndiGo", "Air India", "Vistara"},
}

// Operators returns the operator roster for mode, or nil for an unknown mode.
func Operators(mode models.Mode) []string {
	roster, ok := operators[mode]
	if !ok {
		return nil
	}
	return append([]string(nil), roster...)
}
