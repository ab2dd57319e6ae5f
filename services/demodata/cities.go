package demodata

import "strings"

// cityCodes is keyed by lowercase city name.
var cityCodes = map[string]string{
	"delhi":      "DEL",
	"new delhi":  "DEL",
	"mumbai":     "BOM",
	"bombay":     "BOM",
	"bangalore":  "BLR",
	"bengaluru":  "BLR",
	"chennai":    "MAA",
	"kolkata":    "CCU",
	"hyderabad":  "HYD",
	"lucknow":    "LKO",
	"jaipur":     "JAI",
	"agra":       "AGR",
	"varanasi":   "VNS",
	"goa":        "GOI",
	"udaipur":    "UDR",
	"amritsar":   "ATQ",
	"pune":       "PNQ",
	"ahmedabad":  "AMD",
	"kochi":      "COK",
	"chandigarh": "IXC",
}

// CityCode looks name up case-insensitively after trimming whitespace.
func CityCode(name string) (string, bool) {
	code, ok := cityCodes[strings.ToLower(strings.TrimSpace(name))]
	return code, ok
}
