package transport

import (
	"strings"

	"goroute/services/demodata"
)

// ResolveCityCode maps a city name to its 3-letter code, falling back to the
// first three characters uppercased for names the table does not know.
func ResolveCityCode(name string) string {
	if code, ok := demodata.CityCode(name); ok {
		return code
	}
	r := []rune(strings.TrimSpace(name))
	if len(r) > 3 {
		r = r[:3]
	}
	return strings.ToUpper(string(r))
}
