package transport

import (
	"fmt"
	"sort"

	"goroute/models"
	"goroute/services/demodata"
)

// OptionCount is how many options are offered per search.
const OptionCount = 5

type durationRange struct{ min, max int } // minutes, inclusive

var durations = map[models.Mode]durationRange{
	models.ModeFlight: {60, 180},
	models.ModeTrain:  {180, 600},
	models.ModeBus:    {240, 720},
}

var departureMinutes = []int{0, 15, 30, 45}

const (
	firstDepartureHour = 6
	lastDepartureHour  = 22
	maxPriceIncrement  = 2000
)

// GenerateOptions returns OptionCount mock options sorted ascending by price.
// The route is ignored; only the mode shapes the result.
func GenerateOptions(src Source, source, destination string, mode models.Mode) ([]models.TransportOption, error) {
	roster := demodata.Operators(mode)
	span, ok := durations[mode]
	if len(roster) == 0 || !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMode, mode)
	}
	base, err := FareBase(mode)
	if err != nil {
		return nil, err
	}

	options := make([]models.TransportOption, 0, OptionCount)
	for i := 0; i < OptionCount; i++ {
		depart := (firstDepartureHour+src.IntN(lastDepartureHour-firstDepartureHour+1))*60 +
			departureMinutes[src.IntN(len(departureMinutes))]
		duration := span.min + src.IntN(span.max-span.min+1)

		options = append(options, models.TransportOption{
			ID:            fmt.Sprintf("%c%03d", string(mode)[0], i+1),
			OperatorName:  roster[src.IntN(len(roster))],
			DepartureTime: clock(depart),
			ArrivalTime:   clock(depart + duration),
			Price:         base + src.IntN(maxPriceIncrement+1),
			DurationText:  durationText(duration),
		})
	}

	sort.SliceStable(options, func(i, j int) bool {
		return options[i].Price < options[j].Price
	})
	return options, nil
}

// clock formats minutes after midnight as HH:MM, wrapping past midnight.
func clock(minutes int) string {
	minutes %= 24 * 60
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

func durationText(minutes int) string {
	if minutes%60 == 0 {
		return fmt.Sprintf("%dh", minutes/60)
	}
	return fmt.Sprintf("%dh %02dm", minutes/60, minutes%60)
}
