// Package entity contains the core business objects of the project.
package entity

import (
	"strings"
	"time"
)

// Season names used in ClothFeatures.Seasons.
const (
	SeasonSpring = "spring"
	SeasonSummer = "summer"
	SeasonAutumn = "autumn"
	SeasonWinter = "winter"
)

// Weather is the resolved weather context for a recommendation. The engine
// never looks weather up itself; an infrastructure collaborator supplies it.
type Weather struct {
	TempC     float64 // Temperature in Celsius.
	Condition string  // Categorical descriptor, e.g. "Sunny", "Rain".
}

// IsRainy reports whether the condition describes rain.
func (w Weather) IsRainy() bool {
	return strings.HasPrefix(strings.ToLower(w.Condition), "rain")
}

// SeasonOf maps a date to a northern-hemisphere season name.
func SeasonOf(t time.Time) string {
	switch t.Month() {
	case time.March, time.April, time.May:
		return SeasonSpring
	case time.June, time.July, time.August:
		return SeasonSummer
	case time.September, time.October, time.November:
		return SeasonAutumn
	default:
		return SeasonWinter
	}
}
