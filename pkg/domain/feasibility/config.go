package feasibility

import (
	"errors"
	"time"
)

// Documented defaults for the assessment configuration.
const (
	DefaultAvailableHoursPerWeek = 10.0
	DefaultHoursPerDay           = 2.0
)

// Validation errors for the assessment configuration.
var (
	ErrInvalidWeeklyHours = errors.New("available hours per week must be positive")
	ErrInvalidDailyHours  = errors.New("hours per day must be positive")
)

// Config carries the assessment parameters that must not live as hidden
// constants inside the evaluators: the person's weekly capacity, the hours
// worked per scheduled day, and the clock used for stale-blocker detection.
type Config struct {
	AvailableHoursPerWeek float64   `json:"available_hours_per_week" yaml:"available_hours_per_week"`
	HoursPerDay           float64   `json:"hours_per_day" yaml:"hours_per_day"`
	Now                   time.Time `json:"-" yaml:"-"`
}

// DefaultConfig returns the documented default configuration with the given
// reference time.
func DefaultConfig(now time.Time) Config {
	return Config{
		AvailableHoursPerWeek: DefaultAvailableHoursPerWeek,
		HoursPerDay:           DefaultHoursPerDay,
		Now:                   now,
	}
}

// Validate rejects non-positive capacity settings before any computation runs.
func (c Config) Validate() error {
	if c.AvailableHoursPerWeek <= 0 {
		return ErrInvalidWeeklyHours
	}
	if c.HoursPerDay <= 0 {
		return ErrInvalidDailyHours
	}
	return nil
}
