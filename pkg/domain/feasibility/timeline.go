package feasibility

import (
	"math"

	"feasly/pkg/domain/schedule"
)

// TimeFeasibilityResult compares the weekly hour demand implied by the
// schedule against the person's available capacity.
type TimeFeasibilityResult struct {
	// TotalDays is the summed calendar-day span of all work items.
	TotalDays int `json:"total_days" yaml:"total_days"`

	// TotalEstimatedHours is TotalDays times the configured hours per day.
	TotalEstimatedHours float64 `json:"total_estimated_hours" yaml:"total_estimated_hours"`

	// WeeklyHoursNeeded is the average weekly demand, rounded to one decimal.
	WeeklyHoursNeeded float64 `json:"weekly_hours_needed" yaml:"weekly_hours_needed"`

	// WeeklyHoursAvailable echoes the configured capacity.
	WeeklyHoursAvailable float64 `json:"weekly_hours_available" yaml:"weekly_hours_available"`

	// DeficitOrSurplus is available minus needed hours per week, rounded to
	// one decimal. Negative means the schedule demands more than is available.
	DeficitOrSurplus float64 `json:"deficit_or_surplus" yaml:"deficit_or_surplus"`

	// EstimatedProjectWeeks is the schedule span in whole weeks.
	EstimatedProjectWeeks int `json:"estimated_project_weeks" yaml:"estimated_project_weeks"`

	// RecommendedTimelineExtensionWeeks is how many extra weeks would absorb
	// the weekly deficit, zero when there is none.
	RecommendedTimelineExtensionWeeks int `json:"recommended_timeline_extension_weeks" yaml:"recommended_timeline_extension_weeks"`
}

// HasDeficit returns true if the schedule demands more hours per week than
// are available.
func (r TimeFeasibilityResult) HasDeficit() bool {
	return r.DeficitOrSurplus < 0
}

// EstimateTimeFeasibility derives the weekly hour demand from the dated work
// items and compares it to the configured capacity. Each item spans at least
// one day regardless of its dates. Items whose end date precedes their start
// date, and non-positive capacity settings, are rejected before any
// computation runs.
func EstimateTimeFeasibility(items []schedule.WorkItem, cfg Config) (TimeFeasibilityResult, error) {
	if err := cfg.Validate(); err != nil {
		return TimeFeasibilityResult{}, err
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return TimeFeasibilityResult{}, err
		}
	}

	result := TimeFeasibilityResult{
		WeeklyHoursAvailable: cfg.AvailableHoursPerWeek,
		DeficitOrSurplus:     cfg.AvailableHoursPerWeek,
	}
	if len(items) == 0 {
		return result, nil
	}

	totalDays := 0
	for _, item := range items {
		totalDays += item.Days()
	}

	totalHours := float64(totalDays) * cfg.HoursPerDay
	weeks := int(math.Ceil(float64(totalDays) / 7))

	weeklyNeeded := totalHours
	if weeks > 0 {
		weeklyNeeded = totalHours / float64(weeks)
	}
	weeklyNeeded = roundTenth(weeklyNeeded)

	result.TotalDays = totalDays
	result.TotalEstimatedHours = totalHours
	result.EstimatedProjectWeeks = weeks
	result.WeeklyHoursNeeded = weeklyNeeded
	result.DeficitOrSurplus = roundTenth(cfg.AvailableHoursPerWeek - weeklyNeeded)

	if result.DeficitOrSurplus < 0 {
		additionalHours := -result.DeficitOrSurplus * float64(weeks)
		result.RecommendedTimelineExtensionWeeks = int(math.Ceil(additionalHours / cfg.AvailableHoursPerWeek))
	}

	return result, nil
}

// roundTenth rounds to one decimal place.
func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
