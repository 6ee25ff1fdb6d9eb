package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"feasly/pkg/application"
)

var (
	timelineJSON        bool
	timelineWeeklyHours float64
	timelineDailyHours  float64
)

var timelineCmd = &cobra.Command{
	Use:   "timeline",
	Short: "Estimate whether the schedule fits your available hours",
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := loadServicesForCurrentDir()
		if err != nil {
			return err
		}

		result, err := services.Assess.TimeFeasibility(application.AssessOptions{
			AvailableHoursPerWeek: timelineWeeklyHours,
			HoursPerDay:           timelineDailyHours,
		})
		if err != nil {
			return MapError(err)
		}

		if timelineJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		}

		fmt.Printf("Scheduled work: %d day(s) over %d week(s), ~%.0f hours total\n",
			result.TotalDays, result.EstimatedProjectWeeks, result.TotalEstimatedHours)
		fmt.Printf("Weekly hours needed:    %.1f\n", result.WeeklyHoursNeeded)
		fmt.Printf("Weekly hours available: %.1f\n", result.WeeklyHoursAvailable)

		if result.HasDeficit() {
			fmt.Printf("\nYou are short %.1f hours per week.\n", -result.DeficitOrSurplus)
			fmt.Printf("Extend the timeline by %d week(s) to fit the work into your schedule.\n",
				result.RecommendedTimelineExtensionWeeks)
			return nil
		}
		fmt.Printf("\nSurplus of %.1f hours per week. The schedule fits.\n", result.DeficitOrSurplus)
		return nil
	},
}

func init() {
	timelineCmd.Flags().BoolVar(&timelineJSON, "json", false, "Output in JSON format")
	timelineCmd.Flags().Float64Var(&timelineWeeklyHours, "hours", 0,
		"Override available hours per week for this run")
	timelineCmd.Flags().Float64Var(&timelineDailyHours, "hours-per-day", 0,
		"Override working hours per scheduled day for this run")
	RootCmd.AddCommand(timelineCmd)
}
