package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"feasly/pkg/application"
	"feasly/pkg/domain/feasibility"
)

// Flag variables for assess command
var (
	assessJSON        bool
	assessInput       string
	assessWeeklyHours float64
	assessDailyHours  float64
)

var statusGreenStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
var statusYellowStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
var statusRedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
var sectionStyle = lipgloss.NewStyle().Bold(true).Underline(true)

var assessCmd = &cobra.Command{
	Use:   "assess",
	Short: "Score the project's feasibility against your profile and schedule",
	Long: `Assess computes a 0-100 feasibility score from four components:
skill coverage, tool coverage, time feasibility, and risk.

Use flags to override stored capacity settings or bypass the workspace:
  --hours          Available hours per week for this run
  --hours-per-day  Working hours assumed per scheduled day
  --input, -i      Assess a self-contained JSON document instead of the workspace
  --json           Output in JSON format

Examples:
  feasly assess
  feasly assess --hours 15
  feasly assess --input project.json --json`,
	RunE: runAssessCmd,
}

func runAssessCmd(cmd *cobra.Command, args []string) error {
	services, err := loadServicesForCurrentDir()
	if err != nil {
		return err
	}

	var assessment *feasibility.FeasibilityAssessment
	if assessInput != "" {
		assessment, err = assessDocument(services.Assess, assessInput)
	} else {
		assessment, err = services.Assess.Assess(application.AssessOptions{
			AvailableHoursPerWeek: assessWeeklyHours,
			HoursPerDay:           assessDailyHours,
		})
	}
	if err != nil {
		return MapError(err)
	}

	if assessJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(assessment)
	}

	printAssessmentText(assessment)
	return nil
}

// assessDocument runs the pipeline over a one-shot document, applying any
// capacity flags over the document's own settings.
func assessDocument(svc *application.AssessService, path string) (*feasibility.FeasibilityAssessment, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from the user's own flag
	if err != nil {
		return nil, fmt.Errorf("failed to read input document: %w", err)
	}

	doc, err := application.ParseAssessmentDocument(data)
	if err != nil {
		return nil, err
	}

	cfg := doc.Config()
	if assessWeeklyHours > 0 {
		cfg.AvailableHoursPerWeek = assessWeeklyHours
	}
	if assessDailyHours > 0 {
		cfg.HoursPerDay = assessDailyHours
	}

	return svc.AssessCollections(doc.Skills, doc.RequiredSkills, doc.Tools, doc.RequiredTools, doc.WorkItems, cfg)
}

func printAssessmentText(a *feasibility.FeasibilityAssessment) {
	fmt.Printf("Feasibility Score: %d/100 %s\n", a.FeasibilityScore, renderStatus(a.FeasibilityStatus))

	fmt.Printf("\n%s\n", sectionStyle.Render("Components"))
	fmt.Printf("- Skill coverage: %d%% (%d matched, %d gaps)\n",
		a.SkillCoverage.CoveragePercent, len(a.SkillCoverage.MatchedSkills), len(a.SkillCoverage.Gaps))
	fmt.Printf("- Tool coverage:  %d%% (%d matched, %d missing)\n",
		a.ToolCoverage.CoveragePercent, len(a.ToolCoverage.MatchedTools), len(a.ToolCoverage.MissingTools))
	printTimeSummary(a.TimeFeasibility)
	fmt.Printf("- Risk:           %s (overwhelm %d/100)\n",
		a.RiskAnalysis.RiskLevel, a.RiskAnalysis.OverwhelmIndex)

	if len(a.RiskAnalysis.Warnings) > 0 {
		fmt.Printf("\n%s\n", sectionStyle.Render("Warnings"))
		for _, w := range a.RiskAnalysis.Warnings {
			fmt.Printf("- %s\n", w)
		}
	}

	if len(a.Recommendations) > 0 {
		fmt.Printf("\n%s\n", sectionStyle.Render("Recommendations"))
		for i, rec := range a.Recommendations {
			fmt.Printf("%d. %s\n", i+1, rec)
		}
	}
}

func printTimeSummary(tf feasibility.TimeFeasibilityResult) {
	if tf.HasDeficit() {
		fmt.Printf("- Time:           %.1fh/week needed, %.1fh/week available (short %.1fh)\n",
			tf.WeeklyHoursNeeded, tf.WeeklyHoursAvailable, -tf.DeficitOrSurplus)
		return
	}
	fmt.Printf("- Time:           %.1fh/week needed, %.1fh/week available\n",
		tf.WeeklyHoursNeeded, tf.WeeklyHoursAvailable)
}

func renderStatus(status feasibility.FeasibilityStatus) string {
	label := fmt.Sprintf("[%s]", status)
	switch status {
	case feasibility.StatusGreen:
		return statusGreenStyle.Render(label)
	case feasibility.StatusYellow:
		return statusYellowStyle.Render(label)
	default:
		return statusRedStyle.Render(label)
	}
}

func init() {
	assessCmd.Flags().BoolVar(&assessJSON, "json", false,
		"Output in JSON format")
	assessCmd.Flags().StringVarP(&assessInput, "input", "i", "",
		"Assess a self-contained JSON document instead of the workspace")
	assessCmd.Flags().Float64Var(&assessWeeklyHours, "hours", 0,
		"Override available hours per week for this run")
	assessCmd.Flags().Float64Var(&assessDailyHours, "hours-per-day", 0,
		"Override working hours per scheduled day for this run")

	RootCmd.AddCommand(assessCmd)
}
