package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

var (
	skillsJSON         bool
	skillLearningHours float64
)

var skillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "Show skill coverage against the project's requirements",
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := loadServicesForCurrentDir()
		if err != nil {
			return err
		}

		result, err := services.Assess.SkillCoverage()
		if err != nil {
			return MapError(err)
		}

		if skillsJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		}

		fmt.Printf("Skill coverage: %d%%\n", result.CoveragePercent)
		if len(result.MatchedSkills) > 0 {
			fmt.Println("\nCovered:")
			for _, name := range result.MatchedSkills {
				fmt.Printf("  [x] %s\n", name)
			}
		}
		if len(result.Gaps) > 0 {
			fmt.Println("\nGaps:")
			for _, gap := range result.Gaps {
				marker := fmt.Sprintf("at %d/5", gap.Proficiency)
				if gap.Missing {
					marker = "missing"
				}
				fmt.Printf("  [ ] %-20s importance %d/5, %s, ~%.0fh to learn\n",
					gap.Name, gap.Importance, marker, gap.LearningHours)
			}
		}
		return nil
	},
}

var skillsSetCmd = &cobra.Command{
	Use:   "set <name> <proficiency>",
	Short: "Add or update a skill on your profile (proficiency 0-5)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		proficiency, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("proficiency must be a number: %w", err)
		}

		services, err := loadServicesForCurrentDir()
		if err != nil {
			return err
		}
		if err := services.Profile.SetSkill(args[0], proficiency); err != nil {
			return MapError(err)
		}
		fmt.Printf("Set skill %s to %d/5\n", args[0], proficiency)
		return nil
	},
}

var skillsRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove a skill from your profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := loadServicesForCurrentDir()
		if err != nil {
			return err
		}
		if err := services.Profile.RemoveSkill(args[0]); err != nil {
			return MapError(err)
		}
		fmt.Printf("Removed skill %s\n", args[0])
		return nil
	},
}

var skillsRequireCmd = &cobra.Command{
	Use:   "require <name> <importance>",
	Short: "Add or update a required skill on the project (importance 0-5)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		importance, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("importance must be a number: %w", err)
		}

		services, err := loadServicesForCurrentDir()
		if err != nil {
			return err
		}
		if err := services.Project.RequireSkill(args[0], importance, skillLearningHours); err != nil {
			return MapError(err)
		}
		fmt.Printf("Project now requires %s at importance %d/5\n", args[0], importance)
		return nil
	},
}

func init() {
	skillsCmd.Flags().BoolVar(&skillsJSON, "json", false, "Output in JSON format")
	skillsRequireCmd.Flags().Float64Var(&skillLearningHours, "learning-hours", 0,
		"Estimated hours to learn the skill from scratch")

	skillsCmd.AddCommand(skillsSetCmd)
	skillsCmd.AddCommand(skillsRemoveCmd)
	skillsCmd.AddCommand(skillsRequireCmd)
	RootCmd.AddCommand(skillsCmd)
}
