package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	toolsJSON     bool
	toolCategory  string
	toolEssential bool
	toolCost      float64
)

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "Show tool coverage against the project's requirements",
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := loadServicesForCurrentDir()
		if err != nil {
			return err
		}

		result, err := services.Assess.ToolCoverage()
		if err != nil {
			return MapError(err)
		}

		if toolsJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		}

		fmt.Printf("Tool coverage: %d%%\n", result.CoveragePercent)
		if len(result.MatchedTools) > 0 {
			fmt.Println("\nAvailable:")
			for _, name := range result.MatchedTools {
				fmt.Printf("  [x] %s\n", name)
			}
		}
		if len(result.MissingTools) > 0 {
			fmt.Println("\nMissing:")
			for _, gap := range result.MissingTools {
				essential := ""
				if gap.Essential {
					essential = " (essential)"
				}
				fmt.Printf("  [ ] %-20s %s, $%.2f%s\n", gap.Name, gap.Category, gap.Cost, essential)
			}
			fmt.Printf("\nEstimated cost to close the gap: $%.2f\n", result.EstimatedTotalCost)
		}
		return nil
	},
}

var toolsAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a tool to your profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := loadServicesForCurrentDir()
		if err != nil {
			return err
		}
		if err := services.Profile.AddTool(args[0]); err != nil {
			return MapError(err)
		}
		fmt.Printf("Added tool %s\n", args[0])
		return nil
	},
}

var toolsRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove a tool from your profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := loadServicesForCurrentDir()
		if err != nil {
			return err
		}
		if err := services.Profile.RemoveTool(args[0]); err != nil {
			return MapError(err)
		}
		fmt.Printf("Removed tool %s\n", args[0])
		return nil
	},
}

var toolsRequireCmd = &cobra.Command{
	Use:   "require <name>",
	Short: "Add or update a required tool on the project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := loadServicesForCurrentDir()
		if err != nil {
			return err
		}
		if err := services.Project.RequireTool(args[0], toolCategory, toolEssential, toolCost); err != nil {
			return MapError(err)
		}
		fmt.Printf("Project now requires tool %s\n", args[0])
		return nil
	},
}

func init() {
	toolsCmd.Flags().BoolVar(&toolsJSON, "json", false, "Output in JSON format")
	toolsRequireCmd.Flags().StringVar(&toolCategory, "category", "", "Tool category (e.g. hardware, software)")
	toolsRequireCmd.Flags().BoolVar(&toolEssential, "essential", false, "The project cannot start without this tool")
	toolsRequireCmd.Flags().Float64Var(&toolCost, "cost", 0, "Estimated cost to acquire the tool")

	toolsCmd.AddCommand(toolsAddCmd)
	toolsCmd.AddCommand(toolsRemoveCmd)
	toolsCmd.AddCommand(toolsRequireCmd)
	RootCmd.AddCommand(toolsCmd)
}
