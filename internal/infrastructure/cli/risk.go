package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var riskJSON bool

var riskCmd = &cobra.Command{
	Use:   "risk",
	Short: "Analyze workload and gap risk for the project",
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := loadServicesForCurrentDir()
		if err != nil {
			return err
		}

		result, err := services.Assess.Risk()
		if err != nil {
			return MapError(err)
		}

		if riskJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		}

		fmt.Printf("Risk level: %s\n", result.RiskLevel)
		fmt.Printf("Overwhelm index: %d/100\n", result.OverwhelmIndex)
		fmt.Printf("Blocked items: %d\n", result.BlockersCount)
		fmt.Printf("Complexity score: %d\n", result.ComplexityScore)

		if len(result.Warnings) > 0 {
			fmt.Println("\nWarnings:")
			for _, w := range result.Warnings {
				fmt.Printf("- %s\n", w)
			}
		}
		return nil
	},
}

func init() {
	riskCmd.Flags().BoolVar(&riskJSON, "json", false, "Output in JSON format")
	RootCmd.AddCommand(riskCmd)
}
