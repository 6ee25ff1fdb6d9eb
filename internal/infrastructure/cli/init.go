package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init [name]",
	Short: "Initialize a new feasly workspace",
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := loadServicesForCurrentDir()
		if err != nil {
			return err
		}

		projectName := "new-project"
		if len(args) > 0 {
			projectName = args[0]
		}

		if err := services.Init.InitializeWorkspace(projectName); err != nil {
			return MapError(err)
		}

		fmt.Printf("Initialized feasly workspace for project: %s\n", projectName)
		fmt.Println("Next steps:")
		fmt.Println("  feasly skills set <name> <proficiency>   record what you know")
		fmt.Println("  feasly skills require <name> <importance>  record what the project needs")
		fmt.Println("  feasly assess                            score the project")
		return nil
	},
}

func init() {
	RootCmd.AddCommand(initCmd)
}
