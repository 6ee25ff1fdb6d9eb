package cli

import (
	"github.com/spf13/cobra"
)

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

var projectPath string

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:     "feasly",
	Version: Version,
	Short:   "Assess whether a project is feasible before you commit to it",
	Long: `Feasly scores a project against your skills, tools, and available time.
It helps you answer, before committing:
1. Can I actually build this?
2. Do I have the time for it?
3. What would make it feasible?`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() error {
	return RootCmd.Execute()
}

func init() {
	RootCmd.PersistentFlags().StringVar(&projectPath, "path", "",
		"Workspace directory (defaults to the current directory)")
}
