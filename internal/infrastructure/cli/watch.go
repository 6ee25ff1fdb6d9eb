package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"feasly/internal/infrastructure/watch"
	"feasly/pkg/application"
)

var watchDebounce time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-run the assessment whenever a workspace document changes",
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := loadServicesForCurrentDir()
		if err != nil {
			return err
		}

		runAssessment := func(path string) {
			fmt.Printf("\nDocument change detected at %s (%s)\n", time.Now().Format("15:04:05"), path)
			assessment, err := services.Assess.Assess(application.AssessOptions{})
			if err != nil {
				fmt.Printf("Assessment failed: %v\n", MapError(err))
				return
			}
			printAssessmentText(assessment)
		}

		dir := services.Workspace.DocumentsDir()
		watcher, err := watch.NewDocumentWatcher(dir, watchDebounce, runAssessment)
		if err != nil {
			return err
		}

		fmt.Printf("Watching %s for changes... (Ctrl+C to stop)\n", dir)
		return watcher.Run(cmd.Context())
	},
}

func init() {
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 500*time.Millisecond,
		"How long to wait after the last change before re-assessing")
	RootCmd.AddCommand(watchCmd)
}
