package cli

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

const dateLayout = "2006-01-02"

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Manage the scheduled work items the assessment is computed from",
}

var scheduleListCmd = &cobra.Command{
	Use:   "list",
	Short: "List scheduled work items",
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := loadServicesForCurrentDir()
		if err != nil {
			return err
		}

		sched, err := services.Schedule.List()
		if err != nil {
			return MapError(err)
		}
		if len(sched.Items) == 0 {
			fmt.Println("No work items scheduled. Add one with 'feasly schedule add'.")
			return nil
		}

		columns := []table.Column{
			{Title: "Status", Width: 12},
			{Title: "Title", Width: 36},
			{Title: "Start", Width: 10},
			{Title: "End", Width: 10},
			{Title: "ID", Width: 36},
		}

		rows := []table.Row{}
		for _, item := range sched.Items {
			rows = append(rows, table.Row{
				item.Status.DisplayName(),
				item.Title,
				item.StartDate.Format(dateLayout),
				item.EndDate.Format(dateLayout),
				item.ID,
			})
		}

		t := table.New(
			table.WithColumns(columns),
			table.WithRows(rows),
			table.WithHeight(len(rows)+1),
		)

		s := table.DefaultStyles()
		s.Header = s.Header.
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			BorderBottom(true)
		s.Selected = lipgloss.NewStyle() // Disable selection style for static view
		t.SetStyles(s)

		fmt.Println(t.View())
		return nil
	},
}

var scheduleAddCmd = &cobra.Command{
	Use:   "add <title> <start> <end>",
	Short: "Add a work item (dates as YYYY-MM-DD)",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		start, err := time.Parse(dateLayout, args[1])
		if err != nil {
			return fmt.Errorf("invalid start date %q (want YYYY-MM-DD): %w", args[1], err)
		}
		end, err := time.Parse(dateLayout, args[2])
		if err != nil {
			return fmt.Errorf("invalid end date %q (want YYYY-MM-DD): %w", args[2], err)
		}

		services, err := loadServicesForCurrentDir()
		if err != nil {
			return err
		}
		item, err := services.Schedule.AddItem(args[0], start, end)
		if err != nil {
			return MapError(err)
		}
		fmt.Printf("Added work item %s (%s)\n", item.Title, item.ID)
		return nil
	},
}

var scheduleRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a work item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := loadServicesForCurrentDir()
		if err != nil {
			return err
		}
		if err := services.Schedule.RemoveItem(args[0]); err != nil {
			return MapError(err)
		}
		fmt.Printf("Removed work item %s\n", args[0])
		return nil
	},
}

// transitionCommand builds a subcommand that applies one status event to an
// item. All six events share the same shape.
func transitionCommand(event, short string) *cobra.Command {
	return &cobra.Command{
		Use:   fmt.Sprintf("%s <id>", event),
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			services, err := loadServicesForCurrentDir()
			if err != nil {
				return err
			}
			status, err := services.Schedule.TransitionItem(args[0], event)
			if err != nil {
				return MapError(err)
			}
			fmt.Printf("Item %s is now %s\n", args[0], status.DisplayName())
			return nil
		},
	}
}

func init() {
	scheduleCmd.AddCommand(scheduleListCmd)
	scheduleCmd.AddCommand(scheduleAddCmd)
	scheduleCmd.AddCommand(scheduleRemoveCmd)
	scheduleCmd.AddCommand(transitionCommand("start", "Mark a work item as in progress"))
	scheduleCmd.AddCommand(transitionCommand("block", "Mark a work item as blocked"))
	scheduleCmd.AddCommand(transitionCommand("unblock", "Resume a blocked work item"))
	scheduleCmd.AddCommand(transitionCommand("stop", "Put an in-progress item back to not started"))
	scheduleCmd.AddCommand(transitionCommand("complete", "Mark a work item as completed"))
	scheduleCmd.AddCommand(transitionCommand("reopen", "Reopen a completed work item"))
	RootCmd.AddCommand(scheduleCmd)
}
