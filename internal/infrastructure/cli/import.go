package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"feasly/internal/infrastructure/ghimport"
	"feasly/pkg/application"
)

var importToken string

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import scheduled work items from an external tracker",
}

var importGithubCmd = &cobra.Command{
	Use:   "github <owner>/<repo>",
	Short: "Import GitHub issues as scheduled work items",
	Long: `Import GitHub issues as scheduled work items.

Closed issues become completed items, issues labeled 'blocked' become
blocked, assigned issues become in progress, and the rest start as not
started. Re-importing updates items previously imported from the same
repository.

The token flag (or GITHUB_TOKEN) is required for private repositories.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		owner, repo, ok := strings.Cut(args[0], "/")
		if !ok || owner == "" || repo == "" {
			return fmt.Errorf("repository must be in <owner>/<repo> form, got %q", args[0])
		}

		token := importToken
		if token == "" {
			token = os.Getenv("GITHUB_TOKEN")
		}

		services, err := loadServicesForCurrentDir()
		if err != nil {
			return err
		}

		fetcher := ghimport.NewFetcher(cmd.Context(), token)
		importer := application.NewImportService(services.Workspace.Repo, fetcher)

		result, err := importer.ImportIssues(cmd.Context(), owner, repo)
		if err != nil {
			return MapError(err)
		}

		fmt.Printf("Imported %d new and updated %d existing work item(s) from %s/%s\n",
			result.Imported, result.Updated, owner, repo)
		return nil
	},
}

func init() {
	importGithubCmd.Flags().StringVar(&importToken, "token", "", "GitHub API token (defaults to GITHUB_TOKEN)")
	importCmd.AddCommand(importGithubCmd)
	RootCmd.AddCommand(importCmd)
}
