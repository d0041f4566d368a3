package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"smart-task-analyzer/internal/analysis"
)

var (
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"
)

// SetVersionInfo sets the version information injected via ldflags.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

// UseCaseFactory builds the analysis use case lazily, so commands that do
// not analyze anything never touch configuration.
type UseCaseFactory func(verbose bool) (analysis.UseCase, error)

// NewRootCmd assembles the command tree.
func NewRootCmd(newUC UseCaseFactory) *cobra.Command {
	root := &cobra.Command{
		Use:   "analyze-task",
		Short: "Smart Task Analyzer - turn free-form task text into structured tasks",
		Long: `analyze-task sends a natural-language task description to the configured
LLM and prints the extracted description, priority, due date and category
as JSON. It uses the same configuration as the HTTP service (config.yaml,
environment variables, OPENAI_API_KEY).`,
		SilenceUsage: true,
	}

	root.AddCommand(newAnalyzeCmd(newUC))
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "analyze-task %s\ncommit: %s\nbuilt:  %s\n", appVersion, appCommit, appDate)
		},
	})

	return root
}
