package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"smart-task-analyzer/internal/analysis"
)

func newAnalyzeCmd(newUC UseCaseFactory) *cobra.Command {
	var (
		pretty  bool
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "analyze [text...]",
		Short: "Analyze a task description",
		Long: `Analyze a free-form task description and print the structured result.

The words given as arguments are joined with spaces. Pass "-" to read the
text from standard input instead.`,
		Example: `  analyze-task analyze "Finish the report by tomorrow 3pm, high priority"
  echo "call mom on sunday" | analyze-task analyze -`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readText(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			uc, err := newUC(verbose)
			if err != nil {
				return fmt.Errorf("initializing analyzer: %w", err)
			}

			out, err := uc.Analyze(cmd.Context(), analysis.AnalyzeInput{Text: text})
			if err != nil {
				return err
			}

			return writeAnalysis(cmd.OutOrStdout(), out.Analysis, pretty)
		},
	}

	cmd.Flags().BoolVarP(&pretty, "pretty", "p", false, "indent the JSON output")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log provider calls to stderr")
	return cmd
}

func readText(stdin io.Reader, args []string) (string, error) {
	if len(args) == 1 && args[0] == "-" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return strings.TrimRight(string(b), "\r\n"), nil
	}
	return strings.Join(args, " "), nil
}

func writeAnalysis(w io.Writer, a analysis.TaskAnalysis, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(a)
}
