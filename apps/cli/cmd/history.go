package cmd

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/comandev/coman/packages/history"
)

var historyLimitFlag int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recently executed requests",
	Long: `List the most recent requests from the local history log, newest
first.

Examples:
  coman history
  coman history -n 50`,
	Args: cobra.NoArgs,
	RunE: historyCommand,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimitFlag, "limit", "n", 20, "Number of entries to show")
}

func historyCommand(cmd *cobra.Command, args []string) error {
	if noColorFlag {
		color.NoColor = true
	}
	recorder, err := history.Open(history.DefaultPath(dataFilePath()))
	if err != nil {
		return err
	}
	defer recorder.Close()

	entries, err := recorder.List(cmd.Context(), historyLimitFlag)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No requests recorded yet.")
		return nil
	}

	bold := color.New(color.Bold).SprintFunc()
	for _, e := range entries {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s - %d (%d ms)\n",
			e.ExecutedAt.Local().Format(time.DateTime),
			bold(e.Method), e.URL, e.StatusCode, e.Duration.Milliseconds())
	}
	return nil
}
