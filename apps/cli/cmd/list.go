package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	listColFlag      string
	listEndpointFlag string
	listQuietFlag    bool
	listVerboseFlag  bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored collections and endpoints",
	Long: `List collections with their endpoints.

Examples:
  coman list
  coman list -c api
  coman list -c api -e ping -v`,
	Args: cobra.NoArgs,
	RunE: listCommand,
}

func init() {
	listCmd.Flags().StringVarP(&listColFlag, "col", "c", "", "Show only this collection")
	listCmd.Flags().StringVarP(&listEndpointFlag, "endpoint", "e", "", "Show only this endpoint")
	listCmd.Flags().BoolVarP(&listQuietFlag, "quiet", "q", false, "Show collection names and URLs only")
	listCmd.Flags().BoolVarP(&listVerboseFlag, "verbose", "v", false, "Show endpoint headers and bodies")
}

func listCommand(cmd *cobra.Command, args []string) error {
	if noColorFlag {
		color.NoColor = true
	}
	cols, err := manager().Collections()
	if err != nil {
		return err
	}
	if len(cols) == 0 {
		return fmt.Errorf("no collections found")
	}

	magenta := color.New(color.FgHiMagenta).SprintFunc()
	cyan := color.New(color.FgHiCyan).SprintFunc()
	yellow := color.New(color.FgHiYellow).SprintFunc()
	green := color.New(color.FgHiGreen).SprintFunc()
	white := color.New(color.FgHiWhite).SprintFunc()

	out := cmd.OutOrStdout()
	for _, col := range cols {
		if listColFlag != "" && col.Name != listColFlag {
			continue
		}
		fmt.Fprintf(out, "[%s] - %s\n", magenta(col.Name), col.URL)
		if listQuietFlag {
			continue
		}
		if len(col.Headers) > 0 {
			fmt.Fprintf(out, "  Headers:\n")
			for _, h := range col.Headers {
				fmt.Fprintf(out, "  %s: %s\n", cyan(h.Key), cyan(h.Value))
			}
		}
		for _, ep := range col.Endpoints {
			if listEndpointFlag != "" && ep.Name != listEndpointFlag {
				continue
			}
			bodyLen := 0
			if ep.Body != nil {
				bodyLen = len(*ep.Body)
			}
			fmt.Fprintf(out, "  [%s] %s - %s - %d - %d\n",
				yellow(ep.Name), green(ep.Method.String()), white(ep.Path), len(ep.Headers), bodyLen)
			if !listVerboseFlag {
				continue
			}
			if len(ep.Headers) > 0 {
				fmt.Fprintf(out, "    Headers:\n")
				for _, h := range ep.Headers {
					fmt.Fprintf(out, "    %s: %s\n", cyan(h.Key), cyan(h.Value))
				}
			}
			if ep.Body != nil {
				fmt.Fprintf(out, "    Body:\n")
				fmt.Fprintf(out, "    %s\n", cyan(*ep.Body))
			}
		}
	}
	return nil
}
