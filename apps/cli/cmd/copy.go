package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	copyEndpointFlag string
	copyToColFlag    bool
)

var copyCmd = &cobra.Command{
	Use:   "copy <collection> <new-name>",
	Short: "Duplicate a collection or endpoint",
	Long: `Copy a collection under a new name, or one endpoint with -e. With
--to-col the second argument names the target collection and the
endpoint keeps its own name there.

Examples:
  coman copy api api-staging
  coman copy api ping-v2 -e ping
  coman copy api staging -e ping --to-col`,
	Args: cobra.ExactArgs(2),
	RunE: copyCommand,
}

func init() {
	copyCmd.Flags().StringVarP(&copyEndpointFlag, "endpoint", "e", "", "Copy this endpoint instead of the whole collection")
	copyCmd.Flags().BoolVar(&copyToColFlag, "to-col", false, "Treat <new-name> as a target collection (only with -e)")
}

func copyCommand(cmd *cobra.Command, args []string) error {
	m := manager()
	switch {
	case copyEndpointFlag == "":
		if err := m.CopyCollection(args[0], args[1]); err != nil {
			return err
		}
	case copyToColFlag:
		if err := m.CopyEndpoint(args[0], copyEndpointFlag, "", args[1]); err != nil {
			return err
		}
	default:
		if err := m.CopyEndpoint(args[0], copyEndpointFlag, args[1], ""); err != nil {
			return err
		}
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Copy command successful!")
	return nil
}
