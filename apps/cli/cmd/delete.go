package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	deleteEndpointFlag string
	deleteYesFlag      bool
)

var deleteCmd = &cobra.Command{
	Use:   "delete <collection>",
	Short: "Remove a collection or endpoint",
	Long: `Delete a collection and all its endpoints, or a single endpoint
with -e. Asks for confirmation unless -y is given.

Examples:
  coman delete api
  coman delete api -e ping -y`,
	Args: cobra.ExactArgs(1),
	RunE: deleteCommand,
}

func init() {
	deleteCmd.Flags().StringVarP(&deleteEndpointFlag, "endpoint", "e", "", "Delete this endpoint instead of the whole collection")
	deleteCmd.Flags().BoolVarP(&deleteYesFlag, "yes", "y", false, "Skip the confirmation prompt")
}

func deleteCommand(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if deleteEndpointFlag == "" {
		fmt.Fprintf(out, "Deleting collection '%s'\n", args[0])
		if !deleteYesFlag && !confirm("Are you sure you want to delete this collection?") {
			return &DeletionCancelledError{}
		}
		if err := manager().DeleteCollection(args[0]); err != nil {
			return err
		}
		fmt.Fprintln(out, "Collection deleted successfully!")
		return nil
	}

	fmt.Fprintf(out, "Deleting endpoint '%s'\n", deleteEndpointFlag)
	if !deleteYesFlag && !confirm("Are you sure you want to delete this endpoint?") {
		return &DeletionCancelledError{}
	}
	if err := manager().DeleteEndpoint(args[0], deleteEndpointFlag); err != nil {
		return err
	}
	fmt.Fprintln(out, "Endpoint deleted successfully!")
	return nil
}
