package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/comandev/coman/packages/schema"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the data file against its schema",
	Long: `Validate the stored data file. Useful after editing it by hand.
A missing file is valid (empty collection list).

Example:
  coman validate`,
	Args: cobra.NoArgs,
	RunE: validateCommand,
}

func validateCommand(cmd *cobra.Command, args []string) error {
	path := dataFilePath()
	violations, err := schema.Validate(path)
	if err != nil {
		return err
	}
	if len(violations) > 0 {
		for _, v := range violations {
			fmt.Fprintf(cmd.OutOrStdout(), "  - %s\n", v)
		}
		return fmt.Errorf("%s: %d schema violation(s)", path, len(violations))
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s is valid\n", path)
	return nil
}
