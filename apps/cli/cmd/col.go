package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var colHeadersFlag []string

var colCmd = &cobra.Command{
	Use:   "col <name> <url>",
	Short: "Create or update a collection",
	Long: `Create a collection, or update it when the name already exists.
Updating replaces the URL and merges the given headers; an empty header
value removes that header.

Examples:
  coman col api https://api.example.com
  coman col api https://api.example.com -H "Authorization: Bearer t"
  coman col api https://api.example.com -H "Authorization:"`,
	Args: cobra.ExactArgs(2),
	RunE: colCommand,
}

func init() {
	colCmd.Flags().StringArrayVarP(&colHeadersFlag, "header", "H", nil, "Header as \"Key: Value\" (repeatable)")
}

func colCommand(cmd *cobra.Command, args []string) error {
	headers, err := parseHeaders(colHeadersFlag)
	if err != nil {
		return err
	}
	if err := manager().AddCollection(args[0], args[1], headers); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Collection added successfully!")
	return nil
}
