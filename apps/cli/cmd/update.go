package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	updateEndpointFlag string
	updateURLFlag      string
	updateHeadersFlag  []string
	updateBodyFlag     string
)

var updateCmd = &cobra.Command{
	Use:   "update <collection>",
	Short: "Modify a collection or endpoint in place",
	Long: `Update fields of a collection, or of one endpoint with -e. Omitted
fields keep their stored values. Headers merge: an empty value removes
that header. Passing -b "" clears the endpoint body.

Examples:
  coman update api -u https://api.example.org
  coman update api -H "Authorization: Bearer t2"
  coman update api -e ping -u /healthz
  coman update api -e create-user -b ""`,
	Args: cobra.ExactArgs(1),
	RunE: updateCommand,
}

func init() {
	updateCmd.Flags().StringVarP(&updateEndpointFlag, "endpoint", "e", "", "Update this endpoint instead of the collection")
	updateCmd.Flags().StringVarP(&updateURLFlag, "url", "u", "", "New collection URL, or endpoint path with -e")
	updateCmd.Flags().StringArrayVarP(&updateHeadersFlag, "header", "H", nil, "Header as \"Key: Value\" (repeatable)")
	updateCmd.Flags().StringVarP(&updateBodyFlag, "body", "b", "", "New endpoint body; empty clears it (only with -e)")
}

func updateCommand(cmd *cobra.Command, args []string) error {
	headers, err := parseHeaders(updateHeadersFlag)
	if err != nil {
		return err
	}

	if updateEndpointFlag == "" {
		if cmd.Flags().Changed("body") {
			return fmt.Errorf("collections carry no body; use -e to update an endpoint")
		}
		if err := manager().UpdateCollection(args[0], updateURLFlag, headers); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Collection updated successfully!")
		return nil
	}

	// Only a flag explicitly passed touches the body: -b "" clears it,
	// no -b leaves it alone.
	var body *string
	if cmd.Flags().Changed("body") {
		body = &updateBodyFlag
	}

	if err := manager().UpdateEndpoint(args[0], updateEndpointFlag, updateURLFlag, headers, body); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Endpoint updated successfully!")
	return nil
}
