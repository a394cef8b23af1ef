package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/comandev/coman/packages/collection"
)

var (
	endpointMethodFlag  string
	endpointHeadersFlag []string
	endpointBodyFlag    string
)

var endpointCmd = &cobra.Command{
	Use:   "endpoint <collection> <name> <path>",
	Short: "Create or update an endpoint in a collection",
	Long: `Add an endpoint to a collection, replacing any endpoint already
stored under the same name. The path is appended to the collection URL
when the endpoint runs.

Examples:
  coman endpoint api ping /ping
  coman endpoint api create-user /users -m POST -b '{"name":":?"}'
  coman endpoint api user /users/:? -H "Accept: application/json"`,
	Args: cobra.ExactArgs(3),
	RunE: endpointCommand,
}

func init() {
	endpointCmd.Flags().StringVarP(&endpointMethodFlag, "method", "m", "GET", "HTTP method: GET, POST, PUT, DELETE or PATCH")
	endpointCmd.Flags().StringArrayVarP(&endpointHeadersFlag, "header", "H", nil, "Header as \"Key: Value\" (repeatable)")
	endpointCmd.Flags().StringVarP(&endpointBodyFlag, "body", "b", "", "Request body")
}

func endpointCommand(cmd *cobra.Command, args []string) error {
	method, err := collection.ParseMethod(endpointMethodFlag)
	if err != nil {
		return err
	}
	headers, err := parseHeaders(endpointHeadersFlag)
	if err != nil {
		return err
	}

	var body *string
	if strings.TrimSpace(endpointBodyFlag) != "" {
		body = &endpointBodyFlag
	}

	if err := manager().AddEndpoint(args[0], args[1], args[2], method, headers, body); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Endpoint added successfully!")
	return nil
}
