package cmd

import (
	"github.com/spf13/cobra"

	"github.com/comandev/coman/packages/collection"
)

var runCmd = &cobra.Command{
	Use:   "run <collection> <endpoint>",
	Short: "Execute a stored endpoint",
	Long: `Resolve an endpoint against its collection and send it. The request
URL is the collection URL plus the endpoint path; collection headers
merge with endpoint headers, the endpoint winning on conflicts. A body
piped through stdin replaces the stored one.

Examples:
  coman run api ping
  coman run api create-user -v
  cat payload.json | coman run api create-user
  coman run api events -s`,
	Args: cobra.ExactArgs(2),
	RunE: runCommand,
}

func init() {
	runCmd.Flags().AddFlagSet(reqCmd.PersistentFlags())
}

func runCommand(cmd *cobra.Command, args []string) error {
	resolved, err := manager().ResolveEndpoint(args[0], args[1])
	if err != nil {
		return err
	}

	extra, err := parseHeaders(reqHeadersFlag)
	if err != nil {
		return err
	}
	headers := resolved.Headers
	if extra != nil {
		headers = collection.MergeHeaders(headers, extra)
	}

	body := resolved.Body
	if cmd.Flags().Changed("body") {
		body = &reqBodyFlag
	}

	return executeAndRender(cmd, resolved.Method, resolved.URL, headers, body)
}
