package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var urlCmd = &cobra.Command{
	Use:   "url <collection> <endpoint>",
	Short: "Print the ad-hoc command equivalent to a stored endpoint",
	Long: `Print the "coman req" invocation that sends the same request as the
stored endpoint, with its resolved URL, merged headers and body.

Example:
  coman url api create-user`,
	Args: cobra.ExactArgs(2),
	RunE: urlCommand,
}

func urlCommand(cmd *cobra.Command, args []string) error {
	resolved, err := manager().ResolveEndpoint(args[0], args[1])
	if err != nil {
		return err
	}

	parts := []string{"coman req -v", strings.ToLower(resolved.Method.String()), resolved.URL}
	for _, h := range resolved.Headers {
		parts = append(parts, fmt.Sprintf("-H %q", h.Key+": "+h.Value))
	}
	if resolved.Body != nil && *resolved.Body != "" {
		parts = append(parts, fmt.Sprintf("-b '%s'", *resolved.Body))
	}

	fmt.Fprintln(cmd.OutOrStdout(), strings.Join(parts, " "))
	return nil
}
