package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/comandev/coman/packages/export"
)

var importCmd = &cobra.Command{
	Use:   "import <path>",
	Short: "Load collections from a dump file",
	Long: `Read collections from a JSON or YAML dump and merge them into the
data file. Collections with known names are updated, new ones are
added.

Examples:
  coman import backup.json
  coman import collections.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: importCommand,
}

func importCommand(cmd *cobra.Command, args []string) error {
	cols, err := export.Read(args[0])
	if err != nil {
		return err
	}

	m := manager()
	for _, col := range cols {
		if err := m.AddCollection(col.Name, col.URL, col.Headers); err != nil {
			return err
		}
		for _, ep := range col.Endpoints {
			if err := m.AddEndpoint(col.Name, ep.Name, ep.Path, ep.Method, ep.Headers, ep.Body); err != nil {
				return err
			}
		}
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d collection(s) from %s\n", len(cols), args[0])
	return nil
}
