package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/comandev/coman/packages/export"
)

var exportFormatFlag string

var exportCmd = &cobra.Command{
	Use:   "export <path>",
	Short: "Dump all collections to a file",
	Long: `Write every stored collection to a JSON or YAML file. The format
comes from --format, falling back to the file extension.

Examples:
  coman export backup.json
  coman export collections.yaml
  coman export dump.txt --format yaml`,
	Args: cobra.ExactArgs(1),
	RunE: exportCommand,
}

func init() {
	exportCmd.Flags().StringVar(&exportFormatFlag, "format", "", "Output format: json or yaml (default: by extension)")
}

func exportCommand(cmd *cobra.Command, args []string) error {
	format := export.FormatForPath(args[0])
	if exportFormatFlag != "" {
		var err error
		format, err = export.ParseFormat(exportFormatFlag)
		if err != nil {
			return err
		}
	}

	cols, err := manager().Collections()
	if err != nil {
		return err
	}
	if err := export.Write(args[0], format, cols); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d collection(s) to %s\n", len(cols), args[0])
	return nil
}
