package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/comandev/coman/packages/output"
	"github.com/comandev/coman/packages/repo"
	"github.com/comandev/coman/packages/store"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

var (
	fileFlag    string
	noColorFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "coman",
	Short: "Manage and execute HTTP API requests from the command line",
	Long: `coman stores API collections and their endpoints in a local JSON
file and executes them on demand. Collections carry a base URL and
shared headers; endpoints add a path, method, headers and body.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func Execute(v, bt string) {
	version = v
	buildTime = bt
	if err := rootCmd.Execute(); err != nil {
		renderer := output.NewRenderer(
			output.WithWriter(os.Stderr),
			output.WithNoColor(noColorFlag),
		)
		renderer.Error(err)
		os.Exit(exitCodeFor(err))
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&fileFlag, "file", "f", "", "Path to the data file (env: COMAN_JSON, default: ~/coman.json)")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", getEnvBool("COMAN_NO_COLOR", false), "Disable colored output (env: COMAN_NO_COLOR)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(colCmd)
	rootCmd.AddCommand(endpointCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(copyCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(reqCmd)
	rootCmd.AddCommand(urlCmd)
	rootCmd.AddCommand(testCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(versionCmd)
}

// dataFilePath resolves the data file location: the --file flag wins,
// then $COMAN_JSON, then ~/coman.json.
func dataFilePath() string {
	if fileFlag != "" {
		return fileFlag
	}
	return store.DefaultPath()
}

func manager() *repo.Manager {
	return repo.New(store.New(dataFilePath()))
}

func renderer(opts ...output.Option) *output.Renderer {
	return output.NewRenderer(append([]output.Option{output.WithNoColor(noColorFlag)}, opts...)...)
}
