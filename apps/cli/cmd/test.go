package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/comandev/coman/packages/http"
	"github.com/comandev/coman/packages/runner"
)

const (
	// WatchDebounceDelay is the debounce delay for file watch events
	WatchDebounceDelay = 300 * time.Millisecond
)

var (
	testRateFlag  float64
	testWatchFlag bool
)

var testCmd = &cobra.Command{
	Use:   "test <collection>",
	Short: "Smoke-test every endpoint of a collection",
	Long: `Send every endpoint of a collection sequentially, in stored order.
Failing endpoints are reported and the batch continues. Placeholders
are sent verbatim; batches never prompt.

Examples:
  coman test api
  coman test api --rate 5
  coman test api --watch`,
	Args: cobra.ExactArgs(1),
	RunE: testCommand,
}

func init() {
	testCmd.Flags().Float64VarP(&testRateFlag, "rate", "r", 0, "Pace the batch at this many requests per second (0 = unpaced)")
	testCmd.Flags().BoolVarP(&testWatchFlag, "watch", "w", false, "Re-run the batch whenever the data file changes")
}

func testCommand(cmd *cobra.Command, args []string) error {
	if noColorFlag {
		color.NoColor = true
	}
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runBatch := func() error {
		return runCollectionTests(ctx, cmd, args[0])
	}

	if err := runBatch(); err != nil {
		return err
	}
	if !testWatchFlag {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory: editors and the atomic save both replace
	// the file, which would drop a watch on the file itself.
	dataFile := dataFilePath()
	if err := watcher.Add(filepath.Dir(dataFile)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(dataFile), err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "\nWatching for changes... (press Ctrl+C to stop)\n\n")

	var debounceTimer *time.Timer
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if filepath.Base(event.Name) != filepath.Base(dataFile) {
				continue
			}
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(WatchDebounceDelay, func() {
				fmt.Fprintf(cmd.OutOrStdout(), "\nData file changed, re-running tests...\n\n")
				if err := runBatch(); err != nil {
					renderer().Error(err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "\nWatching for changes... (press Ctrl+C to stop)\n")
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			renderer().Error(fmt.Errorf("watcher error: %w", err))
		}
	}
}

func runCollectionTests(ctx context.Context, cmd *cobra.Command, name string) error {
	out := cmd.OutOrStdout()
	yellow := color.New(color.Bold, color.FgHiYellow).SprintFunc()
	white := color.New(color.Bold, color.FgHiWhite).SprintFunc()

	report := func(result runner.EndpointResult) {
		if result.Failed() {
			fmt.Fprintf(out, "Failed: %v\n", result.Err)
			return
		}
		resp := result.Response
		colorize := testStatusColor(resp)
		fmt.Fprintf(out, "[%s] %s - %s\n\n",
			yellow(result.Endpoint), white(resp.URL), colorize(resp.Status))
	}

	r := runner.New(manager(), http.NewClient(),
		runner.WithRate(testRateFlag),
		runner.WithReporter(report),
	)

	summary, err := r.RunCollection(ctx, name)
	if err != nil {
		return err
	}
	if summary.Total == 0 {
		fmt.Fprintf(out, "No requests found in collection '%s'\n", name)
		return nil
	}

	if summary.Total > summary.Failed {
		fmt.Fprintf(out, "Latency: min %dms / p50 %dms / p95 %dms / p99 %dms / max %dms\n",
			summary.Min, summary.P50, summary.P95, summary.P99, summary.Max)
	}
	fmt.Fprintf(out, "%d requests, %d failed, in %dms\n",
		summary.Total, summary.Failed, summary.Elapsed.Milliseconds())
	fmt.Fprintln(out, "Tests completed")
	return nil
}

func testStatusColor(resp *http.Response) func(a ...any) string {
	switch resp.Severity() {
	case http.SeveritySuccess:
		return color.New(color.Bold, color.FgHiGreen).SprintFunc()
	case http.SeverityRedirect, http.SeverityClient:
		return color.New(color.Bold, color.FgHiYellow).SprintFunc()
	default:
		return color.New(color.Bold, color.FgHiRed).SprintFunc()
	}
}
