package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/comandev/coman/packages/collection"
)

// DeletionCancelledError is returned when the user declines a
// confirmation prompt.
type DeletionCancelledError struct{}

func (e *DeletionCancelledError) Error() string { return "deletion cancelled" }

// parseHeader splits "Key: Value" on the first colon.
func parseHeader(raw string) (collection.Header, error) {
	key, value, found := strings.Cut(raw, ":")
	if !found || strings.TrimSpace(key) == "" {
		return collection.Header{}, fmt.Errorf("invalid header %q (expected \"Key: Value\")", raw)
	}
	return collection.Header{
		Key:   strings.TrimSpace(key),
		Value: strings.TrimSpace(value),
	}, nil
}

func parseHeaders(raw []string) ([]collection.Header, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	headers := make([]collection.Header, 0, len(raw))
	for _, r := range raw {
		h, err := parseHeader(r)
		if err != nil {
			return nil, err
		}
		headers = append(headers, h)
	}
	return headers, nil
}

// readStdin returns piped stdin, or nil when stdin is a terminal.
func readStdin() ([]byte, error) {
	if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return nil, nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return data, nil
}

// confirm asks a yes/no question on the terminal. Only "y" and "yes"
// accept.
func confirm(prompt string) bool {
	fmt.Fprintf(os.Stderr, "%s [y/N]: ", prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		return val == "true" || val == "1" || val == "yes"
	}
	return defaultVal
}
