// Package template fills `:?` placeholders in request bodies and
// header values by prompting the user for each missing value.
package template

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Prompter asks the user for a single value. Implementations print the
// message and block until a line of input arrives.
type Prompter interface {
	Prompt(message string) (string, error)
}

// TerminalPrompter reads answers line by line from in, writing prompt
// messages to out (normally the terminal's stderr so piped stdout stays
// clean).
type TerminalPrompter struct {
	in  *bufio.Reader
	out io.Writer
}

func NewTerminalPrompter(in io.Reader, out io.Writer) *TerminalPrompter {
	return &TerminalPrompter{in: bufio.NewReader(in), out: out}
}

func (p *TerminalPrompter) Prompt(message string) (string, error) {
	fmt.Fprintln(p.out, message)
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// QueuedPrompter returns pre-seeded answers in order. Used in tests.
type QueuedPrompter struct {
	Answers []string
	next    int
}

func (p *QueuedPrompter) Prompt(string) (string, error) {
	if p.next >= len(p.Answers) {
		return "", io.EOF
	}
	answer := p.Answers[p.next]
	p.next++
	return answer, nil
}
