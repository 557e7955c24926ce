package present

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// TerminalPrompter reads answers line by line from a reader. Invalid
// answers re-prompt; empty answers take the default.
type TerminalPrompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewTerminalPrompter creates a prompter over the given streams.
func NewTerminalPrompter(in io.Reader, out io.Writer) *TerminalPrompter {
	return &TerminalPrompter{in: bufio.NewReader(in), out: out}
}

// Select presents a numbered menu and returns the zero-based index of
// the chosen option.
func (t *TerminalPrompter) Select(question string, options []string) (int, error) {
	fmt.Fprintf(t.out, "\n%s\n", question)
	for i, opt := range options {
		fmt.Fprintf(t.out, "  %d. %s\n", i+1, opt)
	}

	for {
		fmt.Fprintf(t.out, "Choice [1-%d]: ", len(options))
		line, err := t.in.ReadString('\n')
		if err != nil {
			return 0, fmt.Errorf("reading selection: %w", err)
		}
		n, convErr := strconv.Atoi(strings.TrimSpace(line))
		if convErr != nil || n < 1 || n > len(options) {
			fmt.Fprintf(t.out, "Please enter a number between 1 and %d\n", len(options))
			continue
		}
		return n - 1, nil
	}
}

// Confirm asks a yes/no question. Empty input returns the default.
func (t *TerminalPrompter) Confirm(question string, def bool) (bool, error) {
	hint := "y/N"
	if def {
		hint = "Y/n"
	}

	for {
		fmt.Fprintf(t.out, "%s [%s]: ", question, hint)
		line, err := t.in.ReadString('\n')
		if err != nil {
			return false, fmt.Errorf("reading confirmation: %w", err)
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "":
			return def, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		default:
			fmt.Fprintln(t.out, "Please answer 'y' or 'n'")
		}
	}
}

// Input requests free text, returning def when the user enters nothing.
func (t *TerminalPrompter) Input(question, def string) (string, error) {
	if def != "" {
		fmt.Fprintf(t.out, "%s [%s]: ", question, def)
	} else {
		fmt.Fprintf(t.out, "%s: ", question)
	}
	line, err := t.in.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	answer := strings.TrimSpace(line)
	if answer == "" {
		return def, nil
	}
	return answer, nil
}

// StdoutIsTerminal reports whether stdout is attached to a terminal.
// Styled output and interactive defaults key off this.
func StdoutIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
