package client

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/term"
)

// Terminal seams, replaced in tests.
var (
	readPassword = term.ReadPassword
	isTerminal   = term.IsTerminal
)

// prompt prints label and reads one trimmed line. A partial last line
// before EOF is returned as is.
func (a *App) prompt(label string) (string, error) {
	if _, err := fmt.Fprint(a.out, label+": "); err != nil {
		return "", err
	}
	line, err := a.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// promptPassword reads a password without echo when input is a terminal and
// falls back to a plain line otherwise (pipes, tests).
func (a *App) promptPassword(label string) (string, error) {
	if a.stdinFd < 0 || !isTerminal(a.stdinFd) {
		line, err := a.prompt(label)
		return line, err
	}

	if _, err := fmt.Fprint(a.out, label+": "); err != nil {
		return "", err
	}
	pw, err := readPassword(a.stdinFd)
	fmt.Fprintln(a.out)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(pw), nil
}

// promptMultiline reads lines until an empty line or EOF and joins them
// with '\n'.
func (a *App) promptMultiline(label string) (string, error) {
	if _, err := fmt.Fprintln(a.out, label+" (finish with an empty line):"); err != nil {
		return "", err
	}

	var lines []string
	for {
		line, err := a.in.ReadString('\n')
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			break
		}
		lines = append(lines, line)
		if err != nil {
			break
		}
	}
	return strings.Join(lines, "\n"), nil
}

// splitArgs splits a shell line on whitespace. Double quotes group words and
// a backslash escapes the next character.
func splitArgs(line string) ([]string, error) {
	var (
		args    []string
		current strings.Builder
		inQuote bool
		escaped bool
		hasArg  bool
	)

	for _, r := range line {
		switch {
		case escaped:
			current.WriteRune(r)
			escaped = false
		case r == '\\':
			escaped = true
			hasArg = true
		case r == '"':
			inQuote = !inQuote
			hasArg = true
		case !inQuote && (r == ' ' || r == '\t'):
			if hasArg {
				args = append(args, current.String())
				current.Reset()
				hasArg = false
			}
		default:
			current.WriteRune(r)
			hasArg = true
		}
	}

	if inQuote || escaped {
		return nil, errUnterminatedQuote
	}
	if hasArg {
		args = append(args, current.String())
	}
	return args, nil
}
