package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// runREPL reads commands line by line until EOF, "exit" or "quit", or until
// ctx is cancelled. Command errors are printed and the loop continues.
func (a *App) runREPL(ctx context.Context) error {
	fmt.Fprintln(a.out, "note-keeper shell, type `help` for commands")

	for {
		if ctx.Err() != nil {
			return nil
		}

		fmt.Fprintf(a.out, "%s> ", a.status(ctx))
		line, err := a.in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		eof := err != nil

		if done := a.evalLine(ctx, strings.TrimSpace(line)); done {
			return nil
		}
		if eof {
			fmt.Fprintln(a.out)
			return nil
		}
	}
}

// evalLine runs one shell line and reports whether the shell should exit.
func (a *App) evalLine(ctx context.Context, line string) bool {
	args, err := splitArgs(line)
	if err != nil {
		fmt.Fprintln(a.out, "error:", err)
		return false
	}
	if len(args) == 0 {
		return false
	}

	switch args[0] {
	case "exit", "quit":
		fmt.Fprintln(a.out, "Bye!")
		return true
	case "shell":
		return false
	}

	if err = a.exec(ctx, args); err != nil {
		a.report(err)
	}
	return false
}

// status is shown in the prompt: the logged-in email, or "guest".
func (a *App) status(ctx context.Context) string {
	session, err := a.auth.CurrentSession(ctx)
	if err != nil {
		return "guest"
	}
	return session.Email
}
