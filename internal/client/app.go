package client

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/workers"
	"github.com/MKhiriev/go-note-keeper/models"
)

type App struct {
	auth  service.ClientAuthService
	notes service.ClientNoteService
	info  service.ClientInfoService

	build models.AppBuildInfo

	// expiry runs only in shell mode.
	expiry *workers.SessionExpiryWorker

	in      *bufio.Reader
	out     io.Writer
	stdinFd int

	commands map[string]command
	logger   *logger.Logger
}

type Option func(*App)

// WithBuildInfo sets the build metadata printed by the version command.
func WithBuildInfo(info models.AppBuildInfo) Option {
	return func(a *App) {
		a.build = info
	}
}

// WithIO replaces stdin and stdout. Password prompts then read plain lines
// from in.
func WithIO(in io.Reader, out io.Writer) Option {
	return func(a *App) {
		a.in = bufio.NewReader(in)
		a.out = out
		a.stdinFd = -1
	}
}

func NewApp(services *service.ClientServices, logger *logger.Logger, opts ...Option) *App {
	a := &App{
		auth:    services.AuthService,
		notes:   services.NoteService,
		info:    services.InfoService,
		in:      bufio.NewReader(os.Stdin),
		out:     os.Stdout,
		stdinFd: int(os.Stdin.Fd()),
		logger:  logger,
	}
	for _, opt := range opts {
		opt(a)
	}

	a.expiry = workers.NewSessionExpiryWorker(a.auth, logger, workers.WithOnExpire(func() {
		fmt.Fprintln(a.out, "\nsession expired, please log in again")
	}))
	a.commands = a.commandTable()

	return a
}

// Run executes one command, or the interactive shell when args is empty or
// names "shell". A failed command is reported on the output and its error
// returned.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 || args[0] == "shell" {
		return a.shell(ctx)
	}

	err := a.exec(ctx, args)
	if err != nil {
		a.report(err)
	}
	return err
}

func (a *App) report(err error) {
	if isUsage(err) {
		fmt.Fprintln(a.out, err)
		return
	}
	fmt.Fprintln(a.out, "error:", userMessage(err))
}

func (a *App) exec(ctx context.Context, args []string) error {
	cmd, ok := a.commands[args[0]]
	if !ok {
		return fmt.Errorf("%w %q, run `help` for the list", errUnknownCommand, args[0])
	}

	err := cmd.run(ctx, args[1:])
	if err != nil && !errors.Is(err, errUsage) {
		a.logger.Debug().Err(err).Str("command", args[0]).Msg("command failed")
	}
	return err
}

// shell runs the REPL with the session expiry worker in the background.
func (a *App) shell(ctx context.Context) error {
	a.expiry.Start(ctx)
	defer a.expiry.Stop()

	return a.runREPL(ctx)
}
