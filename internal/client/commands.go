package client

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/MKhiriev/go-note-keeper/models"
)

type command struct {
	usage string
	help  string
	run   func(ctx context.Context, args []string) error
}

func (a *App) commandTable() map[string]command {
	return map[string]command{
		"register": {usage: "register [email]", help: "create an account", run: a.register},
		"login":    {usage: "login [email]", help: "log in and store the session", run: a.login},
		"logout":   {usage: "logout", help: "forget the stored session", run: a.logout},
		"whoami":   {usage: "whoami", help: "show the logged-in account", run: a.whoami},
		"list":     {usage: "list", help: "list your notes", run: a.list},
		"show":     {usage: "show <id>", help: "show one note", run: a.show},
		"create":   {usage: "create [-title T] [-content C] [-pinned]", help: "create a note", run: a.create},
		"update":   {usage: "update <id> [-title T] [-content C] [-pinned=true|false]", help: "change a note", run: a.update},
		"delete":   {usage: "delete <id>", help: "delete a note", run: a.delete},
		"version":  {usage: "version", help: "show client and server versions", run: a.version},
		"help":     {usage: "help", help: "show this help", run: a.help},
	}
}

func (a *App) help(_ context.Context, _ []string) error {
	names := make([]string, 0, len(a.commands))
	for name := range a.commands {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(a.out, "Commands:")
	for _, name := range names {
		cmd := a.commands[name]
		fmt.Fprintf(a.out, "  %-58s %s\n", cmd.usage, cmd.help)
	}
	_, err := fmt.Fprintln(a.out, "  shell (or no command)                                      interactive mode")
	return err
}

func (a *App) version(ctx context.Context, _ []string) error {
	fmt.Fprintf(a.out, "client: %s (date %s, commit %s)\n",
		orNA(a.build.BuildVersion()), orNA(a.build.BuildDate()), orNA(a.build.BuildCommit()))

	serverVersion, err := a.info.ServerVersion(ctx)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(a.out, "server: %s\n", serverVersion)
	return err
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func (a *App) credentials(args []string, usage string) (models.Credentials, error) {
	var creds models.Credentials
	var err error

	switch len(args) {
	case 0:
		if creds.Email, err = a.prompt("Email"); err != nil {
			return creds, err
		}
	case 1:
		creds.Email = args[0]
	default:
		return creds, usageError(usage)
	}

	creds.Password, err = a.promptPassword("Password")
	return creds, err
}

func (a *App) register(ctx context.Context, args []string) error {
	creds, err := a.credentials(args, a.commands["register"].usage)
	if err != nil {
		return err
	}

	resp, err := a.auth.Register(ctx, creds)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(a.out, "%s (id %s). Run `login` to sign in.\n", resp.Message, resp.ID)
	return err
}

func (a *App) login(ctx context.Context, args []string) error {
	creds, err := a.credentials(args, a.commands["login"].usage)
	if err != nil {
		return err
	}

	session, err := a.auth.Login(ctx, creds)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(a.out, "logged in as %s until %s\n", session.Email, formatTime(session.ExpiresAt))
	return err
}

func (a *App) logout(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return usageError(a.commands["logout"].usage)
	}
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	_, err := fmt.Fprintln(a.out, "logged out")
	return err
}

func (a *App) whoami(ctx context.Context, _ []string) error {
	session, err := a.auth.CurrentSession(ctx)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(a.out, "%s (session valid until %s)\n", session.Email, formatTime(session.ExpiresAt))
	return err
}

func (a *App) list(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return usageError(a.commands["list"].usage)
	}

	notes, err := a.notes.List(ctx)
	if err != nil {
		return err
	}
	return printNotes(a.out, notes)
}

func (a *App) show(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageError(a.commands["show"].usage)
	}

	note, err := a.notes.Get(ctx, args[0])
	if err != nil {
		return err
	}
	return printNote(a.out, note)
}

func (a *App) create(ctx context.Context, args []string) error {
	fs := newFlagSet("create")
	title := fs.String("title", "", "note title")
	content := fs.String("content", "", "note content")
	pinned := fs.Bool("pinned", false, "pin the note")
	if err := fs.Parse(args); err != nil || fs.NArg() != 0 {
		return usageError(a.commands["create"].usage)
	}

	request := models.CreateNoteRequest{Title: *title, Content: *content, Pinned: *pinned}

	var err error
	if request.Title == "" {
		if request.Title, err = a.prompt("Title"); err != nil {
			return err
		}
	}
	if request.Content == "" {
		if request.Content, err = a.promptMultiline("Content"); err != nil {
			return err
		}
	}

	note, err := a.notes.Create(ctx, request)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(a.out, "created note %s\n", note.ID)
	return err
}

func (a *App) update(ctx context.Context, args []string) error {
	usage := a.commands["update"].usage
	if len(args) == 0 || strings.HasPrefix(args[0], "-") {
		return usageError(usage)
	}
	noteID := args[0]

	fs := newFlagSet("update")
	title := fs.String("title", "", "new title")
	content := fs.String("content", "", "new content")
	pinned := fs.Bool("pinned", false, "pin or unpin the note")
	if err := fs.Parse(args[1:]); err != nil || fs.NArg() != 0 {
		return usageError(usage)
	}

	// only flags given on the command line become part of the update
	var update models.NoteUpdate
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "title":
			update.Title = title
		case "content":
			update.Content = content
		case "pinned":
			update.Pinned = pinned
		}
	})

	note, err := a.notes.Update(ctx, noteID, update)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(a.out, "updated note %s\n", note.ID)
	return err
}

func (a *App) delete(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageError(a.commands["delete"].usage)
	}

	if err := a.notes.Delete(ctx, args[0]); err != nil {
		return err
	}

	_, err := fmt.Fprintf(a.out, "deleted note %s\n", args[0])
	return err
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

// isUsage reports whether err came from argument parsing.
func isUsage(err error) bool {
	return errors.Is(err, errUsage) || errors.Is(err, errUnknownCommand)
}
