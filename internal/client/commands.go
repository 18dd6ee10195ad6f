package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-pin-keeper/internal/mirror"
	"github.com/MKhiriev/go-pin-keeper/internal/service"
	"github.com/MKhiriev/go-pin-keeper/models"
)

const usage = `usage: gopin-client [flags] [command]

commands:
  (none)                 open the options UI
  sync                   ask the background to sync now
  login                  take the API token from the web session
  logout                 forget the token and the mirrored bookmarks
  tags URL               suggest tags for URL
  add URL TITLE [TAG...] save a bookmark
  status                 print the mirrored state
  version                print build information`

// Usage returns the command help text.
func Usage() string {
	return usage
}

// Exec runs one command and writes its result to out. The mirror, when a
// command needs it, follows the store only while Exec runs.
func (a *OptionsApp) Exec(ctx context.Context, args []string, out io.Writer) error {
	ctx, cancel := context.WithCancel(a.logger.WithContext(ctx))
	defer cancel()

	if len(args) == 0 {
		return fmt.Errorf("%w: command", ErrMissingArgument)
	}

	switch cmd, rest := args[0], args[1:]; cmd {
	case "sync":
		return a.syncNow(ctx, out)
	case "login":
		return a.login(ctx, out)
	case "logout":
		if err := a.router.ClearToken(ctx); err != nil {
			return err
		}
		fmt.Fprintln(out, "logged out")
		return nil
	case "tags":
		if len(rest) == 0 {
			return fmt.Errorf("%w: URL", ErrMissingArgument)
		}
		tags, err := a.router.SuggestTags(ctx, rest[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(out, strings.Join(tags, " "))
		return nil
	case "add":
		return a.add(ctx, rest, out)
	case "status":
		return a.status(ctx, out)
	case "version":
		fmt.Fprintln(out, a.info.String())
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, cmd)
	}
}

func (a *OptionsApp) syncNow(ctx context.Context, out io.Writer) error {
	result, err := a.router.UpdateBookmarks(ctx)
	if err != nil {
		return err
	}

	switch {
	case result.Skipped:
		fmt.Fprintln(out, "sync already running")
	case result.Changed:
		fmt.Fprintf(out, "fetched %d bookmarks\n", result.Count)
	default:
		fmt.Fprintln(out, "already up to date")
	}
	return nil
}

func (a *OptionsApp) login(ctx context.Context, out io.Writer) error {
	outcome, err := a.router.UpdateToken(ctx)
	if err != nil {
		return err
	}

	switch service.AuthOutcome(outcome) {
	case service.AuthNotLoggedIn:
		return ErrNotLoggedIn
	case service.AuthAlreadyAuthenticated:
		fmt.Fprintln(out, "already authenticated")
	default:
		fmt.Fprintln(out, "token saved")
	}
	return nil
}

func (a *OptionsApp) add(ctx context.Context, args []string, out io.Writer) error {
	if len(args) < 2 {
		return fmt.Errorf("%w: URL and TITLE", ErrMissingArgument)
	}

	if err := a.mirror.Start(ctx); err != nil && !errors.Is(err, mirror.ErrAlreadyStarted) {
		return err
	}

	bookmark := models.NewBookmark{
		URL:    args[0],
		Title:  args[1],
		Tags:   models.DedupTags(args[2:]),
		Shared: !a.mirror.DefaultPrivate(),
	}
	if err := a.router.AddBookmark(ctx, bookmark); err != nil {
		return err
	}

	fmt.Fprintln(out, "bookmark saved")
	return nil
}

func (a *OptionsApp) status(ctx context.Context, out io.Writer) error {
	if err := a.mirror.Start(ctx); err != nil && !errors.Is(err, mirror.ErrAlreadyStarted) {
		return err
	}
	state := a.mirror.State()

	if state.Token == "" {
		fmt.Fprintln(out, "user:        -")
	} else {
		fmt.Fprintf(out, "user:        %s\n", state.Token.Username())
	}
	fmt.Fprintf(out, "bookmarks:   %d\n", len(state.Bookmarks))
	fmt.Fprintf(out, "last update: %s\n", orDash(string(state.UpdateTime)))
	fmt.Fprintf(out, "private:     %t\n", state.DefaultPrivate)
	if tags := a.mirror.MostCommonTags(); len(tags) > 0 {
		fmt.Fprintf(out, "top tags:    %s\n", strings.Join(tags[:min(len(tags), 10)], " "))
	}
	if state.PinboardError != "" {
		fmt.Fprintf(out, "last error:  %s\n", state.PinboardError)
	}

	loggedIn, err := a.router.CheckLoggedIn(ctx)
	switch {
	case err != nil:
		fmt.Fprintln(out, "background:  unreachable")
	case loggedIn:
		fmt.Fprintln(out, "web session: logged in")
	default:
		fmt.Fprintln(out, "web session: logged out")
	}
	return nil
}

func orDash(v string) string {
	if v == "" {
		return "-"
	}
	return v
}
