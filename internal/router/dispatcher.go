package router

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pin-keeper/internal/logger"
	"github.com/MKhiriev/go-pin-keeper/internal/service"
	"github.com/MKhiriev/go-pin-keeper/models"
)

// OptionsOpener brings up the options view.
type OptionsOpener interface {
	ShowOptions(ctx context.Context) error
}

// OptionsOpenerFunc adapts a function to [OptionsOpener].
type OptionsOpenerFunc func(ctx context.Context) error

func (f OptionsOpenerFunc) ShowOptions(ctx context.Context) error {
	return f(ctx)
}

// Dispatcher routes commands to the background services.
type Dispatcher struct {
	credentials service.CredentialService
	sync        service.SyncService
	auth        service.AuthService
	bookmarks   service.BookmarkService
	opener      OptionsOpener

	logger *logger.Logger
}

func NewDispatcher(services *service.Services, opener OptionsOpener, log *logger.Logger) *Dispatcher {
	return &Dispatcher{
		credentials: services.Credentials,
		sync:        services.Sync,
		auth:        services.Auth,
		bookmarks:   services.Bookmarks,
		opener:      opener,
		logger:      log,
	}
}

// Dispatch handles one command. Failures of addBookmark also carry the
// user-facing message in the response.
func (d *Dispatcher) Dispatch(ctx context.Context, cmd Command) (models.MessageResponse, error) {
	log := logger.FromContext(ctx)
	var resp models.MessageResponse

	switch c := cmd.(type) {
	case UpdateToken:
		outcome, err := d.auth.Authenticate(ctx, d.reportToken)
		resp.Auth = string(outcome)
		// a logged-out session is an outcome, not a failure
		if err != nil && !errors.Is(err, service.ErrSessionNotLoggedIn) {
			return resp, err
		}

	case SetToken:
		if err := d.credentials.Set(ctx, c.Token); err != nil {
			return resp, err
		}

	case SuggestTags:
		tags, err := d.bookmarks.SuggestTags(ctx, c.URL)
		if err != nil {
			return resp, err
		}
		resp.Tags = tags

	case UpdateBookmarks:
		result, err := d.sync.Sync(ctx)
		if err != nil {
			return resp, err
		}
		resp.Sync = &result

	case ShowOptions:
		if d.opener == nil {
			log.Info().Str("func", "Dispatcher.Dispatch").Msg("options requested, no opener configured")
			break
		}
		if err := d.opener.ShowOptions(ctx); err != nil {
			return resp, fmt.Errorf("show options: %w", err)
		}

	case CheckLoggedIn:
		loggedIn, err := d.auth.CheckLoggedIn(ctx)
		if err != nil {
			return resp, err
		}
		resp.LoggedIn = &loggedIn

	case AddBookmark:
		result, err := d.bookmarks.Add(ctx, c.Bookmark)
		if err != nil {
			resp.Error = service.AddErrorMessage(err)
			return resp, err
		}
		resp.Sync = &result

	case ClearToken:
		if err := d.credentials.Clear(ctx); err != nil {
			return resp, err
		}

	default:
		log.Warn().Str("func", "Dispatcher.Dispatch").Msgf("ignoring command %T", cmd)
		return resp, ErrUnknownMessage
	}

	return resp, nil
}

// reportToken routes a harvested token as a setToken message.
func (d *Dispatcher) reportToken(ctx context.Context, token models.Credential) error {
	_, err := d.Dispatch(ctx, SetToken{Token: token})
	return err
}
