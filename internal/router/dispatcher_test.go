package router

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pin-keeper/internal/adapter"
	"github.com/MKhiriev/go-pin-keeper/internal/app"
	"github.com/MKhiriev/go-pin-keeper/internal/logger"
	"github.com/MKhiriev/go-pin-keeper/internal/mock/servicemock"
	"github.com/MKhiriev/go-pin-keeper/internal/service"
	"github.com/MKhiriev/go-pin-keeper/models"
)

type testServices struct {
	credentials *servicemock.MockCredentialService
	sync        *servicemock.MockSyncService
	auth        *servicemock.MockAuthService
	bookmarks   *servicemock.MockBookmarkService
}

// newTestDispatcher создаёт Dispatcher с моками сервисов
func newTestDispatcher(t *testing.T, opener OptionsOpener) (*Dispatcher, testServices) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mocks := testServices{
		credentials: servicemock.NewMockCredentialService(ctrl),
		sync:        servicemock.NewMockSyncService(ctrl),
		auth:        servicemock.NewMockAuthService(ctrl),
		bookmarks:   servicemock.NewMockBookmarkService(ctrl),
	}

	d := NewDispatcher(&service.Services{
		Credentials: mocks.credentials,
		Sync:        mocks.sync,
		Auth:        mocks.auth,
		Bookmarks:   mocks.bookmarks,
	}, opener, logger.Nop())
	return d, mocks
}

type unknownCommand struct{}

func (unknownCommand) Type() string { return "unknown" }
func (unknownCommand) isCommand()   {}

// ── Token ───────────────────────────────────────────────────────────────────

func TestDispatch_UpdateTokenRoutesHarvestedToken(t *testing.T) {
	d, m := newTestDispatcher(t, nil)
	ctx := context.Background()

	m.auth.EXPECT().Authenticate(ctx, gomock.Any()).DoAndReturn(func(ctx context.Context, report adapter.TokenReporter) (service.AuthOutcome, error) {
		return service.AuthTokenHarvested, report(ctx, "alice:ABC")
	})
	m.credentials.EXPECT().Set(ctx, models.Credential("alice:ABC")).Return(nil)

	resp, err := d.Dispatch(ctx, UpdateToken{})

	require.NoError(t, err)
	assert.Equal(t, string(service.AuthTokenHarvested), resp.Auth)
}

func TestDispatch_UpdateTokenNotLoggedInIsOutcome(t *testing.T) {
	d, m := newTestDispatcher(t, nil)
	ctx := context.Background()

	m.auth.EXPECT().Authenticate(ctx, gomock.Any()).Return(service.AuthNotLoggedIn, service.ErrSessionNotLoggedIn)

	resp, err := d.Dispatch(ctx, UpdateToken{})

	require.NoError(t, err)
	assert.Equal(t, string(service.AuthNotLoggedIn), resp.Auth)
}

func TestDispatch_SetAndClearToken(t *testing.T) {
	d, m := newTestDispatcher(t, nil)
	ctx := context.Background()

	m.credentials.EXPECT().Set(ctx, models.Credential("bob:1")).Return(nil)
	m.credentials.EXPECT().Clear(ctx).Return(nil)

	_, err := d.Dispatch(ctx, SetToken{Token: "bob:1"})
	require.NoError(t, err)
	_, err = d.Dispatch(ctx, ClearToken{})
	require.NoError(t, err)
}

// ── Queries ─────────────────────────────────────────────────────────────────

func TestDispatch_SuggestTags(t *testing.T) {
	d, m := newTestDispatcher(t, nil)
	ctx := context.Background()

	m.bookmarks.EXPECT().SuggestTags(ctx, "https://example.com").Return([]string{"go"}, nil)

	resp, err := d.Dispatch(ctx, SuggestTags{URL: "https://example.com"})

	require.NoError(t, err)
	assert.Equal(t, []string{"go"}, resp.Tags)
}

func TestDispatch_CheckLoggedIn(t *testing.T) {
	d, m := newTestDispatcher(t, nil)
	ctx := context.Background()

	m.auth.EXPECT().CheckLoggedIn(ctx).Return(true, nil)

	resp, err := d.Dispatch(ctx, CheckLoggedIn{})

	require.NoError(t, err)
	require.NotNil(t, resp.LoggedIn)
	assert.True(t, *resp.LoggedIn)
}

func TestDispatch_UpdateBookmarks(t *testing.T) {
	d, m := newTestDispatcher(t, nil)
	ctx := context.Background()
	boom := errors.New("boom")

	m.sync.EXPECT().Sync(ctx).Return(models.SyncResult{Changed: true, Count: 2}, nil)
	m.sync.EXPECT().Sync(ctx).Return(models.SyncResult{}, boom)

	resp, err := d.Dispatch(ctx, UpdateBookmarks{})
	require.NoError(t, err)
	require.NotNil(t, resp.Sync)
	assert.Equal(t, 2, resp.Sync.Count)

	_, err = d.Dispatch(ctx, UpdateBookmarks{})
	assert.ErrorIs(t, err, boom)
}

// ── Add ─────────────────────────────────────────────────────────────────────

func TestDispatch_AddBookmarkFailureCarriesMessage(t *testing.T) {
	d, m := newTestDispatcher(t, nil)
	ctx := context.Background()
	b := models.NewBookmark{URL: "https://example.com", Title: "x"}

	m.bookmarks.EXPECT().Add(ctx, b).Return(models.SyncResult{}, adapter.ErrNotDone)

	resp, err := d.Dispatch(ctx, AddBookmark{Bookmark: b})

	assert.ErrorIs(t, err, adapter.ErrNotDone)
	assert.Equal(t, app.MsgAddErrorDefault, resp.Error)
}

// ── Options / unknown ───────────────────────────────────────────────────────

func TestDispatch_ShowOptions(t *testing.T) {
	called := false
	d, _ := newTestDispatcher(t, OptionsOpenerFunc(func(context.Context) error {
		called = true
		return nil
	}))

	_, err := d.Dispatch(context.Background(), ShowOptions{})

	require.NoError(t, err)
	assert.True(t, called)
}

func TestDispatch_ShowOptionsWithoutOpener(t *testing.T) {
	d, _ := newTestDispatcher(t, nil)

	_, err := d.Dispatch(context.Background(), ShowOptions{})
	assert.NoError(t, err)
}

func TestDispatch_UnknownCommand(t *testing.T) {
	d, _ := newTestDispatcher(t, nil)

	_, err := d.Dispatch(context.Background(), unknownCommand{})
	assert.ErrorIs(t, err, ErrUnknownMessage)
}
