// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pin-keeper/internal/adapter"
	"github.com/MKhiriev/go-pin-keeper/internal/app"
	"github.com/MKhiriev/go-pin-keeper/internal/logger"
	"github.com/MKhiriev/go-pin-keeper/internal/mock"
	"github.com/MKhiriev/go-pin-keeper/internal/validators"
	"github.com/MKhiriev/go-pin-keeper/models"
)

// newTestSyncSvc: хелпер для создания syncService с моками
func newTestSyncSvc(t *testing.T, ctrl *gomock.Controller) (*syncService, *mock.MockKeyValueStore, *mock.MockRemoteClient) {
	t.Helper()
	kv := mock.NewMockKeyValueStore(ctrl)
	remote := mock.NewMockRemoteClient(ctrl)

	svc := NewSyncService(kv, remote, logger.Nop()).(*syncService)
	return svc, kv, remote
}

func storedMarker(marker string) map[string]json.RawMessage {
	if marker == "" {
		return map[string]json.RawMessage{}
	}
	raw, _ := json.Marshal(marker)
	return map[string]json.RawMessage{models.KeyUpdateTime: raw}
}

var testBookmarks = []models.Bookmark{
	{URL: "https://a.example", Title: "A", Tags: []string{"go"}},
	{URL: "https://b.example", Title: "B", Tags: []string{}},
}

// ── Sync ─────────────────────────────────────────────────────────────────────

func TestSync_NoChange(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, kv, remote := newTestSyncSvc(t, ctrl)
	ctx := context.Background()

	kv.EXPECT().Get(ctx, models.KeyUpdateTime).Return(storedMarker("m1"), nil)
	remote.EXPECT().ProbeUpdateMarker(ctx).Return(models.SyncMarker("m1"), nil)

	result, err := svc.Sync(ctx)

	require.NoError(t, err)
	assert.False(t, result.Changed)
	assert.False(t, result.Skipped)
	assert.Equal(t, models.SyncMarker("m1"), result.Marker)
	assert.Equal(t, SyncIdle, svc.State())
}

func TestSync_ChangedPersistsBookmarksBeforeMarker(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, kv, remote := newTestSyncSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		kv.EXPECT().Get(ctx, models.KeyUpdateTime).Return(storedMarker("m1"), nil),
		remote.EXPECT().ProbeUpdateMarker(ctx).Return(models.SyncMarker("m2"), nil),
		remote.EXPECT().FetchAllBookmarks(ctx).DoAndReturn(func(context.Context) ([]models.Bookmark, error) {
			assert.Equal(t, SyncFetching, svc.State())
			return testBookmarks, nil
		}),
		kv.EXPECT().Set(ctx, map[string]any{models.KeyBookmarks: testBookmarks}).Return(nil),
		kv.EXPECT().Set(ctx, map[string]any{models.KeyUpdateTime: models.SyncMarker("m2")}).Return(nil),
	)

	result, err := svc.Sync(ctx)

	require.NoError(t, err)
	assert.Equal(t, models.SyncResult{Changed: true, Marker: "m2", Count: 2}, result)
	assert.Equal(t, SyncIdle, svc.State())
}

func TestSync_FirstRunFetches(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, kv, remote := newTestSyncSvc(t, ctrl)
	ctx := context.Background()

	kv.EXPECT().Get(ctx, models.KeyUpdateTime).Return(storedMarker(""), nil)
	remote.EXPECT().ProbeUpdateMarker(ctx).Return(models.SyncMarker("m1"), nil)
	remote.EXPECT().FetchAllBookmarks(ctx).Return(nil, nil)
	kv.EXPECT().Set(ctx, map[string]any{models.KeyBookmarks: []models.Bookmark{}}).Return(nil)
	kv.EXPECT().Set(ctx, map[string]any{models.KeyUpdateTime: models.SyncMarker("m1")}).Return(nil)

	result, err := svc.Sync(ctx)

	require.NoError(t, err)
	assert.True(t, result.Changed)
	assert.Zero(t, result.Count)
}

func TestSync_IdempotentProbe(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, kv, remote := newTestSyncSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		kv.EXPECT().Get(ctx, models.KeyUpdateTime).Return(storedMarker(""), nil),
		remote.EXPECT().ProbeUpdateMarker(ctx).Return(models.SyncMarker("m1"), nil),
		remote.EXPECT().FetchAllBookmarks(ctx).Return(testBookmarks, nil),
		kv.EXPECT().Set(ctx, gomock.Any()).Return(nil).Times(2),
		kv.EXPECT().Get(ctx, models.KeyUpdateTime).Return(storedMarker("m1"), nil),
		remote.EXPECT().ProbeUpdateMarker(ctx).Return(models.SyncMarker("m1"), nil),
	)

	first, err := svc.Sync(ctx)
	require.NoError(t, err)
	assert.True(t, first.Changed)

	second, err := svc.Sync(ctx)
	require.NoError(t, err)
	assert.False(t, second.Changed)
}

func TestSync_FetchFailureKeepsMarker(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, kv, remote := newTestSyncSvc(t, ctrl)
	ctx := context.Background()
	fetchErr := &adapter.RemoteRequestFailedError{StatusCode: http.StatusBadGateway}

	kv.EXPECT().Get(ctx, models.KeyUpdateTime).Return(storedMarker("m1"), nil)
	remote.EXPECT().ProbeUpdateMarker(ctx).Return(models.SyncMarker("m2"), nil)
	remote.EXPECT().FetchAllBookmarks(ctx).Return(nil, fetchErr)
	// only the error is written; neither bookmarks nor the marker
	kv.EXPECT().Set(gomock.Any(), map[string]any{models.KeyPinboardError: app.MsgSyncErrorConnect}).Return(nil)

	_, err := svc.Sync(ctx)

	assert.ErrorIs(t, err, adapter.ErrRemoteRequestFailed)
	assert.Equal(t, SyncIdle, svc.State())
}

func TestSync_PersistFailureSkipsMarker(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, kv, remote := newTestSyncSvc(t, ctrl)
	ctx := context.Background()
	storeErr := errors.New("disk full")

	kv.EXPECT().Get(ctx, models.KeyUpdateTime).Return(storedMarker(""), nil)
	remote.EXPECT().ProbeUpdateMarker(ctx).Return(models.SyncMarker("m1"), nil)
	remote.EXPECT().FetchAllBookmarks(ctx).Return(testBookmarks, nil)
	kv.EXPECT().Set(ctx, map[string]any{models.KeyBookmarks: testBookmarks}).Return(storeErr)
	kv.EXPECT().Set(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, items map[string]any) error {
		assert.Contains(t, items, models.KeyPinboardError)
		return nil
	})

	_, err := svc.Sync(ctx)

	assert.ErrorIs(t, err, storeErr)
}

func TestSync_ProbeErrorsPersistMessage(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantMsg string
	}{
		{"missing credential", adapter.ErrMissingCredential, app.MsgSyncErrorNoToken},
		{"unauthorized", &adapter.RemoteRequestFailedError{StatusCode: http.StatusUnauthorized}, app.MsgSyncErrorAuth},
		{"too many requests", &adapter.RemoteRequestFailedError{StatusCode: http.StatusTooManyRequests}, app.MsgSyncErrorTooMany},
		{"unreachable", &url.Error{Op: "Get", URL: "https://api", Err: errors.New("connection refused")}, app.MsgSyncErrorConnect},
		{"other", &adapter.RemoteRequestFailedError{StatusCode: http.StatusNotFound, Body: "gone"}, "Well shucks. Something's busted for serious. (probe update marker: remote request failed: http 404: gone)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, kv, remote := newTestSyncSvc(t, ctrl)
			ctx := context.Background()

			kv.EXPECT().Get(ctx, models.KeyUpdateTime).Return(storedMarker("m1"), nil)
			remote.EXPECT().ProbeUpdateMarker(ctx).Return(models.SyncMarker(""), tt.err)
			kv.EXPECT().Set(gomock.Any(), map[string]any{models.KeyPinboardError: tt.wantMsg}).Return(nil)

			_, err := svc.Sync(ctx)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestSync_CancelledDoesNotPersistError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, kv, remote := newTestSyncSvc(t, ctrl)
	ctx := context.Background()

	kv.EXPECT().Get(ctx, models.KeyUpdateTime).Return(storedMarker("m1"), nil)
	remote.EXPECT().ProbeUpdateMarker(ctx).Return(models.SyncMarker(""), context.Canceled)

	_, err := svc.Sync(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSync_ConcurrentTriggerIsDropped(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, kv, remote := newTestSyncSvc(t, ctrl)
	ctx := context.Background()

	entered := make(chan struct{})
	release := make(chan struct{})

	kv.EXPECT().Get(ctx, models.KeyUpdateTime).Return(storedMarker("m1"), nil)
	remote.EXPECT().ProbeUpdateMarker(ctx).DoAndReturn(func(context.Context) (models.SyncMarker, error) {
		close(entered)
		<-release
		return "m1", nil
	})

	var wg sync.WaitGroup
	var first models.SyncResult
	wg.Add(1)
	go func() {
		defer wg.Done()
		first, _ = svc.Sync(ctx)
	}()

	<-entered
	assert.Equal(t, SyncProbing, svc.State())

	second, err := svc.Sync(ctx)
	require.NoError(t, err)
	assert.True(t, second.Skipped)

	close(release)
	wg.Wait()
	assert.False(t, first.Skipped)
	assert.Equal(t, SyncIdle, svc.State())
}

// ── Error messages ──────────────────────────────────────────────────────────

func TestAddErrorMessage(t *testing.T) {
	assert.Equal(t, app.MsgAddErrorURL, AddErrorMessage(fmt.Errorf("%w: %w", ErrInvalidBookmark, validators.ErrInvalidURL)))
	assert.Equal(t, app.MsgAddErrorAuth, AddErrorMessage(&adapter.RemoteRequestFailedError{StatusCode: http.StatusUnauthorized}))
	assert.Equal(t, app.MsgAddErrorAjax, AddErrorMessage(context.DeadlineExceeded))
	assert.Equal(t, app.MsgAddErrorDefault, AddErrorMessage(adapter.ErrNotDone))
}

func TestSyncState_String(t *testing.T) {
	assert.Equal(t, "idle", SyncIdle.String())
	assert.Equal(t, "persisting", SyncPersisting.String())
	assert.Equal(t, "unknown", SyncState(42).String())
}
