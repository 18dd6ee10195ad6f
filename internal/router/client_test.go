package router

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pin-keeper/internal/mock"
	"github.com/MKhiriev/go-pin-keeper/models"
)

func expectSent(t *testing.T, m *mock.MockMessenger, wantJSON string, resp models.MessageResponse) {
	t.Helper()
	m.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, message any) (models.MessageResponse, error) {
		data, err := json.Marshal(message)
		require.NoError(t, err)
		assert.JSONEq(t, wantJSON, string(data))
		return resp, nil
	})
}

func TestClient_TypedCalls(t *testing.T) {
	ctrl := gomock.NewController(t)
	messenger := mock.NewMockMessenger(ctrl)
	c := NewClient(messenger)
	ctx := context.Background()
	yes := true

	expectSent(t, messenger, `{"type":"checkLoggedIn"}`, models.MessageResponse{LoggedIn: &yes})
	loggedIn, err := c.CheckLoggedIn(ctx)
	require.NoError(t, err)
	assert.True(t, loggedIn)

	expectSent(t, messenger, `{"type":"suggestTags","url":"https://e.x"}`, models.MessageResponse{Tags: []string{"a"}})
	tags, err := c.SuggestTags(ctx, "https://e.x")
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, tags)

	expectSent(t, messenger, `{"type":"updateBookmarks"}`, models.MessageResponse{Sync: &models.SyncResult{Skipped: true}})
	result, err := c.UpdateBookmarks(ctx)
	require.NoError(t, err)
	assert.True(t, result.Skipped)

	expectSent(t, messenger, `{"type":"updateToken"}`, models.MessageResponse{Auth: "tokenHarvested"})
	outcome, err := c.UpdateToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tokenHarvested", outcome)

	expectSent(t, messenger, `{"type":"clearToken"}`, models.MessageResponse{})
	require.NoError(t, c.ClearToken(ctx))

	expectSent(t, messenger, `{"type":"setToken","token":"a:1"}`, models.MessageResponse{})
	require.NoError(t, c.SetToken(ctx, "a:1"))

	expectSent(t, messenger, `{"type":"showOptions"}`, models.MessageResponse{})
	require.NoError(t, c.ShowOptions(ctx))

	expectSent(t, messenger, `{"type":"addBookmark","bookmark":{"url":"u","title":"t","shared":false}}`, models.MessageResponse{})
	require.NoError(t, c.AddBookmark(ctx, models.NewBookmark{URL: "u", Title: "t"}))
}

func TestClient_MissingFieldsDefault(t *testing.T) {
	ctrl := gomock.NewController(t)
	messenger := mock.NewMockMessenger(ctrl)
	c := NewClient(messenger)
	ctx := context.Background()

	messenger.EXPECT().Send(ctx, gomock.Any()).Return(models.MessageResponse{}, nil).Times(2)

	loggedIn, err := c.CheckLoggedIn(ctx)
	require.NoError(t, err)
	assert.False(t, loggedIn)

	result, err := c.UpdateBookmarks(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.SyncResult{}, result)
}
