package router

import (
	"context"

	"github.com/MKhiriev/go-pin-keeper/internal/adapter"
	"github.com/MKhiriev/go-pin-keeper/models"
)

// Client sends commands from a client context to the background.
type Client struct {
	messenger adapter.Messenger
}

func NewClient(messenger adapter.Messenger) *Client {
	return &Client{messenger: messenger}
}

func (c *Client) Send(ctx context.Context, cmd Command) (models.MessageResponse, error) {
	return c.messenger.Send(ctx, Envelope{Command: cmd})
}

// UpdateToken returns the authentication outcome.
func (c *Client) UpdateToken(ctx context.Context) (string, error) {
	resp, err := c.Send(ctx, UpdateToken{})
	return resp.Auth, err
}

func (c *Client) SetToken(ctx context.Context, token models.Credential) error {
	_, err := c.Send(ctx, SetToken{Token: token})
	return err
}

func (c *Client) SuggestTags(ctx context.Context, url string) ([]string, error) {
	resp, err := c.Send(ctx, SuggestTags{URL: url})
	return resp.Tags, err
}

func (c *Client) UpdateBookmarks(ctx context.Context) (models.SyncResult, error) {
	resp, err := c.Send(ctx, UpdateBookmarks{})
	if err != nil || resp.Sync == nil {
		return models.SyncResult{}, err
	}
	return *resp.Sync, nil
}

func (c *Client) ShowOptions(ctx context.Context) error {
	_, err := c.Send(ctx, ShowOptions{})
	return err
}

func (c *Client) CheckLoggedIn(ctx context.Context) (bool, error) {
	resp, err := c.Send(ctx, CheckLoggedIn{})
	if err != nil || resp.LoggedIn == nil {
		return false, err
	}
	return *resp.LoggedIn, nil
}

func (c *Client) AddBookmark(ctx context.Context, bookmark models.NewBookmark) error {
	_, err := c.Send(ctx, AddBookmark{Bookmark: bookmark})
	return err
}

func (c *Client) ClearToken(ctx context.Context) error {
	_, err := c.Send(ctx, ClearToken{})
	return err
}
