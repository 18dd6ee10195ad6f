// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package router defines the messages exchanged between client contexts and
// the background process, and dispatches them to the services.
//
// Every message travels as a JSON object whose "type" field names the
// [Command]; the remaining fields are the command payload. Unknown types
// decode to [ErrUnknownMessage] and are ignored by the transport.
package router

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/MKhiriev/go-pin-keeper/models"
)

// Message types.
const (
	TypeUpdateToken     = "updateToken"
	TypeSetToken        = "setToken"
	TypeSuggestTags     = "suggestTags"
	TypeUpdateBookmarks = "updateBookmarks"
	TypeShowOptions     = "showOptions"
	TypeCheckLoggedIn   = "checkLoggedIn"
	TypeAddBookmark     = "addBookmark"
	TypeClearToken      = "clearToken"
)

var (
	ErrUnknownMessage   = errors.New("unknown message type")
	ErrMalformedMessage = errors.New("malformed message")
)

// Command is one routed message. The set of commands is closed.
type Command interface {
	Type() string
	isCommand()
}

// UpdateToken asks the background to harvest the token from a logged-in
// web session.
type UpdateToken struct{}

// SetToken delivers a harvested token.
type SetToken struct {
	Token models.Credential `json:"token"`
}

// SuggestTags asks for tag suggestions for URL.
type SuggestTags struct {
	URL string `json:"url"`
}

// UpdateBookmarks triggers a sync.
type UpdateBookmarks struct{}

// ShowOptions asks the background to bring up the options view.
type ShowOptions struct{}

// CheckLoggedIn asks whether the web session is logged in.
type CheckLoggedIn struct{}

// AddBookmark saves a new bookmark.
type AddBookmark struct {
	Bookmark models.NewBookmark `json:"bookmark"`
}

// ClearToken logs out.
type ClearToken struct{}

func (UpdateToken) Type() string     { return TypeUpdateToken }
func (SetToken) Type() string        { return TypeSetToken }
func (SuggestTags) Type() string     { return TypeSuggestTags }
func (UpdateBookmarks) Type() string { return TypeUpdateBookmarks }
func (ShowOptions) Type() string     { return TypeShowOptions }
func (CheckLoggedIn) Type() string   { return TypeCheckLoggedIn }
func (AddBookmark) Type() string     { return TypeAddBookmark }
func (ClearToken) Type() string      { return TypeClearToken }

func (UpdateToken) isCommand()     {}
func (SetToken) isCommand()        {}
func (SuggestTags) isCommand()     {}
func (UpdateBookmarks) isCommand() {}
func (ShowOptions) isCommand()     {}
func (CheckLoggedIn) isCommand()   {}
func (AddBookmark) isCommand()     {}
func (ClearToken) isCommand()      {}

// Envelope marshals a Command into its wire form.
type Envelope struct {
	Command Command
}

func (e Envelope) MarshalJSON() ([]byte, error) {
	return Encode(e.Command)
}

// Encode returns the wire form of cmd: its fields plus "type".
func Encode(cmd Command) ([]byte, error) {
	if cmd == nil {
		return nil, fmt.Errorf("%w: nil command", ErrMalformedMessage)
	}

	raw, err := json.Marshal(cmd)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", cmd.Type(), err)
	}

	fields := make(map[string]json.RawMessage)
	if err = json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("encode %s: %w", cmd.Type(), err)
	}
	fields["type"] = json.RawMessage(strconv.Quote(cmd.Type()))

	return json.Marshal(fields)
}

// Decode parses a wire message. An unrecognised type yields
// [ErrUnknownMessage]; invalid JSON yields [ErrMalformedMessage].
func Decode(data []byte) (Command, error) {
	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedMessage, err)
	}

	var cmd Command
	switch head.Type {
	case TypeUpdateToken:
		return UpdateToken{}, nil
	case TypeUpdateBookmarks:
		return UpdateBookmarks{}, nil
	case TypeShowOptions:
		return ShowOptions{}, nil
	case TypeCheckLoggedIn:
		return CheckLoggedIn{}, nil
	case TypeClearToken:
		return ClearToken{}, nil
	case TypeSetToken:
		cmd = decodeAs[SetToken](data)
	case TypeSuggestTags:
		cmd = decodeAs[SuggestTags](data)
	case TypeAddBookmark:
		cmd = decodeAs[AddBookmark](data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMessage, head.Type)
	}

	if cmd == nil {
		return nil, fmt.Errorf("%w: bad %s payload", ErrMalformedMessage, head.Type)
	}
	return cmd, nil
}

func decodeAs[T Command](data []byte) Command {
	var cmd T
	if err := json.Unmarshal(data, &cmd); err != nil {
		return nil
	}
	return cmd
}
