package client

import "errors"

var (
	// ErrUnknownCommand is returned for a command name Exec does not know.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrMissingArgument is returned when a command lacks a positional
	// argument.
	ErrMissingArgument = errors.New("missing argument")
	// ErrNotLoggedIn is returned by login while the web session is logged
	// out.
	ErrNotLoggedIn = errors.New("not logged in to the bookmarking service")
)
