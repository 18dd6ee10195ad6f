package adapter

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrMissingCredential is returned by API calls made while no
	// credential is held. No request is sent in that case.
	ErrMissingCredential = errors.New("missing credential")

	// ErrRemoteRequestFailed matches every failed remote call: non-2xx
	// status or an undecodable body.
	ErrRemoteRequestFailed = errors.New("remote request failed")

	// ErrUnauthorized matches a 401 answer, i.e. a rejected credential.
	ErrUnauthorized = errors.New("remote rejected the credential")

	// ErrTooManyRequests matches a 429 answer left after all retries.
	ErrTooManyRequests = errors.New("too many requests")

	// ErrNotDone is returned when a mutating call answers with a result code
	// other than "done".
	ErrNotDone = errors.New("remote did not complete the operation")

	// ErrTokenNotFound is returned by the harvester when the settings page
	// holds no token.
	ErrTokenNotFound = errors.New("api token not found on page")
)

// RemoteRequestFailedError carries the status of a failed remote call.
// StatusCode is zero when the status was fine but the body was not.
type RemoteRequestFailedError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *RemoteRequestFailedError) Error() string {
	msg := "remote request failed"
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s: http %d", msg, e.StatusCode)
	}
	if e.Body != "" {
		msg += ": " + e.Body
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *RemoteRequestFailedError) Unwrap() error {
	return e.Err
}

func (e *RemoteRequestFailedError) Is(target error) bool {
	switch target {
	case ErrRemoteRequestFailed:
		return true
	case ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized
	case ErrTooManyRequests:
		return e.StatusCode == http.StatusTooManyRequests
	}
	return false
}
