package adapter

import "errors"

// Sentinel errors returned by [NoteServerAdapter] implementations. They are
// matched with [errors.Is] by the service layer to pick user-facing messages
// without knowing anything about HTTP.
var (
	// ErrTimeout is returned when a request attempt (or all of its
	// retries) exceeded the per-attempt timeout.
	ErrTimeout = errors.New("request timed out")
	// ErrUnauthorized is returned on HTTP 401: the attached API key is
	// missing or no longer valid.
	ErrUnauthorized = errors.New("bad api key")
	// ErrForbidden is returned on HTTP 403: the server refused the
	// request outright.
	ErrForbidden = errors.New("access denied")
	// ErrNotFoundOrExpired is returned on HTTP 404. Never-existed,
	// expired, and already-consumed notes are indistinguishable.
	ErrNotFoundOrExpired = errors.New("note not found or expired")
	// ErrServer covers every other transport or server-side failure.
	ErrServer = errors.New("server error")
)
