package store

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// CredentialRepository is the single API-key slot identifying this client to
// the note store. The key is opaque: nothing in the client inspects it, and
// no expiry is tracked locally.
//
// At most one credential exists at a time. It is written on explicit user
// entry, read by the transport on every outbound request, and cleared either
// by the user or by a flow reacting to an authorization rejection. The
// backing storage is durable, so the credential survives process restarts.
type CredentialRepository interface {
	// Get returns the stored API key, or ErrCredentialNotFound when the
	// slot is empty.
	Get(ctx context.Context) (string, error)

	// Set stores value as the current API key, replacing any previous one.
	Set(ctx context.Context, value string) error

	// Clear empties the slot. Clearing an already-empty slot is not an
	// error.
	Clear(ctx context.Context) error
}
