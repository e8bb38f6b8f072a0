// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artem Voskresensky

// Package adapter provides transport-layer abstractions for communicating with
// the sealnote note store.
//
// The primary abstraction is [NoteServerAdapter], which decouples the service
// layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPNoteServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes and
// transport failures by mapHTTPError and classifyTransportError so that
// callers can use [errors.Is] for transport-agnostic error handling
// (e.g. [ErrNotFoundOrExpired] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/avoskresensky/sealnote/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/note_server_adapter_mock.go -package=mock

// NoteServerAdapter defines transport-agnostic communication with the note
// store. Implementations are responsible for serialisation, API-key header
// management, retry policy, and mapping transport-level errors to the
// sentinel values defined in this package.
//
// Implementations only ever read the stored API key; clearing a rejected
// credential is the caller's decision.
type NoteServerAdapter interface {
	// Submit uploads an already-encrypted payload with the requested
	// lifetime in seconds and returns the server-assigned receipt
	// (opaque locator plus optional expiry timestamp). The payload is
	// opaque to both the adapter and the server. Returns [ErrUnauthorized]
	// if the server rejects the attached API key, [ErrTimeout] if the
	// request attempts are exhausted by timeouts, or [ErrServer] for
	// other failures.
	Submit(ctx context.Context, ciphertext string, ttlSeconds int) (models.NoteReceipt, error)

	// Retrieve downloads the encrypted payload identified by locator.
	// Returns [ErrNotFoundOrExpired] if the note never existed, has
	// expired, or has already been consumed; the three cases are
	// deliberately indistinguishable.
	Retrieve(ctx context.Context, locator string) (string, error)
}
