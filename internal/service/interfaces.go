// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artem Voskresensky

// Package service contains the client-side orchestration of the sealnote
// exchange: the note-creation flow (compose, encrypt, submit, share) and the
// note-retrieval flow (fetch, hold, decrypt).
//
// Each flow is a small state machine. Flows own all state transitions and the
// user-facing message for the current state; the transport and codec below
// them only report classified errors. The sole cross-flow side effect is the
// credential purge on an authorization rejection.
package service

import "context"

// CreationState is the position of a [NoteCreationFlow] in its lifecycle.
type CreationState int

const (
	// CreationAwaitingCredential means no API key is stored; the flow
	// needs one before anything can be submitted.
	CreationAwaitingCredential CreationState = iota
	// CreationComposing means the flow is ready to accept note input.
	CreationComposing
	// CreationSubmitting means a submission is in flight.
	CreationSubmitting
	// CreationReady means the note was stored and a share link is
	// available.
	CreationReady
	// CreationFailed means the last submission failed for a reason other
	// than a rejected credential; the user may retry.
	CreationFailed
)

func (s CreationState) String() string {
	switch s {
	case CreationAwaitingCredential:
		return "awaiting_credential"
	case CreationComposing:
		return "composing"
	case CreationSubmitting:
		return "submitting"
	case CreationReady:
		return "ready"
	case CreationFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// RetrievalState is the position of a [NoteRetrievalFlow] in its lifecycle.
type RetrievalState int

const (
	// RetrievalLoading means the remote fetch has not completed yet.
	RetrievalLoading RetrievalState = iota
	// RetrievalAwaitingPassphrase means the ciphertext is held in memory
	// waiting for a passphrase.
	RetrievalAwaitingPassphrase
	// RetrievalLoadFailed means the remote fetch failed; the flow is
	// terminal.
	RetrievalLoadFailed
	// RetrievalDecrypted means the plaintext was recovered and is held in
	// memory.
	RetrievalDecrypted
	// RetrievalDecryptFailed means the last passphrase did not decrypt the
	// ciphertext; another attempt is allowed.
	RetrievalDecryptFailed
)

func (s RetrievalState) String() string {
	switch s {
	case RetrievalLoading:
		return "loading"
	case RetrievalAwaitingPassphrase:
		return "awaiting_passphrase"
	case RetrievalLoadFailed:
		return "load_failed"
	case RetrievalDecrypted:
		return "decrypted"
	case RetrievalDecryptFailed:
		return "decrypt_failed"
	default:
		return "unknown"
	}
}

// NoteCreationFlow drives one note from composition to a shareable link.
//
// State machine: AwaitingCredential → Composing → Submitting → {Ready|Failed}.
// Failed returns to Composing on the next Submit; a rejected credential sends
// the flow back to AwaitingCredential after purging the stored key.
type NoteCreationFlow interface {
	// Start probes the credential store and returns the initial state:
	// Composing when a credential is already persisted, AwaitingCredential
	// otherwise.
	Start(ctx context.Context) CreationState

	// State returns the current flow state.
	State() CreationState

	// Message returns the user-facing text for the last validation or
	// submission failure, or an empty string.
	Message() string

	// ProvideCredential trims and persists the API key, moving the flow
	// to Composing. An empty value is a validation failure: the flow
	// stays in AwaitingCredential and Message is set.
	ProvideCredential(ctx context.Context, value string) error

	// Submit validates the input, encrypts plaintext with passphrase, and
	// uploads the ciphertext. On success it returns the shareable link
	// and moves to Ready. Validation failures never reach the network.
	// At most one submission runs at a time; a second call while one is
	// in flight returns ErrSubmitInFlight. A cancelled ctx drops the
	// in-flight result without mutating flow state.
	Submit(ctx context.Context, plaintext, passphrase string, ttlSeconds int) (string, error)

	// ShareURL returns the link produced by the last successful Submit,
	// or an empty string.
	ShareURL() string

	// Reset returns a Ready or Failed flow to Composing so another note
	// can be created. The stored credential is untouched.
	Reset()
}

// NoteRetrievalFlow drives one note from a locator to plaintext.
//
// State machine: Loading → {AwaitingPassphrase|LoadFailed};
// AwaitingPassphrase → {Decrypted|DecryptFailed}; DecryptFailed allows
// unlimited further Decrypt attempts. The remote fetch happens exactly once.
type NoteRetrievalFlow interface {
	// State returns the current flow state.
	State() RetrievalState

	// Message returns the user-facing text for the last failure, or an
	// empty string.
	Message() string

	// Load fetches the ciphertext for locator. It may be called once per
	// flow instance; later calls return ErrAlreadyLoaded whatever the
	// first outcome was. A cancelled ctx drops the in-flight result
	// without mutating flow state.
	Load(ctx context.Context, locator string) error

	// Decrypt attempts to recover the plaintext with passphrase. A failed
	// attempt moves to DecryptFailed and another attempt is allowed;
	// success returns the plaintext and moves to Decrypted.
	Decrypt(passphrase string) (string, error)

	// Plaintext returns the decrypted note after a successful Decrypt, or
	// an empty string. It is held in memory only.
	Plaintext() string
}
