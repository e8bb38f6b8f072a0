// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artem Voskresensky

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/avoskresensky/sealnote/internal/adapter"
	"github.com/avoskresensky/sealnote/internal/crypto"
	"github.com/avoskresensky/sealnote/internal/logger"
	"github.com/avoskresensky/sealnote/internal/store"
)

type noteCreationFlow struct {
	credentials store.CredentialRepository
	codec       crypto.Codec
	adapter     adapter.NoteServerAdapter
	linkBaseURL string
	logger      *logger.Logger

	mu         sync.Mutex
	state      CreationState
	message    string
	shareURL   string
	submitting bool
}

// NewNoteCreationFlow constructs a creation flow in AwaitingCredential. Call
// Start to pick up a previously persisted credential.
func NewNoteCreationFlow(credentials store.CredentialRepository, codec crypto.Codec, serverAdapter adapter.NoteServerAdapter, linkBaseURL string, logger *logger.Logger) NoteCreationFlow {
	return &noteCreationFlow{
		credentials: credentials,
		codec:       codec,
		adapter:     serverAdapter,
		linkBaseURL: linkBaseURL,
		logger:      logger,
		state:       CreationAwaitingCredential,
	}
}

// Start implements [NoteCreationFlow].
func (f *noteCreationFlow) Start(ctx context.Context) CreationState {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, err := f.credentials.Get(ctx); err == nil {
		f.state = CreationComposing
	}
	return f.state
}

// State implements [NoteCreationFlow].
func (f *noteCreationFlow) State() CreationState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Message implements [NoteCreationFlow].
func (f *noteCreationFlow) Message() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.message
}

// ShareURL implements [NoteCreationFlow].
func (f *noteCreationFlow) ShareURL() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.shareURL
}

// ProvideCredential implements [NoteCreationFlow].
func (f *noteCreationFlow) ProvideCredential(ctx context.Context, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	value = strings.TrimSpace(value)
	if value == "" {
		f.message = MsgCredentialRequired
		return fmt.Errorf("%w: %s", ErrValidation, MsgCredentialRequired)
	}

	if err := f.credentials.Set(ctx, value); err != nil {
		f.message = MsgServerError
		return fmt.Errorf("persist credential: %w", err)
	}

	f.state = CreationComposing
	f.message = ""
	return nil
}

// Submit implements [NoteCreationFlow].
func (f *noteCreationFlow) Submit(ctx context.Context, plaintext, passphrase string, ttlSeconds int) (string, error) {
	f.mu.Lock()
	if f.submitting {
		f.mu.Unlock()
		return "", ErrSubmitInFlight
	}
	if f.state != CreationComposing && f.state != CreationFailed {
		f.mu.Unlock()
		return "", fmt.Errorf("%w: %s", ErrInvalidFlowState, f.state)
	}

	// Trimmed symmetrically with the retrieval side so a padded passphrase
	// still round-trips.
	passphrase = strings.TrimSpace(passphrase)
	if err := validateNoteInput(plaintext, passphrase, ttlSeconds); err != nil {
		f.state = CreationComposing
		f.message = extractMessage(err)
		f.mu.Unlock()
		return "", err
	}

	ciphertext, err := f.codec.Encrypt(plaintext, passphrase)
	if err != nil {
		f.state = CreationFailed
		f.message = MsgServerError
		f.mu.Unlock()
		return "", fmt.Errorf("encrypt note: %w", err)
	}

	f.submitting = true
	f.state = CreationSubmitting
	f.message = ""
	f.mu.Unlock()

	receipt, err := f.adapter.Submit(ctx, ciphertext, ttlSeconds)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitting = false

	// The consuming view may be gone by now; a settled result must not
	// resurrect the flow.
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	if err != nil {
		if errors.Is(err, adapter.ErrUnauthorized) {
			if clearErr := f.credentials.Clear(ctx); clearErr != nil {
				f.logger.Error().Err(clearErr).Str("func", "Submit").Msg("failed to purge rejected credential")
			}
			f.state = CreationAwaitingCredential
			f.message = MsgBadAPIKey
			return "", err
		}

		f.state = CreationFailed
		f.message = creationMessage(err)
		return "", err
	}

	f.shareURL = buildShareLink(f.linkBaseURL, receipt.Locator)
	f.state = CreationReady
	return f.shareURL, nil
}

// Reset implements [NoteCreationFlow].
func (f *noteCreationFlow) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state == CreationReady || f.state == CreationFailed {
		f.state = CreationComposing
		f.message = ""
		f.shareURL = ""
	}
}
