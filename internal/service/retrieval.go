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

type noteRetrievalFlow struct {
	credentials store.CredentialRepository
	codec       crypto.Codec
	adapter     adapter.NoteServerAdapter
	logger      *logger.Logger

	mu         sync.Mutex
	state      RetrievalState
	message    string
	ciphertext string
	plaintext  string
	loaded     bool
}

// NewNoteRetrievalFlow constructs a retrieval flow in Loading.
func NewNoteRetrievalFlow(credentials store.CredentialRepository, codec crypto.Codec, serverAdapter adapter.NoteServerAdapter, logger *logger.Logger) NoteRetrievalFlow {
	return &noteRetrievalFlow{
		credentials: credentials,
		codec:       codec,
		adapter:     serverAdapter,
		logger:      logger,
		state:       RetrievalLoading,
	}
}

// State implements [NoteRetrievalFlow].
func (f *noteRetrievalFlow) State() RetrievalState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Message implements [NoteRetrievalFlow].
func (f *noteRetrievalFlow) Message() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.message
}

// Plaintext implements [NoteRetrievalFlow].
func (f *noteRetrievalFlow) Plaintext() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.plaintext
}

// Load implements [NoteRetrievalFlow]. The fetch is issued exactly once per
// flow instance: decryption retries are free, but re-fetching could burn a
// single-read note on the server side.
func (f *noteRetrievalFlow) Load(ctx context.Context, locator string) error {
	f.mu.Lock()
	if f.loaded {
		f.mu.Unlock()
		return ErrAlreadyLoaded
	}
	f.loaded = true
	f.mu.Unlock()

	ciphertext, err := f.adapter.Retrieve(ctx, locator)

	f.mu.Lock()
	defer f.mu.Unlock()

	// Drop the result if the consuming view was torn down meanwhile.
	if ctx.Err() != nil {
		return ctx.Err()
	}

	if err != nil {
		if errors.Is(err, adapter.ErrUnauthorized) {
			if clearErr := f.credentials.Clear(ctx); clearErr != nil {
				f.logger.Error().Err(clearErr).Str("func", "Load").Msg("failed to purge rejected credential")
			}
		}
		f.state = RetrievalLoadFailed
		f.message = retrievalMessage(err)
		return err
	}

	f.ciphertext = ciphertext
	f.state = RetrievalAwaitingPassphrase
	f.message = ""
	return nil
}

// Decrypt implements [NoteRetrievalFlow].
func (f *noteRetrievalFlow) Decrypt(passphrase string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != RetrievalAwaitingPassphrase && f.state != RetrievalDecryptFailed {
		return "", fmt.Errorf("%w: %s", ErrInvalidFlowState, f.state)
	}

	passphrase = strings.TrimSpace(passphrase)
	if err := validatePassphrase(passphrase); err != nil {
		f.message = extractMessage(err)
		return "", err
	}

	plaintext, err := f.codec.Decrypt(f.ciphertext, passphrase)
	if err != nil {
		f.state = RetrievalDecryptFailed
		f.message = MsgDecryptFailed
		return "", err
	}

	f.plaintext = plaintext
	f.state = RetrievalDecrypted
	f.message = ""
	return plaintext, nil
}
