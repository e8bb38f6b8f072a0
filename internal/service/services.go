package service

import (
	"strings"

	"github.com/avoskresensky/sealnote/internal/adapter"
	"github.com/avoskresensky/sealnote/internal/config"
	"github.com/avoskresensky/sealnote/internal/crypto"
	"github.com/avoskresensky/sealnote/internal/logger"
	"github.com/avoskresensky/sealnote/internal/store"
)

// ClientServices bundles the flow factories with their shared dependencies.
// Each flow instance is independent; the credential repository is the only
// state they share.
type ClientServices struct {
	codec         crypto.Codec
	credentials   store.CredentialRepository
	serverAdapter adapter.NoteServerAdapter
	linkBaseURL   string
	logger        *logger.Logger
}

func NewClientServices(localStore *store.ClientStorages, serverAdapter adapter.NoteServerAdapter, appCfg config.ClientApp, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		codec:         crypto.NewNoteCodec(),
		credentials:   localStore.Credentials,
		serverAdapter: serverAdapter,
		linkBaseURL:   appCfg.LinkBaseURL,
		logger:        logger,
	}
}

// NewCreationFlow returns a fresh creation flow.
func (s *ClientServices) NewCreationFlow() NoteCreationFlow {
	return NewNoteCreationFlow(s.credentials, s.codec, s.serverAdapter, s.linkBaseURL, s.logger)
}

// NewRetrievalFlow returns a fresh retrieval flow.
func (s *ClientServices) NewRetrievalFlow() NoteRetrievalFlow {
	return NewNoteRetrievalFlow(s.credentials, s.codec, s.serverAdapter, s.logger)
}

// buildShareLink assembles the ciphertext-free link handed to the recipient:
// {origin}/note/{locator}.
func buildShareLink(baseURL, locator string) string {
	return strings.TrimRight(baseURL, "/") + "/note/" + locator
}

// ExtractLocator accepts either a bare locator or a full share link and
// returns the locator. Query strings and fragments are stripped.
func ExtractLocator(input string) string {
	input = strings.TrimSpace(input)

	if idx := strings.LastIndex(input, "/note/"); idx != -1 {
		input = input[idx+len("/note/"):]
	}
	if idx := strings.IndexAny(input, "?#"); idx != -1 {
		input = input[:idx]
	}
	return strings.Trim(input, "/")
}
