package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/avoskresensky/sealnote/internal/config"
	"github.com/avoskresensky/sealnote/internal/logger"
	"github.com/avoskresensky/sealnote/internal/store"
	"github.com/avoskresensky/sealnote/models"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

type httpNoteServerAdapter struct {
	client      *resty.Client
	credentials store.CredentialRepository

	logger *logger.Logger
}

// NewHTTPNoteServerAdapter constructs an HTTP/REST implementation of
// [NoteServerAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying resty client with the
// per-attempt request timeout and the uniform retry policy: every failed
// attempt is retried, whatever the cause, until the retry budget runs out.
//
// credentials is consulted on every request to attach the X-API-Key header;
// the adapter never writes to it.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewHTTPNoteServerAdapter(adapterCfg config.ClientAdapter, credentials store.CredentialRepository, logger *logger.Logger) (NoteServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	if adapterCfg.RetryCount > 0 {
		client.
			SetRetryCount(adapterCfg.RetryCount).
			SetRetryWaitTime(adapterCfg.RetryWaitTime).
			SetRetryMaxWaitTime(adapterCfg.RetryWaitTime).
			AddRetryCondition(func(resp *resty.Response, err error) bool {
				// Uniform policy: transport faults and non-2xx statuses
				// alike are worth another attempt. A cancelled context
				// stops the retry loop inside resty.
				if err != nil {
					return !errors.Is(err, context.Canceled)
				}
				return !resp.IsSuccess()
			})
	}

	return &httpNoteServerAdapter{client: client, credentials: credentials, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Submit implements [NoteServerAdapter]. It POSTs the encrypted payload to
// POST /note and decodes the receipt from the response body. The ciphertext
// travels as-is; the adapter performs no cryptography.
func (h *httpNoteServerAdapter) Submit(ctx context.Context, ciphertext string, ttlSeconds int) (models.NoteReceipt, error) {
	body := models.NoteCreateRequest{
		Content:    ciphertext,
		TTLSeconds: ttlSeconds,
	}

	resp, err := h.newRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post("/note")
	if err != nil {
		return models.NoteReceipt{}, classifyTransportError(err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.NoteReceipt{}, err
	}

	var note models.NoteResponse
	if err = json.Unmarshal(resp.Body(), &note); err != nil {
		return models.NoteReceipt{}, fmt.Errorf("%w: decode submit response: %s", ErrServer, err)
	}
	if note.ID == "" {
		return models.NoteReceipt{}, fmt.Errorf("%w: submit response missing note id", ErrServer)
	}

	return models.NoteReceipt{Locator: note.ID, ExpiresAt: note.ExpiresAt}, nil
}

// Retrieve implements [NoteServerAdapter]. It GETs the encrypted payload from
// GET /note/{locator} and returns the ciphertext untouched.
func (h *httpNoteServerAdapter) Retrieve(ctx context.Context, locator string) (string, error) {
	resp, err := h.newRequest(ctx).
		Get("/note/" + url.PathEscape(locator))
	if err != nil {
		return "", classifyTransportError(err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var note models.NoteResponse
	if err = json.Unmarshal(resp.Body(), &note); err != nil {
		return "", fmt.Errorf("%w: decode retrieve response: %s", ErrServer, err)
	}

	return note.Content, nil
}

// newRequest prepares a request with a fresh X-Request-Id and, when a
// credential is stored, the X-API-Key header. A missing credential is not an
// error here: the server decides whether the endpoint needs a key.
func (h *httpNoteServerAdapter) newRequest(ctx context.Context) *resty.Request {
	req := h.client.R().
		SetContext(ctx).
		SetHeader("X-Request-Id", uuid.NewString())

	apiKey, err := h.credentials.Get(ctx)
	switch {
	case err == nil && apiKey != "":
		req.SetHeader("X-API-Key", apiKey)
	case err != nil && !errors.Is(err, store.ErrCredentialNotFound):
		h.logger.Warn().Err(err).Str("func", "newRequest").Msg("failed to read stored api key, sending request without it")
	}

	return req
}
