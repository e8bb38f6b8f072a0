// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artem Voskresensky

package service

import (
	"errors"
	"strings"

	"github.com/avoskresensky/sealnote/internal/adapter"
)

// creationMessage translates a transport classification into the user-facing
// message shown by the creation flow.
func creationMessage(err error) string {
	switch {
	case errors.Is(err, adapter.ErrTimeout):
		return MsgTimeout
	case errors.Is(err, adapter.ErrUnauthorized):
		return MsgBadAPIKey
	case errors.Is(err, adapter.ErrForbidden):
		return MsgAccessDenied
	default:
		return MsgServerError
	}
}

// retrievalMessage translates a transport classification into the user-facing
// message shown by the retrieval flow after a failed load.
func retrievalMessage(err error) string {
	switch {
	case errors.Is(err, adapter.ErrNotFoundOrExpired):
		return MsgNoteNotFound
	case errors.Is(err, adapter.ErrUnauthorized), errors.Is(err, adapter.ErrForbidden):
		return MsgAccessDenied
	default:
		return MsgRetrieveFailed
	}
}

// extractMessage returns the part of a wrapped validation error after the
// sentinel prefix, i.e. the user-facing message it was built with.
func extractMessage(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
