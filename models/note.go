// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artem Voskresensky

package models

import "time"

// NoteCreateRequest is the JSON body of POST /note. Content always carries
// ciphertext; plaintext never leaves the client.
type NoteCreateRequest struct {
	Content    string `json:"content"`
	TTLSeconds int    `json:"ttl_seconds"`
}

// NoteResponse is the JSON body the note store returns for both
// POST /note (ID and ExpiresAt populated) and GET /note/{id}
// (Content populated).
type NoteResponse struct {
	ID        string     `json:"id,omitempty"`
	Content   string     `json:"content,omitempty"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// NoteReceipt is what a successful submission yields: the server-assigned
// locator used to build the shareable link and, when the server reports it,
// the moment the note expires.
type NoteReceipt struct {
	Locator   string
	ExpiresAt *time.Time
}
