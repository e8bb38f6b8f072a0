// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artem Voskresensky

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/crypto/pbkdf2"
)

// noteCodec is the private implementation of [Codec].
type noteCodec struct {
	// PBKDF2 tuning parameters. Stored in the struct so they can be
	// adjusted per deployment target without touching the scheme.
	kdfIterations int
	kdfKeyLen     int
	saltLen       int
}

// NewNoteCodec constructs a [Codec] for passphrase-based note encryption:
//   - key derivation: PBKDF2-HMAC-SHA256, 100 000 iterations, 16-byte salt
//   - cipher:         AES-256-GCM, random 12-byte nonce
//   - wire format:    base64std(salt ‖ nonce ‖ sealed)
//
// The salt and nonce travel inside the ciphertext, so a ciphertext string
// is self-contained: the passphrase is the only extra input Decrypt needs.
func NewNoteCodec() Codec {
	return &noteCodec{
		kdfIterations: 100_000,
		kdfKeyLen:     32, // 256 bits
		saltLen:       16,
	}
}

// Encrypt implements [Codec].
func (c *noteCodec) Encrypt(plaintext, passphrase string) (string, error) {
	if passphrase == "" {
		return "", ErrEmptyPassphrase
	}

	salt := make([]byte, c.saltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", err
	}

	gcm, err := c.newGCM(passphrase, salt)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}

	sealed := gcm.Seal(nil, nonce, []byte(plaintext), nil)

	blob := make([]byte, 0, len(salt)+len(nonce)+len(sealed))
	blob = append(blob, salt...)
	blob = append(blob, nonce...)
	blob = append(blob, sealed...)

	return base64.StdEncoding.EncodeToString(blob), nil
}

// Decrypt implements [Codec]. Every failure collapses to
// [ErrDecryptionFailed]; the underlying cause is intentionally not exposed
// and not wrapped.
func (c *noteCodec) Decrypt(ciphertext, passphrase string) (string, error) {
	if passphrase == "" {
		return "", ErrDecryptionFailed
	}

	blob, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", ErrDecryptionFailed
	}
	if len(blob) < c.saltLen {
		return "", ErrDecryptionFailed
	}

	salt, rest := blob[:c.saltLen], blob[c.saltLen:]

	gcm, err := c.newGCM(passphrase, salt)
	if err != nil {
		return "", ErrDecryptionFailed
	}

	nonceSize := gcm.NonceSize()
	if len(rest) < nonceSize {
		return "", ErrDecryptionFailed
	}
	nonce, sealed := rest[:nonceSize], rest[nonceSize:]

	plaintext, err := gcm.Open(nil, nonce, sealed, nil)
	if err != nil {
		// Wrong passphrase and tampered ciphertext both land here.
		return "", ErrDecryptionFailed
	}

	text := string(plaintext)
	if !utf8.ValidString(text) || strings.ContainsRune(text, utf8.RuneError) {
		return "", ErrDecryptionFailed
	}

	return text, nil
}

func (c *noteCodec) newGCM(passphrase string, salt []byte) (cipher.AEAD, error) {
	key := pbkdf2.Key([]byte(passphrase), salt, c.kdfIterations, c.kdfKeyLen, sha256.New)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	return cipher.NewGCM(block)
}
