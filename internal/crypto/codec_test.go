// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artem Voskresensky

package crypto

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── Encrypt ─────────────────────────────────────────────────────────────────

func TestEncrypt_EmptyPassphrase(t *testing.T) {
	codec := NewNoteCodec()

	_, err := codec.Encrypt("some secret", "")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyPassphrase)
}

func TestEncrypt_OutputIsOpaque(t *testing.T) {
	codec := NewNoteCodec()

	ct, err := codec.Encrypt("the launch code is 0000", "correcthorse")
	require.NoError(t, err)

	assert.NotContains(t, ct, "launch code")
	assert.NotContains(t, ct, "0000")

	// Output must be valid standard base64.
	_, err = base64.StdEncoding.DecodeString(ct)
	assert.NoError(t, err)
}

func TestEncrypt_NonDeterministic(t *testing.T) {
	codec := NewNoteCodec()

	first, err := codec.Encrypt("same input", "same passphrase")
	require.NoError(t, err)
	second, err := codec.Encrypt("same input", "same passphrase")
	require.NoError(t, err)

	// Fresh salt and nonce per call: identical inputs must not produce
	// identical ciphertext.
	assert.NotEqual(t, first, second)
}

// ── Decrypt ─────────────────────────────────────────────────────────────────

func TestDecrypt_RoundTrip(t *testing.T) {
	codec := NewNoteCodec()

	tests := []struct {
		name       string
		plaintext  string
		passphrase string
	}{
		{name: "ascii", plaintext: "hello world", passphrase: "correcthorse"},
		{name: "unicode", plaintext: "пароль от сейфа: 🔑", passphrase: "pw1234"},
		{name: "multiline", plaintext: "line one\nline two\n", passphrase: "s3cr3t-phrase"},
		{name: "long", plaintext: strings.Repeat("secret ", 512), passphrase: "0123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ct, err := codec.Encrypt(tt.plaintext, tt.passphrase)
			require.NoError(t, err)

			got, err := codec.Decrypt(ct, tt.passphrase)
			require.NoError(t, err)
			assert.Equal(t, tt.plaintext, got)
		})
	}
}

func TestDecrypt_WrongPassphrase(t *testing.T) {
	codec := NewNoteCodec()

	ct, err := codec.Encrypt("top secret", "right-passphrase")
	require.NoError(t, err)

	got, err := codec.Decrypt(ct, "wrong-passphrase")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDecryptionFailed)
	assert.Empty(t, got, "wrong passphrase must never yield plaintext")
}

func TestDecrypt_StructurallyInvalid(t *testing.T) {
	codec := NewNoteCodec()

	tests := []struct {
		name       string
		ciphertext string
	}{
		{name: "not base64", ciphertext: "@@@not-base64@@@"},
		{name: "empty", ciphertext: ""},
		{name: "shorter than salt", ciphertext: base64.StdEncoding.EncodeToString([]byte("tiny"))},
		{name: "salt only, no nonce", ciphertext: base64.StdEncoding.EncodeToString(make([]byte, 16))},
		{name: "garbage blob", ciphertext: base64.StdEncoding.EncodeToString(make([]byte, 64))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := codec.Decrypt(tt.ciphertext, "whatever")
			assert.ErrorIs(t, err, ErrDecryptionFailed)
		})
	}
}

func TestDecrypt_TamperedCiphertext(t *testing.T) {
	codec := NewNoteCodec()

	ct, err := codec.Encrypt("integrity matters", "pw1234")
	require.NoError(t, err)

	blob, err := base64.StdEncoding.DecodeString(ct)
	require.NoError(t, err)

	// Flip one bit in the sealed section.
	blob[len(blob)-1] ^= 0x01
	tampered := base64.StdEncoding.EncodeToString(blob)

	_, err = codec.Decrypt(tampered, "pw1234")
	assert.ErrorIs(t, err, ErrDecryptionFailed)
}

func TestDecrypt_ErrorIsCauseFree(t *testing.T) {
	codec := NewNoteCodec()

	ct, err := codec.Encrypt("oracle-free", "right")
	require.NoError(t, err)

	_, wrongPassErr := codec.Decrypt(ct, "wrong")
	_, corruptedErr := codec.Decrypt("AAAA", "right")

	// Wrong passphrase and corrupted data must be indistinguishable.
	require.Error(t, wrongPassErr)
	require.Error(t, corruptedErr)
	assert.Equal(t, wrongPassErr.Error(), corruptedErr.Error())
}
