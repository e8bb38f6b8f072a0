package crypto

import "errors"

var (
	// ErrDecryptionFailed is the only error Decrypt reports for bad input.
	// Wrong passphrase and corrupted ciphertext are indistinguishable on
	// purpose: per-cause diagnostics would hand an attacker a decryption
	// oracle.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrEmptyPassphrase marks a caller precondition violation on Encrypt.
	ErrEmptyPassphrase = errors.New("empty passphrase")
)
