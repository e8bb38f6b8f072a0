package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/codec_mock.go -package=mock

// Codec is the client-side cipher for note content. It knows nothing about
// the network, storage, or the note store API; its only job is turning
// plaintext into an opaque ciphertext string and back, keyed by a
// user-supplied passphrase.
//
// Both directions are pure functions over their arguments plus the OS
// CSPRNG: no state is kept between calls and the passphrase is never
// persisted anywhere.
type Codec interface {
	// Encrypt seals plaintext under passphrase and returns the ciphertext
	// as a self-contained base64 string. A fresh random salt and nonce are
	// drawn per call, so encrypting identical inputs twice yields two
	// different ciphertexts — required, so that ciphertext comparison
	// cannot leak plaintext equality.
	//
	// An empty passphrase is a caller precondition violation and returns
	// ErrEmptyPassphrase; flows validate passphrases before calling.
	Encrypt(plaintext, passphrase string) (string, error)

	// Decrypt reverses Encrypt. Every failure mode — malformed base64,
	// truncated blob, authentication-tag mismatch (wrong passphrase or
	// tampered data), or a result that is not clean UTF-8 text — collapses
	// into the single ErrDecryptionFailed. The caller deliberately cannot
	// tell a wrong passphrase from corrupted ciphertext.
	Decrypt(ciphertext, passphrase string) (string, error)
}
