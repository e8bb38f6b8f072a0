package service

import (
	"fmt"

	"github.com/avoskresensky/sealnote/models"
)

// Input bounds enforced locally before any network call.
const (
	// MinContentLen is the minimum note length in bytes.
	MinContentLen = 1
	// MinPassphraseLen is the minimum passphrase length in characters.
	MinPassphraseLen = 4
)

// validateNoteInput gates Submit. Each violation wraps [ErrValidation] with
// the user-facing message for the offending field; the first violation wins.
func validateNoteInput(plaintext, passphrase string, ttlSeconds int) error {
	if len(plaintext) < MinContentLen {
		return fmt.Errorf("%w: %s", ErrValidation, MsgContentRequired)
	}
	if err := validatePassphrase(passphrase); err != nil {
		return err
	}
	if !models.IsAllowedTTL(ttlSeconds) {
		return fmt.Errorf("%w: %s", ErrValidation, MsgInvalidTTL)
	}
	return nil
}

func validatePassphrase(passphrase string) error {
	if len([]rune(passphrase)) < MinPassphraseLen {
		return fmt.Errorf("%w: %s", ErrValidation, MsgPassphraseTooShort)
	}
	return nil
}
