package store

import "errors"

// ErrCredentialNotFound is returned by [CredentialRepository.Get] when no
// API key has been stored yet (fresh device) or the slot was cleared.
var ErrCredentialNotFound = errors.New("credential not found")
