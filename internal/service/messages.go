package service

// User-facing messages surfaced by the flows. Every failure maps to exactly
// one of these; none of them reveals whether a decrypt failure came from a
// wrong password or corrupted data.
const (
	MsgCredentialRequired = "API key is required."
	MsgContentRequired    = "Note content is required."
	MsgPassphraseTooShort = "Password must be at least 4 characters."
	MsgInvalidTTL         = "Invalid note lifetime."

	MsgTimeout        = "Request timed out. Please try again."
	MsgBadAPIKey      = "Bad API Key."
	MsgAccessDenied   = "Access denied. Invalid or missing API key."
	MsgNoteNotFound   = "Note not found or has expired."
	MsgServerError    = "Error connecting to the server."
	MsgRetrieveFailed = "Failed to retrieve note. Please try again."

	MsgDecryptFailed = "Failed to decrypt. Incorrect password or corrupted data."
)
