package models

// TTL choices offered when creating a note, in seconds. The note store
// bounds TTL to this set; anything else is rejected client-side before a
// request is made.
const (
	TTLFiveMinutes    = 5 * 60
	TTLTenMinutes     = 10 * 60
	TTLFifteenMinutes = 15 * 60

	// DefaultTTLSeconds is preselected in the create form.
	DefaultTTLSeconds = TTLFifteenMinutes
)

// AllowedTTLs lists every TTL the client will accept, in display order.
var AllowedTTLs = []int{TTLFiveMinutes, TTLTenMinutes, TTLFifteenMinutes}

// IsAllowedTTL reports whether ttlSeconds is one of [AllowedTTLs].
func IsAllowedTTL(ttlSeconds int) bool {
	for _, ttl := range AllowedTTLs {
		if ttl == ttlSeconds {
			return true
		}
	}
	return false
}
