package constant

import "time"

const (
	// Sessions are persisted server side so they can be revoked; the cookie only
	// carries the opaque token.
	SESSION_COOKIE_NAME = "placepick_session"
	SESSION_TOKEN_CHAR  = 48

	SESSION_LIFETIME = 24 * time.Hour
	// Sliding expiry: the session row is re-stamped only when it is older than
	// this, to avoid a write on every request.
	SESSION_UPDATE_AGE = 1 * time.Hour
)

// Self-service account deletion requires the caller to re-type this phrase exactly.
const WITHDRAWAL_CONFIRM_TEXT = "회원탈퇴"
