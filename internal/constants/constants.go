package constants

// ContextKeyUserID is the key under which the current user id is stored in
// both the session and the gin context.
const ContextKeyUserID = "user_id"

// SessionName is the cookie name for the demo session.
const SessionName = "teamflow_session"

// Activity feed limits.
const (
	DefaultActivityLimit = 10
	MaxActivityLimit     = 100
)
