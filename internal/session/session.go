package session

import "time"

// TTL is the fixed lifetime of a session, measured from creation.
// Expiry is not sliding: activity does not extend it.
const TTL = 24 * time.Hour

// Account is the identity returned by a successful token exchange.
// It is written atomically, never field by field.
type Account struct {
	HomeAccountID string
	Username      string
	Name          string
	TenantID      string
}

// Session is the server-side state for one browser, addressed by the
// opaque identifier carried in the session cookie.
type Session struct {
	// Account is present iff the browser has authenticated
	Account *Account

	// AccessToken is the bearer token from the last successful exchange,
	// kept for downstream API calls
	AccessToken string

	// AuthState is the CSRF state token of an in-flight login attempt.
	// It is set at login initiation and cleared on successful callback.
	AuthState string

	CreatedAt time.Time
}

// Authenticated reports whether the session holds an account. A session
// without an account is indistinguishable from one that never logged in.
func (s Session) Authenticated() bool {
	return s.Account != nil
}

type Repo interface {
	Upsert(sessionID string, session Session) error
	Get(sessionID string) (Session, error)
	Delete(sessionID string) error
}
