package server

import (
	"context"
	"net/http"

	"github.com/jrsteele09/go-customer-portal/internal/session"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

const (
	// ContextKeySessionID stores the browser's session identifier
	ContextKeySessionID ContextKey = "session_id"
	// ContextKeySession stores the loaded session
	ContextKeySession ContextKey = "session"
)

// RequireSession is the auth gate for protected pages. It is a presence
// check on the session's account, nothing more: no token expiry or refresh
// logic. Browsers without an authenticated session are sent to /login.
func (s *Server) RequireSession() func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			sessionID, sess, ok := s.browserSession(r)
			if !ok || !sess.Authenticated() {
				http.Redirect(w, r, RouteLogin, http.StatusSeeOther)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeySessionID, sessionID)
			ctx = context.WithValue(ctx, ContextKeySession, sess)
			next(w, r.WithContext(ctx))
		}
	}
}

// browserSession resolves the inbound request to its server-side session.
// An unreadable cookie, a tampered signature, or an expired/missing session
// all look the same to callers: no session.
func (s *Server) browserSession(r *http.Request) (string, session.Session, bool) {
	sessionID, err := s.cookies.Read(r)
	if err != nil {
		return "", session.Session{}, false
	}
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return "", session.Session{}, false
	}
	return sessionID, sess, true
}

// sessionFrom returns the session injected by RequireSession
func sessionFrom(r *http.Request) (session.Session, bool) {
	sess, ok := r.Context().Value(ContextKeySession).(session.Session)
	return sess, ok
}
