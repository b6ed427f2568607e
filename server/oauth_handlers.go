package server

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/jrsteele09/go-customer-portal/internal/session"
	"github.com/rs/zerolog/log"
)

// LoginHandler starts the authorization-code flow (GET /login). A fresh
// CSRF state token is stored on the session before the browser is sent to
// the provider; the callback will only be honored if it echoes it back.
func (s *Server) LoginHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, sess, ok := s.browserSession(r)
		if !ok {
			sessionID = uuid.NewString()
			sess = session.Session{CreatedAt: time.Now()}
		}

		state := generateRandomString(stateLength)
		sess.AuthState = state

		if err := s.sessions.Upsert(sessionID, sess); err != nil {
			log.Err(err).Msg("Failed to store login session")
			http.Error(w, "Authentication error", http.StatusInternalServerError)
			return
		}
		if err := s.cookies.Set(w, sessionID); err != nil {
			log.Err(err).Msg("Failed to set session cookie")
			http.Error(w, "Authentication error", http.StatusInternalServerError)
			return
		}

		authURL, err := s.identity.AuthCodeURL(r.Context(), state)
		if err != nil {
			log.Err(err).Msg("Error generating auth URL")
			http.Error(w, "Authentication error", http.StatusInternalServerError)
			return
		}

		http.Redirect(w, r, authURL, http.StatusFound)
	}
}

// OAuthCallbackHandler completes the flow (GET /redirect). The state check
// runs before anything else; the authorization code is never touched until
// the callback is bound to a live login attempt on this session.
func (s *Server) OAuthCallbackHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state := r.URL.Query().Get("state")

		sessionID, sess, ok := s.browserSession(r)
		if !ok || sess.AuthState == "" || state != sess.AuthState {
			http.Error(w, "Invalid state parameter - possible CSRF attack", http.StatusForbidden)
			return
		}

		code := r.URL.Query().Get("code")
		if code == "" {
			http.Error(w, "No authorization code received", http.StatusBadRequest)
			return
		}

		result, err := s.identity.Exchange(r.Context(), code)
		if err != nil {
			// The pending state is deliberately left in place so the same
			// in-flight attempt can retry the callback
			log.Err(err).Msg("Token acquisition error")
			http.Error(w, "Login failed: "+err.Error(), http.StatusInternalServerError)
			return
		}

		sess.Account = &session.Account{
			HomeAccountID: result.HomeAccountID,
			Username:      result.Username,
			Name:          result.Name,
			TenantID:      result.TenantID,
		}
		sess.AccessToken = result.AccessToken
		sess.AuthState = "" // single use

		if err := s.sessions.Upsert(sessionID, sess); err != nil {
			log.Err(err).Msg("Failed to persist authenticated session")
			http.Error(w, "Login failed", http.StatusInternalServerError)
			return
		}

		log.Info().Str("username", result.Username).Msg("User logged in")
		http.Redirect(w, r, RouteDashboard, http.StatusFound)
	}
}

// LogoutHandler destroys the local session best-effort and always sends the
// browser on to the provider's logout endpoint, so the Azure AD SSO cookie
// is cleared even when local cleanup failed
func (s *Server) LogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var username string
		if sessionID, sess, ok := s.browserSession(r); ok {
			if sess.Account != nil {
				username = sess.Account.Username
			}
			if err := s.sessions.Delete(sessionID); err != nil {
				log.Err(err).Msg("Session destruction error")
			}
		}

		s.cookies.Clear(w)

		log.Info().Str("username", username).Msg("User logged out")
		http.Redirect(w, r, s.identity.LogoutURL(), http.StatusFound)
	}
}
