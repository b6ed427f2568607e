package server_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jrsteele09/go-customer-portal/internal/identity/identityfakes"
	"github.com/jrsteele09/go-customer-portal/internal/portal"
	"github.com/jrsteele09/go-customer-portal/internal/session"
	"github.com/jrsteele09/go-customer-portal/server"
	"github.com/stretchr/testify/require"
)

const (
	testSessionSecret = "test-session-secret"
	testUsername      = "alice@example.com"
)

// testConfig satisfies config.Config without touching the environment
type testConfig struct{}

func (testConfig) GetPort() string { return ":3000" }

func (testConfig) GetAppName() string { return "Customer Portal" }

func (testConfig) GetEnv() string { return "test" }

func (testConfig) IsProduction() bool { return false }

func (testConfig) GetClientID() string { return "client-1" }

func (testConfig) GetTenantID() string { return "tenant-1" }

func (testConfig) GetClientSecret() string { return "secret-1" }
func (testConfig) GetRedirectURI() string {
	return "http://localhost:3000/redirect"
}
func (testConfig) GetPostLogoutRedirectURI() string {
	return "http://localhost:3000"
}
func (testConfig) GetAuthority() string {
	return "https://login.microsoftonline.com/tenant-1/v2.0"
}
func (testConfig) GetLogoutEndpoint() string {
	return "https://login.microsoftonline.com/tenant-1/oauth2/v2.0/logout"
}
func (testConfig) GetSessionSecret() []byte { return []byte(testSessionSecret) }

// testFixture holds the server and every collaborator the tests inspect
type testFixture struct {
	server   *server.Server
	sessions session.Repo
	idp      *identityfakes.FakeClient
	tickets  *portal.InMemoryTicketRepo
	codec    *session.CookieCodec
}

// failingDeleteRepo wraps a session.Repo and fails every Delete
type failingDeleteRepo struct {
	session.Repo
	deleteErr error
}

func (r *failingDeleteRepo) Delete(string) error { return r.deleteErr }

type fixtureOption func(*testFixture)

func withSessionRepo(repo session.Repo) fixtureOption {
	return func(f *testFixture) { f.sessions = repo }
}

func newTestFixture(t *testing.T, opts ...fixtureOption) *testFixture {
	t.Helper()

	f := &testFixture{
		sessions: session.NewInMemoryRepo(),
		idp:      identityfakes.NewFakeClient(),
		tickets:  portal.NewInMemoryTicketRepo(),
		codec:    session.NewCookieCodec([]byte(testSessionSecret), false),
	}
	for _, opt := range opts {
		opt(f)
	}

	srv, err := server.New(testConfig{}, f.sessions, f.idp, portal.NewInMemoryInvoiceRepo(), f.tickets)
	require.NoError(t, err)
	f.server = srv

	return f
}

func (f *testFixture) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	f.server.ServeHTTP(rec, req)
	return rec
}

// seedSession stores a session directly and mints its signed cookie
func (f *testFixture) seedSession(t *testing.T, sess session.Session) (string, *http.Cookie) {
	t.Helper()

	sessionID := uuid.NewString()
	require.NoError(t, f.sessions.Upsert(sessionID, sess))

	value, err := f.codec.Encode(sessionID)
	require.NoError(t, err)

	return sessionID, &http.Cookie{Name: session.CookieName, Value: value}
}

func authenticatedSession() session.Session {
	return session.Session{
		Account: &session.Account{
			HomeAccountID: "oid-1.tid-1",
			Username:      testUsername,
			Name:          "Alice Example",
			TenantID:      "tid-1",
		},
		AccessToken: "access-token",
		CreatedAt:   time.Now(),
	}
}

// startLogin drives GET /login and returns the session cookie plus the
// state the server handed to the identity provider
func (f *testFixture) startLogin(t *testing.T) (*http.Cookie, string) {
	t.Helper()

	rec := f.do(httptest.NewRequest(http.MethodGet, server.RouteLogin, nil))
	require.Equal(t, http.StatusFound, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)

	location, err := url.Parse(rec.Header().Get("Location"))
	require.NoError(t, err)
	state := location.Query().Get("state")
	require.NotEmpty(t, state)

	return cookies[0], state
}

// login runs the whole flow against the fake provider and returns the
// authenticated browser cookie
func (f *testFixture) login(t *testing.T) *http.Cookie {
	t.Helper()

	cookie, state := f.startLogin(t)

	req := httptest.NewRequest(http.MethodGet, server.RouteRedirect+"?state="+url.QueryEscape(state)+"&code=auth-code", nil)
	req.AddCookie(cookie)
	rec := f.do(req)
	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, server.RouteDashboard, rec.Header().Get("Location"))

	return cookie
}
