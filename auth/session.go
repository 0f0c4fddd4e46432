package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/emckit/go-emc/rest"
	"github.com/emckit/go-emc/transport"
)

// Session owns the bearer token for one client instance.
//
// The credentials and grant are fixed at creation; the token is set by
// Authenticate and replaced by Reauthenticate, always using the same grant
// that produced the previous token. A failed (re)authentication leaves the
// stored token unchanged.
//
// Session is safe for concurrent use. Concurrent 401s trigger at most one
// token refresh; other callers wait for and share its result.
type Session struct {
	creds     Credentials
	grant     Grant
	transport *transport.HTTPTransport
	baseURL   string

	mu    sync.RWMutex
	token string

	refresh singleflight.Group
}

// NewSession creates an unauthenticated session. The token is obtained by
// the first call to Authenticate.
func NewSession(creds Credentials, grant Grant, tr *transport.HTTPTransport, baseURL string) *Session {
	return &Session{
		creds:     creds,
		grant:     grant,
		transport: tr,
		baseURL:   baseURL,
	}
}

// Grant returns the grant strategy recorded on the session.
func (s *Session) Grant() Grant {
	return s.grant
}

// Authenticated reports whether the session holds a token.
func (s *Session) Authenticated() bool {
	return s.Token() != ""
}

// Token returns the current bearer token, or "" when unauthenticated.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// AuthorizationHeader returns the Authorization header value for the current
// token, or "" when unauthenticated.
func (s *Session) AuthorizationHeader() string {
	token := s.Token()
	if token == "" {
		return ""
	}
	return "Bearer " + token
}

// tokenResponse is the wire shape of a token endpoint response.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
}

// Authenticate obtains a bearer token using the session's grant and stores
// it on success.
//
// Server rejections and malformed token responses are returned as
// *rest.APIError; transport failures map to code 500. On any failure the
// previously stored token, if one exists, is left in place.
func (s *Session) Authenticate(ctx context.Context) error {
	path, body, err := s.grant.TokenRequest(s.creds)
	if err != nil {
		return err
	}

	resp, err := s.transport.Do(ctx, http.MethodPost, s.baseURL+path, body, nil)
	if err != nil {
		return rest.TransportError(err)
	}
	if !resp.OK() {
		return rest.ParseAPIError(resp.StatusCode, resp.Status, resp.Body)
	}

	var tok tokenResponse
	if err := json.Unmarshal(resp.Body, &tok); err != nil || tok.AccessToken == "" {
		return ErrMissingAccessToken
	}

	s.mu.Lock()
	s.token = tok.AccessToken
	s.mu.Unlock()
	return nil
}

// Reauthenticate re-runs the recorded grant to replace an expired token.
//
// Concurrent calls are collapsed into a single token request; every caller
// observes the same outcome.
func (s *Session) Reauthenticate(ctx context.Context) error {
	_, err, _ := s.refresh.Do("token", func() (any, error) {
		return nil, s.Authenticate(ctx)
	})
	return err
}
