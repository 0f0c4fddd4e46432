package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emckit/go-emc/rest"
	"github.com/emckit/go-emc/transport"
)

// tokenServer is a fake token endpoint. handler may be replaced per test.
func tokenServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *transport.HTTPTransport) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server, transport.NewHTTPTransport()
}

func TestSession_Authenticate_DomainCredentials(t *testing.T) {
	var gotPath string
	var gotBody map[string]string
	server, tr := tokenServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_, _ = w.Write([]byte(`{"access_token":"tok-1"}`))
	})

	creds := Credentials{Host: "emc", Username: "op@corp.example.com", Password: "secret"}
	session := NewSession(creds, DomainCredentials{}, tr, server.URL)

	assert.False(t, session.Authenticated())
	require.NoError(t, session.Authenticate(context.Background()))

	assert.True(t, session.Authenticated())
	assert.Equal(t, "tok-1", session.Token())
	assert.Equal(t, "Bearer tok-1", session.AuthorizationHeader())
	assert.Equal(t, PathWindowsCredentials, gotPath)
	assert.Equal(t, "op@corp.example.com", gotBody["Upn"])
	assert.Equal(t, "secret", gotBody["Password"])
}

func TestSession_Authenticate_ClientCredentials(t *testing.T) {
	server, tr := tokenServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, PathToken, r.URL.Path)
		_, _ = w.Write([]byte(`{"access_token":"tok-cc"}`))
	})

	creds := Credentials{Host: "emc", ClientID: "svc", ClientSecret: "secret"}
	session := NewSession(creds, ClientCredentialsGrant{}, tr, server.URL)

	require.NoError(t, session.Authenticate(context.Background()))
	assert.Equal(t, "tok-cc", session.Token())
}

func TestSession_Authenticate_ServerRejection(t *testing.T) {
	server, tr := tokenServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"Code":4010,"Message":"invalid credentials"}`))
	})

	creds := Credentials{Host: "emc", Username: "op", Password: "wrong"}
	session := NewSession(creds, PasswordGrant{}, tr, server.URL)

	err := session.Authenticate(context.Background())
	require.Error(t, err)

	apiErr, ok := rest.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, 4010, apiErr.Code)
	assert.Equal(t, "invalid credentials", apiErr.Message)
	assert.False(t, session.Authenticated(), "session must stay unauthenticated on rejection")
}

func TestSession_Authenticate_MissingAccessToken(t *testing.T) {
	server, tr := tokenServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"token_type":"Bearer"}`))
	})

	creds := Credentials{Host: "emc", Username: "op", Password: "secret"}
	session := NewSession(creds, PasswordGrant{}, tr, server.URL)

	err := session.Authenticate(context.Background())
	assert.ErrorIs(t, err, ErrMissingAccessToken)
	assert.False(t, session.Authenticated())
}

func TestSession_Authenticate_TransportFailure(t *testing.T) {
	tr := transport.NewHTTPTransport(transport.WithTimeout(200 * time.Millisecond))
	creds := Credentials{Host: "emc", Username: "op", Password: "secret"}
	session := NewSession(creds, PasswordGrant{}, tr, "http://localhost:1")

	err := session.Authenticate(context.Background())
	require.Error(t, err)

	apiErr, ok := rest.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Code)
}

// TestSession_FailedReauthKeepsToken verifies that a failed refresh leaves
// the previous token in place.
func TestSession_FailedReauthKeepsToken(t *testing.T) {
	var fail atomic.Bool
	server, tr := tokenServer(t, func(w http.ResponseWriter, _ *http.Request) {
		if fail.Load() {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{"access_token":"tok-old"}`))
	})

	creds := Credentials{Host: "emc", Username: "op", Password: "secret"}
	session := NewSession(creds, PasswordGrant{}, tr, server.URL)
	require.NoError(t, session.Authenticate(context.Background()))

	fail.Store(true)
	require.Error(t, session.Reauthenticate(context.Background()))
	assert.Equal(t, "tok-old", session.Token())
}

// TestSession_Reauthenticate_SingleFlight verifies that concurrent refreshes
// collapse into one token request.
func TestSession_Reauthenticate_SingleFlight(t *testing.T) {
	var requests atomic.Int32
	release := make(chan struct{})
	server, tr := tokenServer(t, func(w http.ResponseWriter, _ *http.Request) {
		requests.Add(1)
		<-release
		_, _ = w.Write([]byte(`{"access_token":"tok-shared"}`))
	})

	creds := Credentials{Host: "emc", Username: "op", Password: "secret"}
	session := NewSession(creds, PasswordGrant{}, tr, server.URL)

	const callers = 8
	var wg sync.WaitGroup
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = session.Reauthenticate(context.Background())
		}(i)
	}

	// Let all goroutines pile up on the in-flight refresh, then release it.
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	for i, err := range errs {
		require.NoErrorf(t, err, "caller %d", i)
	}
	assert.Equal(t, int32(1), requests.Load(), "concurrent refreshes must share one token request")
	assert.Equal(t, "tok-shared", session.Token())
}

// TestSession_GrantIsRecorded verifies the session keeps the grant that
// produced its token.
func TestSession_GrantIsRecorded(t *testing.T) {
	session := NewSession(Credentials{Host: "emc"}, ClientCredentialsGrant{}, transport.NewHTTPTransport(), "http://emc")
	assert.Equal(t, "client_credentials", session.Grant().Name())
}

// TestSession_GrantValidationBeforeNetwork verifies that incomplete
// credentials fail without touching the network.
func TestSession_GrantValidationBeforeNetwork(t *testing.T) {
	var requests atomic.Int32
	server, tr := tokenServer(t, func(w http.ResponseWriter, _ *http.Request) {
		requests.Add(1)
		w.WriteHeader(http.StatusOK)
	})

	session := NewSession(Credentials{Host: "emc"}, PasswordGrant{}, tr, server.URL)
	err := session.Authenticate(context.Background())

	require.Error(t, err)
	var apiErr *rest.APIError
	assert.False(t, errors.As(err, &apiErr), "credential validation is not an API error")
	assert.Equal(t, int32(0), requests.Load(), "no request may be sent for invalid credentials")
}
