package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/emckit/go-emc/transport"
)

// TokenSource supplies the bearer token for outbound requests and knows how
// to obtain a fresh one when the server reports the current token expired.
// Reauthenticate must reuse the grant that produced the previous token.
type TokenSource interface {
	// AuthorizationHeader returns the Authorization header value for the
	// current token, or "" when unauthenticated.
	AuthorizationHeader() string

	// Reauthenticate obtains a fresh token using the recorded grant.
	Reauthenticate(ctx context.Context) error
}

// Executor performs authenticated API calls against a single EMC server.
//
// Each call is a sequential chain of at most two round-trips: the original
// attempt and, after a 401 followed by a successful reauthentication, one
// replay. There is no backoff and no retry for non-auth failures.
type Executor struct {
	transport *transport.HTTPTransport
	tokens    TokenSource
	baseURL   string
	logger    *slog.Logger
}

// NewExecutor creates an executor for the given base URL. The logger may be
// nil, in which case request logging is disabled.
func NewExecutor(tr *transport.HTTPTransport, tokens TokenSource, baseURL string, logger *slog.Logger) *Executor {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Executor{
		transport: tr,
		tokens:    tokens,
		baseURL:   strings.TrimSuffix(baseURL, "/"),
		logger:    logger,
	}
}

// Do performs a single logical API call and returns the raw response body.
//
// Failure modes:
//   - transport failure with no server response: APIError code 500,
//   - 401: one reauthentication + one replay; a second 401 surfaces as an
//     ordinary APIError,
//   - other error statuses: APIError from the body's error envelope,
//   - success status with an embedded error message: APIError (soft error).
func (e *Executor) Do(ctx context.Context, method, path string, body any) ([]byte, error) {
	resp, err := e.send(ctx, method, path, body)
	if err != nil {
		return nil, TransportError(err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		e.logger.Debug("token rejected, reauthenticating", "method", method, "path", path)
		if err := e.tokens.Reauthenticate(ctx); err != nil {
			return nil, err
		}

		// Replay the original request exactly once with the new token.
		// A second 401 falls through the normal error path below, which
		// bounds the retry by construction.
		resp, err = e.send(ctx, method, path, body)
		if err != nil {
			return nil, TransportError(err)
		}
	}

	if !resp.OK() {
		apiErr := ParseAPIError(resp.StatusCode, resp.Status, resp.Body)
		e.logger.Debug("request failed", "method", method, "path", path, "status", resp.StatusCode, "code", apiErr.Code)
		return nil, apiErr
	}

	// A success status can still carry a server-reported error in the body.
	if softErr := parseSoftError(resp.Body); softErr != nil {
		e.logger.Debug("soft error in response body", "method", method, "path", path, "code", softErr.Code)
		return nil, softErr
	}

	e.logger.Debug("request completed", "method", method, "path", path, "status", resp.StatusCode)
	return resp.Body, nil
}

// send issues one round-trip with the current token attached.
func (e *Executor) send(ctx context.Context, method, path string, body any) (*transport.Response, error) {
	header := http.Header{}
	if auth := e.tokens.AuthorizationHeader(); auth != "" {
		header.Set("Authorization", auth)
	}
	header.Set("X-Request-ID", uuid.New().String())

	return e.transport.Do(ctx, method, e.baseURL+path, body, header)
}

// Get performs a GET request.
func (e *Executor) Get(ctx context.Context, path string) ([]byte, error) {
	return e.Do(ctx, http.MethodGet, path, nil)
}

// Post performs a POST request.
func (e *Executor) Post(ctx context.Context, path string, body any) ([]byte, error) {
	return e.Do(ctx, http.MethodPost, path, body)
}

// Put performs a PUT request.
func (e *Executor) Put(ctx context.Context, path string, body any) ([]byte, error) {
	return e.Do(ctx, http.MethodPut, path, body)
}

// Patch performs a PATCH request.
func (e *Executor) Patch(ctx context.Context, path string, body any) ([]byte, error) {
	return e.Do(ctx, http.MethodPatch, path, body)
}

// Delete performs a DELETE request.
func (e *Executor) Delete(ctx context.Context, path string) ([]byte, error) {
	return e.Do(ctx, http.MethodDelete, path, nil)
}
