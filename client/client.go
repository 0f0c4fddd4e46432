package client

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/emckit/go-emc/auth"
	"github.com/emckit/go-emc/rest"
	"github.com/emckit/go-emc/transport"
)

// validate checks Config struct tags. Shared; validator instances cache
// struct metadata.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Config holds configuration for an EMC client.
type Config struct {
	// Host is the EMC server host name.
	Host string `validate:"required"`

	// Port is the API port. Zero uses the scheme default.
	Port int `validate:"gte=0,lte=65535"`

	// UseTLS enables HTTPS transport.
	UseTLS bool

	// InsecureSkipVerify skips TLS certificate verification.
	// WARNING: Only use for testing.
	InsecureSkipVerify bool

	// Timeout is the per-request timeout.
	Timeout time.Duration `validate:"gte=0"`

	// Proxy is the outbound proxy: empty for environment defaults,
	// "direct" to disable, or an explicit proxy URL.
	Proxy string

	// BasePath is the API prefix on the server (default: /api).
	BasePath string

	// UseDomainCredentials authenticates with the user's Windows
	// credentials instead of an OAuth grant.
	UseDomainCredentials bool

	// GrantType selects the OAuth grant when domain credentials are not
	// used. Must be empty in domain mode.
	GrantType auth.GrantType `validate:"omitempty,oneof=password client_credentials"`

	// Username is the account principal (domain mode expects a UPN).
	Username string

	// Password is the account password.
	Password string

	// ClientID identifies the OAuth client (client-credentials grant).
	ClientID string

	// ClientSecret is the OAuth client secret.
	ClientSecret string

	// Logger receives debug-level request logs. Nil disables logging.
	Logger *slog.Logger
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		UseTLS:   true,
		Timeout:  transport.DefaultTimeout,
		BasePath: "/api",
	}
}

// Validate checks that the configuration is valid. Field shapes are checked
// with struct tags; the grant mode combination is checked by
// auth.SelectGrant so the invalid combinations surface as the auth
// package's sentinel errors.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("client: invalid config: %w", err)
	}
	if _, err := auth.SelectGrant(c.UseDomainCredentials, c.GrantType); err != nil {
		return err
	}
	return nil
}

// Client is a high-level EMC API client.
//
// A Client holds exactly one session token. It is safe for concurrent use;
// concurrent calls that hit token expiry share a single reauthentication.
type Client struct {
	config    Config
	baseURL   string
	transport *transport.HTTPTransport
	session   *auth.Session
	exec      *rest.Executor
}

// New creates a new EMC client.
func New(cfg Config) (*Client, error) {
	if cfg.BasePath == "" {
		cfg.BasePath = "/api"
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = transport.DefaultTimeout
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	grant, err := auth.SelectGrant(cfg.UseDomainCredentials, cfg.GrantType)
	if err != nil {
		return nil, err
	}

	// Build the base URL
	scheme := "http"
	if cfg.UseTLS {
		scheme = "https"
	}
	hostPort := cfg.Host
	if cfg.Port != 0 {
		hostPort = fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	}
	baseURL := fmt.Sprintf("%s://%s%s", scheme, hostPort, cfg.BasePath)

	tr := transport.NewHTTPTransport(
		transport.WithTimeout(cfg.Timeout),
		transport.WithInsecureSkipVerify(cfg.InsecureSkipVerify),
		transport.WithProxy(cfg.Proxy),
	)

	creds := auth.Credentials{
		Host:         cfg.Host,
		Username:     cfg.Username,
		Password:     cfg.Password,
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
	}
	session := auth.NewSession(creds, grant, tr, baseURL)

	return &Client{
		config:    cfg,
		baseURL:   baseURL,
		transport: tr,
		session:   session,
		exec:      rest.NewExecutor(tr, session, baseURL, cfg.Logger),
	}, nil
}

// BaseURL returns the resolved API base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Session returns the session holding the client's token.
func (c *Client) Session() *auth.Session {
	return c.session
}

// Authenticate obtains the session token using the configured grant.
// Calling it up front surfaces credential problems early; otherwise the
// first 401 triggers the same flow implicitly.
func (c *Client) Authenticate(ctx context.Context) error {
	return c.session.Authenticate(ctx)
}

// Close releases idle transport connections.
func (c *Client) Close() {
	c.transport.CloseIdleConnections()
}
