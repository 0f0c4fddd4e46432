package auth

import "errors"

// Configuration errors detected before any network call.
var (
	// ErrGrantRequired is returned when domain credentials are disabled and
	// no OAuth grant type was supplied.
	ErrGrantRequired = errors.New("auth: a grant type is required when domain credentials are not used")

	// ErrAmbiguousGrant is returned when domain credentials and an OAuth
	// grant type are both supplied.
	ErrAmbiguousGrant = errors.New("auth: domain credentials and an OAuth grant type are mutually exclusive")

	// ErrUnknownGrant is returned for a grant type the API does not support.
	ErrUnknownGrant = errors.New("auth: unknown grant type")

	// ErrMissingAccessToken is returned when the token endpoint answered
	// with a success status but no access_token field. A malformed token
	// response is an authentication failure, never silently accepted.
	ErrMissingAccessToken = errors.New("auth: token response did not contain an access token")
)

// Credentials holds the principal and secrets used to obtain tokens.
// Fields are fixed at session creation and never mutated.
type Credentials struct {
	// Host is the EMC server host name.
	Host string

	// Username is the account principal. Domain mode expects a UPN
	// (user@domain).
	Username string

	// Password is the account password (domain mode and password grant).
	Password string

	// ClientID identifies the OAuth client (client-credentials grant).
	ClientID string

	// ClientSecret is the OAuth client secret (client-credentials grant).
	ClientSecret string
}

// Validate checks that fields required by every grant are populated.
// Grant-specific requirements are checked by the grant itself.
func (c *Credentials) Validate() error {
	if c.Host == "" {
		return errors.New("auth: host is required")
	}
	return nil
}
