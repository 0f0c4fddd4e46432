package auth

import (
	"errors"
	"fmt"
)

// Token endpoint paths, relative to the API base URL.
const (
	// PathWindowsCredentials accepts a UPN/password pair validated against
	// the directory.
	PathWindowsCredentials = "/accessTokens/getUsingWindowsCredentials"

	// PathToken is the OAuth token endpoint.
	PathToken = "/token"
)

// GrantType names an OAuth grant flow.
type GrantType string

const (
	// GrantPassword is the OAuth resource-owner-password grant.
	GrantPassword GrantType = "password"

	// GrantClientCredentials is the OAuth client-credentials grant.
	GrantClientCredentials GrantType = "client_credentials"
)

// Grant is one strategy for obtaining a bearer token. Each grant owns the
// token endpoint path and the wire shape of its request body.
type Grant interface {
	// Name returns the grant name for logging and errors.
	Name() string

	// TokenRequest returns the token endpoint path and request body for
	// the given credentials.
	TokenRequest(creds Credentials) (path string, body any, err error)
}

// SelectGrant resolves the authentication mode into a concrete grant.
//
// The two invalid combinations are rejected here, before any network call:
// no grant type without domain credentials, and a grant type alongside
// domain credentials.
func SelectGrant(useDomainCredentials bool, grantType GrantType) (Grant, error) {
	if useDomainCredentials {
		if grantType != "" {
			return nil, ErrAmbiguousGrant
		}
		return DomainCredentials{}, nil
	}

	switch grantType {
	case "":
		return nil, ErrGrantRequired
	case GrantPassword:
		return PasswordGrant{}, nil
	case GrantClientCredentials:
		return ClientCredentialsGrant{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownGrant, grantType)
	}
}

// DomainCredentials obtains a token by validating a Windows UPN and password
// against the directory.
type DomainCredentials struct{}

// Name returns the grant name.
func (DomainCredentials) Name() string { return "windows_credentials" }

// TokenRequest implements Grant.
func (DomainCredentials) TokenRequest(creds Credentials) (string, any, error) {
	if creds.Username == "" || creds.Password == "" {
		return "", nil, errors.New("auth: domain credentials require username and password")
	}
	body := struct {
		Upn      string `json:"Upn"`
		Password string `json:"Password"`
	}{
		Upn:      creds.Username,
		Password: creds.Password,
	}
	return PathWindowsCredentials, body, nil
}

// PasswordGrant obtains a token through the OAuth resource-owner-password
// flow.
type PasswordGrant struct{}

// Name returns the grant name.
func (PasswordGrant) Name() string { return string(GrantPassword) }

// TokenRequest implements Grant.
func (PasswordGrant) TokenRequest(creds Credentials) (string, any, error) {
	if creds.Username == "" || creds.Password == "" {
		return "", nil, errors.New("auth: password grant requires username and password")
	}
	body := struct {
		GrantType string `json:"grant_type"`
		Username  string `json:"username"`
		Password  string `json:"password"`
	}{
		GrantType: string(GrantPassword),
		Username:  creds.Username,
		Password:  creds.Password,
	}
	return PathToken, body, nil
}

// ClientCredentialsGrant obtains a token through the OAuth
// client-credentials flow.
type ClientCredentialsGrant struct{}

// Name returns the grant name.
func (ClientCredentialsGrant) Name() string { return string(GrantClientCredentials) }

// TokenRequest implements Grant.
func (ClientCredentialsGrant) TokenRequest(creds Credentials) (string, any, error) {
	if creds.ClientID == "" || creds.ClientSecret == "" {
		return "", nil, errors.New("auth: client-credentials grant requires client ID and secret")
	}
	body := struct {
		GrantType    string `json:"grant_type"`
		ClientID     string `json:"client_id"`
		ClientSecret string `json:"client_secret"`
	}{
		GrantType:    string(GrantClientCredentials),
		ClientID:     creds.ClientID,
		ClientSecret: creds.ClientSecret,
	}
	return PathToken, body, nil
}
