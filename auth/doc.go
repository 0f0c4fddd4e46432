// Package auth provides credential handling and token acquisition for the
// EMC API.
//
// # Supported Grants
//
//   - Domain credentials: POST to /accessTokens/getUsingWindowsCredentials
//     with the user's UPN and password
//   - OAuth password grant: POST to /token with username and password
//   - OAuth client-credentials grant: POST to /token with client ID and secret
//
// Exactly one grant is active per session. The session records the grant
// that produced its token and always reuses that same grant when the token
// expires; selecting domain credentials and an OAuth grant type at once is
// a configuration error caught before any network call.
//
// # Usage
//
//	grant, err := auth.SelectGrant(false, auth.GrantClientCredentials)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	session := auth.NewSession(auth.Credentials{
//	    Host:         "emc.example.com",
//	    ClientID:     "svc-inventory",
//	    ClientSecret: "secret",
//	}, grant, tr, "https://emc.example.com/api")
//	if err := session.Authenticate(ctx); err != nil {
//	    log.Fatal(err)
//	}
package auth
