// Package emc provides a Go client for the Endpoint Management Center (EMC)
// REST API: endpoint inventory, hardware information, and out-of-band (OOB)
// power operations.
//
// The library authenticates with either Windows domain credentials or an
// OAuth grant (resource-owner password or client credentials), holds the
// resulting bearer token, and transparently re-authenticates and replays a
// request exactly once when the server reports the token expired.
//
// # Architecture
//
// The library is organized into layers:
//
//	┌─────────────────────────────────────────────────────────┐
//	│  client/       High-level client + resource facades     │
//	├─────────────────────────────────────────────────────────┤
//	│  rest/         Authenticated request executor           │
//	├─────────────────────────────────────────────────────────┤
//	│  auth/         Grant strategies + session token         │
//	├─────────────────────────────────────────────────────────┤
//	│  transport/    HTTP/HTTPS JSON transport                │
//	└─────────────────────────────────────────────────────────┘
//
// # Quick Start
//
//	cfg := client.DefaultConfig()
//	cfg.Host = "emc.example.com"
//	cfg.Username = "operator@corp.example.com"
//	cfg.Password = "password"
//	cfg.UseDomainCredentials = true
//
//	c, err := client.New(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ctx := context.Background()
//	if err := c.Authenticate(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
//	endpoints, err := c.ListEndpoints(ctx, nil)
package emc
