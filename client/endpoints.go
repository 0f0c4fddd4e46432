package client

import (
	"context"
	"encoding/json"
	"fmt"
)

// truncatePreview returns a truncated body preview for error messages.
func truncatePreview(data []byte) string {
	s := string(data)
	if len(s) > 200 {
		return s[:200] + "..."
	}
	return s
}

// ListEndpoints returns the endpoints known to the server.
//
// The filter narrows the request server-side via the query string; the
// predicates narrow the result client-side after a successful fetch and are
// never sent to the server.
func (c *Client) ListEndpoints(ctx context.Context, filter *EndpointFilter, where ...func(Endpoint) bool) ([]Endpoint, error) {
	data, err := c.exec.Get(ctx, "/endpoints"+filter.queryString())
	if err != nil {
		return nil, err
	}

	var endpoints []Endpoint
	if err := json.Unmarshal(data, &endpoints); err != nil {
		return nil, fmt.Errorf("emc: failed to parse endpoint list: %w (body: %s)", err, truncatePreview(data))
	}

	return applyPredicates(endpoints, where), nil
}

// GetEndpoint returns a single endpoint by ID. A 404 from the server
// surfaces as an APIError, never as an empty endpoint.
func (c *Client) GetEndpoint(ctx context.Context, endpointID string) (*Endpoint, error) {
	if endpointID == "" {
		return nil, ErrEmptyEndpointID
	}

	data, err := c.exec.Get(ctx, "/endpoints/"+endpointID)
	if err != nil {
		return nil, err
	}

	var endpoint Endpoint
	if err := json.Unmarshal(data, &endpoint); err != nil {
		return nil, fmt.Errorf("emc: failed to parse endpoint: %w (body: %s)", err, truncatePreview(data))
	}

	return &endpoint, nil
}

// DeleteEndpoint removes an endpoint record from the server.
func (c *Client) DeleteEndpoint(ctx context.Context, endpointID string) error {
	if endpointID == "" {
		return ErrEmptyEndpointID
	}

	_, err := c.exec.Delete(ctx, "/endpoints/"+endpointID)
	return err
}
