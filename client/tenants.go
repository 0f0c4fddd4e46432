package client

import (
	"context"
	"encoding/json"
	"fmt"
)

// ListTenants returns all tenants visible to the authenticated account.
func (c *Client) ListTenants(ctx context.Context) ([]Tenant, error) {
	data, err := c.exec.Get(ctx, "/tenants")
	if err != nil {
		return nil, err
	}

	var tenants []Tenant
	if err := json.Unmarshal(data, &tenants); err != nil {
		return nil, fmt.Errorf("emc: failed to parse tenant list: %w (body: %s)", err, truncatePreview(data))
	}

	return tenants, nil
}

// GetTenant returns a single tenant by ID.
func (c *Client) GetTenant(ctx context.Context, tenantID string) (*Tenant, error) {
	if tenantID == "" {
		return nil, ErrEmptyTenantID
	}

	data, err := c.exec.Get(ctx, "/tenants/"+tenantID)
	if err != nil {
		return nil, err
	}

	var tenant Tenant
	if err := json.Unmarshal(data, &tenant); err != nil {
		return nil, fmt.Errorf("emc: failed to parse tenant: %w (body: %s)", err, truncatePreview(data))
	}

	return &tenant, nil
}
