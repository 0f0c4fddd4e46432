package client

import "context"

// ProvisionAMT activates Intel AMT on an endpoint using the given profile.
func (c *Client) ProvisionAMT(ctx context.Context, profile *AMTProfile) error {
	if profile == nil {
		return ErrNilProfile
	}
	if profile.EndpointID == "" {
		return ErrEmptyEndpointID
	}

	_, err := c.exec.Post(ctx, "/amt/provision", profile)
	return err
}
