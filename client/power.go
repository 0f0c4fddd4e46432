package client

import "context"

// Out-of-band power operation paths. Each accepts a body of {EndpointId}.
const (
	pathPowerOn    = "/oob/powerOn"
	pathPowerOff   = "/oob/powerOff"
	pathHibernate  = "/oob/hibernate"
	pathSleep      = "/oob/sleep"
	pathBootToBIOS = "/oob/bootToBios"
)

// powerRequest is the body for every OOB power operation.
type powerRequest struct {
	EndpointID string `json:"EndpointId"`
}

// oobPost posts an out-of-band operation for the given endpoint.
func (c *Client) oobPost(ctx context.Context, path, endpointID string) error {
	if endpointID == "" {
		return ErrEmptyEndpointID
	}
	_, err := c.exec.Post(ctx, path, powerRequest{EndpointID: endpointID})
	return err
}

// PowerOn powers an endpoint on through its out-of-band controller.
func (c *Client) PowerOn(ctx context.Context, endpointID string) error {
	return c.oobPost(ctx, pathPowerOn, endpointID)
}

// PowerOff powers an endpoint off through its out-of-band controller.
func (c *Client) PowerOff(ctx context.Context, endpointID string) error {
	return c.oobPost(ctx, pathPowerOff, endpointID)
}

// Hibernate puts an endpoint into hibernation.
func (c *Client) Hibernate(ctx context.Context, endpointID string) error {
	return c.oobPost(ctx, pathHibernate, endpointID)
}

// Sleep puts an endpoint to sleep.
func (c *Client) Sleep(ctx context.Context, endpointID string) error {
	return c.oobPost(ctx, pathSleep, endpointID)
}

// BootToBIOS reboots an endpoint into its BIOS setup screen.
func (c *Client) BootToBIOS(ctx context.Context, endpointID string) error {
	return c.oobPost(ctx, pathBootToBIOS, endpointID)
}
