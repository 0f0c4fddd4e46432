package client

import (
	"context"
	"encoding/json"
	"fmt"
)

// GetHardwareInfo returns the hardware inventory for an endpoint.
func (c *Client) GetHardwareInfo(ctx context.Context, endpointID string) (*HardwareInfo, error) {
	if endpointID == "" {
		return nil, ErrEmptyEndpointID
	}

	data, err := c.exec.Get(ctx, "/endpoints/"+endpointID+"/hardwareInfo")
	if err != nil {
		return nil, err
	}

	var info HardwareInfo
	if err := json.Unmarshal(data, &info); err != nil {
		return nil, fmt.Errorf("emc: failed to parse hardware info: %w (body: %s)", err, truncatePreview(data))
	}

	return &info, nil
}
