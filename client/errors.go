package client

import "errors"

// Sentinel errors returned by the EMC client before any request is sent.
var (
	ErrEmptyEndpointID = errors.New("emc: endpoint ID cannot be empty")
	ErrEmptyTenantID   = errors.New("emc: tenant ID cannot be empty")
	ErrEmptyUserID     = errors.New("emc: user ID cannot be empty")
	ErrNilProfile      = errors.New("emc: provisioning profile cannot be nil")
)
