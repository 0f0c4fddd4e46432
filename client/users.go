package client

import (
	"context"
	"encoding/json"
	"fmt"
)

// ListUsers returns the operator accounts on the server. Predicates narrow
// the result client-side after a successful fetch.
func (c *Client) ListUsers(ctx context.Context, where ...func(User) bool) ([]User, error) {
	data, err := c.exec.Get(ctx, "/users")
	if err != nil {
		return nil, err
	}

	var users []User
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("emc: failed to parse user list: %w (body: %s)", err, truncatePreview(data))
	}

	return applyPredicates(users, where), nil
}

// GetUser returns a single user by ID.
func (c *Client) GetUser(ctx context.Context, userID string) (*User, error) {
	if userID == "" {
		return nil, ErrEmptyUserID
	}

	data, err := c.exec.Get(ctx, "/users/"+userID)
	if err != nil {
		return nil, err
	}

	var user User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, fmt.Errorf("emc: failed to parse user: %w (body: %s)", err, truncatePreview(data))
	}

	return &user, nil
}
