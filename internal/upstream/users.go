package upstream

import (
	"context"
	"net/http"

	"github.com/creatorsmela/admin-console/internal/models"
)

// FetchProfile returns the user record behind a bearer token
func (c *Client) FetchProfile(ctx context.Context, token string) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodGet, "/users/me", token, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// FetchAllUsers returns the full user collection
func (c *Client) FetchAllUsers(ctx context.Context, token string) ([]models.User, error) {
	var users []models.User
	if err := c.do(ctx, http.MethodGet, "/users", token, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateUser edits a user record
func (c *Client) UpdateUser(ctx context.Context, token, id string, req *models.UpdateUserRequest) error {
	return c.do(ctx, http.MethodPut, "/users/"+id, token, req, nil)
}

// TerminateUser suspends or reactivates a user
func (c *Client) TerminateUser(ctx context.Context, token, id string, isSuspended bool) error {
	body := map[string]bool{"isSuspended": isSuspended}
	return c.do(ctx, http.MethodPut, "/users/"+id+"/terminate", token, body, nil)
}

// AssignRole changes a user's role
func (c *Client) AssignRole(ctx context.Context, token, id string, role models.Role) error {
	body := map[string]models.Role{"newRole": role}
	return c.do(ctx, http.MethodPut, "/users/"+id+"/role", token, body, nil)
}

// UpdateUserProfile updates the signed-in user's own profile
func (c *Client) UpdateUserProfile(ctx context.Context, token string, req *models.UpdateProfileRequest) error {
	return c.do(ctx, http.MethodPost, "/users/update", token, req, nil)
}
