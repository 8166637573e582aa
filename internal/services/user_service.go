package services

import (
	"context"
	"fmt"

	"github.com/creatorsmela/admin-console/internal/listview"
	"github.com/creatorsmela/admin-console/internal/models"
	"github.com/creatorsmela/admin-console/internal/upstream"
)

// UserService orchestrates account management against the remote API.
// Role and suspension changes go through their own endpoints, separate
// from plain record edits.
type UserService struct {
	client *upstream.Client
}

// NewUserService creates a user service
func NewUserService(client *upstream.Client) *UserService {
	return &UserService{client: client}
}

// Columns declares the users table
func (s *UserService) Columns() []listview.Column {
	return []listview.Column{
		{Key: "name", Label: "Name"},
		{Key: "email", Label: "Email"},
		{Key: "phone", Label: "Phone"},
		{Key: "role", Label: "Role"},
		{Key: "status", Label: "Status"},
	}
}

// FilterKinds declares the filterable user fields
func (s *UserService) FilterKinds() map[string]listview.FilterKind {
	return map[string]listview.FilterKind{
		"name":   listview.Text,
		"email":  listview.Text,
		"role":   listview.Enum,
		"status": listview.Enum,
	}
}

// List fetches the full user collection
func (s *UserService) List(ctx context.Context, token string) ([]listview.Row, error) {
	users, err := s.client.FetchAllUsers(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}
	rows := make([]listview.Row, len(users))
	for i, u := range users {
		rows[i] = u
	}
	return rows, nil
}

// Update edits a user record
func (s *UserService) Update(ctx context.Context, token, id string, req *models.UpdateUserRequest) error {
	if req.Role != "" && !req.Role.Valid() {
		return fmt.Errorf("invalid role: %q", req.Role)
	}
	return s.client.UpdateUser(ctx, token, id, req)
}

// SetSuspended terminates or reactivates an account
func (s *UserService) SetSuspended(ctx context.Context, token, id string, isSuspended bool) error {
	return s.client.TerminateUser(ctx, token, id, isSuspended)
}

// AssignRole changes an account's role
func (s *UserService) AssignRole(ctx context.Context, token, id string, role models.Role) error {
	if !role.Valid() {
		return fmt.Errorf("invalid role: %q", role)
	}
	return s.client.AssignRole(ctx, token, id, role)
}
