package upstream

import (
	"context"
	"net/http"

	"github.com/creatorsmela/admin-console/internal/models"
)

// Login exchanges credentials for a bearer token and the user record
func (c *Client) Login(ctx context.Context, email, password string) (*models.LoginResponse, error) {
	var resp models.LoginResponse
	body := map[string]string{"email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/auth/login", "", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Signup registers a new account
func (c *Client) Signup(ctx context.Context, req *models.SignupRequest) error {
	return c.do(ctx, http.MethodPost, "/auth/signup", "", req, nil)
}

// ForgotPassword asks the API to mail a reset token
func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	return c.do(ctx, http.MethodPost, "/auth/forgot-password", "", body, nil)
}

// ResetPassword completes a password reset using the mailed token
func (c *Client) ResetPassword(ctx context.Context, token, password string) error {
	body := map[string]string{"token": token, "password": password}
	return c.do(ctx, http.MethodPost, "/auth/reset-password", "", body, nil)
}

// ChangePassword changes the signed-in user's password
func (c *Client) ChangePassword(ctx context.Context, token string, req *models.ChangePasswordRequest) error {
	return c.do(ctx, http.MethodPost, "/auth/change-password", token, req, nil)
}
