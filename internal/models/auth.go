package models

// LoginRequest represents the login request payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// SignupRequest represents the signup request payload
type SignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

// ForgotPasswordRequest starts a password reset flow
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required"`
}

// ResetPasswordRequest completes a password reset. Password and
// ConfirmPassword must match; that check runs before any API call.
type ResetPasswordRequest struct {
	Token           string `json:"token" binding:"required"`
	Password        string `json:"password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

// ChangePasswordRequest changes the signed-in user's password
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=6"`
}

// LoginResponse is the remote API's answer to a successful login
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// SessionResponse describes the console session for the shell
type SessionResponse struct {
	User            *User `json:"user"`
	Loading         bool  `json:"loading"`
	Authenticated   bool  `json:"authenticated"`
	SidebarExpanded bool  `json:"sidebar_expanded"`
}
