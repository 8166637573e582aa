package models

// Role is the access level assigned to a dashboard account
type Role string

const (
	RoleAdmin            Role = "admin"
	RoleFinanceManager   Role = "finance_manager"
	RoleOperationManager Role = "operation_manager"
	RoleUser             Role = "user"
)

// Valid reports whether the role is one of the known access levels
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleFinanceManager, RoleOperationManager, RoleUser:
		return true
	}
	return false
}

// User represents a dashboard account as served by the remote API
type User struct {
	ID          string `json:"user_id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone,omitempty"`
	Role        Role   `json:"role"`
	IsSuspended Flag   `json:"is_suspended"`
}

// RowID implements listview.Row
func (u User) RowID() string {
	return u.ID
}

// Field implements listview.Row
func (u User) Field(key string) any {
	switch key {
	case "user_id":
		return u.ID
	case "name":
		return u.Name
	case "email":
		return u.Email
	case "phone":
		return u.Phone
	case "role":
		return string(u.Role)
	case "status":
		if u.IsSuspended {
			return "terminated"
		}
		return "active"
	}
	return nil
}

// UpdateUserRequest is the payload for editing a user record
type UpdateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Role  Role   `json:"role"`
}

// TerminateUserRequest toggles a user's suspension flag
type TerminateUserRequest struct {
	IsSuspended *bool `json:"isSuspended" binding:"required"`
}

// AssignRoleRequest assigns a new role to a user
type AssignRoleRequest struct {
	NewRole Role `json:"newRole" binding:"required"`
}

// UpdateProfileRequest updates the signed-in user's own profile
type UpdateProfileRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}
