package dto

// LoginRequest credentials plus the role tab the user logged in from.
// Username and password match case-insensitively; role matches exactly.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"` // "ADMIN" | "STAFF"
}

// UserResponse is a user without credential data.
type UserResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// LoginResponse session token plus the authenticated user.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// ChangePasswordRequest body for POST /api/auth/change-password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// MessageResponse generic operation outcome.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
