package dto

// RegisterRequest is bound from the multipart registration form.
// Field presence is checked by the service so every missing field yields the same 400.
type RegisterRequest struct {
	FullName string `form:"fullName" json:"fullName"`
	Username string `form:"username" json:"username"`
	Email    string `form:"email" json:"email"`
	Password string `form:"password" json:"password"`
}

// UpdateAccountRequest defines the profile fields a user can change.
type UpdateAccountRequest struct {
	FullName string `json:"fullName" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Username string `json:"username" binding:"required"`
}

// ChangePasswordRequest carries the current and the new password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
}
