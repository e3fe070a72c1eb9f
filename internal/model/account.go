package model

// Role tags the three account variants.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleTeacher Role = "teacher"
	RoleStudent Role = "student"
)

// Valid reports whether r is one of the three known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleTeacher, RoleStudent:
		return true
	}
	return false
}

// Account is the role-independent view of an authenticated identity.
// It carries exactly what the access-control layer resolves from a token:
// who the caller is, which variant they are, and whether they are suspended.
type Account struct {
	ID           int     `json:"id"`
	Role         Role    `json:"role"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	ProfileImage *string `json:"profile_image,omitempty"`
	IsSuspended  bool    `json:"is_suspended"`
}

// LoginRequest is the payload for authenticating any account variant.
// The caller states which roster the credentials belong to; there is no
// cross-roster fallback.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,min=4,max=128"`
	Role     Role   `json:"role" binding:"required,oneof=admin teacher student"`
}

// LoginResponse is returned after a successful login.
type LoginResponse struct {
	Token   string  `json:"token"`
	Account Account `json:"account"`
}

// UpdateProfileRequest is the payload for updating an account's own profile.
// Omitted fields are left unchanged.
type UpdateProfileRequest struct {
	Name  string `form:"name" binding:"omitempty,min=2,max=100"`
	Email string `form:"email" binding:"omitempty,email,max=255"`
}
