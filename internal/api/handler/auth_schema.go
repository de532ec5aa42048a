package handler

import "github.com/UtsavYadav1/empowerher/internal/core/domain"

type registerRequest struct {
	Name     string `json:"name"     validate:"required"`
	Phone    string `json:"phone"    validate:"required"`
	Email    string `json:"email"    validate:"omitempty,email"`
	Password string `json:"password" validate:"required,min=6"`
	Village  string `json:"village"`
}

type loginRequest struct {
	// Phone and Email are alternatives; exactly one identifies the account.
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Password string `json:"password" validate:"required"`
}

// userSnapshot is the denormalized user object clients persist alongside the
// token (the auth_user key). Pages read role and village from this copy, so
// it carries everything the client-side gate needs.
type userSnapshot struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Phone    string      `json:"phone"`
	Email    string      `json:"email,omitempty"`
	Role     domain.Role `json:"role"`
	Village  string      `json:"village,omitempty"`
	Verified bool        `json:"verified"`
}

func toSnapshot(u *domain.User) userSnapshot {
	return userSnapshot{
		ID:       u.ID,
		Name:     u.Name,
		Phone:    u.Phone,
		Email:    u.Email,
		Role:     u.Role,
		Village:  u.Village,
		Verified: u.Verified,
	}
}

type loginResponse struct {
	Token string       `json:"token"`
	User  userSnapshot `json:"user"`
	// Dashboard is the post-login destination derived from the role.
	Dashboard string `json:"dashboard"`
}
