package domain

import "context"

// User is the profile of the signed-in account as reported by the API
type User struct {
	ID    ID     `json:"id" validate:"required"`
	Name  string `json:"name"`
	Email string `json:"email" validate:"omitempty,email"`
}

// Credentials are exchanged for a bearer token at login
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthRepository is implemented by the remote API client
type AuthRepository interface {
	Login(ctx context.Context, creds Credentials) (token string, user *User, err error)
	Logout(ctx context.Context, token string) error
	Me(ctx context.Context, token string) (*User, error)
}
