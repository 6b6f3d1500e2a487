package user

import (
	"context"

	"yatube/internal/core/user"
)

// UserRepository stores and looks up users.
type UserRepository interface {
	Create(ctx context.Context, user *user.User) (*user.User, error)
	FindByID(ctx context.Context, id string) (*user.User, error)
	FindByUsername(ctx context.Context, username string) (*user.User, error)
}

type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expiresAt"`
}

type UserDTO struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

func ToDTO(u *user.User) *UserDTO {
	return &UserDTO{
		ID:        u.ID.String(),
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}
