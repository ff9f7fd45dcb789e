package user

import (
	"context"

	"github.com/google/uuid"
)

type UserUsecase interface {
	// Register a new user with name + email + password
	Register(ctx context.Context, cmd RegisterCommand) (*UserDTO, error)

	// Login verifies credentials, marks the user online and issues a token
	Login(ctx context.Context, cmd LoginCommand) (*LoginResponse, error)

	// Logout marks the user offline
	Logout(ctx context.Context, userID uuid.UUID) error

	GetProfile(ctx context.Context, userID uuid.UUID) (*ProfileDTO, error)
	ListUsers(ctx context.Context) ([]UserDTO, error)
	GetUser(ctx context.Context, id uuid.UUID) (*ProfileDTO, error)
	UpdateUser(ctx context.Context, id uuid.UUID, cmd UpdateUserCommand) (*UserDTO, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error

	UpdateLocation(ctx context.Context, userID uuid.UUID, lat, lng float64) (*LocationDTO, error)
	SetOnlineStatus(ctx context.Context, userID uuid.UUID, online bool) error

	// Home returns the caller's profile plus nearby online users. The
	// nearby list is empty when the caller has no location.
	Home(ctx context.Context, userID uuid.UUID) (*HomeDTO, error)
}
