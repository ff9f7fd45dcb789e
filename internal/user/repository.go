package user

import (
	"context"

	"github.com/google/uuid"

	User "nearbychat/internal/user/model"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *User.User) error
	GetUserByID(ctx context.Context, id uuid.UUID) (*User.User, error)
	GetUserByEmail(ctx context.Context, email string) (*User.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	ListUsers(ctx context.Context) ([]User.User, error)
	UpdateUser(ctx context.Context, user *User.User) error
	DeleteUser(ctx context.Context, id uuid.UUID) error

	// UpdateLocation sets both coordinates and refreshes last_activity.
	UpdateLocation(ctx context.Context, userID uuid.UUID, lat, lng float64) error
	UpdateOnlineStatus(ctx context.Context, userID uuid.UUID, online bool) error

	// FindNearby returns online, located users within radiusKm of the
	// reference point, nearest first (id order breaks ties). excludeID
	// may be uuid.Nil to exclude nobody.
	FindNearby(ctx context.Context, lat, lng, radiusKm float64, excludeID uuid.UUID) ([]User.NearbyUser, error)
}
