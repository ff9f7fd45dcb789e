package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`

	// Email = unique login identity
	Email string `bun:",unique,notnull"`

	// Name = display name shown in chats
	Name string `bun:",notnull"`

	PasswordHash string `bun:",notnull"`

	Online bool `bun:",notnull,default:false"`

	// Lat and Lng are both set or both nil.
	Lat *float64 `bun:",nullzero"`
	Lng *float64 `bun:",nullzero"`

	LastActivity *time.Time `bun:",nullzero"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}

// HasLocation reports whether the user has a last-known position.
func (u *User) HasLocation() bool {
	return u != nil && u.Lat != nil && u.Lng != nil
}

// NearbyUser pairs a user with the computed distance from a reference
// point. The distance never lives on User itself.
type NearbyUser struct {
	User       *User
	DistanceKm float64
}
