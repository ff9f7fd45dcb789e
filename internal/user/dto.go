package user

import (
	"time"

	"github.com/google/uuid"
)

// NOTE: commands travel from handler to usecase
// Note: DTO travels from usecase to handler
// Input commands
type RegisterCommand struct {
	Name     string
	Email    string
	Password string
}

type LoginCommand struct {
	Email    string
	Password string
}

type UpdateUserCommand struct {
	Name     *string
	Email    *string
	Password *string
}

// Output DTOs
type UserDTO struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Email  string    `json:"email"`
	Online bool      `json:"online"`
}

type ProfileDTO struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	Online       bool       `json:"online"`
	Lat          *float64   `json:"lat"`
	Lng          *float64   `json:"lng"`
	LastActivity *time.Time `json:"lastActivity,omitempty"`
}

type NearbyUserDTO struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Online     bool      `json:"online"`
	DistanceKm float64   `json:"distance"`
}

type HomeDTO struct {
	User        ProfileDTO      `json:"user"`
	NearbyUsers []NearbyUserDTO `json:"nearbyUsers"`
	NearbyCount int             `json:"nearbyCount"`
}

type LocationDTO struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type LoginResponse struct {
	AccessToken string   `json:"access_token"`
	ExpiresIn   int      `json:"expires_in"`
	TokenType   string   `json:"token_type"`
	User        *UserDTO `json:"user"`
}
