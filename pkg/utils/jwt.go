package utils

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"nearbychat/config"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// GenerateJWTToken issues a signed access token carrying the user id.
func GenerateJWTToken(userID uuid.UUID, cfg config.Config) (string, error) {
	expiry := time.Duration(cfg.JWT.ExpiredIn) * time.Hour
	if cfg.JWT.ExpiredIn <= 0 {
		expiry = 72 * time.Hour
	}

	claims := jwt.MapClaims{
		"sub": userID.String(),
		"exp": time.Now().Add(expiry).Unix(),
		"iat": time.Now().Unix(),
		"iss": "nearbychat",
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWT.Secret))
}

// ParseJWTToken validates the token signature and returns the user id claim.
func ParseJWTToken(tokenString string, cfg config.Config) (uuid.UUID, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(cfg.JWT.Secret), nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, ErrInvalidToken
	}
	sub, ok := claims["sub"].(string)
	if !ok {
		return uuid.Nil, ErrInvalidToken
	}

	id, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, ErrInvalidToken
	}
	return id, nil
}
