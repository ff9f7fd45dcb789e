package model

import (
	"time"

	"github.com/google/uuid"
)

type Kind string

const (
	KindGeneral Kind = "GENERAL"
	KindPrivate Kind = "PRIVATE"
)

type Chat struct {
	ID uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`

	Kind Kind `bun:",notnull"`

	// IsActive is cleared exactly once, when the last member of a
	// private chat leaves. A deactivated chat is never reused.
	IsActive bool `bun:",notnull,default:true"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}

func (c *Chat) IsPrivate() bool {
	return c != nil && c.Kind == KindPrivate
}
