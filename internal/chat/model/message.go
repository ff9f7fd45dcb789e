package model

import (
	"time"

	"github.com/google/uuid"
)

// Message is immutable once created.
type Message struct {
	ID uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`

	ChatID uuid.UUID `bun:",notnull,type:uuid"`
	UserID uuid.UUID `bun:",notnull,type:uuid"`

	Text string `bun:",notnull"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
