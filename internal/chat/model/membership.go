package model

import (
	"time"

	"github.com/google/uuid"
)

type Membership struct {
	ID uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`

	ChatID uuid.UUID `bun:",notnull,type:uuid"`
	UserID uuid.UUID `bun:",notnull,type:uuid"`

	JoinedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`

	// LeftAt is nil while the membership is open. Leaving sets it;
	// re-joining clears it on the same row instead of inserting.
	LeftAt *time.Time `bun:",nullzero"`

	// Unique index in schema bootstrap:
	// CREATE UNIQUE INDEX idx_open_membership ON memberships(chat_id, user_id) WHERE left_at IS NULL;
}

func (m *Membership) IsOpen() bool {
	return m != nil && m.LeftAt == nil
}
