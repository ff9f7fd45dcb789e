package storage

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	chatModels "nearbychat/internal/chat/model"
	userModels "nearbychat/internal/user/model"
)

// Connect opens a bun connection over the postgres wire driver and
// verifies it with a ping.
func Connect(ctx context.Context, dsn string) (*bun.DB, error) {
	connector := pgdriver.NewConnector(pgdriver.WithDSN(dsn))
	sqlDB := sql.OpenDB(connector)
	db := bun.NewDB(sqlDB, pgdialect.New())

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "storage.Connect.Ping: ")
	}
	return db, nil
}

// InitSchema creates the tables and the indexes the queries depend on.
// Safe to run on every start.
func InitSchema(ctx context.Context, db *bun.DB) error {
	tables := []any{
		(*userModels.User)(nil),
		(*chatModels.Chat)(nil),
		(*chatModels.Membership)(nil),
		(*chatModels.Message)(nil),
	}

	for _, t := range tables {
		if _, err := db.NewCreateTable().Model(t).IfNotExists().Exec(ctx); err != nil {
			return errors.Wrapf(err, "storage.InitSchema.CreateTable %T: ", t)
		}
	}

	// One open membership per (chat, user); closed rows may pile up.
	// One general chat for the whole system.
	indexes := []string{
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_open_membership
			ON memberships (chat_id, user_id) WHERE left_at IS NULL`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_single_general_chat
			ON chats (kind) WHERE kind = 'GENERAL'`,
		`CREATE INDEX IF NOT EXISTS idx_messages_chat_created
			ON messages (chat_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_users_location
			ON users (online) WHERE lat IS NOT NULL AND lng IS NOT NULL`,
	}

	for _, ddl := range indexes {
		if _, err := db.ExecContext(ctx, ddl); err != nil {
			return errors.Wrap(err, "storage.InitSchema.CreateIndex: ")
		}
	}
	return nil
}
