package repository

import (
	"context"
	"database/sql"
	"time"

	Chat "nearbychat/internal/chat/model"
	User "nearbychat/internal/user/model"
	"nearbychat/pkg/logger"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

type ChatRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

var (
	ErrChatNotFound       = errors.New("chat not found")
	ErrGeneralChatMissing = errors.New("general chat not found")
)

func NewChatRepository(db *bun.DB, logger logger.Logger) *ChatRepository {
	return &ChatRepository{
		db:     db,
		logger: &logger,
	}
}

func (r *ChatRepository) GetChatByID(ctx context.Context, id uuid.UUID) (*Chat.Chat, error) {

	chat := new(Chat.Chat)
	err := r.db.NewSelect().Model(chat).Where("id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrChatNotFound
		}
		return nil, errors.Wrap(err, "chatRepo.GetChatByID.Scan: ")
	}
	return chat, nil
}

func (r *ChatRepository) GetGeneralChat(ctx context.Context) (*Chat.Chat, error) {

	chat := new(Chat.Chat)
	err := r.db.NewSelect().
		Model(chat).
		Where("kind = ?", Chat.KindGeneral).
		Order("created_at ASC").
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrGeneralChatMissing
		}
		return nil, errors.Wrap(err, "chatRepo.GetGeneralChat.Scan: ")
	}
	return chat, nil
}

// EnsureGeneralChat reuses the existing general chat when one exists.
// A partial unique index on (kind) WHERE kind = 'GENERAL' makes the
// create race-safe: the loser of a concurrent bootstrap re-reads.
func (r *ChatRepository) EnsureGeneralChat(ctx context.Context) (*Chat.Chat, error) {

	chat, err := r.GetGeneralChat(ctx)
	if err == nil {
		return chat, nil
	}
	if !errors.Is(err, ErrGeneralChatMissing) {
		return nil, err
	}

	chat = &Chat.Chat{Kind: Chat.KindGeneral, IsActive: true}
	_, insertErr := r.db.NewInsert().Model(chat).Returning("*").Exec(ctx)
	if insertErr == nil {
		return chat, nil
	}

	// Concurrent bootstrap may have won the insert.
	if chat, err = r.GetGeneralChat(ctx); err == nil {
		return chat, nil
	}
	return nil, errors.Wrap(insertErr, "chatRepo.EnsureGeneralChat.Insert: ")
}

func (r *ChatRepository) FindPrivateChatBetween(ctx context.Context, userA, userB uuid.UUID) (*Chat.Chat, error) {

	chat := new(Chat.Chat)
	err := r.db.NewSelect().
		Model(chat).
		Join("JOIN memberships AS m1 ON m1.chat_id = chat.id").
		Join("JOIN memberships AS m2 ON m2.chat_id = chat.id").
		Where("chat.kind = ?", Chat.KindPrivate).
		Where("chat.is_active = TRUE").
		Where("m1.user_id = ? AND m1.left_at IS NULL", userA).
		Where("m2.user_id = ? AND m2.left_at IS NULL", userB).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrChatNotFound
		}
		return nil, errors.Wrap(err, "chatRepo.FindPrivateChatBetween.Scan: ")
	}
	return chat, nil
}

func (r *ChatRepository) CreatePrivateChat(ctx context.Context, userA, userB uuid.UUID) (*Chat.Chat, error) {

	chat := &Chat.Chat{Kind: Chat.KindPrivate, IsActive: true}

	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewInsert().Model(chat).Returning("*").Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "createPrivateChat.insertChat")
		}

		memberships := []Chat.Membership{
			{ChatID: chat.ID, UserID: userA},
			{ChatID: chat.ID, UserID: userB},
		}
		_, err = tx.NewInsert().Model(&memberships).Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "createPrivateChat.insertMemberships")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return chat, nil
}

func (r *ChatRepository) FindPrivateChatsForUser(ctx context.Context, userID uuid.UUID) ([]Chat.Chat, error) {

	var chats []Chat.Chat
	err := r.db.NewSelect().
		Model(&chats).
		Join("JOIN memberships AS m ON m.chat_id = chat.id").
		Where("m.user_id = ? AND m.left_at IS NULL", userID).
		Where("chat.kind = ?", Chat.KindPrivate).
		Where("chat.is_active = TRUE").
		Order("chat.created_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "chatRepo.FindPrivateChatsForUser.Scan: ")
	}
	return chats, nil
}

// Join is idempotent: an open membership is returned unchanged, a
// closed one is reopened on the same row, and only when the pair has
// no row at all is a new one inserted.
func (r *ChatRepository) Join(ctx context.Context, userID, chatID uuid.UUID) (*Chat.Membership, error) {

	membership := new(Chat.Membership)

	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		err := tx.NewSelect().
			Model(membership).
			Where("chat_id = ? AND user_id = ?", chatID, userID).
			OrderExpr("(left_at IS NULL) DESC, joined_at DESC").
			Limit(1).
			Scan(ctx)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return errors.Wrap(err, "join.findExisting")
		}

		if err == nil {
			if membership.IsOpen() {
				return nil
			}
			// reopen the closed row
			membership.LeftAt = nil
			membership.JoinedAt = time.Now()
			_, err = tx.NewUpdate().
				Model(membership).
				Column("left_at", "joined_at").
				WherePK().
				Exec(ctx)
			if err != nil {
				return errors.Wrap(err, "join.reopen")
			}
			return nil
		}

		membership = &Chat.Membership{ChatID: chatID, UserID: userID}
		_, err = tx.NewInsert().Model(membership).Returning("*").Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "join.insert")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return membership, nil
}

// Leave tolerates a user leaving twice: closing an already-closed
// membership is a no-op.
func (r *ChatRepository) Leave(ctx context.Context, userID, chatID uuid.UUID) error {

	now := time.Now()
	_, err := r.db.NewUpdate().
		Model(&Chat.Membership{LeftAt: &now}).
		Column("left_at").
		Where("chat_id = ? AND user_id = ? AND left_at IS NULL", chatID, userID).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "chatRepo.Leave.Update: ")
	}
	return nil
}

// LeaveAndMaybeDeactivate recounts open memberships after the leave
// write inside one transaction, so two members leaving at the same
// time cannot both observe a non-empty chat.
func (r *ChatRepository) LeaveAndMaybeDeactivate(ctx context.Context, userID, chatID uuid.UUID) (bool, error) {

	deactivated := false
	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		now := time.Now()
		_, err := tx.NewUpdate().
			Model(&Chat.Membership{LeftAt: &now}).
			Column("left_at").
			Where("chat_id = ? AND user_id = ? AND left_at IS NULL", chatID, userID).
			Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "leave.close")
		}

		count, err := tx.NewSelect().
			Model((*Chat.Membership)(nil)).
			Where("chat_id = ? AND left_at IS NULL", chatID).
			Count(ctx)
		if err != nil {
			return errors.Wrap(err, "leave.count")
		}
		if count > 0 {
			return nil
		}

		_, err = tx.NewUpdate().
			Model((*Chat.Chat)(nil)).
			Set("is_active = FALSE").
			Where("id = ?", chatID).
			Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "leave.deactivate")
		}
		deactivated = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return deactivated, nil
}

func (r *ChatRepository) ActiveMembers(ctx context.Context, chatID uuid.UUID) ([]User.User, error) {

	var users []User.User
	err := r.db.NewSelect().
		Model(&users).
		Join("JOIN memberships AS m ON m.user_id = \"user\".id").
		Where("m.chat_id = ? AND m.left_at IS NULL", chatID).
		Order("m.joined_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "chatRepo.ActiveMembers.Scan: ")
	}
	return users, nil
}

func (r *ChatRepository) ActiveMemberCount(ctx context.Context, chatID uuid.UUID) (int, error) {
	count, err := r.db.NewSelect().
		Model((*Chat.Membership)(nil)).
		Where("chat_id = ? AND left_at IS NULL", chatID).
		Count(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "chatRepo.ActiveMemberCount.Count: ")
	}
	return count, nil
}

func (r *ChatRepository) IsActiveMember(ctx context.Context, userID, chatID uuid.UUID) (bool, error) {
	count, err := r.db.NewSelect().
		Model((*Chat.Membership)(nil)).
		Where("chat_id = ? AND user_id = ? AND left_at IS NULL", chatID, userID).
		Count(ctx)
	if err != nil {
		return false, errors.Wrap(err, "chatRepo.IsActiveMember.Count: ")
	}
	return count > 0, nil
}

func (r *ChatRepository) OtherActiveMember(ctx context.Context, chatID, excludingUserID uuid.UUID) (*User.User, error) {

	other := new(User.User)
	err := r.db.NewSelect().
		Model(other).
		Join("JOIN memberships AS m ON m.user_id = \"user\".id").
		Where("m.chat_id = ? AND m.left_at IS NULL", chatID).
		Where("\"user\".id <> ?", excludingUserID).
		Order("m.joined_at ASC").
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "chatRepo.OtherActiveMember.Scan: ")
	}
	return other, nil
}

func (r *ChatRepository) CreateMessage(ctx context.Context, msg *Chat.Message) error {

	_, err := r.db.NewInsert().Model(msg).Returning("*").Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "chatRepo.CreateMessage.Insert: ")
	}
	return nil
}

func (r *ChatRepository) LatestMessages(ctx context.Context, chatID uuid.UUID, limit int) ([]Chat.Message, error) {

	var messages []Chat.Message
	err := r.db.NewSelect().
		Model(&messages).
		Where("chat_id = ?", chatID).
		OrderExpr("created_at DESC, id DESC").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "chatRepo.LatestMessages.Scan: ")
	}
	return messages, nil
}

func (r *ChatRepository) LastMessage(ctx context.Context, chatID uuid.UUID) (*Chat.Message, error) {

	msg := new(Chat.Message)
	err := r.db.NewSelect().
		Model(msg).
		Where("chat_id = ?", chatID).
		OrderExpr("created_at DESC, id DESC").
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "chatRepo.LastMessage.Scan: ")
	}
	return msg, nil
}
