package chat

import (
	"context"

	"github.com/google/uuid"

	Chat "nearbychat/internal/chat/model"
	User "nearbychat/internal/user/model"
)

type ChatRepository interface {
	// Chats
	GetChatByID(ctx context.Context, id uuid.UUID) (*Chat.Chat, error)

	// EnsureGeneralChat returns the general chat, creating it when the
	// system has none yet. Idempotent.
	EnsureGeneralChat(ctx context.Context) (*Chat.Chat, error)
	GetGeneralChat(ctx context.Context) (*Chat.Chat, error)

	// FindPrivateChatBetween returns the active private chat in which
	// both users hold open memberships, or ErrChatNotFound.
	FindPrivateChatBetween(ctx context.Context, userA, userB uuid.UUID) (*Chat.Chat, error)

	// CreatePrivateChat inserts the chat and joins both users in one
	// transaction; on failure nothing is left behind.
	CreatePrivateChat(ctx context.Context, userA, userB uuid.UUID) (*Chat.Chat, error)

	FindPrivateChatsForUser(ctx context.Context, userID uuid.UUID) ([]Chat.Chat, error)

	// Memberships
	Join(ctx context.Context, userID, chatID uuid.UUID) (*Chat.Membership, error)
	Leave(ctx context.Context, userID, chatID uuid.UUID) error

	// LeaveAndMaybeDeactivate closes the membership and, within the
	// same transaction, deactivates the chat when no open memberships
	// remain. Returns whether the chat was deactivated.
	LeaveAndMaybeDeactivate(ctx context.Context, userID, chatID uuid.UUID) (bool, error)

	ActiveMembers(ctx context.Context, chatID uuid.UUID) ([]User.User, error)
	ActiveMemberCount(ctx context.Context, chatID uuid.UUID) (int, error)
	IsActiveMember(ctx context.Context, userID, chatID uuid.UUID) (bool, error)

	// OtherActiveMember returns the counterpart in a two-party chat,
	// or nil when the user is alone in it.
	OtherActiveMember(ctx context.Context, chatID, excludingUserID uuid.UUID) (*User.User, error)

	// Messages
	CreateMessage(ctx context.Context, msg *Chat.Message) error

	// LatestMessages returns up to limit messages, newest first.
	LatestMessages(ctx context.Context, chatID uuid.UUID, limit int) ([]Chat.Message, error)
	LastMessage(ctx context.Context, chatID uuid.UUID) (*Chat.Message, error)
}
