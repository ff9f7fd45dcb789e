package chat

import (
	"context"

	"github.com/google/uuid"
)

type ChatUsecase interface {
	// GetGeneralChat joins the caller to the general chat and returns
	// it with its most recent messages, oldest first.
	GetGeneralChat(ctx context.Context, userID uuid.UUID) (*ChatDetailDTO, error)

	// ListMessages and SendMessage both require the caller to be an
	// active member of the chat.
	ListMessages(ctx context.Context, userID, chatID uuid.UUID, limit int) ([]MessageDTO, error)
	SendMessage(ctx context.Context, userID, chatID uuid.UUID, text string) (*MessageDTO, error)

	ListMyPrivateChats(ctx context.Context, userID uuid.UUID) ([]PrivateChatDTO, error)

	// InviteToPrivateChat returns the existing active chat between the
	// pair when both are still joined, otherwise creates a new one.
	InviteToPrivateChat(ctx context.Context, userID, targetUserID uuid.UUID) (*ChatDTO, error)

	// LeavePrivateChat closes the membership; the chat is deactivated
	// once every member has left.
	LeavePrivateChat(ctx context.Context, userID, chatID uuid.UUID) (*LeaveResultDTO, error)

	ShowPrivateChat(ctx context.Context, userID, chatID uuid.UUID) (*ChatDetailDTO, error)
}
