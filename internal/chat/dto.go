package chat

import (
	"time"

	"github.com/google/uuid"

	Chat "nearbychat/internal/chat/model"
)

// Output DTOs
type ChatDTO struct {
	ID        uuid.UUID `json:"id"`
	Kind      Chat.Kind `json:"type"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

type MessageAuthorDTO struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type MessageDTO struct {
	ID        uuid.UUID        `json:"id"`
	Text      string           `json:"text"`
	User      MessageAuthorDTO `json:"user"`
	CreatedAt time.Time        `json:"createdAt"`
}

type CounterpartDTO struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Email  string    `json:"email"`
	Online bool      `json:"online"`
}

type LastMessageDTO struct {
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

// PrivateChatDTO is one row of the "my chats" listing: the chat, who
// is on the other side, and a preview of the latest message.
type PrivateChatDTO struct {
	Chat        ChatDTO         `json:"chat"`
	OtherUser   *CounterpartDTO `json:"otherUser"`
	LastMessage *LastMessageDTO `json:"lastMessage"`
}

type ChatDetailDTO struct {
	Chat      ChatDTO         `json:"chat"`
	OtherUser *CounterpartDTO `json:"otherUser,omitempty"`
	Messages  []MessageDTO    `json:"messages"`
}

type LeaveResultDTO struct {
	ChatID      uuid.UUID `json:"chatId"`
	Deactivated bool      `json:"deactivated"`
}
