package usecase

import (
	"context"
	"strings"

	"nearbychat/config"
	"nearbychat/internal/chat"
	models "nearbychat/internal/chat/model"
	chatRepo "nearbychat/internal/chat/repository"
	"nearbychat/internal/user"
	userModels "nearbychat/internal/user/model"
	userRepo "nearbychat/internal/user/repository"
	"nearbychat/pkg/errors"
	"nearbychat/pkg/logger"

	"github.com/google/uuid"
)

const defaultMessageLimit = 50

type ChatUsecase struct {
	chats  chat.ChatRepository
	users  user.UserRepository
	logger logger.Logger
	config config.Config
}

func NewChatUsecase(chats chat.ChatRepository, users user.UserRepository, logger logger.Logger, config config.Config) *ChatUsecase {
	return &ChatUsecase{chats: chats, users: users, logger: logger, config: config}
}

func (uc *ChatUsecase) GetGeneralChat(ctx context.Context, userID uuid.UUID) (*chat.ChatDetailDTO, error) {
	c, err := uc.chats.GetGeneralChat(ctx)
	if err != nil {
		if errors.Is(err, chatRepo.ErrGeneralChatMissing) {
			return nil, errors.ErrGeneralChatMissing
		}
		uc.logger.Error("failed to fetch general chat", "err", err)
		return nil, errors.Internal("internal server error")
	}

	// entering the general chat room joins you to it
	if _, err := uc.chats.Join(ctx, userID, c.ID); err != nil {
		uc.logger.Error("failed to join general chat", "user_id", userID, "err", err)
		return nil, errors.Internal("failed to join general chat")
	}

	messages, err := uc.recentMessages(ctx, c.ID, defaultMessageLimit)
	if err != nil {
		return nil, err
	}

	return &chat.ChatDetailDTO{
		Chat:     toChatDTO(c),
		Messages: messages,
	}, nil
}

func (uc *ChatUsecase) ListMessages(ctx context.Context, userID, chatID uuid.UUID, limit int) ([]chat.MessageDTO, error) {
	if _, err := uc.requireMembership(ctx, userID, chatID); err != nil {
		return nil, err
	}

	if limit < 1 {
		limit = defaultMessageLimit
	}
	return uc.recentMessages(ctx, chatID, limit)
}

func (uc *ChatUsecase) SendMessage(ctx context.Context, userID, chatID uuid.UUID, text string) (*chat.MessageDTO, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, errors.ErrEmptyMessage
	}

	if _, err := uc.requireMembership(ctx, userID, chatID); err != nil {
		return nil, err
	}

	msg := &models.Message{ChatID: chatID, UserID: userID, Text: text}
	if err := uc.chats.CreateMessage(ctx, msg); err != nil {
		uc.logger.Error("failed to save message", "chat_id", chatID, "user_id", userID, "err", err)
		return nil, errors.Internal("failed to send message")
	}

	author, err := uc.users.GetUserByID(ctx, userID)
	if err != nil {
		uc.logger.Error("failed to fetch message author", "user_id", userID, "err", err)
		return nil, errors.Internal("internal server error")
	}

	dto := toMessageDTO(msg, author)
	return &dto, nil
}

func (uc *ChatUsecase) ListMyPrivateChats(ctx context.Context, userID uuid.UUID) ([]chat.PrivateChatDTO, error) {
	chats, err := uc.chats.FindPrivateChatsForUser(ctx, userID)
	if err != nil {
		uc.logger.Error("failed to list private chats", "user_id", userID, "err", err)
		return nil, errors.Internal("internal server error")
	}

	result := make([]chat.PrivateChatDTO, 0, len(chats))
	for i := range chats {
		c := &chats[i]

		other, err := uc.chats.OtherActiveMember(ctx, c.ID, userID)
		if err != nil {
			uc.logger.Error("failed to resolve counterpart", "chat_id", c.ID, "err", err)
			return nil, errors.Internal("internal server error")
		}

		last, err := uc.chats.LastMessage(ctx, c.ID)
		if err != nil {
			uc.logger.Error("failed to fetch last message", "chat_id", c.ID, "err", err)
			return nil, errors.Internal("internal server error")
		}

		row := chat.PrivateChatDTO{Chat: toChatDTO(c)}
		if other != nil {
			row.OtherUser = toCounterpartDTO(other)
		}
		if last != nil {
			row.LastMessage = &chat.LastMessageDTO{Text: last.Text, CreatedAt: last.CreatedAt}
		}
		result = append(result, row)
	}
	return result, nil
}

// InviteToPrivateChat implements create-or-reuse: the pair gets the
// chat they are both still joined to, and a fresh one otherwise. An
// old chat one of them abandoned is left alone on purpose, even though
// it is still active for whoever stayed.
func (uc *ChatUsecase) InviteToPrivateChat(ctx context.Context, userID, targetUserID uuid.UUID) (*chat.ChatDTO, error) {
	if userID == targetUserID {
		return nil, errors.ErrSelfChat
	}

	if _, err := uc.users.GetUserByID(ctx, targetUserID); err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, errors.ErrUserNotFound
		}
		uc.logger.Error("failed to fetch invite target", "user_id", targetUserID, "err", err)
		return nil, errors.Internal("internal server error")
	}

	existing, err := uc.chats.FindPrivateChatBetween(ctx, userID, targetUserID)
	if err == nil {
		dto := toChatDTO(existing)
		return &dto, nil
	}
	if !errors.Is(err, chatRepo.ErrChatNotFound) {
		uc.logger.Error("failed to look up private chat", "err", err)
		return nil, errors.Internal("internal server error")
	}

	created, err := uc.chats.CreatePrivateChat(ctx, userID, targetUserID)
	if err != nil {
		uc.logger.Error("failed to create private chat", "err", err)
		return nil, errors.ErrChatCreationFailed(err)
	}

	dto := toChatDTO(created)
	return &dto, nil
}

func (uc *ChatUsecase) LeavePrivateChat(ctx context.Context, userID, chatID uuid.UUID) (*chat.LeaveResultDTO, error) {
	c, err := uc.chats.GetChatByID(ctx, chatID)
	if err != nil {
		if errors.Is(err, chatRepo.ErrChatNotFound) {
			return nil, errors.ErrChatNotFound
		}
		return nil, errors.Internal("internal server error")
	}

	if !c.IsPrivate() {
		return nil, errors.ErrNotPrivateChat
	}

	deactivated, err := uc.chats.LeaveAndMaybeDeactivate(ctx, userID, chatID)
	if err != nil {
		uc.logger.Error("failed to leave chat", "chat_id", chatID, "user_id", userID, "err", err)
		return nil, errors.Internal("failed to leave chat")
	}

	return &chat.LeaveResultDTO{ChatID: chatID, Deactivated: deactivated}, nil
}

func (uc *ChatUsecase) ShowPrivateChat(ctx context.Context, userID, chatID uuid.UUID) (*chat.ChatDetailDTO, error) {
	c, err := uc.requireMembership(ctx, userID, chatID)
	if err != nil {
		return nil, err
	}

	other, err := uc.chats.OtherActiveMember(ctx, chatID, userID)
	if err != nil {
		uc.logger.Error("failed to resolve counterpart", "chat_id", chatID, "err", err)
		return nil, errors.Internal("internal server error")
	}

	messages, err := uc.recentMessages(ctx, chatID, defaultMessageLimit)
	if err != nil {
		return nil, err
	}

	detail := &chat.ChatDetailDTO{
		Chat:     toChatDTO(c),
		Messages: messages,
	}
	if other != nil {
		detail.OtherUser = toCounterpartDTO(other)
	}
	return detail, nil
}

// requireMembership loads the chat and rejects callers without an open
// membership in it.
func (uc *ChatUsecase) requireMembership(ctx context.Context, userID, chatID uuid.UUID) (*models.Chat, error) {
	c, err := uc.chats.GetChatByID(ctx, chatID)
	if err != nil {
		if errors.Is(err, chatRepo.ErrChatNotFound) {
			return nil, errors.ErrChatNotFound
		}
		uc.logger.Error("failed to fetch chat", "chat_id", chatID, "err", err)
		return nil, errors.Internal("internal server error")
	}

	member, err := uc.chats.IsActiveMember(ctx, userID, chatID)
	if err != nil {
		uc.logger.Error("failed to check membership", "chat_id", chatID, "user_id", userID, "err", err)
		return nil, errors.Internal("internal server error")
	}
	if !member {
		return nil, errors.ErrNotChatMember
	}
	return c, nil
}

// recentMessages returns the newest messages reordered oldest→newest,
// the way clients render a chat window.
func (uc *ChatUsecase) recentMessages(ctx context.Context, chatID uuid.UUID, limit int) ([]chat.MessageDTO, error) {
	messages, err := uc.chats.LatestMessages(ctx, chatID, limit)
	if err != nil {
		uc.logger.Error("failed to fetch messages", "chat_id", chatID, "err", err)
		return nil, errors.Internal("internal server error")
	}

	authors, err := uc.authorsByID(ctx, messages)
	if err != nil {
		return nil, err
	}

	dtos := make([]chat.MessageDTO, 0, len(messages))
	for i := len(messages) - 1; i >= 0; i-- {
		dtos = append(dtos, toMessageDTO(&messages[i], authors[messages[i].UserID]))
	}
	return dtos, nil
}

func (uc *ChatUsecase) authorsByID(ctx context.Context, messages []models.Message) (map[uuid.UUID]*userModels.User, error) {
	authors := make(map[uuid.UUID]*userModels.User)
	for i := range messages {
		id := messages[i].UserID
		if _, ok := authors[id]; ok {
			continue
		}
		u, err := uc.users.GetUserByID(ctx, id)
		if err != nil {
			if errors.Is(err, userRepo.ErrUserNotFound) {
				// author deleted; render without a name
				authors[id] = nil
				continue
			}
			uc.logger.Error("failed to fetch message author", "user_id", id, "err", err)
			return nil, errors.Internal("internal server error")
		}
		authors[id] = u
	}
	return authors, nil
}

func toChatDTO(c *models.Chat) chat.ChatDTO {
	return chat.ChatDTO{
		ID:        c.ID,
		Kind:      c.Kind,
		IsActive:  c.IsActive,
		CreatedAt: c.CreatedAt,
	}
}

func toCounterpartDTO(u *userModels.User) *chat.CounterpartDTO {
	return &chat.CounterpartDTO{
		ID:     u.ID,
		Name:   u.Name,
		Email:  u.Email,
		Online: u.Online,
	}
}

func toMessageDTO(m *models.Message, author *userModels.User) chat.MessageDTO {
	dto := chat.MessageDTO{
		ID:        m.ID,
		Text:      m.Text,
		CreatedAt: m.CreatedAt,
		User:      chat.MessageAuthorDTO{ID: m.UserID},
	}
	if author != nil {
		dto.User.Name = author.Name
	}
	return dto
}
