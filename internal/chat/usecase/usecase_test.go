package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"nearbychat/config"
	"nearbychat/internal/chat/mocks"
	models "nearbychat/internal/chat/model"
	chatRepo "nearbychat/internal/chat/repository"
	userMocks "nearbychat/internal/user/mocks"
	userModels "nearbychat/internal/user/model"
	userRepo "nearbychat/internal/user/repository"
	appErrors "nearbychat/pkg/errors"
	"nearbychat/pkg/logger"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newChatUsecase(t *testing.T) (*ChatUsecase, *mocks.MockChatRepository, *userMocks.MockUserRepository) {
	ctrl := gomock.NewController(t)
	chatMock := mocks.NewMockChatRepository(ctrl)
	userMock := userMocks.NewMockUserRepository(ctrl)
	uc := NewChatUsecase(chatMock, userMock, logger.Logger{}, config.Config{})
	return uc, chatMock, userMock
}

func Test_GetGeneralChat(t *testing.T) {
	userID := uuid.New()
	chatID := uuid.New()

	general := &models.Chat{
		ID:        chatID,
		Kind:      models.KindGeneral,
		IsActive:  true,
		CreatedAt: time.Now(),
	}

	t.Run("happy path - joins caller and returns messages oldest first", func(t *testing.T) {
		uc, chatMock, userMock := newChatUsecase(t)

		author := &userModels.User{ID: userID, Name: "Me", Email: "me@example.com"}
		newest := models.Message{ID: uuid.New(), ChatID: chatID, UserID: userID, Text: "second", CreatedAt: time.Now()}
		oldest := models.Message{ID: uuid.New(), ChatID: chatID, UserID: userID, Text: "first", CreatedAt: time.Now().Add(-time.Minute)}

		g := chatMock.EXPECT()
		g.GetGeneralChat(gomock.Any()).Return(general, nil)
		g.Join(gomock.Any(), userID, chatID).Return(&models.Membership{ChatID: chatID, UserID: userID}, nil)
		g.LatestMessages(gomock.Any(), chatID, 50).Return([]models.Message{newest, oldest}, nil)
		userMock.EXPECT().GetUserByID(gomock.Any(), userID).Return(author, nil)

		detail, err := uc.GetGeneralChat(context.Background(), userID)
		require.NoError(t, err)
		assert.Equal(t, chatID, detail.Chat.ID)
		require.Len(t, detail.Messages, 2)
		assert.Equal(t, "first", detail.Messages[0].Text)
		assert.Equal(t, "second", detail.Messages[1].Text)
		assert.Equal(t, "Me", detail.Messages[0].User.Name)
	})

	t.Run("happy path - rejoining is a no-op", func(t *testing.T) {
		uc, chatMock, _ := newChatUsecase(t)

		g := chatMock.EXPECT()
		g.GetGeneralChat(gomock.Any()).Return(general, nil)
		g.Join(gomock.Any(), userID, chatID).Return(&models.Membership{ChatID: chatID, UserID: userID}, nil)
		g.LatestMessages(gomock.Any(), chatID, 50).Return([]models.Message{}, nil)

		detail, err := uc.GetGeneralChat(context.Background(), userID)
		require.NoError(t, err)
		assert.Empty(t, detail.Messages)
	})

	t.Run("sad path - general chat missing", func(t *testing.T) {
		uc, chatMock, _ := newChatUsecase(t)

		chatMock.EXPECT().GetGeneralChat(gomock.Any()).Return(nil, chatRepo.ErrGeneralChatMissing)

		_, err := uc.GetGeneralChat(context.Background(), userID)
		assert.Equal(t, appErrors.ErrGeneralChatMissing, err)
	})
}

func Test_SendMessage(t *testing.T) {
	userID := uuid.New()
	chatID := uuid.New()

	activeChat := &models.Chat{ID: chatID, Kind: models.KindPrivate, IsActive: true}

	t.Run("happy path - member sends a message", func(t *testing.T) {
		uc, chatMock, userMock := newChatUsecase(t)

		g := chatMock.EXPECT()
		g.GetChatByID(gomock.Any(), chatID).Return(activeChat, nil)
		g.IsActiveMember(gomock.Any(), userID, chatID).Return(true, nil)
		g.CreateMessage(gomock.Any(), gomock.Any()).Return(nil)
		userMock.EXPECT().GetUserByID(gomock.Any(), userID).
			Return(&userModels.User{ID: userID, Name: "Me"}, nil)

		dto, err := uc.SendMessage(context.Background(), userID, chatID, "  hello  ")
		require.NoError(t, err)
		assert.Equal(t, "hello", dto.Text)
		assert.Equal(t, userID, dto.User.ID)
		assert.Equal(t, "Me", dto.User.Name)
	})

	t.Run("sad path - blank text rejected before any write", func(t *testing.T) {
		uc, _, _ := newChatUsecase(t)

		_, err := uc.SendMessage(context.Background(), userID, chatID, "   \t  ")
		assert.Equal(t, appErrors.ErrEmptyMessage, err)
	})

	t.Run("sad path - non-member rejected", func(t *testing.T) {
		uc, chatMock, _ := newChatUsecase(t)

		g := chatMock.EXPECT()
		g.GetChatByID(gomock.Any(), chatID).Return(activeChat, nil)
		g.IsActiveMember(gomock.Any(), userID, chatID).Return(false, nil)

		_, err := uc.SendMessage(context.Background(), userID, chatID, "hi")
		assert.Equal(t, appErrors.ErrNotChatMember, err)
	})

	t.Run("sad path - chat not found", func(t *testing.T) {
		uc, chatMock, _ := newChatUsecase(t)

		chatMock.EXPECT().GetChatByID(gomock.Any(), chatID).Return(nil, chatRepo.ErrChatNotFound)

		_, err := uc.SendMessage(context.Background(), userID, chatID, "hi")
		assert.Equal(t, appErrors.ErrChatNotFound, err)
	})
}

func Test_ListMessages(t *testing.T) {
	userID := uuid.New()
	chatID := uuid.New()

	activeChat := &models.Chat{ID: chatID, Kind: models.KindGeneral, IsActive: true}

	t.Run("happy path - non-positive limit falls back to the window size", func(t *testing.T) {
		uc, chatMock, _ := newChatUsecase(t)

		g := chatMock.EXPECT()
		g.GetChatByID(gomock.Any(), chatID).Return(activeChat, nil)
		g.IsActiveMember(gomock.Any(), userID, chatID).Return(true, nil)
		g.LatestMessages(gomock.Any(), chatID, 50).Return([]models.Message{}, nil)

		msgs, err := uc.ListMessages(context.Background(), userID, chatID, 0)
		require.NoError(t, err)
		assert.Empty(t, msgs)
	})

	t.Run("happy path - deleted author rendered without a name", func(t *testing.T) {
		uc, chatMock, userMock := newChatUsecase(t)

		ghostID := uuid.New()
		msg := models.Message{ID: uuid.New(), ChatID: chatID, UserID: ghostID, Text: "hello"}

		g := chatMock.EXPECT()
		g.GetChatByID(gomock.Any(), chatID).Return(activeChat, nil)
		g.IsActiveMember(gomock.Any(), userID, chatID).Return(true, nil)
		g.LatestMessages(gomock.Any(), chatID, 10).Return([]models.Message{msg}, nil)
		userMock.EXPECT().GetUserByID(gomock.Any(), ghostID).Return(nil, userRepo.ErrUserNotFound)

		msgs, err := uc.ListMessages(context.Background(), userID, chatID, 10)
		require.NoError(t, err)
		require.Len(t, msgs, 1)
		assert.Equal(t, ghostID, msgs[0].User.ID)
		assert.Empty(t, msgs[0].User.Name)
	})

	t.Run("sad path - non-member rejected", func(t *testing.T) {
		uc, chatMock, _ := newChatUsecase(t)

		g := chatMock.EXPECT()
		g.GetChatByID(gomock.Any(), chatID).Return(activeChat, nil)
		g.IsActiveMember(gomock.Any(), userID, chatID).Return(false, nil)

		_, err := uc.ListMessages(context.Background(), userID, chatID, 10)
		assert.Equal(t, appErrors.ErrNotChatMember, err)
	})
}

func Test_InviteToPrivateChat(t *testing.T) {
	userID := uuid.New()
	targetID := uuid.New()

	target := &userModels.User{ID: targetID, Name: "Target", Email: "target@example.com"}

	t.Run("happy path - reuses the chat both are joined to", func(t *testing.T) {
		uc, chatMock, userMock := newChatUsecase(t)

		existing := &models.Chat{ID: uuid.New(), Kind: models.KindPrivate, IsActive: true}

		userMock.EXPECT().GetUserByID(gomock.Any(), targetID).Return(target, nil)
		chatMock.EXPECT().FindPrivateChatBetween(gomock.Any(), userID, targetID).Return(existing, nil)

		dto, err := uc.InviteToPrivateChat(context.Background(), userID, targetID)
		require.NoError(t, err)
		assert.Equal(t, existing.ID, dto.ID)
	})

	t.Run("happy path - creates a fresh chat when none is shared", func(t *testing.T) {
		uc, chatMock, userMock := newChatUsecase(t)

		created := &models.Chat{ID: uuid.New(), Kind: models.KindPrivate, IsActive: true}

		userMock.EXPECT().GetUserByID(gomock.Any(), targetID).Return(target, nil)
		g := chatMock.EXPECT()
		g.FindPrivateChatBetween(gomock.Any(), userID, targetID).Return(nil, chatRepo.ErrChatNotFound)
		g.CreatePrivateChat(gomock.Any(), userID, targetID).Return(created, nil)

		dto, err := uc.InviteToPrivateChat(context.Background(), userID, targetID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, dto.ID)
		assert.Equal(t, models.KindPrivate, dto.Kind)
	})

	t.Run("sad path - self invite", func(t *testing.T) {
		uc, _, _ := newChatUsecase(t)

		_, err := uc.InviteToPrivateChat(context.Background(), userID, userID)
		assert.Equal(t, appErrors.ErrSelfChat, err)
	})

	t.Run("sad path - unknown target", func(t *testing.T) {
		uc, _, userMock := newChatUsecase(t)

		userMock.EXPECT().GetUserByID(gomock.Any(), targetID).Return(nil, userRepo.ErrUserNotFound)

		_, err := uc.InviteToPrivateChat(context.Background(), userID, targetID)
		assert.Equal(t, appErrors.ErrUserNotFound, err)
	})

	t.Run("sad path - creation failure surfaces as internal", func(t *testing.T) {
		uc, chatMock, userMock := newChatUsecase(t)

		userMock.EXPECT().GetUserByID(gomock.Any(), targetID).Return(target, nil)
		g := chatMock.EXPECT()
		g.FindPrivateChatBetween(gomock.Any(), userID, targetID).Return(nil, chatRepo.ErrChatNotFound)
		g.CreatePrivateChat(gomock.Any(), userID, targetID).Return(nil, errors.New("db down"))

		_, err := uc.InviteToPrivateChat(context.Background(), userID, targetID)
		require.Error(t, err)
		assert.Equal(t, appErrors.CodeInternal, appErrors.CodeOf(err))
	})
}

func Test_LeavePrivateChat(t *testing.T) {
	userID := uuid.New()
	chatID := uuid.New()

	privateChat := &models.Chat{ID: chatID, Kind: models.KindPrivate, IsActive: true}

	t.Run("happy path - chat stays active while the other member remains", func(t *testing.T) {
		uc, chatMock, _ := newChatUsecase(t)

		g := chatMock.EXPECT()
		g.GetChatByID(gomock.Any(), chatID).Return(privateChat, nil)
		g.LeaveAndMaybeDeactivate(gomock.Any(), userID, chatID).Return(false, nil)

		res, err := uc.LeavePrivateChat(context.Background(), userID, chatID)
		require.NoError(t, err)
		assert.Equal(t, chatID, res.ChatID)
		assert.False(t, res.Deactivated)
	})

	t.Run("happy path - last member out deactivates the chat", func(t *testing.T) {
		uc, chatMock, _ := newChatUsecase(t)

		g := chatMock.EXPECT()
		g.GetChatByID(gomock.Any(), chatID).Return(privateChat, nil)
		g.LeaveAndMaybeDeactivate(gomock.Any(), userID, chatID).Return(true, nil)

		res, err := uc.LeavePrivateChat(context.Background(), userID, chatID)
		require.NoError(t, err)
		assert.True(t, res.Deactivated)
	})

	t.Run("sad path - only private chats can be left", func(t *testing.T) {
		uc, chatMock, _ := newChatUsecase(t)

		general := &models.Chat{ID: chatID, Kind: models.KindGeneral, IsActive: true}
		chatMock.EXPECT().GetChatByID(gomock.Any(), chatID).Return(general, nil)

		_, err := uc.LeavePrivateChat(context.Background(), userID, chatID)
		assert.Equal(t, appErrors.ErrNotPrivateChat, err)
	})

	t.Run("sad path - chat not found", func(t *testing.T) {
		uc, chatMock, _ := newChatUsecase(t)

		chatMock.EXPECT().GetChatByID(gomock.Any(), chatID).Return(nil, chatRepo.ErrChatNotFound)

		_, err := uc.LeavePrivateChat(context.Background(), userID, chatID)
		assert.Equal(t, appErrors.ErrChatNotFound, err)
	})
}

func Test_ListMyPrivateChats(t *testing.T) {
	userID := uuid.New()

	t.Run("happy path - counterpart and last message attached", func(t *testing.T) {
		uc, chatMock, _ := newChatUsecase(t)

		c := models.Chat{ID: uuid.New(), Kind: models.KindPrivate, IsActive: true}
		other := &userModels.User{ID: uuid.New(), Name: "Other", Email: "other@example.com", Online: true}
		last := &models.Message{ID: uuid.New(), ChatID: c.ID, UserID: other.ID, Text: "bye", CreatedAt: time.Now()}

		g := chatMock.EXPECT()
		g.FindPrivateChatsForUser(gomock.Any(), userID).Return([]models.Chat{c}, nil)
		g.OtherActiveMember(gomock.Any(), c.ID, userID).Return(other, nil)
		g.LastMessage(gomock.Any(), c.ID).Return(last, nil)

		rows, err := uc.ListMyPrivateChats(context.Background(), userID)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, c.ID, rows[0].Chat.ID)
		require.NotNil(t, rows[0].OtherUser)
		assert.Equal(t, "Other", rows[0].OtherUser.Name)
		require.NotNil(t, rows[0].LastMessage)
		assert.Equal(t, "bye", rows[0].LastMessage.Text)
	})

	t.Run("happy path - abandoned chat has no counterpart and no messages", func(t *testing.T) {
		uc, chatMock, _ := newChatUsecase(t)

		c := models.Chat{ID: uuid.New(), Kind: models.KindPrivate, IsActive: true}

		g := chatMock.EXPECT()
		g.FindPrivateChatsForUser(gomock.Any(), userID).Return([]models.Chat{c}, nil)
		g.OtherActiveMember(gomock.Any(), c.ID, userID).Return(nil, nil)
		g.LastMessage(gomock.Any(), c.ID).Return(nil, nil)

		rows, err := uc.ListMyPrivateChats(context.Background(), userID)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Nil(t, rows[0].OtherUser)
		assert.Nil(t, rows[0].LastMessage)
	})

	t.Run("happy path - no chats yields empty slice", func(t *testing.T) {
		uc, chatMock, _ := newChatUsecase(t)

		chatMock.EXPECT().FindPrivateChatsForUser(gomock.Any(), userID).Return([]models.Chat{}, nil)

		rows, err := uc.ListMyPrivateChats(context.Background(), userID)
		require.NoError(t, err)
		assert.Empty(t, rows)
		assert.NotNil(t, rows)
	})
}

func Test_ShowPrivateChat(t *testing.T) {
	userID := uuid.New()
	chatID := uuid.New()

	privateChat := &models.Chat{ID: chatID, Kind: models.KindPrivate, IsActive: true}

	t.Run("happy path", func(t *testing.T) {
		uc, chatMock, _ := newChatUsecase(t)

		other := &userModels.User{ID: uuid.New(), Name: "Other", Email: "other@example.com"}

		g := chatMock.EXPECT()
		g.GetChatByID(gomock.Any(), chatID).Return(privateChat, nil)
		g.IsActiveMember(gomock.Any(), userID, chatID).Return(true, nil)
		g.OtherActiveMember(gomock.Any(), chatID, userID).Return(other, nil)
		g.LatestMessages(gomock.Any(), chatID, 50).Return([]models.Message{}, nil)

		detail, err := uc.ShowPrivateChat(context.Background(), userID, chatID)
		require.NoError(t, err)
		assert.Equal(t, chatID, detail.Chat.ID)
		require.NotNil(t, detail.OtherUser)
		assert.Equal(t, other.ID, detail.OtherUser.ID)
	})

	t.Run("sad path - non-member rejected", func(t *testing.T) {
		uc, chatMock, _ := newChatUsecase(t)

		g := chatMock.EXPECT()
		g.GetChatByID(gomock.Any(), chatID).Return(privateChat, nil)
		g.IsActiveMember(gomock.Any(), userID, chatID).Return(false, nil)

		_, err := uc.ShowPrivateChat(context.Background(), userID, chatID)
		assert.Equal(t, appErrors.ErrNotChatMember, err)
	})
}
