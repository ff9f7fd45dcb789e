package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"nearbychat/pkg/errors"
)

func (h *Handler) GeneralChat(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondError(c, errors.ErrNotAuthenticated)
		return
	}

	detail, err := h.chats.GetGeneralChat(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

func (h *Handler) ListMessages(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondError(c, errors.ErrNotAuthenticated)
		return
	}

	chatID, err := uuid.Parse(c.Query("chat_id"))
	if err != nil {
		respondError(c, errors.InvalidArg("a valid chat_id is required"))
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil {
			respondError(c, errors.InvalidArg("limit must be a number"))
			return
		}
	}

	messages, err := h.chats.ListMessages(c.Request.Context(), userID, chatID, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, messages)
}

type sendMessageRequest struct {
	ChatID uuid.UUID `json:"chat_id" binding:"required"`
	Text   string    `json:"text"`
}

func (h *Handler) SendMessage(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondError(c, errors.ErrNotAuthenticated)
		return
	}

	var req sendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errors.InvalidArg("a valid chat_id is required"))
		return
	}

	msg, err := h.chats.SendMessage(c.Request.Context(), userID, req.ChatID, req.Text)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, msg)
}

func (h *Handler) ListPrivateChats(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondError(c, errors.ErrNotAuthenticated)
		return
	}

	chats, err := h.chats.ListMyPrivateChats(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, chats)
}

type inviteRequest struct {
	UserID uuid.UUID `json:"user_id" binding:"required"`
}

func (h *Handler) InvitePrivateChat(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondError(c, errors.ErrNotAuthenticated)
		return
	}

	var req inviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errors.InvalidArg("a valid user_id is required"))
		return
	}

	dto, err := h.chats.InviteToPrivateChat(c.Request.Context(), userID, req.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto)
}

func (h *Handler) ShowPrivateChat(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondError(c, errors.ErrNotAuthenticated)
		return
	}

	chatID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, errors.InvalidArg("invalid chat id"))
		return
	}

	detail, err := h.chats.ShowPrivateChat(c.Request.Context(), userID, chatID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

type leaveRequest struct {
	ChatID uuid.UUID `json:"chat_id" binding:"required"`
}

func (h *Handler) LeavePrivateChat(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondError(c, errors.ErrNotAuthenticated)
		return
	}

	var req leaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errors.InvalidArg("a valid chat_id is required"))
		return
	}

	result, err := h.chats.LeavePrivateChat(c.Request.Context(), userID, req.ChatID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
