package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"nearbychat/internal/user"
	"nearbychat/pkg/errors"
)

func (h *Handler) Profile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondError(c, errors.ErrNotAuthenticated)
		return
	}

	profile, err := h.users.GetProfile(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *Handler) Home(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondError(c, errors.ErrNotAuthenticated)
		return
	}

	home, err := h.users.Home(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, home)
}

type locationRequest struct {
	Lat *float64 `json:"lat" binding:"required"`
	Lng *float64 `json:"lng" binding:"required"`
}

func (h *Handler) UpdateLocation(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondError(c, errors.ErrNotAuthenticated)
		return
	}

	var req locationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errors.InvalidArg("lat and lng are required"))
		return
	}

	loc, err := h.users.UpdateLocation(c.Request.Context(), userID, *req.Lat, *req.Lng)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, loc)
}

type statusRequest struct {
	Online *bool `json:"online" binding:"required"`
}

func (h *Handler) SetStatus(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondError(c, errors.ErrNotAuthenticated)
		return
	}

	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errors.InvalidArg("online is required"))
		return
	}

	if err := h.users.SetOnlineStatus(c.Request.Context(), userID, *req.Online); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"online": *req.Online})
}

func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.users.ListUsers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

func (h *Handler) GetUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, errors.InvalidArg("invalid user id"))
		return
	}

	profile, err := h.users.GetUser(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

type updateUserRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

func (h *Handler) UpdateUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, errors.InvalidArg("invalid user id"))
		return
	}

	// users may only edit themselves
	userID, ok := currentUserID(c)
	if !ok || userID != id {
		respondError(c, errors.Forbidden("cannot edit another user"))
		return
	}

	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errors.InvalidArg("invalid request body"))
		return
	}

	dto, err := h.users.UpdateUser(c.Request.Context(), id, user.UpdateUserCommand{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto)
}

func (h *Handler) DeleteUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, errors.InvalidArg("invalid user id"))
		return
	}

	userID, ok := currentUserID(c)
	if !ok || userID != id {
		respondError(c, errors.Forbidden("cannot delete another user"))
		return
	}

	if err := h.users.DeleteUser(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "user deleted"})
}
