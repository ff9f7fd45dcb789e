package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"nearbychat/internal/user"
	"nearbychat/pkg/errors"
)

type signupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errors.InvalidArg("name, email and password are required"))
		return
	}

	dto, err := h.users.Register(c.Request.Context(), user.RegisterCommand{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto)
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errors.InvalidArg("email and password are required"))
		return
	}

	resp, err := h.users.Login(c.Request.Context(), user.LoginCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) Logout(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondError(c, errors.ErrNotAuthenticated)
		return
	}

	if err := h.users.Logout(c.Request.Context(), userID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}
