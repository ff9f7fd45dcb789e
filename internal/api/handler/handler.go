package handler

import (
	"github.com/gin-gonic/gin"

	"nearbychat/config"
	"nearbychat/internal/chat"
	"nearbychat/internal/user"
	"nearbychat/pkg/logger"
)

type Handler struct {
	users  user.UserUsecase
	chats  chat.ChatUsecase
	logger logger.Logger
	config config.Config
}

func NewHandler(users user.UserUsecase, chats chat.ChatUsecase, logger logger.Logger, config config.Config) *Handler {
	return &Handler{users: users, chats: chats, logger: logger, config: config}
}

// RegisterRoutes mounts the API under /api. Every route sits behind the
// api-key gate; everything except signup and login also needs a bearer
// token.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api", APIKey(h.config))

	api.POST("/users", h.Signup)
	api.POST("/login", h.Login)

	authed := api.Group("", Auth(h.config))

	authed.POST("/logout", h.Logout)
	authed.GET("/profile", h.Profile)
	authed.GET("/home", h.Home)
	authed.POST("/location", h.UpdateLocation)
	authed.POST("/status", h.SetStatus)

	authed.GET("/users", h.ListUsers)
	authed.GET("/users/:id", h.GetUser)
	authed.PUT("/users/:id", h.UpdateUser)
	authed.DELETE("/users/:id", h.DeleteUser)

	authed.GET("/general", h.GeneralChat)
	authed.GET("/messages", h.ListMessages)
	authed.POST("/messages", h.SendMessage)

	authed.GET("/private", h.ListPrivateChats)
	authed.POST("/private/invite", h.InvitePrivateChat)
	authed.GET("/private/:id", h.ShowPrivateChat)
	authed.POST("/private/leave", h.LeavePrivateChat)
}
