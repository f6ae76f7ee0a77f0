package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/fahrtenbuch/backend/internal/pkg/models"
	"github.com/fahrtenbuch/backend/services/users"
	httpHandler "github.com/fahrtenbuch/backend/services/users/handler/http"
)

// Handler combines all handlers for the users service
type Handler struct {
	usersHTTP *httpHandler.UsersHandler
	cfg       *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(userUC users.UserUC, cfg *models.Config) *Handler {
	return &Handler{
		usersHTTP: httpHandler.NewUsersHandler(userUC),
		cfg:       cfg,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo, authMiddleware echo.MiddlewareFunc) {
	// Auth endpoints are reachable without a token
	authGroup := e.Group("/auth")
	authGroup.POST("/register", h.usersHTTP.Register)
	authGroup.POST("/login", h.usersHTTP.Login)
	authGroup.POST("/password-reset/request", h.usersHTTP.RequestPasswordReset)
	authGroup.POST("/password-reset/confirm", h.usersHTTP.ResetPassword)

	profileGroup := e.Group("/profile", authMiddleware)
	profileGroup.GET("", h.usersHTTP.GetProfile)
	profileGroup.PUT("", h.usersHTTP.UpdateProfile)
	profileGroup.PUT("/password", h.usersHTTP.UpdatePassword)

	usersGroup := e.Group("/users", authMiddleware)
	usersGroup.GET("", h.usersHTTP.ListUsers)
	usersGroup.PUT("/:userID", h.usersHTTP.AdminUpdateUser)

	groupsGroup := e.Group("/groups", authMiddleware)
	groupsGroup.GET("", h.usersHTTP.ListGroups)
	groupsGroup.POST("", h.usersHTTP.CreateGroup)
	groupsGroup.GET("/mine", h.usersHTTP.GetGroup)
	groupsGroup.PUT("/:groupID", h.usersHTTP.UpdateGroup)
	groupsGroup.DELETE("/:groupID", h.usersHTTP.DeleteGroup)
}
