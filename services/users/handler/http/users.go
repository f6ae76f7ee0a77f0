package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/fahrtenbuch/backend/internal/pkg/logger"
	"github.com/fahrtenbuch/backend/internal/pkg/middleware"
	"github.com/fahrtenbuch/backend/internal/pkg/models"
	"github.com/fahrtenbuch/backend/internal/utils"
	"github.com/fahrtenbuch/backend/services/invites"
	"github.com/fahrtenbuch/backend/services/users"
)

// UsersHandler handles HTTP requests for identity and group management
type UsersHandler struct {
	userUC users.UserUC
}

// NewUsersHandler creates a new user HTTP handler
func NewUsersHandler(userUC users.UserUC) *UsersHandler {
	return &UsersHandler{userUC: userUC}
}

// Register handles invitation-gated sign up
func (h *UsersHandler) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	resp, err := h.userUC.Register(c.Request().Context(), req)
	if err != nil {
		return userErrorResponse(c, err, "Failed to register")
	}

	logger.Info("User registered",
		logger.String("user_id", resp.User.ID.String()),
		logger.String("email", resp.User.Email))

	return utils.SuccessResponse(c, http.StatusCreated, "Registration successful", resp)
}

// Login handles email/password sign in
func (h *UsersHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	resp, err := h.userUC.Login(c.Request().Context(), req)
	if err != nil {
		return userErrorResponse(c, err, "Failed to sign in")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Signed in successfully", resp)
}

// UpdatePassword changes the signed-in user's password
func (h *UsersHandler) UpdatePassword(c echo.Context) error {
	session := middleware.GetSession(c)

	var req models.UpdatePasswordRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	if err := h.userUC.UpdatePassword(c.Request().Context(), session, req); err != nil {
		return userErrorResponse(c, err, "Failed to update password")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Password updated successfully", nil)
}

// RequestPasswordReset issues a reset token for the given email
func (h *UsersHandler) RequestPasswordReset(c echo.Context) error {
	var req struct {
		Email string `json:"email"`
	}
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	if _, err := h.userUC.RequestPasswordReset(c.Request().Context(), req.Email); err != nil {
		return userErrorResponse(c, err, "Failed to request password reset")
	}

	// Same response whether the email exists or not.
	return utils.SuccessResponse(c, http.StatusOK, "If the address is registered, a reset link has been sent", nil)
}

// ResetPassword sets a new password using a reset token
func (h *UsersHandler) ResetPassword(c echo.Context) error {
	var req struct {
		Token       string `json:"token"`
		NewPassword string `json:"new_password"`
	}
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	if err := h.userUC.ResetPassword(c.Request().Context(), req.Token, req.NewPassword); err != nil {
		return userErrorResponse(c, err, "Failed to reset password")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Password reset successfully", nil)
}

// GetProfile returns the signed-in user's own profile
func (h *UsersHandler) GetProfile(c echo.Context) error {
	session := middleware.GetSession(c)

	user, err := h.userUC.GetProfile(c.Request().Context(), session)
	if err != nil {
		return userErrorResponse(c, err, "Failed to load profile")
	}

	return utils.SuccessResponse(c, http.StatusOK, "", user)
}

// UpdateProfile edits the signed-in user's name
func (h *UsersHandler) UpdateProfile(c echo.Context) error {
	session := middleware.GetSession(c)

	var req models.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	user, err := h.userUC.UpdateProfile(c.Request().Context(), session, req)
	if err != nil {
		return userErrorResponse(c, err, "Failed to update profile")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Profile updated successfully", user)
}

// ListUsers returns all profiles. Admin only.
func (h *UsersHandler) ListUsers(c echo.Context) error {
	session := middleware.GetSession(c)

	list, err := h.userUC.ListUsers(c.Request().Context(), session)
	if err != nil {
		return userErrorResponse(c, err, "Failed to list users")
	}

	return utils.SuccessResponse(c, http.StatusOK, "", list)
}

// AdminUpdateUser manages a profile's flags, group and blocked state
func (h *UsersHandler) AdminUpdateUser(c echo.Context) error {
	session := middleware.GetSession(c)

	userID, err := uuid.Parse(c.Param("userID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid user ID")
	}

	var req models.AdminUserUpdate
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	user, err := h.userUC.AdminUpdateUser(c.Request().Context(), session, userID, req)
	if err != nil {
		return userErrorResponse(c, err, "Failed to update user")
	}

	return utils.SuccessResponse(c, http.StatusOK, "User updated successfully", user)
}

// CreateGroup adds a new group. Admin only.
func (h *UsersHandler) CreateGroup(c echo.Context) error {
	session := middleware.GetSession(c)

	var req models.GroupRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	group, err := h.userUC.CreateGroup(c.Request().Context(), session, req)
	if err != nil {
		return userErrorResponse(c, err, "Failed to create group")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Group created successfully", group)
}

// GetGroup returns the caller's own group
func (h *UsersHandler) GetGroup(c echo.Context) error {
	session := middleware.GetSession(c)

	group, err := h.userUC.GetGroup(c.Request().Context(), session)
	if err != nil {
		return userErrorResponse(c, err, "Failed to load group")
	}

	return utils.SuccessResponse(c, http.StatusOK, "", group)
}

// ListGroups returns all groups. Admin only.
func (h *UsersHandler) ListGroups(c echo.Context) error {
	session := middleware.GetSession(c)

	list, err := h.userUC.ListGroups(c.Request().Context(), session)
	if err != nil {
		return userErrorResponse(c, err, "Failed to list groups")
	}

	return utils.SuccessResponse(c, http.StatusOK, "", list)
}

// UpdateGroup renames a group
func (h *UsersHandler) UpdateGroup(c echo.Context) error {
	session := middleware.GetSession(c)

	groupID, err := uuid.Parse(c.Param("groupID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid group ID")
	}

	var req models.GroupRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	group, err := h.userUC.UpdateGroup(c.Request().Context(), session, groupID, req)
	if err != nil {
		return userErrorResponse(c, err, "Failed to update group")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Group updated successfully", group)
}

// DeleteGroup removes a group. Admin only.
func (h *UsersHandler) DeleteGroup(c echo.Context) error {
	session := middleware.GetSession(c)

	groupID, err := uuid.Parse(c.Param("groupID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid group ID")
	}

	if err := h.userUC.DeleteGroup(c.Request().Context(), session, groupID); err != nil {
		return userErrorResponse(c, err, "Failed to delete group")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Group deleted successfully", nil)
}

// userErrorResponse maps domain errors to HTTP responses
func userErrorResponse(c echo.Context, err error, fallback string) error {
	switch {
	case errors.Is(err, users.ErrInvalidEmail),
		errors.Is(err, users.ErrWeakPassword),
		errors.Is(err, users.ErrEmailTaken),
		errors.Is(err, users.ErrNameRequired),
		errors.Is(err, users.ErrResetTokenInvalid),
		errors.Is(err, invites.ErrCodeInactive),
		errors.Is(err, invites.ErrCodeExpired),
		errors.Is(err, invites.ErrCodeExhausted),
		errors.Is(err, invites.ErrCodeNotFound):
		return utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, users.ErrInvalidCredentials),
		errors.Is(err, users.ErrWrongPassword):
		return utils.UnauthorizedResponse(c, err.Error())
	case errors.Is(err, users.ErrUserBlocked),
		errors.Is(err, users.ErrForbidden):
		return utils.ForbiddenResponse(c, err.Error())
	case errors.Is(err, users.ErrUserNotFound),
		errors.Is(err, users.ErrGroupNotFound),
		errors.Is(err, users.ErrNoGroup):
		return utils.NotFoundResponse(c, err.Error())
	default:
		logger.Error(fallback, logger.Err(err))
		return utils.InternalServerErrorResponse(c, fallback)
	}
}
