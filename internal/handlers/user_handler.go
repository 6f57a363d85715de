package handlers

import (
	"errors"
	"net/http"

	apierrors "expense-tracker-api/internal/errors"
	"expense-tracker-api/internal/services"

	"github.com/labstack/echo/v4"
)

const (
	defaultActivityLimit = 20
	maxActivityLimit     = 100
)

// UserHandler handles user profile endpoints
type UserHandler struct {
	profileService services.UserProfileServiceInterface
	auditService   services.AuditServiceInterface
}

// NewUserHandler creates a new user handler
func NewUserHandler(
	profileService services.UserProfileServiceInterface,
	auditService services.AuditServiceInterface,
) *UserHandler {
	return &UserHandler{
		profileService: profileService,
		auditService:   auditService,
	}
}

// GetProfile retrieves the authenticated user's profile
//
// Method: GET /api/v1/users/me
func (h *UserHandler) GetProfile(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	profile, err := h.profileService.GetProfile(userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return SendError(c, apierrors.UserNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, profile)
}

// GetActivity retrieves the authenticated user's audit trail
//
// Method: GET /api/v1/users/me/activity
// Query parameters: page, limit
func (h *UserHandler) GetActivity(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	page := getIntQueryParam(c, "page", 1)
	if page < 1 {
		page = 1
	}
	limit := getIntQueryParam(c, "limit", defaultActivityLimit)
	if limit < 1 {
		limit = defaultActivityLimit
	}
	if limit > maxActivityLimit {
		limit = maxActivityLimit
	}

	logs, total, err := h.auditService.GetUserActivity(userID, (page-1)*limit, limit)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"activity": logs,
		"total":    total,
		"page":     page,
		"limit":    limit,
	})
}
