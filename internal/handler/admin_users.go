// This file defines the admin user-management handlers. Routes sit behind
// the AdminOnly guard. Two rules are enforced here before any repository
// call: an admin can neither change their own role nor delete their own
// account, so a lone admin cannot lock the system out of administration.

package handler

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/scholarstream/api/internal/middleware"
	"github.com/scholarstream/api/internal/queue"
	"github.com/scholarstream/api/internal/repository"
	"github.com/scholarstream/api/internal/role"
	queue_publisher "github.com/scholarstream/api/internal/service"
)

// RoleCache invalidates cached role resolutions. Implemented by
// role.Resolver.
type RoleCache interface {
	Invalidate(ctx context.Context, email string)
}

// AdminUserHandler bundles dependencies for the manage-users screen.
type AdminUserHandler struct {
	Users  *repository.UserRepo
	Tokens *repository.TokenRepo
	Roles  RoleCache
}

func NewAdminUserHandler(u *repository.UserRepo, t *repository.TokenRepo, roles RoleCache) *AdminUserHandler {
	return &AdminUserHandler{Users: u, Tokens: t, Roles: roles}
}

type roleChangeReq struct {
	Role string `json:"role"`
}

type adminUserRow struct {
	ID       uint64 `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	PhotoURL string `json:"photo_url,omitempty"`
	Role     string `json:"role"`
}

// isSelfTarget reports whether an admin action targets the acting admin's
// own account. Kept as a named helper so the rule is testable on its own.
func isSelfTarget(actorID, targetID uint64) bool {
	return actorID != 0 && actorID == targetID
}

// ListUsers returns all users, optionally filtered to one role via
// ?role=student|moderator|admin.
func (h *AdminUserHandler) ListUsers(c echo.Context) error {
	filter := c.QueryParam("role")
	if filter != "" {
		// Normalize through the closed mapping so junk filters behave like
		// "student" instead of silently matching nothing.
		filter = string(role.FromString(filter))
	}
	users, err := h.Users.List(c.Request().Context(), filter)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	out := make([]adminUserRow, 0, len(users))
	for _, u := range users {
		out = append(out, adminUserRow{
			ID: u.ID, Name: u.Name, Email: u.Email, PhotoURL: u.PhotoURL,
			Role: string(role.FromString(u.Role)),
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"total": len(out), "users": out})
}

// UpdateUserRole sets a user's role, invalidates the role cache for the
// target and publishes a role.changed audit event. Self-targeting is
// rejected up front.
func (h *AdminUserHandler) UpdateUserRole(c echo.Context) error {
	targetID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || targetID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	actorID := middleware.UserID(c)
	if isSelfTarget(actorID, targetID) {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "you cannot change your own role"})
	}

	var req roleChangeReq
	if err := c.Bind(&req); err != nil || req.Role == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "role required"})
	}
	newRole := role.FromString(req.Role)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	target, err := h.Users.GetByID(ctx, targetID)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
	}
	oldRole := role.FromString(target.Role)
	if oldRole == newRole {
		return c.NoContent(http.StatusNoContent)
	}

	if err := h.Users.UpdateRole(ctx, targetID, string(newRole)); err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update role failed"})
	}

	// The target must observe the new role on their next request, not after
	// the staleness window lapses.
	h.Roles.Invalidate(ctx, target.Email)

	if err := queue_publisher.PublishRoleChanged(ctx, queue.RoleChangedEvent{
		UserID:    targetID,
		Email:     target.Email,
		OldRole:   string(oldRole),
		NewRole:   string(newRole),
		ChangedBy: actorID,
		ChangedAt: time.Now().UTC().Format(time.RFC3339),
	}); err != nil {
		log.Printf("admin: role.changed publish failed: %v", err)
	}

	return c.NoContent(http.StatusNoContent)
}

// DeleteUser removes a user and revokes their sessions. Self-targeting is
// rejected up front.
func (h *AdminUserHandler) DeleteUser(c echo.Context) error {
	targetID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || targetID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if isSelfTarget(middleware.UserID(c), targetID) {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "you cannot delete your own account"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	target, err := h.Users.GetByID(ctx, targetID)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
	}

	if err := h.Tokens.RevokeAllForUser(ctx, targetID); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	if err := h.Users.Delete(ctx, targetID); err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	h.Roles.Invalidate(ctx, target.Email)

	return c.NoContent(http.StatusNoContent)
}
