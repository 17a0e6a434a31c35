package handler

import (
	"context"
	"database/sql"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/scholarstream/api/internal/config"
	"github.com/scholarstream/api/internal/middleware"
	"github.com/scholarstream/api/internal/repository"
	"github.com/scholarstream/api/internal/role"
	"github.com/scholarstream/api/internal/utils"
)

// AuthHandler bundles dependencies for auth endpoints.
type AuthHandler struct {
	Cfg    config.Config
	Users  *repository.UserRepo
	Tokens *repository.TokenRepo
	Roles  middleware.RoleSource
}

func NewAuthHandler(cfg config.Config, u *repository.UserRepo, t *repository.TokenRepo, roles middleware.RoleSource) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Users: u, Tokens: t, Roles: roles}
}

// ----- DTOs -----

type registerReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	PhotoURL string `json:"photo_url"`
	Password string `json:"password"`
}
type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
type refreshReq struct {
	RefreshToken string `json:"refresh_token"`
}

type tokenPart struct {
	Token   string    `json:"token"`
	Expires time.Time `json:"expires"`
}
type userPart struct {
	ID       uint64 `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	PhotoURL string `json:"photo_url,omitempty"`
	Role     string `json:"role"`
}
type authResp struct {
	User    userPart  `json:"user"`
	Access  tokenPart `json:"access"`
	Refresh tokenPart `json:"refresh"`
}

// Register creates a user and returns tokens immediately. All new accounts
// are students; the request carries no role field on purpose, since
// elevation only happens through the admin screens.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Email = role.Normalize(req.Email)
	req.Name = strings.TrimSpace(req.Name)
	if req.Email == "" || req.Password == "" || req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name/email/password required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	uid, err := h.Users.Create(ctx, req.Name, req.Email, req.PhotoURL, req.Password, h.Cfg.BcryptCost)
	if err != nil {
		if err == repository.ErrEmailExists {
			return c.JSON(http.StatusConflict, echo.Map{"error": "email already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create user failed"})
	}

	return h.issuePair(c, ctx, http.StatusCreated, userPart{
		ID: uid, Name: req.Name, Email: req.Email, PhotoURL: req.PhotoURL, Role: string(role.Student),
	})
}

// Login verifies credentials and returns a new token pair.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Email = role.Normalize(req.Email)
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email/password required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByEmail(ctx, req.Email)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "login failed"})
	}
	if !utils.VerifyPassword(u.PasswordHash, req.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}

	return h.issuePair(c, ctx, http.StatusOK, userPart{
		ID: u.ID, Name: u.Name, Email: u.Email, PhotoURL: u.PhotoURL, Role: string(role.FromString(u.Role)),
	})
}

// issuePair signs an access token, mints and stores a refresh token, and
// writes the combined auth response.
func (h *AuthHandler) issuePair(c echo.Context, ctx context.Context, status int, user userPart) error {
	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, user.ID, user.Email, user.Role, h.Cfg.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue access failed"})
	}
	refresh, err := utils.NewRefreshToken(h.Cfg.RefreshTTLDays)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue refresh failed"})
	}
	if err := h.Tokens.StoreRefresh(ctx, user.ID, utils.HashRefreshRaw(refresh.Raw), refresh.Exp); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save refresh failed"})
	}
	return c.JSON(status, authResp{
		User:    user,
		Access:  tokenPart{Token: access.Token, Expires: access.Exp},
		Refresh: tokenPart{Token: refresh.Raw, Expires: refresh.Exp}, // raw back to client
	})
}

// Refresh exchanges a valid refresh token for a new pair, rotating the
// refresh token (old one is revoked).
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req refreshReq
	if err := c.Bind(&req); err != nil || strings.TrimSpace(req.RefreshToken) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "refresh_token required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	hash := utils.HashRefreshRaw(strings.TrimSpace(req.RefreshToken))
	uid, err := h.Tokens.ValidateRefresh(ctx, hash)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid refresh token"})
	}
	u, err := h.Users.GetByID(ctx, uid)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid refresh token"})
	}
	if err := h.Tokens.RevokeByHash(ctx, hash); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "refresh failed"})
	}

	return h.issuePair(c, ctx, http.StatusOK, userPart{
		ID: u.ID, Name: u.Name, Email: u.Email, PhotoURL: u.PhotoURL, Role: string(role.FromString(u.Role)),
	})
}

// Logout revokes the refresh token supplied in the body, ending that
// session.
func (h *AuthHandler) Logout(c echo.Context) error {
	var req refreshReq
	if err := c.Bind(&req); err != nil || strings.TrimSpace(req.RefreshToken) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "refresh_token required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	hash := utils.HashRefreshRaw(strings.TrimSpace(req.RefreshToken))
	if _, err := h.Tokens.ValidateRefresh(ctx, hash); err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid refresh token"})
	}
	if err := h.Tokens.RevokeByHash(ctx, hash); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "logout failed"})
	}
	return c.NoContent(http.StatusNoContent)
}

// Me returns the authenticated user's record together with the CURRENT
// resolved role state, so the front-end renders from live data rather than
// from the role frozen into the access token.
func (h *AuthHandler) Me(c echo.Context) error {
	email := middleware.Email(c)
	if email == "" {
		// A token without an email claim has no identity to resolve.
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	st := h.Roles.StateFor(ctx, email)
	resp := echo.Map{
		"role": st.Role,
		"capabilities": echo.Map{
			"is_admin":     st.IsAdmin,
			"is_moderator": st.IsModerator,
			"is_student":   st.IsStudent,
		},
	}

	if u, err := h.Users.GetByEmail(ctx, email); err == nil {
		resp["user"] = userPart{ID: u.ID, Name: u.Name, Email: u.Email, PhotoURL: u.PhotoURL, Role: string(st.Role)}
	}
	return c.JSON(http.StatusOK, resp)
}
