package model

import "time"

// User represents a row in the `users` table. One record exists per
// email; email is the join key between the session identity and the
// stored role. Handlers define separate response types with JSON tags,
// so none are declared here.
//
// Fields:
//  ID           – primary key identifier of the user.
//  Name         – display name shown in dashboards.
//  Email        – unique, normalized (lowercase) email address.
//  PhotoURL     – optional avatar URL.
//  PasswordHash – bcrypt hashed password.
//  Role         – raw role value as stored ("student", "moderator", "admin").
//  CreatedAt    – timestamp of creation.
//  UpdatedAt    – timestamp of last update.
type User struct {
	ID           uint64    // users.id
	Name         string    // users.name
	Email        string    // users.email
	PhotoURL     string    // users.photo_url
	PasswordHash string    // users.password_hash
	Role         string    // users.role
	CreatedAt    time.Time // users.created_at
	UpdatedAt    time.Time // users.updated_at
}

// RefreshToken models an entry in the `refresh_tokens` table. Only the
// SHA-256 hash of the raw token is stored.
//
// Fields:
//  ID        – primary key identifier.
//  UserID    – owner of the token.
//  TokenHash – SHA-256 hex digest of the token value.
//  ExpiresAt – expiration timestamp of the token.
//  RevokedAt – when the token was revoked (null if still active).
//  CreatedAt – timestamp of creation.
type RefreshToken struct {
	ID        uint64     // refresh_tokens.id
	UserID    uint64     // refresh_tokens.user_id
	TokenHash string     // refresh_tokens.token_hash
	ExpiresAt time.Time  // refresh_tokens.expires_at
	RevokedAt *time.Time // refresh_tokens.revoked_at (nullable)
	CreatedAt time.Time  // refresh_tokens.created_at
}
