package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/scholarstream/api/internal/model"
	"github.com/scholarstream/api/internal/utils"
)

// UserRepo reads and writes the 'users' table.
type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

const userCols = "id,name,email,photo_url,password_hash,role,created_at,updated_at"

func scanUser(row interface{ Scan(...any) error }) (model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PhotoURL, &u.PasswordHash, &u.Role, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

// Create inserts a user and returns its ID. Every new account starts as a
// student; privileged roles are only ever granted through the admin screens.
func (r *UserRepo) Create(ctx context.Context, name, email, photoURL, password string, cost int) (uint64, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO users (name, email, photo_url, password_hash, role) VALUES (?,?,?,?,'student')",
		name, email, photoURL, hash)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return 0, ErrEmailExists
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByEmail fetches a user by normalized email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	return scanUser(r.DB.QueryRowContext(ctx,
		"SELECT "+userCols+" FROM users WHERE email=? LIMIT 1", email))
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id uint64) (model.User, error) {
	return scanUser(r.DB.QueryRowContext(ctx,
		"SELECT "+userCols+" FROM users WHERE id=? LIMIT 1", id))
}

// RoleByEmail is the single-record role lookup the resolver depends on. A
// missing user surfaces as sql.ErrNoRows, which the resolver maps to the
// student default.
func (r *UserRepo) RoleByEmail(ctx context.Context, email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var role string
	err := r.DB.QueryRowContext(ctx,
		"SELECT role FROM users WHERE email=? LIMIT 1", email).Scan(&role)
	return role, err
}

// List returns users ordered by creation time, optionally narrowed to one
// role for the manage-users filter dropdown.
func (r *UserRepo) List(ctx context.Context, roleFilter string) ([]model.User, error) {
	query := "SELECT " + userCols + " FROM users"
	args := []any{}
	if roleFilter != "" {
		query += " WHERE role=?"
		args = append(args, roleFilter)
	}
	query += " ORDER BY created_at ASC, id ASC"

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

// UpdateRole sets a user's role. ErrNotFound when the id matches no row.
func (r *UserRepo) UpdateRole(ctx context.Context, id uint64, role string) error {
	res, err := r.DB.ExecContext(ctx, "UPDATE users SET role=? WHERE id=?", role, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// Distinguish "no such user" from "role unchanged".
		var exists int
		if err := r.DB.QueryRowContext(ctx, "SELECT 1 FROM users WHERE id=? LIMIT 1", id).Scan(&exists); err == sql.ErrNoRows {
			return ErrNotFound
		} else if err != nil {
			return err
		}
	}
	return nil
}

// Delete removes a user permanently.
func (r *UserRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM users WHERE id=?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
