package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/scholarstream/api/internal/model"
)

// ReviewRepo reads and writes the 'reviews' table. One review per user per
// scholarship; the unique index maps duplicate inserts to ErrReviewExists.
type ReviewRepo struct{ DB *sql.DB }

func NewReviewRepo(db *sql.DB) *ReviewRepo { return &ReviewRepo{DB: db} }

// ErrReviewExists is returned when a user reviews the same scholarship twice.
var ErrReviewExists = errors.New("review already exists for this scholarship")

const reviewCols = "id,user_id,scholarship_id,rating,comment,created_at,updated_at"

func scanReview(row interface{ Scan(...any) error }) (model.Review, error) {
	var v model.Review
	err := row.Scan(&v.ID, &v.UserID, &v.ScholarshipID, &v.Rating, &v.Comment, &v.CreatedAt, &v.UpdatedAt)
	return v, err
}

// Create inserts a review and returns its ID.
func (r *ReviewRepo) Create(ctx context.Context, userID, scholarshipID uint64, rating uint8, comment string) (uint64, error) {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO reviews (user_id, scholarship_id, rating, comment) VALUES (?,?,?,?)",
		userID, scholarshipID, rating, comment)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return 0, ErrReviewExists
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// UpdateOwn edits a review only when it belongs to the calling user.
func (r *ReviewRepo) UpdateOwn(ctx context.Context, id, userID uint64, rating uint8, comment string) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE reviews SET rating=?, comment=? WHERE id=? AND user_id=?",
		rating, comment, id, userID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		var exists int
		if err := r.DB.QueryRowContext(ctx,
			"SELECT 1 FROM reviews WHERE id=? AND user_id=? LIMIT 1", id, userID).Scan(&exists); err == sql.ErrNoRows {
			return ErrNotFound
		} else if err != nil {
			return err
		}
	}
	return nil
}

// DeleteOwn removes a review only when it belongs to the calling user.
func (r *ReviewRepo) DeleteOwn(ctx context.Context, id, userID uint64) error {
	res, err := r.DB.ExecContext(ctx,
		"DELETE FROM reviews WHERE id=? AND user_id=?", id, userID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes any review; moderator/admin path.
func (r *ReviewRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM reviews WHERE id=?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// ListByUser returns a student's own reviews, newest first.
func (r *ReviewRepo) ListByUser(ctx context.Context, userID uint64) ([]model.Review, error) {
	return r.list(ctx,
		"SELECT "+reviewCols+" FROM reviews WHERE user_id=? ORDER BY created_at DESC, id DESC", userID)
}

// ListAll returns every review for the moderation dashboard.
func (r *ReviewRepo) ListAll(ctx context.Context) ([]model.Review, error) {
	return r.list(ctx,
		"SELECT "+reviewCols+" FROM reviews ORDER BY created_at DESC, id DESC")
}

func (r *ReviewRepo) list(ctx context.Context, query string, args ...any) ([]model.Review, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Review{}
	for rows.Next() {
		v, err := scanReview(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}
