package repository

import (
	"context"
	"database/sql"

	"github.com/scholarstream/api/internal/model"
)

// ApplicationRepo reads and writes the 'applications' table.
type ApplicationRepo struct{ DB *sql.DB }

func NewApplicationRepo(db *sql.DB) *ApplicationRepo { return &ApplicationRepo{DB: db} }

const applicationCols = "id,user_id,scholarship_id,status,fee_paid_cents,feedback,applied_at,updated_at"

func scanApplication(row interface{ Scan(...any) error }) (model.Application, error) {
	var a model.Application
	err := row.Scan(&a.ID, &a.UserID, &a.ScholarshipID, &a.Status, &a.FeePaidCents,
		&a.Feedback, &a.AppliedAt, &a.UpdatedAt)
	return a, err
}

// Create inserts a pending application and returns its ID. feeCents is the
// fee charged at submission time, frozen onto the row.
func (r *ApplicationRepo) Create(ctx context.Context, userID, scholarshipID, feeCents uint64) (uint64, error) {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO applications (user_id, scholarship_id, status, fee_paid_cents) VALUES (?,?,'pending',?)",
		userID, scholarshipID, feeCents)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// ListByUser returns a student's own applications, newest first.
func (r *ApplicationRepo) ListByUser(ctx context.Context, userID uint64) ([]model.Application, error) {
	return r.list(ctx,
		"SELECT "+applicationCols+" FROM applications WHERE user_id=? ORDER BY applied_at DESC, id DESC",
		userID)
}

// ListAll returns every application for the moderator dashboard, oldest
// pending work first.
func (r *ApplicationRepo) ListAll(ctx context.Context) ([]model.Application, error) {
	return r.list(ctx,
		"SELECT "+applicationCols+" FROM applications ORDER BY applied_at ASC, id ASC")
}

func (r *ApplicationRepo) list(ctx context.Context, query string, args ...any) ([]model.Application, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Application{}
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// UpdateStatus moves an application through the moderation pipeline and
// optionally attaches feedback.
func (r *ApplicationRepo) UpdateStatus(ctx context.Context, id uint64, status, feedback string) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE applications SET status=?, feedback=? WHERE id=?", status, feedback, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		var exists int
		if err := r.DB.QueryRowContext(ctx, "SELECT 1 FROM applications WHERE id=? LIMIT 1", id).Scan(&exists); err == sql.ErrNoRows {
			return ErrNotFound
		} else if err != nil {
			return err
		}
	}
	return nil
}

// CancelOwnPending deletes an application only while it is still pending
// and belongs to the calling user. ErrNotFound covers both a wrong owner
// and a non-pending status, so handlers answer 404 without leaking which.
func (r *ApplicationRepo) CancelOwnPending(ctx context.Context, id, userID uint64) error {
	res, err := r.DB.ExecContext(ctx,
		"DELETE FROM applications WHERE id=? AND user_id=? AND status='pending'", id, userID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
