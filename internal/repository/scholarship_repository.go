package repository

import (
	"context"
	"database/sql"

	"github.com/scholarstream/api/internal/model"
)

// ScholarshipRepo reads and writes the 'scholarships' table. Listing reads
// return the whole collection in posting order; the catalog package does
// all filtering and sorting in memory so its coercion rules for malformed
// fees and deadlines apply uniformly.
type ScholarshipRepo struct{ DB *sql.DB }

func NewScholarshipRepo(db *sql.DB) *ScholarshipRepo { return &ScholarshipRepo{DB: db} }

const scholarshipCols = "id,scholarship_name,university_name,university_country,university_city," +
	"location,scholarship_category,degree,funding_type,application_fees,application_deadline," +
	"university_image,posted_at,updated_at"

func scanScholarship(row interface{ Scan(...any) error }) (model.Scholarship, error) {
	var s model.Scholarship
	err := row.Scan(&s.ID, &s.ScholarshipName, &s.UniversityName, &s.UniversityCountry,
		&s.UniversityCity, &s.Location, &s.ScholarshipCategory, &s.Degree, &s.FundingType,
		&s.ApplicationFees, &s.ApplicationDeadline, &s.UniversityImage, &s.PostedAt, &s.UpdatedAt)
	return s, err
}

// ListAll returns every scholarship in stable fetch order (oldest posting
// first, id as tie-break).
func (r *ScholarshipRepo) ListAll(ctx context.Context) ([]model.Scholarship, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+scholarshipCols+" FROM scholarships ORDER BY posted_at ASC, id ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Scholarship{}
	for rows.Next() {
		s, err := scanScholarship(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// GetByID fetches a single scholarship.
func (r *ScholarshipRepo) GetByID(ctx context.Context, id uint64) (model.Scholarship, error) {
	return scanScholarship(r.DB.QueryRowContext(ctx,
		"SELECT "+scholarshipCols+" FROM scholarships WHERE id=? LIMIT 1", id))
}

// Create inserts a scholarship and returns its ID.
func (r *ScholarshipRepo) Create(ctx context.Context, s model.Scholarship) (uint64, error) {
	res, err := r.DB.ExecContext(ctx,
		`INSERT INTO scholarships
		 (scholarship_name, university_name, university_country, university_city, location,
		  scholarship_category, degree, funding_type, application_fees, application_deadline,
		  university_image)
		 VALUES (?,?,?,?,?,?,?,?,?,?,?)`,
		s.ScholarshipName, s.UniversityName, s.UniversityCountry, s.UniversityCity, s.Location,
		s.ScholarshipCategory, s.Degree, s.FundingType, s.ApplicationFees, s.ApplicationDeadline,
		s.UniversityImage)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// Update overwrites the editable fields of a scholarship.
func (r *ScholarshipRepo) Update(ctx context.Context, s model.Scholarship) error {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE scholarships SET
		 scholarship_name=?, university_name=?, university_country=?, university_city=?, location=?,
		 scholarship_category=?, degree=?, funding_type=?, application_fees=?, application_deadline=?,
		 university_image=?
		 WHERE id=?`,
		s.ScholarshipName, s.UniversityName, s.UniversityCountry, s.UniversityCity, s.Location,
		s.ScholarshipCategory, s.Degree, s.FundingType, s.ApplicationFees, s.ApplicationDeadline,
		s.UniversityImage, s.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		var exists int
		if err := r.DB.QueryRowContext(ctx, "SELECT 1 FROM scholarships WHERE id=? LIMIT 1", s.ID).Scan(&exists); err == sql.ErrNoRows {
			return ErrNotFound
		} else if err != nil {
			return err
		}
	}
	return nil
}

// Delete removes a scholarship.
func (r *ScholarshipRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM scholarships WHERE id=?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
