package repository

import (
	"context"
	"database/sql"
)

// StatsRepo aggregates the counters behind the admin analytics screen.
type StatsRepo struct{ DB *sql.DB }

func NewStatsRepo(db *sql.DB) *StatsRepo { return &StatsRepo{DB: db} }

// CategoryCount is one chart bar: applications received per scholarship
// category.
type CategoryCount struct {
	Name  string `json:"name"`
	Count uint64 `json:"count"`
}

// Overview is the platform-wide snapshot served to administrators. Revenue
// is the sum of the fees frozen onto applications at submission time.
type Overview struct {
	TotalUsers        uint64          `json:"total_users"`
	TotalScholarships uint64          `json:"total_scholarships"`
	TotalApplications uint64          `json:"total_applications"`
	TotalRevenueCents uint64          `json:"total_revenue_cents"`
	ChartData         []CategoryCount `json:"chart_data"`
}

// Overview runs the aggregate queries in one pass.
func (r *StatsRepo) Overview(ctx context.Context) (Overview, error) {
	var o Overview

	err := r.DB.QueryRowContext(ctx,
		`SELECT
		  (SELECT COUNT(*) FROM users),
		  (SELECT COUNT(*) FROM scholarships),
		  (SELECT COUNT(*) FROM applications),
		  (SELECT COALESCE(SUM(fee_paid_cents),0) FROM applications)`).
		Scan(&o.TotalUsers, &o.TotalScholarships, &o.TotalApplications, &o.TotalRevenueCents)
	if err != nil {
		return Overview{}, err
	}

	rows, err := r.DB.QueryContext(ctx,
		`SELECT COALESCE(NULLIF(s.scholarship_category,''),'Uncategorized'), COUNT(*)
		 FROM applications a
		 JOIN scholarships s ON s.id = a.scholarship_id
		 GROUP BY 1
		 ORDER BY 2 DESC, 1 ASC`)
	if err != nil {
		return Overview{}, err
	}
	defer rows.Close()

	o.ChartData = []CategoryCount{}
	for rows.Next() {
		var c CategoryCount
		if err := rows.Scan(&c.Name, &c.Count); err != nil {
			return Overview{}, err
		}
		o.ChartData = append(o.ChartData, c)
	}
	return o, rows.Err()
}
