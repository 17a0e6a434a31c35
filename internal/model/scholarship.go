package model

import "time"

// Scholarship mirrors the `scholarships` table. The listing data was
// imported from an upstream collection with inconsistent shapes, so the
// lenient fields below are kept as raw strings and coerced at read time
// by the catalog package:
//
//	ApplicationFees     – may be numeric ("25"), empty, or junk ("varies").
//	ApplicationDeadline – date string in one of several layouts, or empty.
//	Location            – legacy records carry a combined location string
//	                      instead of UniversityCountry/UniversityCity.
type Scholarship struct {
	ID                  uint64    // scholarships.id
	ScholarshipName     string    // scholarships.scholarship_name
	UniversityName      string    // scholarships.university_name
	UniversityCountry   string    // scholarships.university_country
	UniversityCity      string    // scholarships.university_city
	Location            string    // scholarships.location (legacy fallback)
	ScholarshipCategory string    // scholarships.scholarship_category
	Degree              string    // scholarships.degree
	FundingType         string    // scholarships.funding_type
	ApplicationFees     string    // scholarships.application_fees (raw)
	ApplicationDeadline string    // scholarships.application_deadline (raw)
	UniversityImage     string    // scholarships.university_image
	PostedAt            time.Time // scholarships.posted_at
	UpdatedAt           time.Time // scholarships.updated_at
}

// Application mirrors the `applications` table. A student applies to a
// scholarship; the fee charged at submission time is recorded on the row
// so later fee edits on the scholarship do not rewrite history. Payment
// collection happens outside this service.
//
// Status values: "pending", "processing", "completed", "rejected".
type Application struct {
	ID            uint64    `json:"id"`             // applications.id
	UserID        uint64    `json:"user_id"`        // applications.user_id
	ScholarshipID uint64    `json:"scholarship_id"` // applications.scholarship_id
	Status        string    `json:"status"`         // applications.status
	FeePaidCents  uint64    `json:"fee_paid_cents"` // applications.fee_paid_cents
	Feedback      string    `json:"feedback,omitempty"` // moderator note, may be empty
	AppliedAt     time.Time `json:"applied_at"`     // applications.applied_at
	UpdatedAt     time.Time `json:"updated_at"`     // applications.updated_at
}

// Review mirrors the `reviews` table. One review per user per
// scholarship, enforced by a unique (user_id, scholarship_id) index.
type Review struct {
	ID            uint64    `json:"id"`             // reviews.id
	UserID        uint64    `json:"user_id"`        // reviews.user_id
	ScholarshipID uint64    `json:"scholarship_id"` // reviews.scholarship_id
	Rating        uint8     `json:"rating"`         // reviews.rating (1..5)
	Comment       string    `json:"comment"`        // reviews.comment
	CreatedAt     time.Time `json:"created_at"`     // reviews.created_at
	UpdatedAt     time.Time `json:"updated_at"`     // reviews.updated_at
}
