// Package queue defines message payloads exchanged over the message broker.
package queue

// Queue names shared by the publisher and the audit consumer.
const (
	RoleChangedQueue          = "role.changed"
	ApplicationSubmittedQueue = "application.submitted"
)

// RoleChangedEvent is published when an administrator changes a user's
// role. Downstream consumers use it for auditing without querying the
// primary database; the role cache invalidation happens in-process before
// the event is emitted.
type RoleChangedEvent struct {
	UserID    uint64 `json:"user_id"`
	Email     string `json:"email"`
	OldRole   string `json:"old_role"`
	NewRole   string `json:"new_role"`
	ChangedBy uint64 `json:"changed_by"`
	ChangedAt string `json:"changed_at"`
}

// ApplicationSubmittedEvent is published when a student submits a paid
// application. It carries enough for notification and audit consumers.
type ApplicationSubmittedEvent struct {
	ApplicationID   uint64 `json:"application_id"`
	UserID          uint64 `json:"user_id"`
	ScholarshipID   uint64 `json:"scholarship_id"`
	ScholarshipName string `json:"scholarship_name"`
	UniversityName  string `json:"university_name"`
	FeePaidCents    uint64 `json:"fee_paid_cents"`
	SubmittedAt     string `json:"submitted_at"`
}
