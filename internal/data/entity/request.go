package entity

type RequestStatus string

const (
	StatusPending    RequestStatus = "pending"
	StatusInProgress RequestStatus = "in-progress"
	StatusCompleted  RequestStatus = "completed"
	StatusRejected   RequestStatus = "rejected"
)

type Request struct {
	Base
	UserID      int64         `db:"user_id"`
	Description string        `db:"description"`
	Status      RequestStatus `db:"status"`

	User *User
}

// RequestStats holds per-status request counts.
type RequestStats struct {
	Pending    int64
	InProgress int64
	Completed  int64
	Rejected   int64
	Total      int64
}
