package entity

// ActivityLog is an append-only audit entry. UserID is nil once the
// referenced user has been deleted.
type ActivityLog struct {
	BaseSimple
	UserID      *int64 `db:"user_id"`
	Action      string `db:"action"`
	Description string `db:"description"`

	User *User
}

const (
	ActionCreateRequest = "CREATE_REQUEST"
	ActionUpdateRequest = "UPDATE_REQUEST"
	ActionDeleteRequest = "DELETE_REQUEST"
)
