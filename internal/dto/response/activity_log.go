package response

import (
	"time"

	"request-portal/internal/data/entity"
)

type ActivityLogResponse struct {
	ID          int64        `json:"id"`
	UserID      *int64       `json:"userId"`
	Action      string       `json:"action"`
	Description string       `json:"description"`
	CreatedAt   time.Time    `json:"createdAt"`
	User        *UserSummary `json:"user,omitempty"`
}

func ActivityLogsToResponse(entries []*entity.ActivityLog) []ActivityLogResponse {
	out := make([]ActivityLogResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, ActivityLogResponse{
			ID:          e.ID,
			UserID:      e.UserID,
			Action:      e.Action,
			Description: e.Description,
			CreatedAt:   e.CreatedAt,
			User:        UserToSummary(e.User),
		})
	}
	return out
}
