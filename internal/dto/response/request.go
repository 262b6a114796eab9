package response

import (
	"time"

	"request-portal/internal/data/entity"
)

type RequestResponse struct {
	ID          int64        `json:"id"`
	UserID      int64        `json:"userId"`
	Description string       `json:"description"`
	Status      string       `json:"status"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
	User        *UserSummary `json:"user,omitempty"`
}

type RequestStatsResponse struct {
	Pending    int64 `json:"pending"`
	InProgress int64 `json:"inProgress"`
	Completed  int64 `json:"completed"`
	Rejected   int64 `json:"rejected"`
	Total      int64 `json:"total"`
}

func RequestToResponse(request *entity.Request) RequestResponse {
	return RequestResponse{
		ID:          request.ID,
		UserID:      request.UserID,
		Description: request.Description,
		Status:      string(request.Status),
		CreatedAt:   request.CreatedAt,
		UpdatedAt:   request.UpdatedAt,
		User:        UserToSummary(request.User),
	}
}

func RequestsToResponse(requests []*entity.Request) []RequestResponse {
	out := make([]RequestResponse, 0, len(requests))
	for _, r := range requests {
		out = append(out, RequestToResponse(r))
	}
	return out
}

func StatsToResponse(stats *entity.RequestStats) RequestStatsResponse {
	return RequestStatsResponse{
		Pending:    stats.Pending,
		InProgress: stats.InProgress,
		Completed:  stats.Completed,
		Rejected:   stats.Rejected,
		Total:      stats.Total,
	}
}
