package get_dashboard

import (
	"github.com/squadsync/SquadSync-SessionService/internal/api/handlers"
	classifySessions "github.com/squadsync/SquadSync-SessionService/internal/usecase/classify_sessions"
)

// DashboardResponse HTTP response model: группы сессий для отображения
type DashboardResponse struct {
	Confirmed          []handlers.SessionView `json:"confirmed"`
	AwaitingMyResponse []handlers.SessionView `json:"awaitingMyResponse"`
	AcceptedByMe       []handlers.SessionView `json:"acceptedByMe"`
	NotInvited         []handlers.SessionView `json:"notInvited"`
}

// FromBuckets конвертирует группы use case в HTTP response
func FromBuckets(buckets *classifySessions.Buckets) *DashboardResponse {
	return &DashboardResponse{
		Confirmed:          handlers.FromDomainSessionList(buckets.Confirmed),
		AwaitingMyResponse: handlers.FromDomainSessionList(buckets.AwaitingMyResponse),
		AcceptedByMe:       handlers.FromDomainSessionList(buckets.AcceptedByMe),
		NotInvited:         handlers.FromDomainSessionList(buckets.NotInvited),
	}
}
