package classify_sessions

import "github.com/squadsync/SquadSync-SessionService/internal/domain"

// Partition раскладывает набор сессий по группам отображения для пользователя
//
// CONFIRMED всегда уходит в Confirmed, независимо от статуса записи
// участника. Каждая PRELIMINARY сессия попадает ровно в одну из трёх
// оставшихся групп. CANCELLED сессии в выдачу не попадают
func Partition(sessions []*domain.Session, userID string) *Buckets {
	buckets := &Buckets{
		Confirmed:          []*domain.Session{},
		AwaitingMyResponse: []*domain.Session{},
		AcceptedByMe:       []*domain.Session{},
		NotInvited:         []*domain.Session{},
	}

	for _, session := range sessions {
		switch {
		case session.IsCancelled():
			continue

		case session.IsConfirmed():
			buckets.Confirmed = append(buckets.Confirmed, session)

		default:
			participant, invited := session.ParticipantFor(userID)
			if !invited {
				buckets.NotInvited = append(buckets.NotInvited, session)
				continue
			}

			switch participant.Status {
			case domain.ResponsePending:
				buckets.AwaitingMyResponse = append(buckets.AwaitingMyResponse, session)
			case domain.ResponseAccepted:
				buckets.AcceptedByMe = append(buckets.AcceptedByMe, session)
			default:
				// REJECTED: запись есть, но действий от пользователя не требуется
				buckets.NotInvited = append(buckets.NotInvited, session)
			}
		}
	}

	return buckets
}
