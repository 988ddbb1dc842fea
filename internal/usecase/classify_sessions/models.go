package classify_sessions

import "github.com/squadsync/SquadSync-SessionService/internal/domain"

// Buckets разбиение видимого набора сессий на группы для отображения
//
// Группы попарно не пересекаются, их объединение равно входному набору.
// CONFIRMED имеет приоритет отображения над статусом участника:
// подтверждённая сессия попадает в Confirmed, даже если запись текущего
// пользователя всё ещё PENDING
type Buckets struct {
	// Confirmed сессии, подтверждённые внешним сервисом
	Confirmed []*domain.Session

	// AwaitingMyResponse предварительные сессии, ждущие ответа пользователя
	AwaitingMyResponse []*domain.Session

	// AcceptedByMe предварительные сессии, уже принятые пользователем
	AcceptedByMe []*domain.Session

	// NotInvited предварительные сессии без записи участника для пользователя,
	// а также сессии, от которых он отказался: они больше не требуют действий
	NotInvited []*domain.Session
}

// Total returns the number of sessions across all buckets
func (b *Buckets) Total() int {
	return len(b.Confirmed) + len(b.AwaitingMyResponse) + len(b.AcceptedByMe) + len(b.NotInvited)
}
