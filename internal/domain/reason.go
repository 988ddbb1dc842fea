package domain

import "fmt"

// RejectionReason категория отказа от сессии
// Определяет, удаляется ли вместе с отказом и доступность пользователя
type RejectionReason string

const (
	// ReasonNotAvailable пользователь больше не доступен в это время;
	// внешний сервис удаляет пересекающийся слот доступности
	ReasonNotAvailable RejectionReason = "NOT_AVAILABLE"

	// ReasonDontWantGame пользователь не хочет играть в эту игру;
	// доступность не меняется
	ReasonDontWantGame RejectionReason = "DONT_WANT_GAME"
)

// ParseRejectionReason валидирует причину отказа из внешнего ввода
func ParseRejectionReason(s string) (RejectionReason, error) {
	switch RejectionReason(s) {
	case ReasonNotAvailable:
		return ReasonNotAvailable, nil
	case ReasonDontWantGame:
		return ReasonDontWantGame, nil
	default:
		return "", fmt.Errorf("unknown rejection reason %q", s)
	}
}

// RejectionResolution результат разбора отказа для конкретной сессии
type RejectionResolution struct {
	RequiresPrompt bool
	AllowedReasons []RejectionReason
	DefaultReason  RejectionReason
}

// Allows returns true if the reason is valid for this resolution
func (r RejectionResolution) Allows(reason RejectionReason) bool {
	for _, allowed := range r.AllowedReasons {
		if allowed == reason {
			return true
		}
	}
	return false
}

// ResolveRejection решает, какие причины отказа имеют смысл для сессии
// при текущих слотах доступности пользователя
//
// Если ни один слот не пересекается с сессией, причина NOT_AVAILABLE
// бессмысленна (удалять нечего): диалог не нужен, отказ уходит сразу
// с DONT_WANT_GAME. При пересечении пользователь выбирает причину,
// по умолчанию NOT_AVAILABLE.
func ResolveRejection(session *Session, slots []*AvailabilitySlot) RejectionResolution {
	hasOverlap := false
	for _, slot := range slots {
		if slot.OverlapsSession(session) {
			hasOverlap = true
			break
		}
	}

	if !hasOverlap {
		return RejectionResolution{
			RequiresPrompt: false,
			AllowedReasons: []RejectionReason{ReasonDontWantGame},
			DefaultReason:  ReasonDontWantGame,
		}
	}

	return RejectionResolution{
		RequiresPrompt: true,
		AllowedReasons: []RejectionReason{ReasonNotAvailable, ReasonDontWantGame},
		DefaultReason:  ReasonNotAvailable,
	}
}
