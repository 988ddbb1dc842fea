package reject_session

import (
	"fmt"

	"github.com/squadsync/SquadSync-SessionService/internal/domain"
)

// validateTransition проверяет допустимость перехода reject для пользователя
// Отказ допустим из PENDING и из ACCEPTED (withdraw моделируется тем же действием)
func validateTransition(session *domain.Session, userID string) error {
	if session.IsCancelled() {
		return ErrSessionCancelled
	}

	participant, ok := session.ParticipantFor(userID)
	if !ok {
		return ErrNotParticipant
	}

	switch participant.Status {
	case domain.ResponsePending, domain.ResponseAccepted:
		return nil
	case domain.ResponseRejected:
		return ErrAlreadyRejected
	default:
		return fmt.Errorf("%w: unexpected response status %q", ErrInternal, participant.Status)
	}
}

// validateReason проверяет, что причина допустима по таблице резолвера
func validateReason(session *domain.Session, slots []*domain.AvailabilitySlot, reason domain.RejectionReason) error {
	resolution := domain.ResolveRejection(session, slots)
	if !resolution.Allows(reason) {
		return fmt.Errorf("%w: %s", ErrReasonNotAllowed, reason)
	}
	return nil
}
