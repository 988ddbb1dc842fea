package preferences

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/squadsync/SquadSync-SessionService/internal/domain"
	preferencesRepo "github.com/squadsync/SquadSync-SessionService/internal/infra/storage/preferences"
	"github.com/squadsync/SquadSync-SessionService/internal/service/preferences/models"
)

// Service сервис двухфазного редактирования предпочтений по играм
//
// UI правит черновик локально и отправляет его на фиксацию отдельным
// шагом; зафиксированным значение становится только после успешного
// сохранения. Черновик и зафиксированное предпочтение хранятся отдельно,
// расхождение между ними не бывает молчаливым
type Service struct {
	repo   PreferenceRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса предпочтений
func NewService(repo PreferenceRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// NewDraft создает черновик редактирования предпочтения
// Черновик не сохраняется; он живёт до Commit
func (s *Service) NewDraft(userID, gameID string, weight int) *domain.PreferenceDraft {
	return &domain.PreferenceDraft{
		DraftID: uuid.NewString(),
		UserID:  userID,
		GameID:  gameID,
		Weight:  weight,
	}
}

// Commit валидирует черновик и фиксирует его в хранилище
// Возвращает зафиксированное предпочтение; при ошибке черновик
// остаётся незафиксированным, прежнее значение не меняется
func (s *Service) Commit(ctx context.Context, draft *domain.PreferenceDraft) (*models.PreferenceResponse, error) {
	s.logger.Info("Commit: draft=%s, user=%s, game=%s, weight=%d",
		draft.DraftID, draft.UserID, draft.GameID, draft.Weight)

	if draft.UserID == "" {
		return nil, fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}
	if draft.GameID == "" {
		return nil, fmt.Errorf("%w: gameID is required", ErrInvalidInput)
	}
	if !draft.WeightInBounds() {
		s.logger.Warn("Commit: weight=%d out of bounds for draft=%s", draft.Weight, draft.DraftID)
		return nil, fmt.Errorf("%w: weight must be between %d and %d",
			ErrInvalidWeight, domain.MinPreferenceWeight, domain.MaxPreferenceWeight)
	}

	committed, err := s.repo.Upsert(ctx, &domain.Preference{
		UserID: draft.UserID,
		GameID: draft.GameID,
		Weight: draft.Weight,
	})
	if err != nil {
		s.logger.Error("Commit: repository error for draft=%s: %v", draft.DraftID, err)
		return nil, fmt.Errorf("%w: Commit - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Commit: draft=%s committed as preference id=%d", draft.DraftID, committed.ID)
	return models.FromDomainPreference(committed), nil
}

// Get получает зафиксированное предпочтение пользователя по игре
// Используется экраном редактирования для начального значения черновика
func (s *Service) Get(ctx context.Context, userID, gameID string) (*models.PreferenceResponse, error) {
	pref, err := s.repo.GetByUserAndGame(ctx, userID, gameID)
	if err != nil {
		if errors.Is(err, preferencesRepo.ErrPreferenceNotFound) {
			return nil, ErrPreferenceNotFound
		}
		s.logger.Error("Get: repository error for user=%s, game=%s: %v", userID, gameID, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainPreference(pref), nil
}

// List получает зафиксированные предпочтения пользователя
func (s *Service) List(ctx context.Context, userID string) (*models.PreferenceListResponse, error) {
	s.logger.Info("List: fetching preferences for user=%s", userID)

	prefs, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("List: repository error for user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d preferences for user=%s", len(prefs), userID)
	return models.FromDomainPreferenceList(prefs), nil
}
