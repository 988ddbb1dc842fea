package preferences

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/squadsync/SquadSync-SessionService/internal/domain"
	"github.com/squadsync/SquadSync-SessionService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с предпочтениями по играм
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория предпочтений
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Upsert сохраняет предпочтение пользователя по игре
// Повторное сохранение той же пары (user_id, game_id) обновляет вес
func (r *Repository) Upsert(ctx context.Context, pref *domain.Preference) (*domain.Preference, error) {
	query, args, err := psqlbuilder.Insert("user_game_preferences").
		Columns(
			"user_id",
			"game_id",
			"weight",
		).
		Values(
			pref.UserID,
			pref.GameID,
			pref.Weight,
		).
		Suffix(`ON CONFLICT (user_id, game_id)
			DO UPDATE SET weight = EXCLUDED.weight, updated_at = NOW()
			RETURNING id, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&pref.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	pref.CreatedAt = createdAt.Time
	pref.UpdatedAt = updatedAt.Time

	return pref, nil
}

// GetByUserAndGame получает предпочтение пользователя по конкретной игре
func (r *Repository) GetByUserAndGame(ctx context.Context, userID, gameID string) (*domain.Preference, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"user_id",
		"game_id",
		"weight",
		"created_at",
		"updated_at",
	).
		From("user_game_preferences").
		Where(squirrel.Eq{"user_id": userID, "game_id": gameID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserAndGame - build select query: %v", ErrBuildQuery, err)
	}

	var pref domain.Preference
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&pref.ID,
		&pref.UserID,
		&pref.GameID,
		&pref.Weight,
		&pref.CreatedAt,
		&pref.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPreferenceNotFound
		}
		return nil, fmt.Errorf("%w: GetByUserAndGame - scan row: %v", ErrScanRow, err)
	}

	return &pref, nil
}

// ListByUser получает все предпочтения пользователя
func (r *Repository) ListByUser(ctx context.Context, userID string) ([]*domain.Preference, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"user_id",
		"game_id",
		"weight",
		"created_at",
		"updated_at",
	).
		From("user_game_preferences").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("game_id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByUser - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByUser - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	prefs := make([]*domain.Preference, 0)
	for rows.Next() {
		var pref domain.Preference
		if err := rows.Scan(
			&pref.ID,
			&pref.UserID,
			&pref.GameID,
			&pref.Weight,
			&pref.CreatedAt,
			&pref.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: ListByUser - scan row: %v", ErrScanRow, err)
		}
		prefs = append(prefs, &pref)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByUser - iterate rows: %v", ErrExecQuery, err)
	}

	return prefs, nil
}
