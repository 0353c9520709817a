package unavailability

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/CWS-BookingService/internal/domain"
	"github.com/m04kA/CWS-BookingService/pkg/dbmetrics"
	"github.com/m04kA/CWS-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с окнами недоступности коворкингов.
// Затронутые площадки хранятся массивом bigint[] в колонке space_ids.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория окон недоступности
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое окно недоступности
func (r *Repository) Create(ctx context.Context, window *domain.UnavailabilityWindow) (*domain.UnavailabilityWindow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("unavailability_windows").
		Columns(
			"label",
			"space_ids",
			"start_at",
			"end_at",
		).
		Values(
			window.Label,
			pq.Array(window.SpaceIDs),
			window.StartAt,
			window.EndAt,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&window.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	window.CreatedAt = createdAt.Time
	window.UpdatedAt = updatedAt.Time

	return window, nil
}

// GetBySpaceAndRange получает окна недоступности площадки, пересекающие
// полуоткрытый интервал [from, to)
func (r *Repository) GetBySpaceAndRange(ctx context.Context, spaceID int64, from, to time.Time) ([]*domain.UnavailabilityWindow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectWindows().
		Where(squirrel.Expr("space_ids @> ARRAY[?]::bigint[]", spaceID)).
		Where(squirrel.Lt{"start_at": to}).
		Where(squirrel.Gt{"end_at": from}).
		OrderBy("start_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetBySpaceAndRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetBySpaceAndRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanWindows(rows)
}

// ListBySpace получает все окна недоступности площадки
func (r *Repository) ListBySpace(ctx context.Context, spaceID int64) ([]*domain.UnavailabilityWindow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectWindows().
		Where(squirrel.Expr("space_ids @> ARRAY[?]::bigint[]", spaceID)).
		OrderBy("start_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListBySpace - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListBySpace - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanWindows(rows)
}

// Delete удаляет окно недоступности
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("unavailability_windows").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrWindowNotFound
	}

	return nil
}

func selectWindows() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"label",
		"space_ids",
		"start_at",
		"end_at",
		"created_at",
		"updated_at",
	).From("unavailability_windows")
}

// scanWindows сканирует результаты запроса в слайс окон недоступности
func (r *Repository) scanWindows(rows *sql.Rows) ([]*domain.UnavailabilityWindow, error) {
	windows := make([]*domain.UnavailabilityWindow, 0)

	for rows.Next() {
		var window domain.UnavailabilityWindow
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&window.ID,
			&window.Label,
			pq.Array(&window.SpaceIDs),
			&window.StartAt,
			&window.EndAt,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanWindows - scan row: %v", ErrScanRow, err)
		}

		window.CreatedAt = createdAt.Time
		window.UpdatedAt = updatedAt.Time

		windows = append(windows, &window)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanWindows - rows error: %v", ErrScanRow, err)
	}

	return windows, nil
}
