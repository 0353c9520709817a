package availability

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/CWS-BookingService/internal/domain"
	"github.com/m04kA/CWS-BookingService/pkg/dbmetrics"
	"github.com/m04kA/CWS-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с окнами доступности услуг.
// Недельное расписание хранится в JSONB-колонке schedule.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория окон доступности
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое окно доступности
func (r *Repository) Create(ctx context.Context, window *domain.AvailabilityWindow) (*domain.AvailabilityWindow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	schedulePayload, err := json.Marshal(window.Schedule)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - marshal schedule: %v", ErrInvalidSchedule, err)
	}

	query, args, err := psqlbuilder.Insert("availability_windows").
		Columns(
			"service_id",
			"valid_from",
			"valid_to",
			"schedule",
			"seat_capacity",
		).
		Values(
			window.ServiceID,
			window.ValidFrom,
			window.ValidTo,
			schedulePayload,
			window.SeatCapacity,
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

// Update обновляет расписание, период действия и вместимость окна
func (r *Repository) Update(ctx context.Context, window *domain.AvailabilityWindow) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	schedulePayload, err := json.Marshal(window.Schedule)
	if err != nil {
		return fmt.Errorf("%w: Update - marshal schedule: %v", ErrInvalidSchedule, err)
	}

	query, args, err := psqlbuilder.Update("availability_windows").
		Set("valid_from", window.ValidFrom).
		Set("valid_to", window.ValidTo).
		Set("schedule", schedulePayload).
		Set("seat_capacity", window.SeatCapacity).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": window.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrWindowNotFound
	}

	return nil
}

// GetByID получает окно доступности по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.AvailabilityWindow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectWindows().
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	windows, err := r.scanWindows(rows)
	if err != nil {
		return nil, err
	}
	if len(windows) == 0 {
		return nil, ErrWindowNotFound
	}

	return windows[0], nil
}

// GetByServiceAndRange получает окна услуги, период действия которых
// пересекает [from, to] (сравнение по датам, границы включительно)
func (r *Repository) GetByServiceAndRange(ctx context.Context, serviceID int64, from, to time.Time) ([]*domain.AvailabilityWindow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectWindows().
		Where(squirrel.Eq{"service_id": serviceID}).
		Where(squirrel.LtOrEq{"valid_from": to}).
		Where(squirrel.GtOrEq{"valid_to": from}).
		OrderBy("valid_from ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByServiceAndRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByServiceAndRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanWindows(rows)
}

// ListByService получает все окна услуги
func (r *Repository) ListByService(ctx context.Context, serviceID int64) ([]*domain.AvailabilityWindow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectWindows().
		Where(squirrel.Eq{"service_id": serviceID}).
		OrderBy("valid_from ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByService - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByService - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanWindows(rows)
}

// Delete удаляет окно доступности
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("availability_windows").
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
		"service_id",
		"valid_from",
		"valid_to",
		"schedule",
		"seat_capacity",
		"created_at",
		"updated_at",
	).From("availability_windows")
}

// scanWindows сканирует результаты запроса в слайс окон доступности
func (r *Repository) scanWindows(rows *sql.Rows) ([]*domain.AvailabilityWindow, error) {
	windows := make([]*domain.AvailabilityWindow, 0)

	for rows.Next() {
		var window domain.AvailabilityWindow
		var schedulePayload []byte
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&window.ID,
			&window.ServiceID,
			&window.ValidFrom,
			&window.ValidTo,
			&schedulePayload,
			&window.SeatCapacity,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanWindows - scan row: %v", ErrScanRow, err)
		}

		if err := json.Unmarshal(schedulePayload, &window.Schedule); err != nil {
			return nil, fmt.Errorf("%w: scanWindows - unmarshal schedule: %v", ErrInvalidSchedule, err)
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
