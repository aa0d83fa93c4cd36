package timer

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/playgrid/PGC-StationService/internal/domain"
	"github.com/playgrid/PGC-StationService/pkg/dbmetrics"
	"github.com/playgrid/PGC-StationService/pkg/psqlbuilder"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий для работы с безлимитными таймерами членства
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория таймеров
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var timerColumns = []string{
	"id",
	"cafe_id",
	"member_id",
	"customer_name",
	"station_type",
	"unit_number",
	"started_at",
	"status",
	"stopped_at",
	"created_at",
	"updated_at",
}

// Create создает новый таймер; ID (uuid) генерируется на уровне сервиса
func (r *Repository) Create(ctx context.Context, t *domain.TimerSubscription) (*domain.TimerSubscription, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("membership_timers").
		Columns(
			"id",
			"cafe_id",
			"member_id",
			"customer_name",
			"station_type",
			"unit_number",
			"started_at",
			"status",
		).
		Values(
			t.ID,
			t.CafeID,
			t.MemberID,
			t.CustomerName,
			t.StationType,
			t.UnitNumber,
			t.StartedAt,
			t.Status,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	t.CreatedAt = createdAt.Time
	t.UpdatedAt = updatedAt.Time

	return t, nil
}

// GetByID получает таймер по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.TimerSubscription, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(timerColumns...).
		From("membership_timers").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	t, err := scanTimer(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrTimerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan timer: %v", ErrScanRow, err)
	}

	return t, nil
}

// ListActive получает все активные таймеры кафе.
// Нулевой cafeID означает все кафе - этим пользуется трекер сессий.
func (r *Repository) ListActive(ctx context.Context, cafeID int64) ([]*domain.TimerSubscription, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(timerColumns...).
		From("membership_timers").
		Where(squirrel.Eq{"status": domain.TimerActive}).
		OrderBy("started_at ASC")

	if cafeID != 0 {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"cafe_id": cafeID})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	timers := make([]*domain.TimerSubscription, 0)
	for rows.Next() {
		t, err := scanTimer(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListActive - scan row: %v", ErrScanRow, err)
		}
		timers = append(timers, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListActive - rows error: %v", ErrScanRow, err)
	}

	return timers, nil
}

// Stop останавливает активный таймер. Повторная остановка - ошибка:
// попытка остановить уже остановленный таймер почти наверняка значит,
// что оператор смотрит на устаревший дашборд.
func (r *Repository) Stop(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("membership_timers").
		Set("status", domain.TimerStopped).
		Set("stopped_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "status": domain.TimerActive}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Stop - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Stop - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Stop - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		// Различаем "нет такого таймера" и "уже остановлен"
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
		return ErrTimerAlreadyStopped
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanTimer сканирует одну строку в таймер
func scanTimer(row rowScanner) (*domain.TimerSubscription, error) {
	var t domain.TimerSubscription
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&t.ID,
		&t.CafeID,
		&t.MemberID,
		&t.CustomerName,
		&t.StationType,
		&t.UnitNumber,
		&t.StartedAt,
		&t.Status,
		&t.StoppedAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	t.CreatedAt = createdAt.Time
	t.UpdatedAt = updatedAt.Time

	return &t, nil
}
