package cafeconfig

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/playgrid/PGC-StationService/internal/domain"
	"github.com/playgrid/PGC-StationService/pkg/clock"
	"github.com/playgrid/PGC-StationService/pkg/dbmetrics"
	"github.com/playgrid/PGC-StationService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с конфигурацией кафе:
// часы работы, парк станций и таблица тарифов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория конфигурации кафе
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get получает конфигурацию кафе вместе с вместимостью по типам станций
func (r *Repository) Get(ctx context.Context, cafeID int64) (*domain.CafeConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"cafe_id",
		"open_minute",
		"close_minute",
	).
		From("cafe_configs").
		Where(squirrel.Eq{"cafe_id": cafeID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var cfg domain.CafeConfig
	var openMinute, closeMinute int

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&cfg.CafeID,
		&openMinute,
		&closeMinute,
	)

	if err == sql.ErrNoRows {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan config: %v", ErrScanRow, err)
	}

	cfg.OpenMinute = clock.Minute(openMinute)
	cfg.CloseMinute = clock.Minute(closeMinute)

	cfg.Capacities, err = r.getCapacities(ctx, cafeID)
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Upsert сохраняет конфигурацию кафе; вместимость перезаписывается целиком
func (r *Repository) Upsert(ctx context.Context, cfg *domain.CafeConfig) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("cafe_configs").
		Columns("cafe_id", "open_minute", "close_minute").
		Values(cfg.CafeID, int(cfg.OpenMinute), int(cfg.CloseMinute)).
		Suffix("ON CONFLICT (cafe_id) DO UPDATE SET open_minute = EXCLUDED.open_minute, close_minute = EXCLUDED.close_minute, updated_at = NOW()").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	return r.replaceCapacities(ctx, cfg.CafeID, cfg.Capacities)
}

// ListTiers получает все тарифы кафе
func (r *Repository) ListTiers(ctx context.Context, cafeID int64) ([]*domain.PricingTier, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"cafe_id",
		"station_type",
		"players",
		"duration_minutes",
		"price",
	).
		From("pricing_tiers").
		Where(squirrel.Eq{"cafe_id": cafeID}).
		OrderBy("station_type ASC, players ASC, duration_minutes ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListTiers - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListTiers - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	tiers := make([]*domain.PricingTier, 0)
	for rows.Next() {
		var tier domain.PricingTier
		err := rows.Scan(
			&tier.ID,
			&tier.CafeID,
			&tier.StationType,
			&tier.Players,
			&tier.DurationMinutes,
			&tier.Price,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListTiers - scan row: %v", ErrScanRow, err)
		}
		tiers = append(tiers, &tier)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListTiers - rows error: %v", ErrScanRow, err)
	}

	return tiers, nil
}

// ReplaceTiers перезаписывает таблицу тарифов кафе целиком.
// Вызывается внутри транзакции: старые тарифы не должны быть видны
// вперемешку с новыми.
func (r *Repository) ReplaceTiers(ctx context.Context, cafeID int64, tiers []*domain.PricingTier) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("pricing_tiers").
		Where(squirrel.Eq{"cafe_id": cafeID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceTiers - build delete query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: ReplaceTiers - execute delete: %v", ErrExecQuery, err)
	}

	if len(tiers) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert("pricing_tiers").
		Columns("cafe_id", "station_type", "players", "duration_minutes", "price")
	for _, tier := range tiers {
		insertBuilder = insertBuilder.Values(cafeID, tier.StationType, tier.Players, tier.DurationMinutes, tier.Price)
	}

	query, args, err = insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceTiers - build insert query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: ReplaceTiers - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// getCapacities получает вместимость по типам станций
func (r *Repository) getCapacities(ctx context.Context, cafeID int64) (map[domain.StationType]int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("station_type", "capacity").
		From("station_capacities").
		Where(squirrel.Eq{"cafe_id": cafeID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getCapacities - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: getCapacities - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	capacities := make(map[domain.StationType]int)
	for rows.Next() {
		var st domain.StationType
		var capacity int
		if err := rows.Scan(&st, &capacity); err != nil {
			return nil, fmt.Errorf("%w: getCapacities - scan row: %v", ErrScanRow, err)
		}
		capacities[st] = capacity
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: getCapacities - rows error: %v", ErrScanRow, err)
	}

	return capacities, nil
}

// replaceCapacities перезаписывает вместимость кафе целиком
func (r *Repository) replaceCapacities(ctx context.Context, cafeID int64, capacities map[domain.StationType]int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("station_capacities").
		Where(squirrel.Eq{"cafe_id": cafeID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: replaceCapacities - build delete query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: replaceCapacities - execute delete: %v", ErrExecQuery, err)
	}

	if len(capacities) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert("station_capacities").
		Columns("cafe_id", "station_type", "capacity")
	for _, st := range domain.AllStationTypes {
		capacity, ok := capacities[st]
		if !ok {
			continue
		}
		insertBuilder = insertBuilder.Values(cafeID, st, capacity)
	}

	query, args, err = insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: replaceCapacities - build insert query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: replaceCapacities - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}
