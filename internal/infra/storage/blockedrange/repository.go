package blockedrange

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/avdnk/DocBooking/internal/domain"
	"github.com/avdnk/DocBooking/pkg/psqlbuilder"
	"github.com/avdnk/DocBooking/pkg/txmanager"
	"github.com/avdnk/DocBooking/pkg/types"
)

var blockColumns = []string{
	"id",
	"blocked_date",
	"start_time",
	"end_time",
	"reason",
	"calendar_event_id",
	"created_at",
}

// Repository репозиторий заблокированных диапазонов.
// Диапазоны не обновляются - только создание и удаление.
type Repository struct {
	db txmanager.DBExecutor
}

// NewRepository создает новый экземпляр репозитория заблокированных диапазонов
func NewRepository(db txmanager.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый заблокированный диапазон
func (r *Repository) Create(ctx context.Context, block *domain.BlockedRange) (*domain.BlockedRange, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("blocked_ranges").
		Columns(
			"blocked_date",
			"start_time",
			"end_time",
			"reason",
		).
		Values(
			block.Date,
			block.StartTime,
			block.EndTime,
			block.Reason,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&block.ID,
		&createdAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	block.CreatedAt = createdAt.Time
	return block, nil
}

// GetByID получает заблокированный диапазон по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.BlockedRange, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(blockColumns...).
		From("blocked_ranges").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)

	block, err := scanBlock(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBlockNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan block: %v", ErrScanRow, err)
	}

	return block, nil
}

// ListByDate возвращает все диапазоны на указанную дату.
// Перекрывающиеся диапазоны не схлопываются.
func (r *Repository) ListByDate(ctx context.Context, date time.Time) ([]*domain.BlockedRange, error) {
	return r.list(ctx, squirrel.Eq{"blocked_date": date})
}

// ListFrom возвращает все диапазоны начиная с указанной даты
func (r *Repository) ListFrom(ctx context.Context, from time.Time) ([]*domain.BlockedRange, error) {
	return r.list(ctx, squirrel.GtOrEq{"blocked_date": from})
}

// Delete удаляет заблокированный диапазон
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("blocked_ranges").
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
		return ErrBlockNotFound
	}

	return nil
}

// SetCalendarEventID сохраняет ID зеркального события внешнего календаря
func (r *Repository) SetCalendarEventID(ctx context.Context, id int64, eventID *string) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("blocked_ranges").
		Set("calendar_event_id", eventID).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetCalendarEventID - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetCalendarEventID - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetCalendarEventID - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrBlockNotFound
	}

	return nil
}

func (r *Repository) list(ctx context.Context, where interface{}) ([]*domain.BlockedRange, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(blockColumns...).
		From("blocked_ranges").
		Where(where).
		OrderBy("blocked_date ASC, start_time ASC NULLS FIRST").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: list - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: list - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	blocks := make([]*domain.BlockedRange, 0)
	for rows.Next() {
		block, err := scanBlock(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: list - scan row: %v", ErrScanRow, err)
		}
		blocks = append(blocks, block)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: list - rows error: %v", ErrScanRow, err)
	}

	return blocks, nil
}

func scanBlock(scan func(dest ...interface{}) error) (*domain.BlockedRange, error) {
	var block domain.BlockedRange
	var startTime, endTime types.TimeString
	var createdAt sql.NullTime

	err := scan(
		&block.ID,
		&block.Date,
		&startTime,
		&endTime,
		&block.Reason,
		&block.CalendarEventID,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	// NULL в БД сканируется в пустую строку
	if !startTime.IsZero() {
		block.StartTime = &startTime
	}
	if !endTime.IsZero() {
		block.EndTime = &endTime
	}
	block.CreatedAt = createdAt.Time

	return &block, nil
}
