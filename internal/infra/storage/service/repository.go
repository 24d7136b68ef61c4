package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/avdnk/DocBooking/internal/domain"
	"github.com/avdnk/DocBooking/pkg/psqlbuilder"
	"github.com/avdnk/DocBooking/pkg/txmanager"
)

var serviceColumns = []string{
	"id",
	"name",
	"duration_minutes",
	"description",
	"price",
	"created_at",
}

// Repository репозиторий справочника услуг.
// Услуги создаются при наполнении БД и не изменяются приложением.
type Repository struct {
	db txmanager.DBExecutor
}

// NewRepository создает новый экземпляр репозитория услуг
func NewRepository(db txmanager.DBExecutor) *Repository {
	return &Repository{db: db}
}

// List возвращает все услуги в порядке их ID
func (r *Repository) List(ctx context.Context) ([]*domain.Service, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(serviceColumns...).
		From("services").
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	services := make([]*domain.Service, 0)
	for rows.Next() {
		service, err := scanService(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		services = append(services, service)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return services, nil
}

// GetByID получает услугу по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(serviceColumns...).
		From("services").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)

	service, err := scanService(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan service: %v", ErrScanRow, err)
	}

	return service, nil
}

func scanService(scan func(dest ...interface{}) error) (*domain.Service, error) {
	var service domain.Service
	var createdAt sql.NullTime

	err := scan(
		&service.ID,
		&service.Name,
		&service.DurationMinutes,
		&service.Description,
		&service.Price,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	service.CreatedAt = createdAt.Time
	return &service, nil
}
