package doctorsession

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
)

// Repository репозиторий сессий врача
type Repository struct {
	db txmanager.DBExecutor
}

// NewRepository создает новый экземпляр репозитория сессий
func NewRepository(db txmanager.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новую сессию
func (r *Repository) Create(ctx context.Context, session *domain.DoctorSession) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("doctor_sessions").
		Columns("token", "expires_at").
		Values(session.Token, session.ExpiresAt).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// GetByToken получает сессию по токену
func (r *Repository) GetByToken(ctx context.Context, token string) (*domain.DoctorSession, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("token", "expires_at", "created_at").
		From("doctor_sessions").
		Where(squirrel.Eq{"token": token}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByToken - build select query: %v", ErrBuildQuery, err)
	}

	var session domain.DoctorSession
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&session.Token,
		&session.ExpiresAt,
		&createdAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByToken - scan session: %v", ErrScanRow, err)
	}

	session.CreatedAt = createdAt.Time
	return &session, nil
}

// DeleteByToken удаляет сессию (logout)
func (r *Repository) DeleteByToken(ctx context.Context, token string) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("doctor_sessions").
		Where(squirrel.Eq{"token": token}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteByToken - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: DeleteByToken - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}

// DeleteExpired удаляет все просроченные сессии.
// Вызывается лениво при каждой проверке токена - фонового таймера нет.
func (r *Repository) DeleteExpired(ctx context.Context, now time.Time) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("doctor_sessions").
		Where(squirrel.LtOrEq{"expires_at": now}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteExpired - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: DeleteExpired - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}
