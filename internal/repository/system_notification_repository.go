package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/equipment-support/internal/domain"
)

// SystemNotificationPatch captures a partial update; nil fields are untouched.
type SystemNotificationPatch struct {
	Status       *domain.IntegrationStatus
	LastActivity *time.Time
}

// SystemNotificationRepository persists integration health rows.
type SystemNotificationRepository interface {
	List(ctx context.Context) ([]domain.SystemNotification, error)
	Update(ctx context.Context, id int64, patch SystemNotificationPatch) (*domain.SystemNotification, error)
	TouchActivity(ctx context.Context, integration domain.IntegrationType) error
}

type systemNotificationRepository struct {
	pool *pgxpool.Pool
}

// NewSystemNotificationRepository instantiates repository.
func NewSystemNotificationRepository(pool *pgxpool.Pool) SystemNotificationRepository {
	return &systemNotificationRepository{pool: pool}
}

func (r *systemNotificationRepository) List(ctx context.Context) ([]domain.SystemNotification, error) {
	const query = `SELECT id, type, status, last_activity FROM system_notifications ORDER BY id ASC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.SystemNotification
	for rows.Next() {
		var row domain.SystemNotification
		if err := rows.Scan(&row.ID, &row.Type, &row.Status, &row.LastActivity); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

func (r *systemNotificationRepository) Update(ctx context.Context, id int64, patch SystemNotificationPatch) (*domain.SystemNotification, error) {
	sets := []string{}
	args := []any{}

	if patch.Status != nil {
		args = append(args, *patch.Status)
		sets = append(sets, fmt.Sprintf("status=$%d", len(args)))
	}
	if patch.LastActivity != nil {
		args = append(args, *patch.LastActivity)
		sets = append(sets, fmt.Sprintf("last_activity=$%d", len(args)))
	}

	if len(sets) == 0 {
		return r.getByID(ctx, id)
	}

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE system_notifications SET %s WHERE id=$%d RETURNING id, type, status, last_activity`,
		strings.Join(sets, ", "), len(args))
	return r.scanOne(r.pool.QueryRow(ctx, query, args...))
}

func (r *systemNotificationRepository) TouchActivity(ctx context.Context, integration domain.IntegrationType) error {
	const query = `UPDATE system_notifications SET last_activity=NOW() WHERE type=$1`
	_, err := r.pool.Exec(ctx, query, integration)
	return err
}

func (r *systemNotificationRepository) getByID(ctx context.Context, id int64) (*domain.SystemNotification, error) {
	const query = `SELECT id, type, status, last_activity FROM system_notifications WHERE id=$1`
	return r.scanOne(r.pool.QueryRow(ctx, query, id))
}

func (r *systemNotificationRepository) scanOne(row pgx.Row) (*domain.SystemNotification, error) {
	var n domain.SystemNotification
	if err := row.Scan(&n.ID, &n.Type, &n.Status, &n.LastActivity); err != nil {
		return nil, err
	}
	return &n, nil
}
