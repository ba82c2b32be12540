package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/contaflow-api/internal/domain/entity"
	"github.com/jhoicas/contaflow-api/internal/domain/repository"
)

// Asegura que ActivityRepo implementa repository.ActivityRepository.
var _ repository.ActivityRepository = (*ActivityRepo)(nil)

// ActivityRepo implementación del puerto ActivityRepository sobre PostgreSQL.
// La tabla es append-only: no hay UPDATE ni DELETE.
type ActivityRepo struct {
	pool *pgxpool.Pool
}

// NewActivityRepository construye el adaptador de persistencia para la bitácora.
func NewActivityRepository(pool *pgxpool.Pool) *ActivityRepo {
	return &ActivityRepo{pool: pool}
}

// Insert registra una entrada en la bitácora.
func (r *ActivityRepo) Insert(ctx context.Context, e *entity.ActivityLog) error {
	query := `
		INSERT INTO activity_log (id, user_id, company_id, task_id, action, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.pool.Exec(ctx, query,
		e.ID, e.UserID, e.CompanyID, e.TaskID, e.Action, e.Description, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert activity: %w", err)
	}
	return nil
}

// ListByUser devuelve la actividad más reciente del usuario.
func (r *ActivityRepo) ListByUser(ctx context.Context, userID string, limit int) ([]*entity.ActivityLog, error) {
	query := `
		SELECT id, user_id, company_id, task_id, action, description, created_at
		FROM activity_log WHERE user_id = $1
		ORDER BY created_at DESC LIMIT $2`
	rows, err := r.pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list activity: %w", err)
	}
	defer rows.Close()

	var list []*entity.ActivityLog
	for rows.Next() {
		var e entity.ActivityLog
		if err := rows.Scan(&e.ID, &e.UserID, &e.CompanyID, &e.TaskID, &e.Action, &e.Description, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
