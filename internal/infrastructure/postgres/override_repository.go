package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/contaflow-api/internal/domain/entity"
	"github.com/jhoicas/contaflow-api/internal/domain/repository"
)

// Asegura que OverrideRepo implementa repository.OverrideRepository.
var _ repository.OverrideRepository = (*OverrideRepo)(nil)

const overrideColumns = `id, company_id, template_id, is_disabled, notes,
	custom_deadline_day, custom_deadline_month, created_at, updated_at`

// OverrideRepo implementación del puerto OverrideRepository sobre PostgreSQL.
type OverrideRepo struct {
	pool *pgxpool.Pool
}

// NewOverrideRepository construye el adaptador de persistencia para excepciones.
func NewOverrideRepository(pool *pgxpool.Pool) *OverrideRepo {
	return &OverrideRepo{pool: pool}
}

// Get obtiene la excepción (company_id, template_id); (nil, nil) si no existe.
func (r *OverrideRepo) Get(ctx context.Context, companyID, templateID string) (*entity.TaskTemplateOverride, error) {
	query := `SELECT ` + overrideColumns + `
		FROM task_template_overrides WHERE company_id = $1 AND template_id = $2`
	ov, err := scanOverride(r.pool.QueryRow(ctx, query, companyID, templateID))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get override: %w", err)
	}
	return ov, nil
}

// ListByCompany devuelve las excepciones de una empresa.
func (r *OverrideRepo) ListByCompany(ctx context.Context, companyID string) ([]*entity.TaskTemplateOverride, error) {
	query := `SELECT ` + overrideColumns + `
		FROM task_template_overrides WHERE company_id = $1 ORDER BY created_at ASC`
	rows, err := r.pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list overrides: %w", err)
	}
	defer rows.Close()

	var list []*entity.TaskTemplateOverride
	for rows.Next() {
		ov, err := scanOverride(rows)
		if err != nil {
			return nil, fmt.Errorf("scan override: %w", err)
		}
		list = append(list, ov)
	}
	return list, rows.Err()
}

// Upsert inserta o actualiza la excepción sobre la clave natural
// (company_id, template_id) y devuelve la fila resultante.
func (r *OverrideRepo) Upsert(ctx context.Context, ov *entity.TaskTemplateOverride) (*entity.TaskTemplateOverride, error) {
	query := `
		INSERT INTO task_template_overrides (` + overrideColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (company_id, template_id) DO UPDATE SET
			is_disabled = EXCLUDED.is_disabled,
			notes = EXCLUDED.notes,
			custom_deadline_day = EXCLUDED.custom_deadline_day,
			custom_deadline_month = EXCLUDED.custom_deadline_month,
			updated_at = EXCLUDED.updated_at
		RETURNING ` + overrideColumns
	saved, err := scanOverride(r.pool.QueryRow(ctx, query,
		ov.ID, ov.CompanyID, ov.TemplateID, ov.IsDisabled, ov.Notes,
		ov.CustomDeadlineDay, ov.CustomDeadlineMonth, ov.CreatedAt, ov.UpdatedAt,
	))
	if err != nil {
		return nil, fmt.Errorf("upsert override: %w", err)
	}
	return saved, nil
}

// Delete elimina la excepción (company_id, template_id). Es idempotente.
func (r *OverrideRepo) Delete(ctx context.Context, companyID, templateID string) error {
	query := `DELETE FROM task_template_overrides WHERE company_id = $1 AND template_id = $2`
	if _, err := r.pool.Exec(ctx, query, companyID, templateID); err != nil {
		return fmt.Errorf("delete override: %w", err)
	}
	return nil
}

func scanOverride(row rowScanner) (*entity.TaskTemplateOverride, error) {
	var ov entity.TaskTemplateOverride
	err := row.Scan(
		&ov.ID, &ov.CompanyID, &ov.TemplateID, &ov.IsDisabled, &ov.Notes,
		&ov.CustomDeadlineDay, &ov.CustomDeadlineMonth, &ov.CreatedAt, &ov.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &ov, nil
}
