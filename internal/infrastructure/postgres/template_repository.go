package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/contaflow-api/internal/domain"
	"github.com/jhoicas/contaflow-api/internal/domain/entity"
	"github.com/jhoicas/contaflow-api/internal/domain/repository"
)

// Asegura que TemplateRepo implementa repository.TemplateRepository.
var _ repository.TemplateRepository = (*TemplateRepo)(nil)

const templateColumns = `id, name, description, frequency, deadline_day, deadline_month,
	applies_to_tva_payers, applies_to_employers, applies_to_org_types, reminder_days,
	is_active, code, law_reference, notes, created_at, updated_at`

// TemplateRepo implementación del puerto TemplateRepository sobre PostgreSQL.
type TemplateRepo struct {
	pool *pgxpool.Pool
}

// NewTemplateRepository construye el adaptador de persistencia para plantillas.
func NewTemplateRepository(pool *pgxpool.Pool) *TemplateRepo {
	return &TemplateRepo{pool: pool}
}

// Create persiste una plantilla del catálogo.
func (r *TemplateRepo) Create(ctx context.Context, tpl *entity.TaskTemplate) error {
	query := `
		INSERT INTO task_templates (` + templateColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.pool.Exec(ctx, query,
		tpl.ID, tpl.Name, tpl.Description, tpl.Frequency, tpl.DeadlineDay, tpl.DeadlineMonth,
		tpl.AppliesToTVAPayers, tpl.AppliesToEmployers, tpl.AppliesToOrgTypes, tpl.ReminderDays,
		tpl.IsActive, tpl.Code, tpl.LawReference, tpl.Notes, tpl.CreatedAt, tpl.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert template: %w", err)
	}
	return nil
}

// GetByID obtiene una plantilla por ID; (nil, nil) si no existe.
func (r *TemplateRepo) GetByID(ctx context.Context, id string) (*entity.TaskTemplate, error) {
	query := `SELECT ` + templateColumns + ` FROM task_templates WHERE id = $1`
	tpl, err := scanTemplate(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get template: %w", err)
	}
	return tpl, nil
}

// Update actualiza una plantilla existente.
func (r *TemplateRepo) Update(ctx context.Context, tpl *entity.TaskTemplate) error {
	query := `
		UPDATE task_templates SET name = $2, description = $3, frequency = $4, deadline_day = $5,
			deadline_month = $6, applies_to_tva_payers = $7, applies_to_employers = $8,
			applies_to_org_types = $9, reminder_days = $10, is_active = $11,
			code = $12, law_reference = $13, notes = $14, updated_at = $15
		WHERE id = $1`
	cmd, err := r.pool.Exec(ctx, query,
		tpl.ID, tpl.Name, tpl.Description, tpl.Frequency, tpl.DeadlineDay,
		tpl.DeadlineMonth, tpl.AppliesToTVAPayers, tpl.AppliesToEmployers,
		tpl.AppliesToOrgTypes, tpl.ReminderDays, tpl.IsActive,
		tpl.Code, tpl.LawReference, tpl.Notes, tpl.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update template: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve el catálogo; con activeOnly solo las plantillas activas.
func (r *TemplateRepo) List(ctx context.Context, activeOnly bool) ([]*entity.TaskTemplate, error) {
	query := `SELECT ` + templateColumns + ` FROM task_templates`
	if activeOnly {
		query += ` WHERE is_active = true`
	}
	query += ` ORDER BY name ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}
	defer rows.Close()

	var list []*entity.TaskTemplate
	for rows.Next() {
		tpl, err := scanTemplate(rows)
		if err != nil {
			return nil, fmt.Errorf("scan template: %w", err)
		}
		list = append(list, tpl)
	}
	return list, rows.Err()
}

func scanTemplate(row rowScanner) (*entity.TaskTemplate, error) {
	var tpl entity.TaskTemplate
	err := row.Scan(
		&tpl.ID, &tpl.Name, &tpl.Description, &tpl.Frequency, &tpl.DeadlineDay, &tpl.DeadlineMonth,
		&tpl.AppliesToTVAPayers, &tpl.AppliesToEmployers, &tpl.AppliesToOrgTypes, &tpl.ReminderDays,
		&tpl.IsActive, &tpl.Code, &tpl.LawReference, &tpl.Notes, &tpl.CreatedAt, &tpl.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &tpl, nil
}
