package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/contaflow-api/internal/domain"
	"github.com/jhoicas/contaflow-api/internal/domain/entity"
	"github.com/jhoicas/contaflow-api/internal/domain/repository"
)

// Asegura que TaskRepo implementa repository.TaskRepository.
var _ repository.TaskRepository = (*TaskRepo)(nil)

const taskColumns = `id, company_id, template_id, title, description, due_date, status,
	completed_at, completed_by, notes, depends_on_tasks, created_at, updated_at`

const insertTaskQuery = `
	INSERT INTO tasks (` + taskColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

// TaskRepo implementación del puerto TaskRepository sobre PostgreSQL.
type TaskRepo struct {
	pool *pgxpool.Pool
}

// NewTaskRepository construye el adaptador de persistencia para tareas.
func NewTaskRepository(pool *pgxpool.Pool) *TaskRepo {
	return &TaskRepo{pool: pool}
}

// Create persiste una nueva tarea.
func (r *TaskRepo) Create(ctx context.Context, t *entity.Task) error {
	_, err := r.pool.Exec(ctx, insertTaskQuery, taskArgs(t)...)
	if err != nil {
		return fmt.Errorf("insert task: %w", err)
	}
	return nil
}

// CreateBatch inserta tareas en lote vía pipeline de pgx. No es transaccional:
// un fallo a mitad deja insertadas las filas anteriores y se devuelve un único
// error agregado con el detalle de la primera falla.
func (r *TaskRepo) CreateBatch(ctx context.Context, tasks []*entity.Task) error {
	if len(tasks) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, t := range tasks {
		batch.Queue(insertTaskQuery, taskArgs(t)...)
	}
	results := r.pool.SendBatch(ctx, batch)
	defer results.Close()

	for i := range tasks {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("insert batch de tareas (fila %d de %d): %w", i+1, len(tasks), err)
		}
	}
	return nil
}

// GetByID obtiene una tarea por ID; (nil, nil) si no existe.
func (r *TaskRepo) GetByID(ctx context.Context, id string) (*entity.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1`
	t, err := scanTask(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get task: %w", err)
	}
	return t, nil
}

// GetByIDs devuelve las tareas existentes de la lista. Los IDs que no existen
// simplemente no aparecen en el resultado.
func (r *TaskRepo) GetByIDs(ctx context.Context, ids []string) ([]*entity.Task, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = ANY($1)`
	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("get tasks by ids: %w", err)
	}
	defer rows.Close()
	return collectTasks(rows)
}

// UpdateStatus escribe estado y metadatos de completitud en un solo UPDATE por
// clave primaria. Devuelve domain.ErrNotFound si la fila no existe.
func (r *TaskRepo) UpdateStatus(ctx context.Context, id string, upd repository.TaskStatusUpdate) error {
	query := `
		UPDATE tasks SET status = $2, completed_at = $3, completed_by = $4, updated_at = now()
		WHERE id = $1`
	cmd, err := r.pool.Exec(ctx, query, id, upd.Status, upd.CompletedAt, upd.CompletedBy)
	if err != nil {
		return fmt.Errorf("update task status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByCompany filtra por empresa y opcionalmente por estado, ordenado por
// due_date ascendente. Devuelve también el total sin paginar.
func (r *TaskRepo) ListByCompany(ctx context.Context, companyID, status string, limit, offset int) ([]*entity.Task, int, error) {
	where := ` FROM tasks WHERE company_id = $1`
	args := []any{companyID}
	next := 2
	if status != "" {
		where += fmt.Sprintf(` AND status = $%d`, next)
		args = append(args, status)
		next++
	}

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*)`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count tasks: %w", err)
	}

	query := `SELECT ` + taskColumns + where +
		fmt.Sprintf(` ORDER BY due_date ASC, created_at ASC LIMIT $%d OFFSET $%d`, next, next+1)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	list, err := collectTasks(rows)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// ListPastDueUncompleted devuelve tareas vencidas antes de la fecha dada y aún
// no completadas, para el barrido periódico de estados.
func (r *TaskRepo) ListPastDueUncompleted(ctx context.Context, before time.Time) ([]*entity.Task, error) {
	query := `SELECT ` + taskColumns + `
		FROM tasks WHERE due_date < $1 AND status <> $2
		ORDER BY due_date ASC`
	rows, err := r.pool.Query(ctx, query, before, entity.TaskStatusCompleted)
	if err != nil {
		return nil, fmt.Errorf("list past due tasks: %w", err)
	}
	defer rows.Close()
	return collectTasks(rows)
}

func taskArgs(t *entity.Task) []any {
	return []any{
		t.ID, t.CompanyID, t.TemplateID, t.Title, t.Description, t.DueDate, t.Status,
		t.CompletedAt, t.CompletedBy, t.Notes, t.DependsOnTasks, t.CreatedAt, t.UpdatedAt,
	}
}

func scanTask(row rowScanner) (*entity.Task, error) {
	var t entity.Task
	err := row.Scan(
		&t.ID, &t.CompanyID, &t.TemplateID, &t.Title, &t.Description, &t.DueDate, &t.Status,
		&t.CompletedAt, &t.CompletedBy, &t.Notes, &t.DependsOnTasks, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func collectTasks(rows pgx.Rows) ([]*entity.Task, error) {
	var list []*entity.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}
