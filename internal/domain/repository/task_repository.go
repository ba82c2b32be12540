package repository

import (
	"context"
	"time"

	"github.com/jhoicas/contaflow-api/internal/domain/entity"
)

// TaskStatusUpdate son los campos que el motor de estados escribe en una sola
// actualización atómica por fila (estado + metadatos de completitud).
type TaskStatusUpdate struct {
	Status      string
	CompletedAt *time.Time
	CompletedBy *string
}

// TaskRepository define el puerto de persistencia para Task (DIP).
type TaskRepository interface {
	Create(ctx context.Context, task *entity.Task) error
	// CreateBatch inserta en lote (pipeline). No es atómico: un fallo a mitad
	// deja insertadas las filas anteriores y devuelve un único error agregado.
	CreateBatch(ctx context.Context, tasks []*entity.Task) error
	GetByID(ctx context.Context, id string) (*entity.Task, error)
	// GetByIDs devuelve las tareas existentes de la lista; los IDs que no
	// existen simplemente no aparecen en el resultado.
	GetByIDs(ctx context.Context, ids []string) ([]*entity.Task, error)
	// UpdateStatus escribe estado y metadatos de completitud en un solo UPDATE
	// por clave primaria. Devuelve domain.ErrNotFound si la fila no existe.
	UpdateStatus(ctx context.Context, id string, upd TaskStatusUpdate) error
	// ListByCompany filtra por empresa y opcionalmente por estado (""=todos),
	// ordenado por due_date ascendente. Devuelve también el total sin paginar.
	ListByCompany(ctx context.Context, companyID, status string, limit, offset int) ([]*entity.Task, int, error)
	// ListPastDueUncompleted devuelve tareas con due_date anterior a la fecha
	// dada y estado distinto de completed (para el barrido periódico).
	ListPastDueUncompleted(ctx context.Context, before time.Time) ([]*entity.Task, error)
}
