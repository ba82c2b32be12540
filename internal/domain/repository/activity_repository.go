package repository

import (
	"context"

	"github.com/jhoicas/contaflow-api/internal/domain/entity"
)

// ActivityRepository define el puerto para la bitácora append-only.
// Insert es best-effort desde la perspectiva de los motores: el caller decide
// si propaga el error (nunca lo hace tras una mutación principal exitosa).
type ActivityRepository interface {
	Insert(ctx context.Context, entry *entity.ActivityLog) error
	ListByUser(ctx context.Context, userID string, limit int) ([]*entity.ActivityLog, error)
}
