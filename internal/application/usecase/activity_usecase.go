package usecase

import (
	"context"

	"github.com/jhoicas/contaflow-api/internal/application/dto"
	"github.com/jhoicas/contaflow-api/internal/domain/repository"
)

// ActivityUseCase lecturas de la bitácora de actividad.
type ActivityUseCase struct {
	repo repository.ActivityRepository
}

// NewActivityUseCase construye el caso de uso.
func NewActivityUseCase(repo repository.ActivityRepository) *ActivityUseCase {
	return &ActivityUseCase{repo: repo}
}

// ListRecent devuelve la actividad reciente del usuario (máximo 100 entradas).
func (uc *ActivityUseCase) ListRecent(ctx context.Context, userID string, limit int) (*dto.ActivityListResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	list, err := uc.repo.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ActivityResponse, 0, len(list))
	for _, e := range list {
		items = append(items, dto.ActivityResponse{
			ID:          e.ID,
			UserID:      e.UserID,
			CompanyID:   e.CompanyID,
			TaskID:      e.TaskID,
			Action:      e.Action,
			Description: e.Description,
			CreatedAt:   e.CreatedAt,
		})
	}
	return &dto.ActivityListResponse{Items: items}, nil
}
