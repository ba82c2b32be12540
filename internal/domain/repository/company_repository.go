package repository

import (
	"context"

	"github.com/jhoicas/contaflow-api/internal/domain/entity"
)

// CompanyRepository define el puerto de persistencia para Company (DIP).
// La implementación vive en infrastructure.
//
// Las lecturas que reciben userID aplican el filtro de propietario: una
// empresa ajena se comporta como inexistente (nil, nil).
type CompanyRepository interface {
	Create(ctx context.Context, company *entity.Company) error
	GetByID(ctx context.Context, id string) (*entity.Company, error)
	GetByIDAndUser(ctx context.Context, id, userID string) (*entity.Company, error)
	GetByFiscalCode(ctx context.Context, userID, fiscalCode string) (*entity.Company, error)
	Update(ctx context.Context, company *entity.Company) error
	ListByUser(ctx context.Context, userID, status string, limit, offset int) ([]*entity.Company, error)
}
