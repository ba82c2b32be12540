package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/contaflow-api/internal/application/dto"
	"github.com/jhoicas/contaflow-api/internal/domain"
	"github.com/jhoicas/contaflow-api/internal/domain/entity"
	"github.com/jhoicas/contaflow-api/internal/domain/repository"
	"github.com/jhoicas/contaflow-api/pkg/logger"
)

// CompanyUseCase aplica reglas de negocio para empresas (casos de uso).
// Todas las operaciones están acotadas al usuario propietario: una empresa
// ajena se comporta como inexistente.
type CompanyUseCase struct {
	repo         repository.CompanyRepository
	activityRepo repository.ActivityRepository
	log          *logger.Logger
}

// NewCompanyUseCase construye el caso de uso con los puertos de persistencia.
func NewCompanyUseCase(repo repository.CompanyRepository, activityRepo repository.ActivityRepository, log *logger.Logger) *CompanyUseCase {
	return &CompanyUseCase{repo: repo, activityRepo: activityRepo, log: log}
}

// Create registra una empresa del usuario. Genera ID y estado inicial.
// Devuelve domain.ErrDuplicate si el usuario ya registró ese código fiscal y
// domain.ErrInvalidInput si se violan los invariantes TVA/empleados.
func (uc *CompanyUseCase) Create(ctx context.Context, userID string, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	if !entity.ValidOrganizationType(in.OrganizationType) {
		return nil, domain.ErrInvalidInput
	}
	// Invariante: tva_type presente ⟺ pagador de TVA.
	if in.IsTVAPayer && in.TVAType == nil {
		return nil, domain.ErrInvalidInput
	}
	if !in.IsTVAPayer && in.TVAType != nil {
		return nil, domain.ErrInvalidInput
	}
	// Invariante: employee_count == 0 ⟺ sin empleados.
	if in.HasEmployees && in.EmployeeCount <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if !in.HasEmployees && in.EmployeeCount != 0 {
		return nil, domain.ErrInvalidInput
	}

	existing, err := uc.repo.GetByFiscalCode(ctx, userID, in.FiscalCode)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	startDate := time.Now()
	if in.AccountingStartDate != "" {
		parsed, err := time.Parse("2006-01-02", in.AccountingStartDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		startDate = parsed
	}
	taxRegime := in.TaxRegime
	if taxRegime == "" {
		taxRegime = entity.TaxRegimeGeneral
	}

	now := time.Now()
	company := &entity.Company{
		ID:                  uuid.New().String(),
		UserID:              userID,
		Name:                in.Name,
		FiscalCode:          in.FiscalCode,
		Location:            in.Location,
		ContactPerson:       in.ContactPerson,
		Phone:               in.Phone,
		Email:               in.Email,
		OrganizationType:    in.OrganizationType,
		IsTVAPayer:          in.IsTVAPayer,
		TVAType:             in.TVAType,
		HasEmployees:        in.HasEmployees,
		EmployeeCount:       in.EmployeeCount,
		TaxRegime:           taxRegime,
		AccountingStartDate: startDate,
		Status:              entity.CompanyStatusActive,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if err := uc.repo.Create(ctx, company); err != nil {
		return nil, err
	}

	uc.logActivity(ctx, userID, company, entity.ActionCompanyCreated, "Added company: "+company.Name)
	return toCompanyResponse(company), nil
}

// GetByID obtiene una empresa del usuario por ID.
func (uc *CompanyUseCase) GetByID(ctx context.Context, id, userID string) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByIDAndUser(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, nil
	}
	return toCompanyResponse(company), nil
}

// Update actualiza campos opcionales de una empresa del usuario, manteniendo
// los invariantes TVA/empleados sobre el estado resultante.
func (uc *CompanyUseCase) Update(ctx context.Context, id, userID string, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByIDAndUser(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, nil
	}
	if in.Name != nil {
		company.Name = *in.Name
	}
	if in.Location != nil {
		company.Location = *in.Location
	}
	if in.ContactPerson != nil {
		company.ContactPerson = *in.ContactPerson
	}
	if in.Phone != nil {
		company.Phone = *in.Phone
	}
	if in.Email != nil {
		company.Email = *in.Email
	}
	if in.IsTVAPayer != nil {
		company.IsTVAPayer = *in.IsTVAPayer
	}
	if in.TVAType != nil {
		company.TVAType = in.TVAType
	}
	if in.HasEmployees != nil {
		company.HasEmployees = *in.HasEmployees
	}
	if in.EmployeeCount != nil {
		company.EmployeeCount = *in.EmployeeCount
	}
	if in.TaxRegime != nil {
		company.TaxRegime = *in.TaxRegime
	}
	if in.Status != nil {
		company.Status = *in.Status
	}

	if !company.IsTVAPayer {
		company.TVAType = nil
	} else if company.TVAType == nil {
		return nil, domain.ErrInvalidInput
	}
	if !company.HasEmployees {
		company.EmployeeCount = 0
	} else if company.EmployeeCount <= 0 {
		return nil, domain.ErrInvalidInput
	}

	company.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, company); err != nil {
		return nil, err
	}

	uc.logActivity(ctx, userID, company, entity.ActionCompanyUpdated, "Updated company: "+company.Name)
	return toCompanyResponse(company), nil
}

// List lista empresas del usuario con filtro de estado opcional y paginación.
func (uc *CompanyUseCase) List(ctx context.Context, userID, status string, limit, offset int) (*dto.CompanyListResponse, error) {
	list, err := uc.repo.ListByUser(ctx, userID, status, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCompanyResponse(c))
	}
	return &dto.CompanyListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func (uc *CompanyUseCase) logActivity(ctx context.Context, userID string, company *entity.Company, action, description string) {
	entry := &entity.ActivityLog{
		ID:          uuid.New().String(),
		UserID:      userID,
		CompanyID:   &company.ID,
		Action:      action,
		Description: description,
		CreatedAt:   time.Now(),
	}
	if err := uc.activityRepo.Insert(ctx, entry); err != nil {
		uc.log.Error().Err(err).Str("company_id", company.ID).Msg("no se pudo registrar activity_log")
	}
}

func toCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	return &dto.CompanyResponse{
		ID:                  c.ID,
		UserID:              c.UserID,
		Name:                c.Name,
		FiscalCode:          c.FiscalCode,
		Location:            c.Location,
		ContactPerson:       c.ContactPerson,
		Phone:               c.Phone,
		Email:               c.Email,
		OrganizationType:    c.OrganizationType,
		IsTVAPayer:          c.IsTVAPayer,
		TVAType:             c.TVAType,
		HasEmployees:        c.HasEmployees,
		EmployeeCount:       c.EmployeeCount,
		TaxRegime:           c.TaxRegime,
		AccountingStartDate: c.AccountingStartDate.Format("2006-01-02"),
		Status:              c.Status,
		CreatedAt:           c.CreatedAt,
		UpdatedAt:           c.UpdatedAt,
	}
}
