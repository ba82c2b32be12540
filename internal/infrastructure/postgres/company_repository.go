package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/contaflow-api/internal/domain"
	"github.com/jhoicas/contaflow-api/internal/domain/entity"
	"github.com/jhoicas/contaflow-api/internal/domain/repository"
)

// Asegura que CompanyRepo implementa repository.CompanyRepository.
var _ repository.CompanyRepository = (*CompanyRepo)(nil)

const companyColumns = `id, user_id, name, fiscal_code, location, contact_person, phone, email,
	organization_type, is_tva_payer, tva_type, has_employees, employee_count, tax_regime,
	accounting_start_date, status, created_at, updated_at`

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL.
type CompanyRepo struct {
	pool *pgxpool.Pool
}

// NewCompanyRepository construye el adaptador de persistencia para empresas.
func NewCompanyRepository(pool *pgxpool.Pool) *CompanyRepo {
	return &CompanyRepo{pool: pool}
}

// Create persiste una nueva empresa.
func (r *CompanyRepo) Create(ctx context.Context, c *entity.Company) error {
	query := `
		INSERT INTO companies (` + companyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`
	_, err := r.pool.Exec(ctx, query,
		c.ID, c.UserID, c.Name, c.FiscalCode, c.Location, c.ContactPerson, c.Phone, c.Email,
		c.OrganizationType, c.IsTVAPayer, c.TVAType, c.HasEmployees, c.EmployeeCount, c.TaxRegime,
		c.AccountingStartDate, c.Status, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// GetByID obtiene una empresa por ID sin filtro de propietario (uso interno).
func (r *CompanyRepo) GetByID(ctx context.Context, id string) (*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE id = $1`
	return r.scanOne(ctx, query, id)
}

// GetByIDAndUser obtiene una empresa por ID verificando el propietario.
// Una empresa ajena se comporta como inexistente.
func (r *CompanyRepo) GetByIDAndUser(ctx context.Context, id, userID string) (*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE id = $1 AND user_id = $2`
	return r.scanOne(ctx, query, id, userID)
}

// GetByFiscalCode obtiene la empresa del usuario con ese código fiscal.
func (r *CompanyRepo) GetByFiscalCode(ctx context.Context, userID, fiscalCode string) (*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE user_id = $1 AND fiscal_code = $2`
	return r.scanOne(ctx, query, userID, fiscalCode)
}

// Update actualiza una empresa existente.
func (r *CompanyRepo) Update(ctx context.Context, c *entity.Company) error {
	query := `
		UPDATE companies SET name = $2, fiscal_code = $3, location = $4, contact_person = $5,
			phone = $6, email = $7, organization_type = $8, is_tva_payer = $9, tva_type = $10,
			has_employees = $11, employee_count = $12, tax_regime = $13,
			accounting_start_date = $14, status = $15, updated_at = $16
		WHERE id = $1`
	cmd, err := r.pool.Exec(ctx, query,
		c.ID, c.Name, c.FiscalCode, c.Location, c.ContactPerson,
		c.Phone, c.Email, c.OrganizationType, c.IsTVAPayer, c.TVAType,
		c.HasEmployees, c.EmployeeCount, c.TaxRegime,
		c.AccountingStartDate, c.Status, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update company: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByUser devuelve las empresas del usuario, opcionalmente filtradas por estado.
func (r *CompanyRepo) ListByUser(ctx context.Context, userID, status string, limit, offset int) ([]*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE user_id = $1`
	args := []any{userID}
	next := 2
	if status != "" {
		query += fmt.Sprintf(` AND status = $%d`, next)
		args = append(args, status)
		next++
	}
	query += fmt.Sprintf(` ORDER BY name ASC LIMIT $%d OFFSET $%d`, next, next+1)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()

	var list []*entity.Company
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func (r *CompanyRepo) scanOne(ctx context.Context, query string, args ...any) (*entity.Company, error) {
	c, err := scanCompany(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return c, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCompany(row rowScanner) (*entity.Company, error) {
	var c entity.Company
	err := row.Scan(
		&c.ID, &c.UserID, &c.Name, &c.FiscalCode, &c.Location, &c.ContactPerson, &c.Phone, &c.Email,
		&c.OrganizationType, &c.IsTVAPayer, &c.TVAType, &c.HasEmployees, &c.EmployeeCount, &c.TaxRegime,
		&c.AccountingStartDate, &c.Status, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
