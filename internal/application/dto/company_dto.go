package dto

import "time"

// CreateCompanyRequest entrada para registrar una empresa cliente.
type CreateCompanyRequest struct {
	Name                string  `json:"name" validate:"required,min=1,max=200"`
	FiscalCode          string  `json:"fiscal_code" validate:"required,min=1,max=20"`
	Location            string  `json:"location"`
	ContactPerson       string  `json:"contact_person"`
	Phone               string  `json:"phone"`
	Email               string  `json:"email" validate:"omitempty,email"`
	OrganizationType    string  `json:"organization_type" validate:"required,oneof=SRL ÎI ÎP ONG"`
	IsTVAPayer          bool    `json:"is_tva_payer"`
	TVAType             *string `json:"tva_type" validate:"omitempty,oneof=lunar trimestrial"`
	HasEmployees        bool    `json:"has_employees"`
	EmployeeCount       int     `json:"employee_count" validate:"min=0"`
	TaxRegime           string  `json:"tax_regime" validate:"omitempty,oneof=general simplified agricultural"`
	AccountingStartDate string  `json:"accounting_start_date"` // YYYY-MM-DD
}

// UpdateCompanyRequest entrada para actualizar una empresa (campos opcionales).
type UpdateCompanyRequest struct {
	Name          *string `json:"name" validate:"omitempty,min=1,max=200"`
	Location      *string `json:"location"`
	ContactPerson *string `json:"contact_person"`
	Phone         *string `json:"phone"`
	Email         *string `json:"email" validate:"omitempty,email"`
	IsTVAPayer    *bool   `json:"is_tva_payer"`
	TVAType       *string `json:"tva_type" validate:"omitempty,oneof=lunar trimestrial"`
	HasEmployees  *bool   `json:"has_employees"`
	EmployeeCount *int    `json:"employee_count" validate:"omitempty,min=0"`
	TaxRegime     *string `json:"tax_regime" validate:"omitempty,oneof=general simplified agricultural"`
	Status        *string `json:"status" validate:"omitempty,oneof=active inactive archived"`
}

// CompanyResponse salida de una empresa.
type CompanyResponse struct {
	ID                  string    `json:"id"`
	UserID              string    `json:"user_id"`
	Name                string    `json:"name"`
	FiscalCode          string    `json:"fiscal_code"`
	Location            string    `json:"location"`
	ContactPerson       string    `json:"contact_person,omitempty"`
	Phone               string    `json:"phone,omitempty"`
	Email               string    `json:"email,omitempty"`
	OrganizationType    string    `json:"organization_type"`
	IsTVAPayer          bool      `json:"is_tva_payer"`
	TVAType             *string   `json:"tva_type,omitempty"`
	HasEmployees        bool      `json:"has_employees"`
	EmployeeCount       int       `json:"employee_count"`
	TaxRegime           string    `json:"tax_regime"`
	AccountingStartDate string    `json:"accounting_start_date"`
	Status              string    `json:"status"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// CompanyListResponse lista paginada de empresas.
type CompanyListResponse struct {
	Items []CompanyResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
