package entity

import "time"

// Tipos de organización soportados (forma jurídica de Moldavia).
const (
	OrgTypeSRL = "SRL" // societate cu răspundere limitată
	OrgTypeII  = "ÎI"  // întreprinzător individual
	OrgTypeIP  = "ÎP"  // întreprindere de stat/publică
	OrgTypeONG = "ONG"
)

// Periodicidad de declaración de TVA (solo si IsTVAPayer).
const (
	TVATypeMonthly   = "lunar"
	TVATypeQuarterly = "trimestrial"
)

// Regímenes fiscales.
const (
	TaxRegimeGeneral      = "general"
	TaxRegimeSimplified   = "simplified"
	TaxRegimeAgricultural = "agricultural"
)

// Estados del ciclo de vida de una empresa.
const (
	CompanyStatusActive   = "active"
	CompanyStatusInactive = "inactive"
	CompanyStatusArchived = "archived"
)

// Company representa una empresa cliente del contador. Pertenece a exactamente
// un usuario (UserID); las consultas siempre se filtran por propietario.
//
// Invariantes: TVAType presente ⟺ IsTVAPayer; EmployeeCount == 0 ⟺ !HasEmployees.
type Company struct {
	ID                  string
	UserID              string
	Name                string
	FiscalCode          string // IDNO/cod fiscal
	Location            string
	ContactPerson       string
	Phone               string
	Email               string
	OrganizationType    string // ver constantes OrgType*
	IsTVAPayer          bool
	TVAType             *string // lunar | trimestrial; nil si no es pagador de TVA
	HasEmployees        bool
	EmployeeCount       int
	TaxRegime           string // general | simplified | agricultural
	AccountingStartDate time.Time
	Status              string // active | inactive | archived
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// ValidOrganizationType informa si el valor es una forma jurídica conocida.
func ValidOrganizationType(t string) bool {
	switch t {
	case OrgTypeSRL, OrgTypeII, OrgTypeIP, OrgTypeONG:
		return true
	}
	return false
}
