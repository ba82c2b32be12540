package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin      = "admin"
	RoleAccountant = "accountant"
)

// User representa un contador registrado en el sistema.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	FullName     string
	Phone        string
	Role         string // admin | accountant
	Status       string // active | inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
