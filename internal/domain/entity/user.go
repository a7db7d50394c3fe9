package entity

import "time"

// User representa una cuenta autenticada (tenant). Cada usuario es dueño
// de un conjunto aislado de productos.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
