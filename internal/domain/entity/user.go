package entity

import "time"

// User representa una cuenta del hogar.
type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
