package entity

import "time"

// User representa una cuenta del catálogo. El username es único y case-sensitive;
// la cuenta es inmutable después del registro (no hay update ni delete en el alcance).
type User struct {
	ID           int64
	Username     string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	CreatedAt    time.Time
}
