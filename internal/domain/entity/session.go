package entity

import "time"

// Session asocia un token opaco (cookie) con un usuario autenticado.
// Vive en la misma base de datos que el catálogo; las expiradas las borra el janitor.
type Session struct {
	ID        string // token opaco presentado por el cliente
	UserID    int64
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Expired indica si la sesión ya venció respecto a now.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}
