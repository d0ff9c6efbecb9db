package repository

import "github.com/jhoicas/catalogo-api/internal/domain/entity"

// SessionRepository define el puerto de persistencia para Session (DIP).
type SessionRepository interface {
	Create(session *entity.Session) error
	// GetByID devuelve (nil, nil) si el token no existe.
	GetByID(id string) (*entity.Session, error)
	Delete(id string) error
	// DeleteExpired borra las sesiones vencidas y devuelve cuántas filas eliminó.
	DeleteExpired() (int64, error)
}
