package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo de un usuario.
// Cada producto pertenece a exactamente un usuario (UserID); toda mutación
// pasa por operaciones acotadas al dueño.
type Product struct {
	ID          int64
	UserID      int64 // dueño del registro
	Name        string
	Description string
	Price       decimal.Decimal // no negativo; se serializa como string decimal
	Quantity    int             // no negativo
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
