package repository

import "github.com/jhoicas/catalogo-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// Update y Delete llevan el predicado de dueño en la misma sentencia: un id
// ajeno y un id inexistente son indistinguibles para el caller (a propósito).
type ProductRepository interface {
	// Create persiste el producto y rellena ID (generado por la base).
	Create(product *entity.Product) error
	// GetByID devuelve el producto sin filtrar por dueño, o (nil, nil) si no existe.
	GetByID(id int64) (*entity.Product, error)
	// ListByOwner devuelve los productos del usuario. Con search no vacío filtra
	// por substring case-insensitive sobre name o description.
	ListByOwner(userID int64, search string) ([]*entity.Product, error)
	// Update aplica el registro completo solo si product.UserID es el dueño.
	// Devuelve false si no se tocó ninguna fila.
	Update(product *entity.Product) (bool, error)
	// Delete borra solo si userID es el dueño; devuelve si se borró una fila.
	Delete(id, userID int64) (bool, error)
}
