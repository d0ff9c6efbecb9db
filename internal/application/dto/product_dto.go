package dto

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/catalogo-api/internal/domain"
)

// CreateProductRequest entrada para crear un producto. El dueño no viene en el
// body: lo impone la sesión autenticada.
type CreateProductRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	Description string          `json:"description" validate:"required,min=1"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity" validate:"min=0"`
}

// Validate aplica el contrato de campos: name y description no vacíos,
// price decimal no negativo, quantity entero no negativo.
func (in CreateProductRequest) Validate() error {
	if in.Name == "" {
		return fmt.Errorf("%w: name es requerido", domain.ErrInvalidInput)
	}
	if in.Description == "" {
		return fmt.Errorf("%w: description es requerido", domain.ErrInvalidInput)
	}
	if in.Price.IsNegative() {
		return fmt.Errorf("%w: price no puede ser negativo", domain.ErrInvalidInput)
	}
	if in.Quantity < 0 {
		return fmt.Errorf("%w: quantity no puede ser negativo", domain.ErrInvalidInput)
	}
	return nil
}

// UpdateProductRequest entrada para actualización parcial (field mask con punteros).
// Un campo nil no se toca; un campo presente se valida con el mismo contrato que en create,
// así que un string vacío explícito es entrada inválida, no un "borrar campo".
type UpdateProductRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string          `json:"description" validate:"omitempty,min=1"`
	Price       *decimal.Decimal `json:"price"`
	Quantity    *int             `json:"quantity" validate:"omitempty,min=0"`
}

// Validate revisa solo los campos presentes en la máscara.
func (in UpdateProductRequest) Validate() error {
	if in.Name != nil && *in.Name == "" {
		return fmt.Errorf("%w: name no puede ser vacío", domain.ErrInvalidInput)
	}
	if in.Description != nil && *in.Description == "" {
		return fmt.Errorf("%w: description no puede ser vacío", domain.ErrInvalidInput)
	}
	if in.Price != nil && in.Price.IsNegative() {
		return fmt.Errorf("%w: price no puede ser negativo", domain.ErrInvalidInput)
	}
	if in.Quantity != nil && *in.Quantity < 0 {
		return fmt.Errorf("%w: quantity no puede ser negativo", domain.ErrInvalidInput)
	}
	return nil
}

// ProductResponse salida de un producto. Price se serializa como string decimal ("9.99").
type ProductResponse struct {
	ID          int64           `json:"id"`
	UserID      int64           `json:"user_id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
