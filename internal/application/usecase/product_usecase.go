package usecase

import (
	"time"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD del catálogo, acotados al dueño autenticado.
// La regla de acceso es uniforme: un producto ajeno se reporta igual que uno
// inexistente, para no filtrar la existencia de datos de otros usuarios.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create valida los campos, estampa el dueño y persiste. El ID lo genera la base.
func (uc *ProductUseCase) Create(userID int64, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	now := time.Now()
	product := &entity.Product{
		UserID:      userID,
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Quantity:    in.Quantity,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID sin filtrar por dueño (la lectura individual
// no está acotada; las mutaciones y el listado sí). (nil, nil) si no existe.
func (uc *ProductUseCase) GetByID(id int64) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// List devuelve los productos del usuario. search vacío lista todo; no vacío
// filtra por substring case-insensitive sobre name o description.
func (uc *ProductUseCase) List(userID int64, search string) ([]dto.ProductResponse, error) {
	list, err := uc.repo.ListByOwner(userID, search)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

// Update aplica la máscara de campos solo si userID es el dueño.
// (nil, nil) cuando el id no existe o pertenece a otro usuario.
func (uc *ProductUseCase) Update(id, userID int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil || product.UserID != userID {
		return nil, nil
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.Quantity != nil {
		product.Quantity = *in.Quantity
	}
	product.UpdatedAt = time.Now()
	// El UPDATE repite el predicado de dueño; si la fila desapareció entre la
	// lectura y la escritura se reporta como no encontrada.
	ok, err := uc.repo.Update(product)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Delete borra el producto solo si userID es el dueño. Devuelve si se borró una
// fila: false tanto para id inexistente como para producto ajeno.
func (uc *ProductUseCase) Delete(id, userID int64) (bool, error) {
	return uc.repo.Delete(id, userID)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		UserID:      p.UserID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Quantity:    p.Quantity,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
