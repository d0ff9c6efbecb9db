package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL.
// Las mutaciones llevan el predicado de dueño (id AND user_id) en una sola
// sentencia: la atomicidad la da el motor, sin locking propio.
type ProductRepo struct {
	pool *pgxpool.Pool
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(pool *pgxpool.Pool) *ProductRepo {
	return &ProductRepo{pool: pool}
}

// Create persiste un nuevo producto y rellena el ID generado.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (user_id, name, description, price, quantity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.pool.QueryRow(context.Background(), query,
		product.UserID, product.Name, product.Description,
		product.Price, product.Quantity, product.CreatedAt, product.UpdatedAt,
	).Scan(&product.ID)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID, sin filtrar por dueño.
func (r *ProductRepo) GetByID(id int64) (*entity.Product, error) {
	query := `
		SELECT id, user_id, name, description, price, quantity, created_at, updated_at
		FROM products WHERE id = $1`
	var p entity.Product
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.UserID, &p.Name, &p.Description, &p.Price, &p.Quantity,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// ListByOwner lista los productos del usuario. Con search no vacío filtra con
// ILIKE sobre name o description (substring literal, metacaracteres escapados).
func (r *ProductRepo) ListByOwner(userID int64, search string) ([]*entity.Product, error) {
	query := `
		SELECT id, user_id, name, description, price, quantity, created_at, updated_at
		FROM products WHERE user_id = $1 ORDER BY id`
	args := []any{userID}
	if search != "" {
		query = `
		SELECT id, user_id, name, description, price, quantity, created_at, updated_at
		FROM products
		WHERE user_id = $1 AND (name ILIKE $2 OR description ILIKE $2)
		ORDER BY id`
		args = append(args, likePattern(search))
	}
	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.UserID, &p.Name, &p.Description, &p.Price, &p.Quantity,
			&p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update escribe el registro completo solo si product.UserID sigue siendo el dueño.
// Devuelve false cuando el id no existe o pertenece a otro usuario (indistinguible).
func (r *ProductRepo) Update(product *entity.Product) (bool, error) {
	query := `
		UPDATE products SET name = $3, description = $4, price = $5, quantity = $6, updated_at = $7
		WHERE id = $1 AND user_id = $2`
	cmd, err := r.pool.Exec(context.Background(), query,
		product.ID, product.UserID, product.Name, product.Description,
		product.Price, product.Quantity, product.UpdatedAt,
	)
	if err != nil {
		return false, fmt.Errorf("update product: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// Delete borra el producto solo si userID es el dueño. Borrado físico, sin soft-delete.
func (r *ProductRepo) Delete(id, userID int64) (bool, error) {
	cmd, err := r.pool.Exec(context.Background(),
		`DELETE FROM products WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return false, fmt.Errorf("delete product: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
