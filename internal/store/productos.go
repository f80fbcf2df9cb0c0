package store

import (
	"context"
	"time"

	"levelup-api/internal/apperr"
	"levelup-api/internal/models"
)

const productoJoinSelect = `
	SELECT p.*, c.nombre AS categoria_nombre
	FROM productos p
	LEFT JOIN categorias c ON c.id = p.categoria_id`

// CreateProducto inserts a new product.
func (s *Store) CreateProducto(ctx context.Context, p *models.Producto) error {
	query := `
		INSERT INTO productos (nombre, descripcion, precio, stock, categoria_id, imagen_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`

	return s.db.GetContext(ctx, p, query,
		p.Nombre, p.Descripcion, p.Precio, p.Stock, p.CategoriaID, p.ImagenURL)
}

// GetProductoByID retrieves a product, embedding the category name when the
// relation is available.
func (s *Store) GetProductoByID(ctx context.Context, id int64) (*models.Producto, error) {
	query := "SELECT * FROM productos WHERE id = $1"
	if s.categoriaJoin {
		query = productoJoinSelect + " WHERE p.id = $1"
	}

	var p models.Producto
	err := s.db.GetContext(ctx, &p, query, id)
	if isNoRows(err) {
		return nil, apperr.New(apperr.KindNotFound, "Producto no encontrado")
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetProductos retrieves products newest first, optionally filtered by
// category.
func (s *Store) GetProductos(ctx context.Context, categoriaID *int64) ([]models.Producto, error) {
	productos := []models.Producto{}

	if s.categoriaJoin {
		if categoriaID != nil {
			err := s.db.SelectContext(ctx, &productos,
				productoJoinSelect+" WHERE p.categoria_id = $1 ORDER BY p.created_at DESC", *categoriaID)
			return productos, err
		}
		err := s.db.SelectContext(ctx, &productos,
			productoJoinSelect+" ORDER BY p.created_at DESC")
		return productos, err
	}

	if categoriaID != nil {
		err := s.db.SelectContext(ctx, &productos,
			"SELECT * FROM productos WHERE categoria_id = $1 ORDER BY created_at DESC", *categoriaID)
		return productos, err
	}
	err := s.db.SelectContext(ctx, &productos,
		"SELECT * FROM productos ORDER BY created_at DESC")
	return productos, err
}

// UpdateProducto applies a partial update, bumps updated_at, and returns the
// updated row.
func (s *Store) UpdateProducto(ctx context.Context, id int64, columns map[string]interface{}) (*models.Producto, error) {
	if len(columns) > 0 {
		columns["updated_at"] = time.Now()
	}

	query, args := buildUpdate("productos", columns, id)
	if query == "" {
		return s.GetProductoByID(ctx, id)
	}

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, apperr.New(apperr.KindNotFound, "Producto no encontrado")
	}
	return s.GetProductoByID(ctx, id)
}

// DeleteProducto removes a product. Deleting an absent row is not an error.
func (s *Store) DeleteProducto(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM productos WHERE id = $1", id)
	return err
}
