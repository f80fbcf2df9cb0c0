package store

import (
	"context"

	"levelup-api/internal/apperr"
	"levelup-api/internal/models"
)

// CreateCategoria inserts a new category.
func (s *Store) CreateCategoria(ctx context.Context, c *models.Categoria) error {
	query := `
		INSERT INTO categorias (nombre, descripcion)
		VALUES ($1, $2)
		RETURNING id, created_at`

	return s.db.GetContext(ctx, c, query, c.Nombre, c.Descripcion)
}

// GetCategoriaByID retrieves a category by ID.
func (s *Store) GetCategoriaByID(ctx context.Context, id int64) (*models.Categoria, error) {
	var c models.Categoria
	err := s.db.GetContext(ctx, &c, "SELECT * FROM categorias WHERE id = $1", id)
	if isNoRows(err) {
		return nil, apperr.New(apperr.KindNotFound, "Categoría no encontrada")
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetCategorias retrieves all categories ordered by name.
func (s *Store) GetCategorias(ctx context.Context) ([]models.Categoria, error) {
	categorias := []models.Categoria{}
	err := s.db.SelectContext(ctx, &categorias,
		"SELECT * FROM categorias ORDER BY nombre ASC")
	return categorias, err
}

// UpdateCategoria applies a partial update and returns the updated row.
func (s *Store) UpdateCategoria(ctx context.Context, id int64, columns map[string]interface{}) (*models.Categoria, error) {
	query, args := buildUpdate("categorias", columns, id)
	if query == "" {
		return s.GetCategoriaByID(ctx, id)
	}

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, apperr.New(apperr.KindNotFound, "Categoría no encontrada")
	}
	return s.GetCategoriaByID(ctx, id)
}

// DeleteCategoria removes a category. Deleting an absent row is not an error.
func (s *Store) DeleteCategoria(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM categorias WHERE id = $1", id)
	return err
}
