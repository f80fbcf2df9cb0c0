package store

import (
	"context"

	"github.com/lib/pq"

	"levelup-api/internal/apperr"
	"levelup-api/internal/models"
)

const pqUniqueViolation = "23505"

// CreateUsuario inserts a new user. A duplicate email maps to a conflict.
func (s *Store) CreateUsuario(ctx context.Context, u *models.Usuario) error {
	query := `
		INSERT INTO usuarios (nombre, email, password, rol)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	err := s.db.GetContext(ctx, u, query, u.Nombre, u.Email, u.Password, u.Rol)
	if pqErr, ok := err.(*pq.Error); ok && string(pqErr.Code) == pqUniqueViolation {
		return apperr.New(apperr.KindConflict, "El email ya está registrado")
	}
	return err
}

// EmailExists reports whether a user with the given email is stored.
func (s *Store) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := s.db.GetContext(ctx, &exists,
		"SELECT EXISTS(SELECT 1 FROM usuarios WHERE email = $1)", email)
	return exists, err
}

// GetUsuarioByEmail retrieves a full user row, hash included, for login.
func (s *Store) GetUsuarioByEmail(ctx context.Context, email string) (*models.Usuario, error) {
	var u models.Usuario
	err := s.db.GetContext(ctx, &u, "SELECT * FROM usuarios WHERE email = $1", email)
	if isNoRows(err) {
		return nil, apperr.New(apperr.KindNotFound, "Usuario no encontrado")
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetUsuarioByID retrieves the public projection of a user.
func (s *Store) GetUsuarioByID(ctx context.Context, id int64) (*models.UsuarioPublico, error) {
	var u models.UsuarioPublico
	err := s.db.GetContext(ctx, &u,
		"SELECT id, nombre, email, rol, created_at FROM usuarios WHERE id = $1", id)
	if isNoRows(err) {
		return nil, apperr.New(apperr.KindNotFound, "Usuario no encontrado")
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetUsuarios retrieves all users, newest first.
func (s *Store) GetUsuarios(ctx context.Context) ([]models.UsuarioPublico, error) {
	usuarios := []models.UsuarioPublico{}
	err := s.db.SelectContext(ctx, &usuarios,
		"SELECT id, nombre, email, rol, created_at FROM usuarios ORDER BY created_at DESC")
	return usuarios, err
}

// UpdateUsuario applies a partial update and returns the updated public row.
func (s *Store) UpdateUsuario(ctx context.Context, id int64, columns map[string]interface{}) (*models.UsuarioPublico, error) {
	query, args := buildUpdate("usuarios", columns, id)
	if query == "" {
		return s.GetUsuarioByID(ctx, id)
	}

	res, err := s.db.ExecContext(ctx, query, args...)
	if pqErr, ok := err.(*pq.Error); ok && string(pqErr.Code) == pqUniqueViolation {
		return nil, apperr.New(apperr.KindConflict, "El email ya está registrado")
	}
	if err != nil {
		return nil, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, apperr.New(apperr.KindNotFound, "Usuario no encontrado")
	}
	return s.GetUsuarioByID(ctx, id)
}

// DeleteUsuario removes a user. Deleting an absent row is not an error.
func (s *Store) DeleteUsuario(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM usuarios WHERE id = $1", id)
	return err
}
