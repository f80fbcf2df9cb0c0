package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"levelup-api/internal/apperr"
	"levelup-api/internal/auth"
	"levelup-api/internal/models"
	"levelup-api/internal/store"
	"levelup-api/internal/util"
)

// UserService handles user administration.
type UserService struct {
	store  *store.Store
	logger *zap.Logger
}

// NewUserService creates a new user service.
func NewUserService(store *store.Store) *UserService {
	return &UserService{store: store, logger: util.GetLogger()}
}

// List returns every user, newest first.
func (s *UserService) List(ctx context.Context) ([]models.UsuarioPublico, error) {
	return s.store.GetUsuarios(ctx)
}

// Get returns one user's public profile.
func (s *UserService) Get(ctx context.Context, id int64) (*models.UsuarioPublico, error) {
	return s.store.GetUsuarioByID(ctx, id)
}

// UpdateUsuarioRequest is a partial user update. Nil fields are left alone.
type UpdateUsuarioRequest struct {
	Nombre   *string `json:"nombre"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
	Rol      *string `json:"rol"`
}

// Update applies a partial update. Only the user itself or an Administrador
// may update; a rol change is honored only for Administrador callers and
// silently dropped otherwise.
func (s *UserService) Update(ctx context.Context, caller *auth.Claims, id int64, req *UpdateUsuarioRequest) (*models.UsuarioPublico, error) {
	if caller.UserID != id && caller.Rol != models.RolAdministrador {
		return nil, apperr.New(apperr.KindForbidden, "No autorizado")
	}

	var violations []string
	columns := map[string]interface{}{}

	if req.Nombre != nil {
		if strings.TrimSpace(*req.Nombre) == "" {
			violations = append(violations, "nombre no puede estar vacío")
		} else {
			columns["nombre"] = *req.Nombre
		}
	}
	if req.Email != nil {
		if !strings.Contains(*req.Email, "@") {
			violations = append(violations, "email inválido")
		} else {
			columns["email"] = *req.Email
		}
	}
	if req.Password != nil {
		if len(*req.Password) < 6 {
			violations = append(violations, "password debe tener al menos 6 caracteres")
		} else {
			hash, err := auth.HashPassword(*req.Password)
			if err != nil {
				return nil, apperr.Wrap(apperr.KindInternal, "Error al actualizar usuario", err)
			}
			columns["password"] = hash
		}
	}
	if req.Rol != nil && caller.Rol == models.RolAdministrador {
		if !models.ValidRol(*req.Rol) {
			violations = append(violations, "rol inválido")
		} else {
			columns["rol"] = *req.Rol
		}
	}

	if len(violations) > 0 {
		return nil, apperr.Validation("Datos de usuario inválidos", violations...)
	}

	updated, err := s.store.UpdateUsuario(ctx, id, columns)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Usuario actualizado",
		zap.Int64("usuario_id", id),
		zap.Int64("caller_id", caller.UserID))
	return updated, nil
}

// Delete removes a user. Deleting an absent user still succeeds.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	return s.store.DeleteUsuario(ctx, id)
}
