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

// AuthService handles registration, login and identity resolution.
type AuthService struct {
	store  *store.Store
	tokens *auth.TokenService
	logger *zap.Logger
}

// NewAuthService creates a new auth service.
func NewAuthService(store *store.Store, tokens *auth.TokenService) *AuthService {
	return &AuthService{
		store:  store,
		tokens: tokens,
		logger: util.GetLogger(),
	}
}

// RegisterRequest is the payload for user registration.
type RegisterRequest struct {
	Nombre   string `json:"nombre"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Rol      string `json:"rol"`
}

// AuthResponse carries a session token and the public user it identifies.
type AuthResponse struct {
	Token string                 `json:"token"`
	User  *models.UsuarioPublico `json:"user"`
}

func validateRegister(req *RegisterRequest) error {
	var violations []string
	if strings.TrimSpace(req.Nombre) == "" {
		violations = append(violations, "nombre es requerido")
	}
	if !strings.Contains(req.Email, "@") {
		violations = append(violations, "email inválido")
	}
	if len(req.Password) < 6 {
		violations = append(violations, "password debe tener al menos 6 caracteres")
	}
	if req.Rol != "" && !models.ValidRol(req.Rol) {
		violations = append(violations, "rol inválido")
	}
	if len(violations) > 0 {
		return apperr.Validation("Datos de registro inválidos", violations...)
	}
	return nil
}

// Register creates a user and issues its first session token. A stored email
// fails with a conflict.
func (s *AuthService) Register(ctx context.Context, req *RegisterRequest) (*AuthResponse, error) {
	if err := validateRegister(req); err != nil {
		return nil, err
	}

	rol := req.Rol
	if rol == "" {
		rol = models.RolCliente
	}

	exists, err := s.store.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.New(apperr.KindConflict, "El email ya está registrado")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "Error al registrar usuario", err)
	}

	usuario := &models.Usuario{
		Nombre:   req.Nombre,
		Email:    req.Email,
		Password: hash,
		Rol:      rol,
	}
	if err := s.store.CreateUsuario(ctx, usuario); err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(usuario.ID, usuario.Email, usuario.Rol)
	if err != nil {
		return nil, err
	}

	util.RegistrationsTotal.Inc()
	s.logger.Info("Usuario registrado",
		zap.Int64("usuario_id", usuario.ID),
		zap.String("rol", usuario.Rol))

	return &AuthResponse{Token: token, User: usuario.Public()}, nil
}

// LoginRequest is the payload for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login verifies credentials and issues a session token. Unknown email and
// wrong password yield the same message, so the response does not reveal
// which accounts exist.
func (s *AuthService) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, apperr.Validation("Datos de login inválidos",
			"email y password son requeridos")
	}

	usuario, err := s.store.GetUsuarioByEmail(ctx, req.Email)
	if err != nil {
		if apperr.IsKind(err, apperr.KindNotFound) {
			util.LoginFailuresTotal.Inc()
			return nil, apperr.New(apperr.KindUnauthorized, "Credenciales inválidas")
		}
		return nil, err
	}

	if !auth.CheckPassword(usuario.Password, req.Password) {
		util.LoginFailuresTotal.Inc()
		return nil, apperr.New(apperr.KindUnauthorized, "Credenciales inválidas")
	}

	token, err := s.tokens.Issue(usuario.ID, usuario.Email, usuario.Rol)
	if err != nil {
		return nil, err
	}

	util.LoginsTotal.Inc()
	return &AuthResponse{Token: token, User: usuario.Public()}, nil
}

// Me resolves the authenticated user's public profile.
func (s *AuthService) Me(ctx context.Context, claims *auth.Claims) (*models.UsuarioPublico, error) {
	return s.store.GetUsuarioByID(ctx, claims.UserID)
}
