package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/acrilico-stock-api/internal/application/dto"
	"github.com/jhoicas/acrilico-stock-api/internal/domain"
	"github.com/jhoicas/acrilico-stock-api/internal/domain/entity"
	"github.com/jhoicas/acrilico-stock-api/internal/domain/repository"
	"github.com/jhoicas/acrilico-stock-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase bootstrap de sesión: identidad anónima o registrada. Ambas
// producen un JWT estable cuyo subject firma todas las escrituras.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// AnonymousSession crea una identidad anónima con nombre visible derivado
// ("User " + primeros 4 caracteres del id) y devuelve su token.
func (uc *AuthUseCase) AnonymousSession(ctx context.Context) (*dto.SessionResponse, error) {
	now := time.Now()
	user := &entity.User{
		ID:        uuid.New().String(),
		Anonymous: true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	user.DisplayName = entity.AnonymousDisplayName(user.ID)
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return uc.session(user)
}

// RegisterUser crea un usuario registrado: hashea password con bcrypt y
// persiste. Devuelve ErrEmailAlreadyExists si el email ya existe.
func (uc *AuthUseCase) RegisterUser(ctx context.Context, in dto.RegisterRequest) (*dto.SessionResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || len(in.Password) < 8 {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.userRepo.FindByEmail(ctx, email)
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	name := strings.TrimSpace(in.DisplayName)
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		DisplayName:  name,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if user.DisplayName == "" {
		user.DisplayName = entity.AnonymousDisplayName(user.ID)
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return uc.session(user)
}

// Login verifica email/password y devuelve token + usuario.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.SessionResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	user, err := uc.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	return uc.session(user)
}

func (uc *AuthUseCase) session(user *entity.User) (*dto.SessionResponse, error) {
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.DisplayName, user.Anonymous, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.SessionResponse{
		Token: token,
		User: dto.UserResponse{
			ID:          user.ID,
			Email:       user.Email,
			DisplayName: user.DisplayName,
			Anonymous:   user.Anonymous,
			CreatedAt:   user.CreatedAt,
		},
	}, nil
}
