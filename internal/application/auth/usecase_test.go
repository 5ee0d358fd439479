package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/acrilico-stock-api/internal/application/auth"
	"github.com/jhoicas/acrilico-stock-api/internal/application/dto"
	"github.com/jhoicas/acrilico-stock-api/internal/domain"
	"github.com/jhoicas/acrilico-stock-api/internal/domain/entity"
	pkgjwt "github.com/jhoicas/acrilico-stock-api/pkg/jwt"
)

// fakeUserRepo guarda usuarios en memoria indexados por ID y email.
type fakeUserRepo struct {
	users []*entity.User
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	for _, u := range r.users {
		if u.Email != "" && u.Email == user.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	cp := *user
	r.users = append(r.users, &cp)
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email != "" && u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

var testJWT = auth.JWTConfig{
	Secret:     "test-secret-key-for-unit-tests",
	ExpMinutes: 60,
	Issuer:     "acrilico-stock-test",
}

// ──────────────────────────────────────────────────────────────────────────────
// Sesión anónima
// ──────────────────────────────────────────────────────────────────────────────

// La sesión anónima crea al usuario, deriva el nombre visible de su ID y
// devuelve un token parseable con esa identidad.
func TestAnonymousSession_CreaIdentidadYToken(t *testing.T) {
	repo := &fakeUserRepo{}
	uc := auth.NewAuthUseCase(repo, testJWT)

	sess, err := uc.AnonymousSession(context.Background())
	require.NoError(t, err)

	require.Len(t, repo.users, 1, "la sesión anónima persiste al usuario")
	user := repo.users[0]
	assert.True(t, user.Anonymous)
	assert.Equal(t, "User "+user.ID[:4], user.DisplayName,
		"el nombre visible se deriva de los primeros 4 caracteres del ID")

	userID, displayName, err := pkgjwt.Parse(testJWT.Secret, sess.Token)
	require.NoError(t, err, "el token de la sesión debe ser parseable")
	assert.Equal(t, user.ID, userID)
	assert.Equal(t, user.DisplayName, displayName)
	assert.True(t, sess.User.Anonymous)
}

// Dos bootstraps anónimos producen identidades independientes.
func TestAnonymousSession_IdentidadesIndependientes(t *testing.T) {
	repo := &fakeUserRepo{}
	uc := auth.NewAuthUseCase(repo, testJWT)
	ctx := context.Background()

	s1, err := uc.AnonymousSession(ctx)
	require.NoError(t, err)
	s2, err := uc.AnonymousSession(ctx)
	require.NoError(t, err)

	assert.NotEqual(t, s1.User.ID, s2.User.ID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Registro y login
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterUser_YLogin(t *testing.T) {
	repo := &fakeUserRepo{}
	uc := auth.NewAuthUseCase(repo, testJWT)
	ctx := context.Background()

	sess, err := uc.RegisterUser(ctx, dto.RegisterRequest{
		Email:       "  Maria@Taller.com ",
		Password:    "superSecreta1",
		DisplayName: "María",
	})
	require.NoError(t, err)
	assert.Equal(t, "maria@taller.com", sess.User.Email, "el email se normaliza a minúsculas")
	assert.Equal(t, "María", sess.User.DisplayName)
	assert.False(t, sess.User.Anonymous)

	// El password se guarda hasheado, nunca en claro.
	assert.NotEqual(t, "superSecreta1", repo.users[0].PasswordHash)
	assert.NotEmpty(t, repo.users[0].PasswordHash)

	login, err := uc.Login(ctx, dto.LoginRequest{Email: "maria@taller.com", Password: "superSecreta1"})
	require.NoError(t, err)
	assert.Equal(t, sess.User.ID, login.User.ID, "el login recupera la misma identidad")
}

func TestRegisterUser_EmailDuplicado(t *testing.T) {
	repo := &fakeUserRepo{}
	uc := auth.NewAuthUseCase(repo, testJWT)
	ctx := context.Background()

	_, err := uc.RegisterUser(ctx, dto.RegisterRequest{Email: "maria@taller.com", Password: "superSecreta1"})
	require.NoError(t, err)

	_, err = uc.RegisterUser(ctx, dto.RegisterRequest{Email: "MARIA@taller.com", Password: "otraClave123"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists,
		"el mismo email con otra capitalización es duplicado")
}

func TestRegisterUser_ValidacionRechazada(t *testing.T) {
	uc := auth.NewAuthUseCase(&fakeUserRepo{}, testJWT)
	ctx := context.Background()

	_, err := uc.RegisterUser(ctx, dto.RegisterRequest{Email: "", Password: "superSecreta1"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "email vacío")

	_, err = uc.RegisterUser(ctx, dto.RegisterRequest{Email: "maria@taller.com", Password: "corta"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "password de menos de 8 caracteres")
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	repo := &fakeUserRepo{}
	uc := auth.NewAuthUseCase(repo, testJWT)
	ctx := context.Background()

	_, err := uc.RegisterUser(ctx, dto.RegisterRequest{Email: "maria@taller.com", Password: "superSecreta1"})
	require.NoError(t, err)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "maria@taller.com", Password: "equivocada"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_EmailInexistente(t *testing.T) {
	uc := auth.NewAuthUseCase(&fakeUserRepo{}, testJWT)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "nadie@taller.com", Password: "loQueSea1"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
