package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/retail-analytics-api/internal/application/dto"
	"github.com/jhoicas/retail-analytics-api/internal/domain"
	"github.com/jhoicas/retail-analytics-api/internal/domain/entity"
	"github.com/jhoicas/retail-analytics-api/internal/domain/repository"
	pkgjwt "github.com/jhoicas/retail-analytics-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake de UserRepository en memoria
// ──────────────────────────────────────────────────────────────────────────────

type memUserRepo struct {
	byEmail map[string]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{byEmail: make(map[string]*entity.User)}
}

func (r *memUserRepo) Create(_ context.Context, u *entity.User) error {
	if _, ok := r.byEmail[u.Email]; ok {
		return domain.ErrEmailAlreadyExists
	}
	r.byEmail[u.Email] = u
	return nil
}

func (r *memUserRepo) FindByID(_ context.Context, id string) (*entity.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	return r.byEmail[email], nil
}

func (r *memUserRepo) UpdatePassword(_ context.Context, userID, passwordHash string) error {
	for _, u := range r.byEmail {
		if u.ID == userID {
			u.PasswordHash = passwordHash
			return nil
		}
	}
	return domain.ErrUserNotFound
}

var _ repository.UserRepository = (*memUserRepo)(nil)

var testJWT = JWTConfig{Secret: "secret-de-test", ExpMinutes: 60, Issuer: "retail-analytics-test"}

func newAuthFixture() (*AuthUseCase, *memUserRepo) {
	repo := newMemUserRepo()
	return NewAuthUseCase(repo, testJWT), repo
}

// ──────────────────────────────────────────────────────────────────────────────
// RegisterUser
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterUser_CreaUsuarioConHashBcrypt(t *testing.T) {
	uc, repo := newAuthFixture()

	out, err := uc.RegisterUser(context.Background(), dto.RegisterRequest{
		Email: "ana@tienda.co", Password: "secreta1", Name: "Ana",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "ana@tienda.co", out.Email)
	assert.Equal(t, "Ana", out.Name)
	assert.Equal(t, "active", out.Status)

	stored := repo.byEmail["ana@tienda.co"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "secreta1", stored.PasswordHash, "la contraseña nunca se guarda en claro")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secreta1")))
}

func TestRegisterUser_SinNombreUsaElEmail(t *testing.T) {
	uc, _ := newAuthFixture()
	out, err := uc.RegisterUser(context.Background(), dto.RegisterRequest{
		Email: "ana@tienda.co", Password: "secreta1",
	})
	require.NoError(t, err)
	assert.Equal(t, "ana@tienda.co", out.Name)
}

func TestRegisterUser_EmailDuplicado(t *testing.T) {
	uc, _ := newAuthFixture()
	_, err := uc.RegisterUser(context.Background(), dto.RegisterRequest{Email: "ana@tienda.co", Password: "secreta1"})
	require.NoError(t, err)

	_, err = uc.RegisterUser(context.Background(), dto.RegisterRequest{Email: "ana@tienda.co", Password: "otra-clave"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CredencialesValidasEmitenJWT(t *testing.T) {
	uc, _ := newAuthFixture()
	reg, err := uc.RegisterUser(context.Background(), dto.RegisterRequest{Email: "ana@tienda.co", Password: "secreta1"})
	require.NoError(t, err)

	out, err := uc.Login(context.Background(), dto.LoginRequest{Email: "ana@tienda.co", Password: "secreta1"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)
	assert.Equal(t, reg.ID, out.User.ID)

	// El token debe llevar el user_id correcto.
	userID, err := pkgjwt.Parse(testJWT.Secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, reg.ID, userID)
}

func TestLogin_EmailInexistente(t *testing.T) {
	uc, _ := newAuthFixture()
	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "nadie@tienda.co", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	uc, _ := newAuthFixture()
	_, err := uc.RegisterUser(context.Background(), dto.RegisterRequest{Email: "ana@tienda.co", Password: "secreta1"})
	require.NoError(t, err)

	_, err = uc.Login(context.Background(), dto.LoginRequest{Email: "ana@tienda.co", Password: "equivocada"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_CuentaInactivaEsForbidden(t *testing.T) {
	uc, repo := newAuthFixture()
	_, err := uc.RegisterUser(context.Background(), dto.RegisterRequest{Email: "ana@tienda.co", Password: "secreta1"})
	require.NoError(t, err)
	repo.byEmail["ana@tienda.co"].Status = "suspended"

	_, err = uc.Login(context.Background(), dto.LoginRequest{Email: "ana@tienda.co", Password: "secreta1"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// ──────────────────────────────────────────────────────────────────────────────
// ResetPassword
// ──────────────────────────────────────────────────────────────────────────────

func TestResetPassword_CambiaElHashYPermiteNuevoLogin(t *testing.T) {
	uc, _ := newAuthFixture()
	_, err := uc.RegisterUser(context.Background(), dto.RegisterRequest{Email: "ana@tienda.co", Password: "secreta1"})
	require.NoError(t, err)

	err = uc.ResetPassword(context.Background(), dto.ResetPasswordRequest{
		Email: "ana@tienda.co", CurrentPassword: "secreta1", NewPassword: "renovada2",
	})
	require.NoError(t, err)

	_, err = uc.Login(context.Background(), dto.LoginRequest{Email: "ana@tienda.co", Password: "secreta1"})
	assert.Error(t, err, "la contraseña anterior deja de servir")

	_, err = uc.Login(context.Background(), dto.LoginRequest{Email: "ana@tienda.co", Password: "renovada2"})
	assert.NoError(t, err)
}

func TestResetPassword_NoDistingueEmailDePasswordIncorrecta(t *testing.T) {
	uc, _ := newAuthFixture()
	_, err := uc.RegisterUser(context.Background(), dto.RegisterRequest{Email: "ana@tienda.co", Password: "secreta1"})
	require.NoError(t, err)

	// Email inexistente y contraseña actual incorrecta producen el mismo error.
	errEmail := uc.ResetPassword(context.Background(), dto.ResetPasswordRequest{
		Email: "nadie@tienda.co", CurrentPassword: "x", NewPassword: "renovada2",
	})
	errPass := uc.ResetPassword(context.Background(), dto.ResetPasswordRequest{
		Email: "ana@tienda.co", CurrentPassword: "equivocada", NewPassword: "renovada2",
	})
	assert.ErrorIs(t, errEmail, domain.ErrUnauthorized)
	assert.ErrorIs(t, errPass, domain.ErrUnauthorized)
}
