package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/coaching-pro/internal/application/auth"
	"github.com/tu-usuario/coaching-pro/internal/application/dto"
	"github.com/tu-usuario/coaching-pro/internal/domain"
	"github.com/tu-usuario/coaching-pro/internal/domain/entity"
	"github.com/tu-usuario/coaching-pro/internal/domain/repository"
	"github.com/tu-usuario/coaching-pro/pkg/config"
	"github.com/tu-usuario/coaching-pro/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes mínimos de los dos puertos que usa auth.
// ──────────────────────────────────────────────────────────────────────────────

type stubUserRepo struct {
	users map[string]*entity.User
}

var _ repository.UserRepository = (*stubUserRepo)(nil)

func (r *stubUserRepo) Create(u *entity.User) error { r.users[u.ID] = u; return nil }
func (r *stubUserRepo) GetByID(id string) (*entity.User, error) {
	return r.users[id], nil
}
func (r *stubUserRepo) GetByUsername(username string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}
func (r *stubUserRepo) Update(u *entity.User) error { r.users[u.ID] = u; return nil }
func (r *stubUserRepo) UpdateLastLogin(id string, when time.Time) error {
	if u, ok := r.users[id]; ok {
		u.LastLogin = &when
	}
	return nil
}
func (r *stubUserRepo) SetActiveByCompany(string, bool) error { return nil }
func (r *stubUserRepo) ListAllWithCompany() ([]*repository.UserWithCompany, error) {
	return nil, nil
}
func (r *stubUserRepo) DeleteByCompany(string) error { return nil }

type stubSessionRepo struct {
	sessions map[string]*entity.UserSession
}

var _ repository.UserSessionRepository = (*stubSessionRepo)(nil)

func (r *stubSessionRepo) Create(s *entity.UserSession) error { r.sessions[s.ID] = s; return nil }
func (r *stubSessionRepo) GetByID(token string) (*entity.UserSession, error) {
	return r.sessions[token], nil
}
func (r *stubSessionRepo) Delete(token string) error {
	delete(r.sessions, token)
	return nil
}
func (r *stubSessionRepo) DeleteByUser(userID string) error {
	for id, s := range r.sessions {
		if s.UserID == userID {
			delete(r.sessions, id)
		}
	}
	return nil
}
func (r *stubSessionRepo) DeleteByCompany(string) error { return nil }
func (r *stubSessionRepo) DeleteExpired(now time.Time) error {
	for id, s := range r.sessions {
		if s.Expired(now) {
			delete(r.sessions, id)
		}
	}
	return nil
}
func (r *stubSessionRepo) ListActive(time.Time) ([]*repository.ActiveSession, error) {
	return nil, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Setup
// ──────────────────────────────────────────────────────────────────────────────

const (
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testCompanyID = "00000000-0000-0000-0000-000000000002"
	testPassword  = "secreto"
)

func buildAuth(t *testing.T) (*auth.AuthUseCase, *stubUserRepo, *stubSessionRepo) {
	t.Helper()
	hash, err := auth.HashPassword(testPassword)
	require.NoError(t, err)

	users := &stubUserRepo{users: map[string]*entity.User{
		testUserID: {
			ID:           testUserID,
			CompanyID:    testCompanyID,
			Username:     "acme",
			PasswordHash: hash,
			Role:         entity.RoleUser,
			IsActive:     true,
		},
	}}
	sessions := &stubSessionRepo{sessions: map[string]*entity.UserSession{}}
	cfg := config.SessionConfig{CookieName: "session_id", TTLDays: 7, CookieSecure: false}
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	return auth.NewAuthUseCase(users, sessions, cfg, log), users, sessions
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CredencialesValidasCreaSesion(t *testing.T) {
	uc, users, sessions := buildAuth(t)

	resp, token, err := uc.Login(dto.LoginRequest{Username: "acme", Password: testPassword})
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, testUserID, resp.User.ID)
	assert.Equal(t, testCompanyID, resp.User.CompanyID)

	session := sessions.sessions[token]
	require.NotNil(t, session, "la sesión debe quedar persistida bajo el token")
	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), session.ExpiresAt, time.Minute,
		"la vigencia debe ser la configurada (7 días)")

	assert.NotNil(t, users.users[testUserID].LastLogin, "el login registra last_login")
}

// Contraseña mala, usuario inexistente y usuario inactivo devuelven el MISMO
// error: la respuesta no debe filtrar cuál de los tres ocurrió.
func TestLogin_FallosIndistinguibles(t *testing.T) {
	uc, users, _ := buildAuth(t)

	_, _, errPassword := uc.Login(dto.LoginRequest{Username: "acme", Password: "incorrecta"})
	_, _, errUnknown := uc.Login(dto.LoginRequest{Username: "fantasma", Password: testPassword})

	users.users[testUserID].IsActive = false
	_, _, errInactive := uc.Login(dto.LoginRequest{Username: "acme", Password: testPassword})

	assert.ErrorIs(t, errPassword, domain.ErrUnauthorized)
	assert.ErrorIs(t, errUnknown, domain.ErrUnauthorized)
	assert.ErrorIs(t, errInactive, domain.ErrUnauthorized)
}

// El username del login se normaliza NFKC antes de buscar: escribirlo con
// caracteres fullwidth encuentra la misma cuenta.
func TestLogin_UsernameFullwidthNormaliza(t *testing.T) {
	uc, _, _ := buildAuth(t)

	resp, _, err := uc.Login(dto.LoginRequest{Username: "ａｃｍｅ", Password: testPassword})
	require.NoError(t, err)
	assert.Equal(t, testUserID, resp.User.ID)
}

// El barrido perezoso del login purga sesiones ya vencidas de cualquier usuario.
func TestLogin_PurgaSesionesVencidas(t *testing.T) {
	uc, _, sessions := buildAuth(t)

	sessions.sessions["vieja"] = &entity.UserSession{
		ID: "vieja", UserID: "otro", CompanyID: "otra",
		ExpiresAt: time.Now().Add(-time.Hour),
	}

	_, _, err := uc.Login(dto.LoginRequest{Username: "acme", Password: testPassword})
	require.NoError(t, err)
	assert.Nil(t, sessions.sessions["vieja"], "la fila vencida debe desaparecer tras el login")
}

// ──────────────────────────────────────────────────────────────────────────────
// Validate
// ──────────────────────────────────────────────────────────────────────────────

func TestValidate_TokenValidoResuelvePrincipal(t *testing.T) {
	uc, _, _ := buildAuth(t)
	_, token, err := uc.Login(dto.LoginRequest{Username: "acme", Password: testPassword})
	require.NoError(t, err)

	p, err := uc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, testUserID, p.UserID)
	assert.Equal(t, "acme", p.Username)
	assert.Equal(t, testCompanyID, p.CompanyID)
	assert.False(t, p.IsAdmin())
}

func TestValidate_TokenVacioODesconocido(t *testing.T) {
	uc, _, _ := buildAuth(t)

	_, err := uc.Validate("")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Validate("token-que-no-existe")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// Una fila vencida que el barrido todavía no purgó sigue siendo inválida:
// la expiración se decide por ExpiresAt, no por la existencia de la fila.
func TestValidate_SesionVencidaAunPersistida(t *testing.T) {
	uc, _, sessions := buildAuth(t)

	sessions.sessions["vencida"] = &entity.UserSession{
		ID: "vencida", UserID: testUserID, CompanyID: testCompanyID,
		ExpiresAt: time.Now().Add(-time.Minute),
	}

	_, err := uc.Validate("vencida")
	assert.ErrorIs(t, err, domain.ErrSessionExpired)
}

// Desactivar al usuario invalida sus sesiones vigentes sin tocar las filas.
func TestValidate_UsuarioDesactivadoInvalidaSesion(t *testing.T) {
	uc, users, _ := buildAuth(t)
	_, token, err := uc.Login(dto.LoginRequest{Username: "acme", Password: testPassword})
	require.NoError(t, err)

	users.users[testUserID].IsActive = false
	_, err = uc.Validate(token)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// ──────────────────────────────────────────────────────────────────────────────
// Logout
// ──────────────────────────────────────────────────────────────────────────────

func TestLogout_RevocaYEsIdempotente(t *testing.T) {
	uc, _, sessions := buildAuth(t)
	_, token, err := uc.Login(dto.LoginRequest{Username: "acme", Password: testPassword})
	require.NoError(t, err)

	require.NoError(t, uc.Logout(token))
	assert.Nil(t, sessions.sessions[token])

	assert.NoError(t, uc.Logout(token), "revocar un token ya inexistente no es error")
	assert.NoError(t, uc.Logout(""), "logout sin cookie tampoco")

	_, err = uc.Validate(token)
	assert.ErrorIs(t, err, domain.ErrUnauthorized, "tras el logout el token deja de validar")
}
