// Package auth contiene los casos de uso de autenticación por sesión opaca:
// login con cookie, validación del token y revocación.
package auth

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/coaching-pro/internal/application/dto"
	"github.com/tu-usuario/coaching-pro/internal/domain"
	"github.com/tu-usuario/coaching-pro/internal/domain/entity"
	"github.com/tu-usuario/coaching-pro/internal/domain/repository"
	"github.com/tu-usuario/coaching-pro/pkg/config"
	"github.com/tu-usuario/coaching-pro/pkg/logger"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/unicode/norm"
)

// Principal identidad resuelta de una sesión válida.
type Principal struct {
	UserID    string
	Username  string
	Role      string
	CompanyID string
}

// IsAdmin informa si el principal tiene rol de administrador.
func (p Principal) IsAdmin() bool {
	return p.Role == entity.RoleAdmin
}

// AuthUseCase casos de uso de autenticación: login, logout y validación de sesión.
type AuthUseCase struct {
	users    repository.UserRepository
	sessions repository.UserSessionRepository
	cfg      config.SessionConfig
	log      *logger.Logger
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(users repository.UserRepository, sessions repository.UserSessionRepository, cfg config.SessionConfig, log *logger.Logger) *AuthUseCase {
	return &AuthUseCase{users: users, sessions: sessions, cfg: cfg, log: log}
}

// NormalizeUsername aplica NFKC: usernames visualmente iguales comparan iguales.
func NormalizeUsername(username string) string {
	return norm.NFKC.String(username)
}

// Login verifica credenciales y crea una sesión persistida de 7 días.
// Credencial mala, usuario inexistente o inactivo devuelven el mismo
// domain.ErrUnauthorized: el mensaje nunca distingue el caso.
// Devuelve el token para la cookie junto con la respuesta.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, string, error) {
	user, err := uc.users.GetByUsername(NormalizeUsername(in.Username))
	if err != nil {
		return nil, "", err
	}
	if user == nil || !user.IsActive {
		return nil, "", domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, "", domain.ErrUnauthorized
	}

	now := time.Now()
	session := &entity.UserSession{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		CompanyID: user.CompanyID,
		ExpiresAt: now.Add(uc.TTL()),
		CreatedAt: now,
	}
	if err := uc.sessions.Create(session); err != nil {
		return nil, "", err
	}
	if err := uc.users.UpdateLastLogin(user.ID, now); err != nil {
		uc.log.Warn().Err(err).Str("user_id", user.ID).Msg("no se pudo actualizar last_login")
	}
	// Barrido perezoso de sesiones vencidas; un fallo no afecta el login.
	if err := uc.sessions.DeleteExpired(now); err != nil {
		uc.log.Warn().Err(err).Msg("no se pudieron purgar sesiones expiradas")
	}

	return &dto.LoginResponse{User: toSessionUser(user)}, session.ID, nil
}

// Validate resuelve el token de la cookie a un Principal.
// La expiración se decide comparando ExpiresAt contra ahora: una fila vencida
// que el barrido todavía no purgó sigue siendo inválida.
func (uc *AuthUseCase) Validate(token string) (*Principal, error) {
	if token == "" {
		return nil, domain.ErrUnauthorized
	}
	session, err := uc.sessions.GetByID(token)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, domain.ErrUnauthorized
	}
	if session.Expired(time.Now()) {
		return nil, domain.ErrSessionExpired
	}
	user, err := uc.users.GetByID(session.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive {
		return nil, domain.ErrUnauthorized
	}
	return &Principal{
		UserID:    user.ID,
		Username:  user.Username,
		Role:      user.Role,
		CompanyID: user.CompanyID,
	}, nil
}

// Logout revoca la sesión. Token inexistente no es error (idempotente).
func (uc *AuthUseCase) Logout(token string) error {
	if token == "" {
		return nil
	}
	return uc.sessions.Delete(token)
}

// TTL vigencia configurada de la sesión.
func (uc *AuthUseCase) TTL() time.Duration {
	return time.Duration(uc.cfg.TTLDays) * 24 * time.Hour
}

// HashPassword genera el hash bcrypt para persistir.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func toSessionUser(u *entity.User) dto.SessionUserResponse {
	return dto.SessionUserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Role:      u.Role,
		CompanyID: u.CompanyID,
	}
}
