package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/coaching-pro/internal/application/auth"
	"github.com/tu-usuario/coaching-pro/internal/application/dto"
	"github.com/tu-usuario/coaching-pro/internal/domain/entity"
	"github.com/tu-usuario/coaching-pro/internal/domain/repository"
)

// UserUseCase casos de uso administrativos de usuarios: listado global e
// import masivo.
type UserUseCase struct {
	users     repository.UserRepository
	companies repository.CompanyRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(users repository.UserRepository, companies repository.CompanyRepository) *UserUseCase {
	return &UserUseCase{users: users, companies: companies}
}

// ListAllWithCompany devuelve todos los usuarios con su empresa (panel admin).
func (uc *UserUseCase) ListAllWithCompany() ([]dto.UserWithCompanyResponse, error) {
	list, err := uc.users.ListAllWithCompany()
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserWithCompanyResponse, 0, len(list))
	for _, u := range list {
		items = append(items, dto.UserWithCompanyResponse{
			ID:          u.ID,
			CompanyID:   u.CompanyID,
			CompanyName: u.CompanyName,
			Username:    u.Username,
			Role:        u.Role,
			IsActive:    u.IsActive,
			LastLogin:   u.LastLogin,
			CreatedAt:   u.CreatedAt,
		})
	}
	return items, nil
}

// Import procesa el alta masiva fila por fila: una fila inválida o duplicada
// se acumula en errors y no aborta el resto del lote.
func (uc *UserUseCase) Import(in dto.ImportUsersRequest) *dto.ImportUsersResponse {
	result := &dto.ImportUsersResponse{Errors: []dto.ImportRowError{}}
	for _, row := range in.Users {
		if err := uc.importRow(row); err != nil {
			result.Failed++
			result.Errors = append(result.Errors, dto.ImportRowError{
				Username: row.Username,
				Error:    err.Error(),
			})
			continue
		}
		result.Success++
	}
	return result
}

func (uc *UserUseCase) importRow(row dto.ImportUserRow) error {
	if row.Username == "" || row.Password == "" || row.CompanyID == "" {
		return fmt.Errorf("username, password y company_id son obligatorios")
	}
	company, err := uc.companies.GetByID(row.CompanyID)
	if err != nil {
		return err
	}
	if company == nil || company.IsDeleted() {
		return fmt.Errorf("empresa %s no existe", row.CompanyID)
	}
	role := row.Role
	if role == "" {
		role = entity.RoleUser
	}
	hash, err := auth.HashPassword(row.Password)
	if err != nil {
		return err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		CompanyID:    row.CompanyID,
		Username:     auth.NormalizeUsername(row.Username),
		PasswordHash: hash,
		Role:         role,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return uc.users.Create(user)
}
