package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/facturia/billing-api/internal/application/dto"
	"github.com/facturia/billing-api/internal/domain"
	"github.com/facturia/billing-api/internal/domain/entity"
	"github.com/facturia/billing-api/internal/domain/repository"
	"github.com/facturia/billing-api/pkg/jwt"
)

// minPasswordLen largo mínimo aceptado para contraseñas nuevas.
const minPasswordLen = 8

// UseCase maneja registro y login de usuarios. El token emitido lleva solo
// identidad y rol; el tenant se resuelve por request con x-company-code.
type UseCase struct {
	userRepo    repository.UserRepository
	companyRepo repository.CompanyRepository
	jwtSecret   string
	jwtIssuer   string
	jwtMinutes  int
}

// NewUseCase construye el caso de uso.
func NewUseCase(userRepo repository.UserRepository, companyRepo repository.CompanyRepository, jwtSecret, jwtIssuer string, jwtMinutes int) *UseCase {
	return &UseCase{
		userRepo:    userRepo,
		companyRepo: companyRepo,
		jwtSecret:   jwtSecret,
		jwtIssuer:   jwtIssuer,
		jwtMinutes:  jwtMinutes,
	}
}

// Register crea un usuario nuevo en una empresa existente.
// Retorna domain.ErrEmailAlreadyExists si el email ya está registrado en la empresa.
func (uc *UseCase) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || !strings.Contains(email, "@") || req.CompanyID == "" {
		return nil, domain.ErrInvalidInput
	}
	if len(req.Password) < minPasswordLen {
		return nil, domain.ErrInvalidInput
	}
	role := req.Role
	if role == "" {
		role = entity.RoleOperador
	}
	if role != entity.RoleAdmin && role != entity.RoleOperador {
		return nil, domain.ErrInvalidInput
	}

	company, err := uc.companyRepo.GetByID(req.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}

	existing, err := uc.userRepo.GetByEmailAndCompany(email, req.CompanyID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		CompanyID:    req.CompanyID,
		Email:        email,
		PasswordHash: string(hash),
		Name:         req.Name,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifica credenciales y emite un JWT.
// Retorna domain.ErrUnauthorized sin distinguir usuario inexistente de
// contraseña incorrecta.
func (uc *UseCase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" || req.CompanyID == "" {
		return nil, domain.ErrInvalidInput
	}

	user, err := uc.userRepo.GetByEmailAndCompany(email, req.CompanyID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	token, err := jwt.Generate(uc.jwtSecret, user.ID, user.Role, uc.jwtIssuer, uc.jwtMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: *toUserResponse(user)}, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:        u.ID,
		CompanyID: u.CompanyID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
	}
}
