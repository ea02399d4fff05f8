// Package auth caso de uso de autenticación: login contra la colección users
// del almacén, emitiendo un JWT con el rol para el gating de transiciones.
package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/nvdekay/stock-master-sub000/internal/application/dto"
	"github.com/nvdekay/stock-master-sub000/internal/domain"
	"github.com/nvdekay/stock-master-sub000/internal/domain/repository"
	"github.com/nvdekay/stock-master-sub000/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase caso de uso de login. El registro de usuarios pertenece a los
// flujos CRUD externos; aquí solo se verifica y se emite el token.
type UseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewUseCase construye el caso de uso.
func NewUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *UseCase {
	return &UseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Login verifica email/password con bcrypt, genera el JWT y retorna token +
// usuario sin campos sensibles.
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Status != "active" {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.WarehouseID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User: dto.UserResponse{
			ID:          user.ID,
			Email:       user.Email,
			FullName:    user.FullName,
			Role:        user.Role,
			WarehouseID: user.WarehouseID,
		},
	}, nil
}
