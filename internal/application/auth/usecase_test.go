package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/nvdekay/stock-master-sub000/internal/application/auth"
	"github.com/nvdekay/stock-master-sub000/internal/application/dto"
	"github.com/nvdekay/stock-master-sub000/internal/domain"
	"github.com/nvdekay/stock-master-sub000/internal/domain/entity"
	pkgjwt "github.com/nvdekay/stock-master-sub000/pkg/jwt"
)

type fakeUserRepo struct {
	users []entity.User
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			c := u
			return &c, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			c := u
			return &c, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) List(_ context.Context) ([]entity.User, error) {
	return r.users, nil
}

var testCfg = auth.JWTConfig{Secret: "test-secret", ExpMinutes: 60, Issuer: "stock-master-test"}

func seedUser(t *testing.T, status string) entity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("clave-correcta"), bcrypt.MinCost)
	require.NoError(t, err)
	return entity.User{
		ID:           "usr-1",
		Email:        "elena@bodega.co",
		PasswordHash: string(hash),
		FullName:     "Elena Vargas",
		Role:         entity.RoleExporter,
		WarehouseID:  "bod-1",
		Status:       status,
	}
}

func TestLogin_CredencialesValidasEmitenTokenConRol(t *testing.T) {
	uc := auth.NewUseCase(&fakeUserRepo{users: []entity.User{seedUser(t, "active")}}, testCfg)

	resp, err := uc.Login(context.Background(), dto.LoginRequest{
		Email: "elena@bodega.co", Password: "clave-correcta",
	})
	require.NoError(t, err)

	assert.Equal(t, "usr-1", resp.User.ID)
	assert.Equal(t, entity.RoleExporter, resp.User.Role)

	// El token lleva los claims que el middleware y el ciclo de vida usan.
	userID, warehouseID, role, err := pkgjwt.Parse(testCfg.Secret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "usr-1", userID)
	assert.Equal(t, "bod-1", warehouseID)
	assert.Equal(t, entity.RoleExporter, role)
}

func TestLogin_PasswordIncorrectaRechazada(t *testing.T) {
	uc := auth.NewUseCase(&fakeUserRepo{users: []entity.User{seedUser(t, "active")}}, testCfg)

	_, err := uc.Login(context.Background(), dto.LoginRequest{
		Email: "elena@bodega.co", Password: "clave-equivocada",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc := auth.NewUseCase(&fakeUserRepo{}, testCfg)

	_, err := uc.Login(context.Background(), dto.LoginRequest{
		Email: "nadie@bodega.co", Password: "lo-que-sea",
	})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLogin_UsuarioInactivoBloqueado(t *testing.T) {
	uc := auth.NewUseCase(&fakeUserRepo{users: []entity.User{seedUser(t, "inactive")}}, testCfg)

	_, err := uc.Login(context.Background(), dto.LoginRequest{
		Email: "elena@bodega.co", Password: "clave-correcta",
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
