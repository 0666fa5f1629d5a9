package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvr-infra/materials-api/internal/application/auth"
	"github.com/mvr-infra/materials-api/internal/application/dto"
	"github.com/mvr-infra/materials-api/internal/domain"
	"github.com/mvr-infra/materials-api/internal/domain/entity"
	"github.com/mvr-infra/materials-api/internal/infrastructure/memory"
	pkgjwt "github.com/mvr-infra/materials-api/pkg/jwt"
)

func newAuthUC() *auth.AuthUseCase {
	return auth.NewAuthUseCase(
		memory.NewUserRepository(memory.NewStore()),
		auth.JWTConfig{Secret: "test-secret", ExpMinutes: 60, Issuer: "materials-api-test"},
	)
}

func TestRegisterUser_DefaultsRoleAndName(t *testing.T) {
	uc := newAuthUC()
	resp, err := uc.RegisterUser(dto.RegisterRequest{Email: "clerk@example.com", Password: "s3cret-pw"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleClerk, resp.Role)
	assert.Equal(t, "clerk@example.com", resp.Name)
	assert.NotEmpty(t, resp.ID)
}

func TestRegisterUser_DuplicateEmail(t *testing.T) {
	uc := newAuthUC()
	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "a@example.com", Password: "s3cret-pw"})
	require.NoError(t, err)

	_, err = uc.RegisterUser(dto.RegisterRequest{Email: "a@example.com", Password: "other-pw"})
	assert.ErrorIs(t, err, domain.ErrEmailExists)
}

func TestLogin_TokenCarriesIDAndRole(t *testing.T) {
	uc := newAuthUC()
	reg, err := uc.RegisterUser(dto.RegisterRequest{
		Email: "stores@example.com", Password: "s3cret-pw", Role: entity.RoleStores,
	})
	require.NoError(t, err)

	resp, err := uc.Login(dto.LoginRequest{Email: "stores@example.com", Password: "s3cret-pw"})
	require.NoError(t, err)

	userID, role, err := pkgjwt.Parse("test-secret", resp.Token)
	require.NoError(t, err)
	assert.Equal(t, reg.ID, userID)
	assert.Equal(t, entity.RoleStores, role)
}

func TestLogin_WrongPassword(t *testing.T) {
	uc := newAuthUC()
	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "a@example.com", Password: "right-pw"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "a@example.com", Password: "wrong-pw"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UnknownEmail(t *testing.T) {
	uc := newAuthUC()
	_, err := uc.Login(dto.LoginRequest{Email: "nobody@example.com", Password: "pw"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
