package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amintouch/ledger-api/internal/application/auth"
	"github.com/amintouch/ledger-api/internal/application/dto"
	"github.com/amintouch/ledger-api/internal/domain"
	"github.com/amintouch/ledger-api/internal/domain/entity"
	"github.com/amintouch/ledger-api/internal/infrastructure/memory"
	pkgjwt "github.com/amintouch/ledger-api/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

func newAuthUseCase(t *testing.T) *auth.UseCase {
	t.Helper()
	users, err := memory.SeedUsers()
	require.NoError(t, err)
	return auth.NewUseCase(memory.NewUserRepository(users), auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "ledger-api-test",
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_Admin(t *testing.T) {
	uc := newAuthUseCase(t)

	out, err := uc.Login(dto.LoginRequest{Username: "admin9197", Password: "Admin9197", Role: entity.RoleAdmin})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, "AL AMIN", out.User.Name)
	assert.Equal(t, entity.RoleAdmin, out.User.Role)
	require.NotEmpty(t, out.Token)

	userID, name, role, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, userID)
	assert.Equal(t, "AL AMIN", name)
	assert.Equal(t, entity.RoleAdmin, role)
}

// Username and password both match case-insensitively.
func TestLogin_CaseInsensitiveCredentials(t *testing.T) {
	uc := newAuthUseCase(t)

	cases := []dto.LoginRequest{
		{Username: "ADMIN9197", Password: "Admin9197", Role: entity.RoleAdmin},
		{Username: "Admin9197", Password: "ADMIN9197", Role: entity.RoleAdmin},
		{Username: "admin9197", Password: "admin9197", Role: entity.RoleAdmin},
		{Username: "RONYTALUKDER", Password: "@JEAD2016r", Role: entity.RoleStaff},
	}
	for _, in := range cases {
		out, err := uc.Login(in)
		assert.NoError(t, err, "%s should log in", in.Username)
		assert.NotNil(t, out)
	}
}

// The role tab must match the account's role exactly; a staff account cannot
// enter through the admin tab.
func TestLogin_RoleMismatch(t *testing.T) {
	uc := newAuthUseCase(t)

	_, err := uc.Login(dto.LoginRequest{Username: "mahir", Password: "Mahir3", Role: entity.RoleAdmin})
	assert.ErrorIs(t, err, domain.ErrInvalidCredential)

	_, err = uc.Login(dto.LoginRequest{Username: "admin9197", Password: "Admin9197", Role: entity.RoleStaff})
	assert.ErrorIs(t, err, domain.ErrInvalidCredential)
}

func TestLogin_WrongPassword(t *testing.T) {
	uc := newAuthUseCase(t)

	_, err := uc.Login(dto.LoginRequest{Username: "mahir", Password: "wrong", Role: entity.RoleStaff})
	assert.ErrorIs(t, err, domain.ErrInvalidCredential)
}

func TestLogin_UnknownUser(t *testing.T) {
	uc := newAuthUseCase(t)

	_, err := uc.Login(dto.LoginRequest{Username: "ghost", Password: "x", Role: entity.RoleStaff})
	assert.ErrorIs(t, err, domain.ErrInvalidCredential)
}

func TestLogin_Validation(t *testing.T) {
	uc := newAuthUseCase(t)

	_, err := uc.Login(dto.LoginRequest{Username: "", Password: "x", Role: entity.RoleStaff})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = uc.Login(dto.LoginRequest{Username: "mahir", Password: "Mahir3", Role: "SUPERUSER"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

// ──────────────────────────────────────────────────────────────────────────────
// ChangePassword
// ──────────────────────────────────────────────────────────────────────────────

func TestChangePassword(t *testing.T) {
	uc := newAuthUseCase(t)

	out, err := uc.ChangePassword("3", dto.ChangePasswordRequest{CurrentPassword: "Mahir3", NewPassword: "NewSecret9"})
	require.NoError(t, err)
	assert.True(t, out.Success)
	assert.Equal(t, "Password updated successfully!", out.Message)

	// Old password no longer works, the new one does (any casing).
	_, err = uc.Login(dto.LoginRequest{Username: "mahir", Password: "Mahir3", Role: entity.RoleStaff})
	assert.ErrorIs(t, err, domain.ErrInvalidCredential)

	_, err = uc.Login(dto.LoginRequest{Username: "mahir", Password: "NEWSECRET9", Role: entity.RoleStaff})
	assert.NoError(t, err)
}

func TestChangePassword_WrongCurrent(t *testing.T) {
	uc := newAuthUseCase(t)

	_, err := uc.ChangePassword("3", dto.ChangePasswordRequest{CurrentPassword: "nope", NewPassword: "NewSecret9"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredential)
}

func TestChangePassword_UnknownUser(t *testing.T) {
	uc := newAuthUseCase(t)

	_, err := uc.ChangePassword("99", dto.ChangePasswordRequest{CurrentPassword: "x", NewPassword: "y"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// ListStaff
// ──────────────────────────────────────────────────────────────────────────────

func TestListStaff(t *testing.T) {
	uc := newAuthUseCase(t)

	staff, err := uc.ListStaff()
	require.NoError(t, err)
	require.Len(t, staff, 3)
	for _, s := range staff {
		assert.Equal(t, entity.RoleStaff, s.Role)
	}
}
