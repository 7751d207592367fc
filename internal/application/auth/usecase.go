package auth

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/amintouch/ledger-api/internal/application/dto"
	"github.com/amintouch/ledger-api/internal/domain"
	"github.com/amintouch/ledger-api/internal/domain/entity"
	"github.com/amintouch/ledger-api/internal/domain/repository"
	"github.com/amintouch/ledger-api/pkg/jwt"
)

// JWTConfig settings for token generation.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase authentication: login, password change, staff listing.
type UseCase struct {
	users  repository.UserRepository
	jwtCfg JWTConfig
}

// NewUseCase builds the auth use case.
func NewUseCase(users repository.UserRepository, jwtCfg JWTConfig) *UseCase {
	return &UseCase{users: users, jwtCfg: jwtCfg}
}

// Login matches username and password case-insensitively and the role
// exactly. Any mismatch collapses into ErrInvalidCredential so the response
// never reveals which part failed.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Username == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: username and password are required", domain.ErrValidation)
	}
	if !entity.ValidRole(in.Role) {
		return nil, fmt.Errorf("%w: unknown role %q", domain.ErrValidation, in.Role)
	}

	user, err := uc.users.FindByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil || user.Role != in.Role {
		return nil, domain.ErrInvalidCredential
	}
	// Hashes are computed over the lowercased password, so comparing the
	// lowercased input keeps the match case-insensitive.
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(strings.ToLower(in.Password))) != nil {
		return nil, domain.ErrInvalidCredential
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Name, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  toUserResponse(*user),
	}, nil
}

// ChangePassword verifies the current password and overwrites the hash.
func (uc *UseCase) ChangePassword(userID string, in dto.ChangePasswordRequest) (*dto.MessageResponse, error) {
	if in.NewPassword == "" {
		return nil, fmt.Errorf("%w: new password is required", domain.ErrValidation)
	}

	user, err := uc.users.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(strings.ToLower(in.CurrentPassword))) != nil {
		return nil, fmt.Errorf("%w: incorrect current password", domain.ErrInvalidCredential)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(strings.ToLower(in.NewPassword)), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	if err := uc.users.UpdatePassword(userID, string(hash)); err != nil {
		return nil, err
	}
	return &dto.MessageResponse{Success: true, Message: "Password updated successfully!"}, nil
}

// ListStaff returns all STAFF users for the admin filter dropdown.
func (uc *UseCase) ListStaff() ([]dto.UserResponse, error) {
	staff, err := uc.users.ListByRole(entity.RoleStaff)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(staff))
	for _, u := range staff {
		out = append(out, toUserResponse(u))
	}
	return out, nil
}

func toUserResponse(u entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:       u.ID,
		Name:     u.Name,
		Username: u.Username,
		Role:     u.Role,
	}
}
