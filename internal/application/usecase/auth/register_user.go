// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"fmt"

	"github.com/fleet-manager/backend/internal/application/adapter"
	"github.com/fleet-manager/backend/internal/domain/entity"
	domainerror "github.com/fleet-manager/backend/internal/domain/error"
)

// RegisterUserInput represents the input for creating a staff account.
type RegisterUserInput struct {
	Email    string
	Name     string
	Password string
	Role     entity.UserRole
}

// RegisterUserOutput represents the output of the registration.
type RegisterUserOutput struct {
	User *entity.User
	Desk *entity.CashDesk
}

// RegisterUserUseCase creates a staff account. Every user gets their own
// cash desk in the same operation; desks are never shared.
type RegisterUserUseCase struct {
	userRepo        adapter.UserRepository
	cashDeskRepo    adapter.CashDeskRepository
	passwordService adapter.PasswordService
}

// NewRegisterUserUseCase creates a new RegisterUserUseCase instance.
func NewRegisterUserUseCase(
	userRepo adapter.UserRepository,
	cashDeskRepo adapter.CashDeskRepository,
	passwordService adapter.PasswordService,
) *RegisterUserUseCase {
	return &RegisterUserUseCase{
		userRepo:        userRepo,
		cashDeskRepo:    cashDeskRepo,
		passwordService: passwordService,
	}
}

// Execute performs the registration.
func (uc *RegisterUserUseCase) Execute(ctx context.Context, input RegisterUserInput) (*RegisterUserOutput, error) {
	if input.Role != entity.UserRoleAdmin && input.Role != entity.UserRoleAgent {
		return nil, fmt.Errorf("invalid role %q", input.Role)
	}

	if err := uc.passwordService.ValidatePasswordStrength(input.Password); err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidCredentials,
			err.Error(),
			err,
		)
	}

	exists, err := uc.userRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeEmailAlreadyExists,
			"email already registered",
			domainerror.ErrEmailAlreadyExists,
		)
	}

	hash, err := uc.passwordService.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := entity.NewUser(input.Email, input.Name, hash, input.Role)
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	desk := entity.NewCashDesk(user.ID)
	if err := uc.cashDeskRepo.Create(ctx, desk); err != nil {
		return nil, fmt.Errorf("failed to create cash desk: %w", err)
	}

	return &RegisterUserOutput{User: user, Desk: desk}, nil
}
