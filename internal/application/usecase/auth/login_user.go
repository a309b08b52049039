// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fleet-manager/backend/internal/application/adapter"
	"github.com/fleet-manager/backend/internal/domain/entity"
	domainerror "github.com/fleet-manager/backend/internal/domain/error"
)

// LoginUserInput represents the input for user login.
type LoginUserInput struct {
	Email    string
	Password string
}

// LoginUserOutput represents the output of a successful login.
type LoginUserOutput struct {
	Token string
	User  *entity.User
}

// LoginUserUseCase handles the email/password login. A successful login
// records the user's last login time, which drives the period-close
// deactivation of dormant accounts.
type LoginUserUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
	tokenService    adapter.TokenService
}

// NewLoginUserUseCase creates a new LoginUserUseCase instance.
func NewLoginUserUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
	tokenService adapter.TokenService,
) *LoginUserUseCase {
	return &LoginUserUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
	}
}

// Execute performs the login.
func (uc *LoginUserUseCase) Execute(ctx context.Context, input LoginUserInput) (*LoginUserOutput, error) {
	user, err := uc.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		// Same error for unknown email and wrong password.
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidCredentials,
			"invalid email or password",
			domainerror.ErrInvalidCredentials,
		)
	}

	if err := uc.passwordService.VerifyPassword(user.PasswordHash, input.Password); err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidCredentials,
			"invalid email or password",
			domainerror.ErrInvalidCredentials,
		)
	}

	if !user.Active {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeUserInactive,
			"account has been deactivated",
			domainerror.ErrUserInactive,
		)
	}

	token, err := uc.tokenService.GenerateToken(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	now := time.Now().UTC()
	user.LastLogin = &now
	user.UpdatedAt = now
	if err := uc.userRepo.Update(ctx, user); err != nil {
		// The login itself succeeded; a stale last-login only delays
		// dormancy detection.
		slog.Warn("Failed to record last login", "email", user.Email, "error", err)
	}

	return &LoginUserOutput{Token: token, User: user}, nil
}
