// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fleet-manager/backend/internal/application/adapter"
	"github.com/fleet-manager/backend/internal/domain/entity"
	domainerror "github.com/fleet-manager/backend/internal/domain/error"
)

// ListUsersOutput represents the output of listing users.
type ListUsersOutput struct {
	Users []*entity.User
}

// ListUsersUseCase lists all staff accounts.
type ListUsersUseCase struct {
	userRepo adapter.UserRepository
}

// NewListUsersUseCase creates a new ListUsersUseCase instance.
func NewListUsersUseCase(userRepo adapter.UserRepository) *ListUsersUseCase {
	return &ListUsersUseCase{userRepo: userRepo}
}

// Execute lists the users with password hashes stripped.
func (uc *ListUsersUseCase) Execute(ctx context.Context) (*ListUsersOutput, error) {
	users, err := uc.userRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	for _, u := range users {
		u.PasswordHash = ""
	}

	return &ListUsersOutput{Users: users}, nil
}

// DeactivateUserInput represents the input for deactivating an account.
type DeactivateUserInput struct {
	UserID uuid.UUID
}

// DeactivateUserUseCase deactivates a staff account. The account and its
// cash desk persist for reporting.
type DeactivateUserUseCase struct {
	userRepo adapter.UserRepository
}

// NewDeactivateUserUseCase creates a new DeactivateUserUseCase instance.
func NewDeactivateUserUseCase(userRepo adapter.UserRepository) *DeactivateUserUseCase {
	return &DeactivateUserUseCase{userRepo: userRepo}
}

// Execute performs the deactivation.
func (uc *DeactivateUserUseCase) Execute(ctx context.Context, input DeactivateUserInput) error {
	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return domainerror.NewAuthError(
			domainerror.ErrCodeUserNotFound,
			"user not found",
			domainerror.ErrUserNotFound,
		)
	}

	user.Active = false
	user.UpdatedAt = time.Now().UTC()

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return fmt.Errorf("failed to deactivate user: %w", err)
	}

	return nil
}
