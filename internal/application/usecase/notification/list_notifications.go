// Package notification contains notification use cases.
package notification

import (
	"context"
	"fmt"

	"github.com/fleet-manager/backend/internal/application/adapter"
	"github.com/fleet-manager/backend/internal/domain/entity"
)

// ListNotificationsInput represents the input for listing notifications.
type ListNotificationsInput struct {
	IncludeArchived bool
}

// ListNotificationsOutput represents the output of listing notifications.
type ListNotificationsOutput struct {
	Notifications []*entity.Notification
}

// ListNotificationsUseCase lists notifications, active only by default.
type ListNotificationsUseCase struct {
	notificationRepo adapter.NotificationRepository
}

// NewListNotificationsUseCase creates a new ListNotificationsUseCase instance.
func NewListNotificationsUseCase(notificationRepo adapter.NotificationRepository) *ListNotificationsUseCase {
	return &ListNotificationsUseCase{notificationRepo: notificationRepo}
}

// Execute lists the notifications.
func (uc *ListNotificationsUseCase) Execute(ctx context.Context, input ListNotificationsInput) (*ListNotificationsOutput, error) {
	var (
		notifications []*entity.Notification
		err           error
	)
	if input.IncludeArchived {
		notifications, err = uc.notificationRepo.FindAll(ctx)
	} else {
		notifications, err = uc.notificationRepo.FindActive(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	return &ListNotificationsOutput{Notifications: notifications}, nil
}
