// Package notification contains notification use cases.
package notification

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/fleet-manager/backend/internal/application/adapter"
	domainerror "github.com/fleet-manager/backend/internal/domain/error"
)

// ArchiveNotificationInput represents the input for archiving a notification.
type ArchiveNotificationInput struct {
	ID         uuid.UUID
	ArchivedBy string
}

// ArchiveNotificationUseCase soft-deletes a notification. Archived
// notifications no longer block re-derivation of the same threshold once
// the due km changes.
type ArchiveNotificationUseCase struct {
	notificationRepo adapter.NotificationRepository
}

// NewArchiveNotificationUseCase creates a new ArchiveNotificationUseCase instance.
func NewArchiveNotificationUseCase(notificationRepo adapter.NotificationRepository) *ArchiveNotificationUseCase {
	return &ArchiveNotificationUseCase{notificationRepo: notificationRepo}
}

// Execute performs the archival.
func (uc *ArchiveNotificationUseCase) Execute(ctx context.Context, input ArchiveNotificationInput) error {
	if _, err := uc.notificationRepo.FindByID(ctx, input.ID); err != nil {
		return fmt.Errorf("notification lookup failed: %w", domainerror.ErrNotificationNotFound)
	}

	if err := uc.notificationRepo.Archive(ctx, input.ID, input.ArchivedBy); err != nil {
		return fmt.Errorf("failed to archive notification: %w", err)
	}

	return nil
}
