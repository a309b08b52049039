package adapters

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"

	"github.com/fleet-manager/backend/internal/application/adapter"
	"github.com/fleet-manager/backend/internal/domain/entity"
)

// alertMailer implements the adapter.AlertSender interface using Resend.
// It delivers an email to the configured recipient when a maintenance
// alert crosses the critical threshold.
type alertMailer struct {
	client    *resend.Client
	fromName  string
	fromEmail string
	toEmail   string
}

// NewAlertMailer creates a new Resend-backed alert sender.
func NewAlertMailer(apiKey, fromName, fromEmail, toEmail string) adapter.AlertSender {
	return &alertMailer{
		client:    resend.NewClient(apiKey),
		fromName:  fromName,
		fromEmail: fromEmail,
		toEmail:   toEmail,
	}
}

// SendMaintenanceAlert sends a critical maintenance alert email.
func (m *alertMailer) SendMaintenanceAlert(ctx context.Context, notification *entity.Notification) error {
	subject := fmt.Sprintf("Maintenance overdue: %s (%s)",
		notification.VehicleName, notification.MaintenanceType)

	text := fmt.Sprintf(
		"Vehicle %s has passed its %s threshold.\n\nDue at: %d km\nOverdue by: %d km\n\n%s",
		notification.VehicleName,
		notification.MaintenanceType,
		notification.DueKm,
		-notification.KmLeft,
		notification.Message,
	)

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", m.fromName, m.fromEmail),
		To:      []string{m.toEmail},
		Subject: subject,
		Text:    text,
	}

	if _, err := m.client.Emails.SendWithContext(ctx, params); err != nil {
		return fmt.Errorf("failed to send maintenance alert: %w", err)
	}
	return nil
}

// noopAlertSender is used when no email credentials are configured.
type noopAlertSender struct{}

// NewNoopAlertSender creates an alert sender that silently drops alerts.
func NewNoopAlertSender() adapter.AlertSender {
	return &noopAlertSender{}
}

func (noopAlertSender) SendMaintenanceAlert(ctx context.Context, notification *entity.Notification) error {
	return nil
}
