// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/fleet-manager/backend/internal/domain/entity"
)

// PasswordService defines password hashing operations.
type PasswordService interface {
	// HashPassword hashes a plain text password.
	HashPassword(password string) (string, error)

	// VerifyPassword compares a plain text password with a hashed password.
	VerifyPassword(hashedPassword, password string) error

	// ValidatePasswordStrength validates minimum password requirements.
	ValidatePasswordStrength(password string) error
}

// TokenClaims holds the identity carried by an access token.
type TokenClaims struct {
	UserID uuid.UUID
	Email  string
	Name   string
	Role   entity.UserRole
}

// TokenService defines access token operations.
type TokenService interface {
	// GenerateToken issues an access token for the given user.
	GenerateToken(ctx context.Context, user *entity.User) (string, error)

	// ValidateToken validates an access token and returns its claims.
	ValidateToken(ctx context.Context, token string) (*TokenClaims, error)
}

// AlertSender delivers out-of-band alerts for critical notifications.
// Delivery is best-effort: failures are logged by callers, never fatal.
type AlertSender interface {
	SendMaintenanceAlert(ctx context.Context, notification *entity.Notification) error
}

// ChangePublisher broadcasts that a named collection changed. Subscribers
// react by dropping derived state (the report snapshot cache), never by
// patching it incrementally.
type ChangePublisher interface {
	PublishChange(ctx context.Context, collection string)
}
