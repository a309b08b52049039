package adapters

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fleet-manager/backend/internal/domain/entity"
	domainerror "github.com/fleet-manager/backend/internal/domain/error"
)

func TestTokenService(t *testing.T) {
	ctx := context.Background()
	user := entity.NewUser("nora@fleet.test", "Nora", "hash", entity.UserRoleAdmin)

	t.Run("round-trips the identity claims", func(t *testing.T) {
		service := NewTokenService("test-secret", time.Hour)

		token, err := service.GenerateToken(ctx, user)
		if err != nil {
			t.Fatalf("GenerateToken() error = %v", err)
		}

		claims, err := service.ValidateToken(ctx, token)
		if err != nil {
			t.Fatalf("ValidateToken() error = %v", err)
		}

		if claims.UserID != user.ID {
			t.Errorf("UserID = %s, want %s", claims.UserID, user.ID)
		}
		if claims.Email != "nora@fleet.test" || claims.Name != "Nora" {
			t.Errorf("claims = %s/%s", claims.Email, claims.Name)
		}
		if claims.Role != entity.UserRoleAdmin {
			t.Errorf("Role = %s, want admin", claims.Role)
		}
	})

	t.Run("rejects a token signed with another secret", func(t *testing.T) {
		issuer := NewTokenService("secret-a", time.Hour)
		validator := NewTokenService("secret-b", time.Hour)

		token, err := issuer.GenerateToken(ctx, user)
		if err != nil {
			t.Fatalf("GenerateToken() error = %v", err)
		}

		_, err = validator.ValidateToken(ctx, token)
		var authErr *domainerror.AuthError
		if !errors.As(err, &authErr) || authErr.Code != domainerror.ErrCodeInvalidToken {
			t.Errorf("error = %v, want code %s", err, domainerror.ErrCodeInvalidToken)
		}
	})

	t.Run("rejects an expired token", func(t *testing.T) {
		service := NewTokenService("test-secret", -time.Minute)

		token, err := service.GenerateToken(ctx, user)
		if err != nil {
			t.Fatalf("GenerateToken() error = %v", err)
		}

		_, err = service.ValidateToken(ctx, token)
		var authErr *domainerror.AuthError
		if !errors.As(err, &authErr) || authErr.Code != domainerror.ErrCodeInvalidToken {
			t.Errorf("error = %v, want code %s", err, domainerror.ErrCodeInvalidToken)
		}
	})

	t.Run("rejects garbage", func(t *testing.T) {
		service := NewTokenService("test-secret", time.Hour)

		_, err := service.ValidateToken(ctx, "not.a.token")
		var authErr *domainerror.AuthError
		if !errors.As(err, &authErr) || authErr.Code != domainerror.ErrCodeInvalidToken {
			t.Errorf("error = %v, want code %s", err, domainerror.ErrCodeInvalidToken)
		}
	})
}
