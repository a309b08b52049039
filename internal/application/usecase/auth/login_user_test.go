package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fleet-manager/backend/internal/application/adapter"
	"github.com/fleet-manager/backend/internal/domain/entity"
	domainerror "github.com/fleet-manager/backend/internal/domain/error"
)

type memUserRepo struct {
	users []*entity.User
}

func (m *memUserRepo) Create(_ context.Context, u *entity.User) error {
	m.users = append(m.users, u)
	return nil
}

func (m *memUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, domainerror.ErrUserNotFound
}

func (m *memUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domainerror.ErrUserNotFound
}

func (m *memUserRepo) FindAll(_ context.Context) ([]*entity.User, error) {
	return m.users, nil
}

func (m *memUserRepo) Update(_ context.Context, _ *entity.User) error { return nil }

func (m *memUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, u := range m.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

type memCashDeskRepo struct {
	desks []*entity.CashDesk
}

func (m *memCashDeskRepo) Create(_ context.Context, d *entity.CashDesk) error {
	m.desks = append(m.desks, d)
	return nil
}

func (m *memCashDeskRepo) FindByID(_ context.Context, _ uuid.UUID) (*entity.CashDesk, error) {
	return nil, domainerror.ErrCashDeskNotFound
}

func (m *memCashDeskRepo) FindByUser(_ context.Context, userID uuid.UUID) (*entity.CashDesk, error) {
	for _, d := range m.desks {
		if d.UserID == userID {
			return d, nil
		}
	}
	return nil, domainerror.ErrCashDeskNotFound
}

func (m *memCashDeskRepo) FindAll(_ context.Context) ([]*entity.CashDesk, error) {
	return m.desks, nil
}

func (m *memCashDeskRepo) AdjustBalance(_ context.Context, _ uuid.UUID, _ decimal.Decimal) error {
	return nil
}

// plainPasswordService treats the stored hash as the plain password so
// tests do not pay the bcrypt cost.
type plainPasswordService struct{}

func (plainPasswordService) HashPassword(password string) (string, error) {
	return "hashed:" + password, nil
}

func (plainPasswordService) VerifyPassword(hashedPassword, password string) error {
	if hashedPassword != "hashed:"+password {
		return errors.New("password mismatch")
	}
	return nil
}

func (plainPasswordService) ValidatePasswordStrength(password string) error {
	if len(password) < 8 {
		return errors.New("password must be at least 8 characters long")
	}
	return nil
}

type tokenStub struct{}

func (tokenStub) GenerateToken(_ context.Context, user *entity.User) (string, error) {
	return "token-for-" + user.Email, nil
}

func (tokenStub) ValidateToken(_ context.Context, _ string) (*adapter.TokenClaims, error) {
	return nil, errors.New("not implemented")
}

func TestLoginUserUseCase(t *testing.T) {
	ctx := context.Background()

	newUseCase := func(users ...*entity.User) *LoginUserUseCase {
		return NewLoginUserUseCase(&memUserRepo{users: users}, plainPasswordService{}, tokenStub{})
	}

	t.Run("issues a token and records the login time", func(t *testing.T) {
		u := entity.NewUser("karim@fleet.test", "Karim", "hashed:s3cretpass", entity.UserRoleAgent)
		uc := newUseCase(u)

		out, err := uc.Execute(ctx, LoginUserInput{Email: "karim@fleet.test", Password: "s3cretpass"})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}

		if out.Token != "token-for-karim@fleet.test" {
			t.Errorf("Token = %q", out.Token)
		}
		if out.User.LastLogin == nil {
			t.Error("LastLogin must be recorded")
		}
	})

	t.Run("unknown email and wrong password are indistinguishable", func(t *testing.T) {
		u := entity.NewUser("karim@fleet.test", "Karim", "hashed:s3cretpass", entity.UserRoleAgent)
		uc := newUseCase(u)

		_, errUnknown := uc.Execute(ctx, LoginUserInput{Email: "nobody@fleet.test", Password: "s3cretpass"})
		_, errWrong := uc.Execute(ctx, LoginUserInput{Email: "karim@fleet.test", Password: "wrong"})

		if !errors.Is(errUnknown, domainerror.ErrInvalidCredentials) {
			t.Errorf("unknown email error = %v", errUnknown)
		}
		if !errors.Is(errWrong, domainerror.ErrInvalidCredentials) {
			t.Errorf("wrong password error = %v", errWrong)
		}
		if errUnknown.Error() != errWrong.Error() {
			t.Error("both failures must read identically")
		}
	})

	t.Run("deactivated accounts cannot log in", func(t *testing.T) {
		u := entity.NewUser("idle@fleet.test", "Sami", "hashed:s3cretpass", entity.UserRoleAgent)
		u.Active = false
		uc := newUseCase(u)

		_, err := uc.Execute(ctx, LoginUserInput{Email: "idle@fleet.test", Password: "s3cretpass"})
		if !errors.Is(err, domainerror.ErrUserInactive) {
			t.Errorf("error = %v, want ErrUserInactive", err)
		}
	})
}

func TestRegisterUserUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("creates the user with their own cash desk", func(t *testing.T) {
		userRepo := &memUserRepo{}
		deskRepo := &memCashDeskRepo{}
		uc := NewRegisterUserUseCase(userRepo, deskRepo, plainPasswordService{})

		out, err := uc.Execute(ctx, RegisterUserInput{
			Email:    "lea@fleet.test",
			Name:     "Lea",
			Password: "longenough",
			Role:     entity.UserRoleAgent,
		})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}

		if out.Desk.UserID != out.User.ID {
			t.Error("desk must belong to the new user")
		}
		if !out.Desk.Balance.IsZero() {
			t.Errorf("new desk balance = %s, want 0", out.Desk.Balance)
		}
		if out.User.PasswordHash == "longenough" {
			t.Error("password must not be stored in the clear")
		}
		if !out.User.Active {
			t.Error("new accounts start active")
		}
	})

	t.Run("rejects a duplicate email", func(t *testing.T) {
		existing := entity.NewUser("lea@fleet.test", "Lea", "hashed:x", entity.UserRoleAgent)
		uc := NewRegisterUserUseCase(&memUserRepo{users: []*entity.User{existing}}, &memCashDeskRepo{}, plainPasswordService{})

		_, err := uc.Execute(ctx, RegisterUserInput{
			Email:    "lea@fleet.test",
			Name:     "Lea",
			Password: "longenough",
			Role:     entity.UserRoleAgent,
		})
		if !errors.Is(err, domainerror.ErrEmailAlreadyExists) {
			t.Errorf("error = %v, want ErrEmailAlreadyExists", err)
		}
	})

	t.Run("rejects a weak password", func(t *testing.T) {
		uc := NewRegisterUserUseCase(&memUserRepo{}, &memCashDeskRepo{}, plainPasswordService{})

		_, err := uc.Execute(ctx, RegisterUserInput{
			Email:    "lea@fleet.test",
			Name:     "Lea",
			Password: "short",
			Role:     entity.UserRoleAgent,
		})
		if err == nil {
			t.Fatal("expected an error for a weak password")
		}
	})

	t.Run("rejects an unknown role", func(t *testing.T) {
		uc := NewRegisterUserUseCase(&memUserRepo{}, &memCashDeskRepo{}, plainPasswordService{})

		_, err := uc.Execute(ctx, RegisterUserInput{
			Email:    "lea@fleet.test",
			Name:     "Lea",
			Password: "longenough",
			Role:     entity.UserRole("owner"),
		})
		if err == nil {
			t.Fatal("expected an error for an unknown role")
		}
	})
}
