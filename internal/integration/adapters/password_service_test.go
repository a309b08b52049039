package adapters

import "testing"

func TestPasswordService(t *testing.T) {
	service := NewPasswordService()

	t.Run("hashes and verifies a password", func(t *testing.T) {
		hash, err := service.HashPassword("s3cretpass")
		if err != nil {
			t.Fatalf("HashPassword() error = %v", err)
		}
		if hash == "s3cretpass" {
			t.Fatal("hash must differ from the password")
		}

		if err := service.VerifyPassword(hash, "s3cretpass"); err != nil {
			t.Errorf("VerifyPassword() error = %v", err)
		}
		if err := service.VerifyPassword(hash, "wrongpass"); err == nil {
			t.Error("a wrong password must not verify")
		}
	})

	t.Run("enforces the minimum length", func(t *testing.T) {
		if err := service.ValidatePasswordStrength("short"); err == nil {
			t.Error("expected an error for a short password")
		}
		if err := service.ValidatePasswordStrength("longenough"); err != nil {
			t.Errorf("ValidatePasswordStrength() error = %v", err)
		}
	})
}
