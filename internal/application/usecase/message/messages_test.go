package message

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/fleet-manager/backend/internal/domain/entity"
)

type memMessageRepo struct {
	messages []*entity.Message
}

func (m *memMessageRepo) Create(_ context.Context, msg *entity.Message) error {
	m.messages = append(m.messages, msg)
	return nil
}

func (m *memMessageRepo) FindAll(_ context.Context) ([]*entity.Message, error) {
	return m.messages, nil
}

func (m *memMessageRepo) DeleteAll(_ context.Context) error {
	m.messages = nil
	return nil
}

func TestSendMessageUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("stores a trimmed message", func(t *testing.T) {
		repo := &memMessageRepo{}
		uc := NewSendMessageUseCase(repo)

		out, err := uc.Execute(ctx, SendMessageInput{
			AuthorID:   uuid.New(),
			AuthorName: "Karim",
			Body:       "  la Clio est au garage  ",
		})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}

		if out.Message.Body != "la Clio est au garage" {
			t.Errorf("Body = %q", out.Message.Body)
		}
		if out.Message.AuthorName != "Karim" {
			t.Errorf("AuthorName = %q", out.Message.AuthorName)
		}
		if len(repo.messages) != 1 {
			t.Errorf("stored %d messages, want 1", len(repo.messages))
		}
	})

	t.Run("rejects a blank body", func(t *testing.T) {
		uc := NewSendMessageUseCase(&memMessageRepo{})

		if _, err := uc.Execute(ctx, SendMessageInput{AuthorID: uuid.New(), AuthorName: "Karim", Body: "   "}); err == nil {
			t.Fatal("expected an error for a blank body")
		}
	})
}

func TestListMessagesUseCase(t *testing.T) {
	t.Run("returns messages in stored order", func(t *testing.T) {
		repo := &memMessageRepo{messages: []*entity.Message{
			entity.NewMessage(uuid.New(), "Karim", "premier"),
			entity.NewMessage(uuid.New(), "Nora", "deuxième"),
		}}
		uc := NewListMessagesUseCase(repo)

		out, err := uc.Execute(context.Background())
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if len(out.Messages) != 2 || out.Messages[0].Body != "premier" {
			t.Errorf("unexpected listing: %d messages", len(out.Messages))
		}
	})
}
