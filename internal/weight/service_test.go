package weight

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gymtracker-app/backend/internal/auth"
	"github.com/gymtracker-app/backend/internal/repository"
)

type mockWeightRepository struct {
	entries []repository.WeightEntry
	nextID  int64
}

func (m *mockWeightRepository) Insert(ctx context.Context, entry *repository.WeightEntry) error {
	m.nextID++
	entry.ID = m.nextID
	m.entries = append(m.entries, *entry)
	return nil
}

func (m *mockWeightRepository) ListByUser(ctx context.Context, userID int64) ([]repository.WeightEntry, error) {
	var out []repository.WeightEntry
	for _, e := range m.entries {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

type stubResolver struct {
	keys map[string]int64
}

func (s *stubResolver) ResolveKey(ctx context.Context, authKey string) (int64, error) {
	if id, ok := s.keys[authKey]; ok {
		return id, nil
	}
	return 0, auth.ErrInvalidAuthKey
}

func TestAddAndList(t *testing.T) {
	repo := &mockWeightRepository{}
	svc := NewService(repo, &stubResolver{keys: map[string]int64{"alice-key": 1, "bob-key": 2}})
	ctx := context.Background()

	date := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	id, err := svc.Add(ctx, AddRequest{AuthKey: "alice-key", Date: date, Weight: 82.5})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if id == 0 {
		t.Fatal("expected an entry id")
	}

	if _, err := svc.Add(ctx, AddRequest{AuthKey: "nope", Date: date, Weight: 82.5}); !errors.Is(err, auth.ErrInvalidAuthKey) {
		t.Fatalf("expected ErrInvalidAuthKey, got %v", err)
	}

	// The entry is keyed to the key's holder, not to any client-supplied id
	entries, err := svc.List(ctx, "alice-key")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(entries) != 1 || entries[0].UserID != 1 || entries[0].Weight != 82.5 {
		t.Fatalf("unexpected entries: %+v", entries)
	}

	others, err := svc.List(ctx, "bob-key")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(others) != 0 {
		t.Fatalf("bob should see no entries, got %+v", others)
	}

	if _, err := svc.List(ctx, "nope"); !errors.Is(err, auth.ErrInvalidAuthKey) {
		t.Fatalf("expected ErrInvalidAuthKey, got %v", err)
	}
}
