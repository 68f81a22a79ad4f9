package template

import (
	"context"
	"sort"
	"testing"

	"pgregory.net/rapid"

	"github.com/gymtracker-app/backend/internal/repository"
)

// mockTemplateRepository implements repository.TemplateRepository in memory
type mockTemplateRepository struct {
	templates map[int64]*repository.Template
	sets      map[int64][]repository.TemplateSet
	nextID    int64
}

func newMockTemplateRepository() *mockTemplateRepository {
	return &mockTemplateRepository{
		templates: make(map[int64]*repository.Template),
		sets:      make(map[int64][]repository.TemplateSet),
	}
}

func (m *mockTemplateRepository) InsertWithSets(ctx context.Context, template *repository.Template, sets []repository.TemplateSet) error {
	m.nextID++
	template.ID = m.nextID
	clone := *template
	m.templates[template.ID] = &clone

	stored := make([]repository.TemplateSet, len(sets))
	for i, s := range sets {
		s.TemplateID = template.ID
		s.OrderIndex = i
		stored[i] = s
	}
	m.sets[template.ID] = stored
	return nil
}

func (m *mockTemplateRepository) ListPublic(ctx context.Context) ([]repository.Template, error) {
	var out []repository.Template
	for _, tpl := range m.templates {
		if tpl.Public {
			out = append(out, *tpl)
		}
	}
	return out, nil
}

func (m *mockTemplateRepository) ListPrivateByUser(ctx context.Context, userID int64) ([]repository.Template, error) {
	var out []repository.Template
	for _, tpl := range m.templates {
		if !tpl.Public && tpl.UserID == userID {
			out = append(out, *tpl)
		}
	}
	return out, nil
}

func (m *mockTemplateRepository) ListSets(ctx context.Context, templateID int64) ([]repository.TemplateSet, error) {
	sets := append([]repository.TemplateSet(nil), m.sets[templateID]...)
	sort.Slice(sets, func(i, j int) bool { return sets[i].OrderIndex < sets[j].OrderIndex })
	return sets, nil
}

// Property: a created template returns its sets in exactly the order
// they were submitted, whatever the content.
func TestCreate_PreservesSetOrder(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		svc := NewService(newMockTemplateRepository(), nil)
		ctx := context.Background()

		names := rapid.SliceOfN(rapid.StringMatching(`[A-Z][a-z]{2,10}`), 1, 10).Draw(t, "names")
		sets := make([]SetInput, len(names))
		for i, name := range names {
			sets[i] = SetInput{
				ExerciseName: name,
				Reps:         rapid.IntRange(1, 20).Draw(t, "reps"),
				Weight:       float64(rapid.IntRange(0, 300).Draw(t, "weight")),
			}
		}

		id, err := svc.Create(ctx, CreateRequest{
			Name:   "Leg day",
			Public: rapid.Bool().Draw(t, "public"),
			Sets:   sets,
			UserID: 1,
		})
		if err != nil {
			t.Fatalf("create failed: %v", err)
		}

		stored, err := svc.ListSets(ctx, id)
		if err != nil {
			t.Fatalf("list sets failed: %v", err)
		}
		if len(stored) != len(sets) {
			t.Fatalf("expected %d sets, got %d", len(sets), len(stored))
		}
		for i, s := range stored {
			if s.ExerciseName != sets[i].ExerciseName || s.Reps != sets[i].Reps || s.Weight != sets[i].Weight {
				t.Fatalf("set %d mismatch: got %+v want %+v", i, s, sets[i])
			}
			if s.OrderIndex != i {
				t.Fatalf("set %d has order index %d", i, s.OrderIndex)
			}
		}
	})
}

func TestListings_VisibilityScoped(t *testing.T) {
	svc := NewService(newMockTemplateRepository(), nil)
	ctx := context.Background()

	mk := func(name string, public bool, userID int64) {
		t.Helper()
		_, err := svc.Create(ctx, CreateRequest{
			Name:   name,
			Public: public,
			Sets:   []SetInput{{ExerciseName: "Deadlift", Reps: 5, Weight: 140}},
			UserID: userID,
		})
		if err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}

	mk("alice public", true, 1)
	mk("alice private", false, 1)
	mk("bob private", false, 2)

	public, err := svc.ListPublic(ctx)
	if err != nil {
		t.Fatalf("list public failed: %v", err)
	}
	if len(public) != 1 || public[0].Name != "alice public" {
		t.Fatalf("unexpected public listing: %+v", public)
	}

	private, err := svc.ListPrivate(ctx, 1)
	if err != nil {
		t.Fatalf("list private failed: %v", err)
	}
	if len(private) != 1 || private[0].Name != "alice private" {
		t.Fatalf("unexpected private listing: %+v", private)
	}
}
