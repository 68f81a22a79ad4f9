package workout

import (
	"context"
	"errors"
	"testing"

	"pgregory.net/rapid"

	"github.com/gymtracker-app/backend/internal/auth"
	"github.com/gymtracker-app/backend/internal/repository"
)

// mockWorkoutRepository implements repository.WorkoutRepository in memory.
// Workouts are keyed by their external id, mirroring the unique constraint.
type mockWorkoutRepository struct {
	workouts  map[int64]*repository.Workout // keyed by external workout id
	sets      map[int64]*repository.WorkoutSet
	nextRowID int64
	nextSetID int64
}

func newMockWorkoutRepository() *mockWorkoutRepository {
	return &mockWorkoutRepository{
		workouts: make(map[int64]*repository.Workout),
		sets:     make(map[int64]*repository.WorkoutSet),
	}
}

func (m *mockWorkoutRepository) Insert(ctx context.Context, workout *repository.Workout) error {
	if _, ok := m.workouts[workout.WorkoutID]; ok {
		return repository.ErrDuplicateWorkoutID
	}
	m.nextRowID++
	workout.ID = m.nextRowID
	clone := *workout
	m.workouts[workout.WorkoutID] = &clone
	return nil
}

func (m *mockWorkoutRepository) GetOwner(ctx context.Context, workoutID int64) (int64, error) {
	if w, ok := m.workouts[workoutID]; ok {
		return w.UserID, nil
	}
	return 0, repository.ErrWorkoutNotFound
}

func (m *mockWorkoutRepository) GetByIDAndOwner(ctx context.Context, workoutID, userID int64) (*repository.Workout, error) {
	if w, ok := m.workouts[workoutID]; ok && w.UserID == userID {
		clone := *w
		return &clone, nil
	}
	return nil, repository.ErrWorkoutNotFound
}

func (m *mockWorkoutRepository) ListByUser(ctx context.Context, userID int64) ([]repository.Workout, error) {
	var out []repository.Workout
	for _, w := range m.workouts {
		if w.UserID == userID {
			out = append(out, *w)
		}
	}
	return out, nil
}

func (m *mockWorkoutRepository) Delete(ctx context.Context, workoutID int64) error {
	if _, ok := m.workouts[workoutID]; !ok {
		return repository.ErrWorkoutNotFound
	}
	for id, s := range m.sets {
		if s.WorkoutID == workoutID {
			delete(m.sets, id)
		}
	}
	delete(m.workouts, workoutID)
	return nil
}

func (m *mockWorkoutRepository) InsertSet(ctx context.Context, set *repository.WorkoutSet) error {
	m.nextSetID++
	set.ID = m.nextSetID
	clone := *set
	m.sets[set.ID] = &clone
	return nil
}

func (m *mockWorkoutRepository) ListSets(ctx context.Context, workoutID int64) ([]repository.WorkoutSet, error) {
	var out []repository.WorkoutSet
	for _, s := range m.sets {
		if s.WorkoutID == workoutID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (m *mockWorkoutRepository) ListUserSets(ctx context.Context, userID int64, exerciseName string) ([]repository.UserSet, error) {
	var out []repository.UserSet
	for _, s := range m.sets {
		w, ok := m.workouts[s.WorkoutID]
		if !ok || w.UserID != userID {
			continue
		}
		if exerciseName != "" && s.ExerciseName != exerciseName {
			continue
		}
		out = append(out, repository.UserSet{WorkoutSet: *s, WorkoutDate: w.Date})
	}
	return out, nil
}

func (m *mockWorkoutRepository) GetSetOwner(ctx context.Context, setID int64) (int64, error) {
	s, ok := m.sets[setID]
	if !ok {
		return 0, repository.ErrWorkoutSetNotFound
	}
	w, ok := m.workouts[s.WorkoutID]
	if !ok {
		return 0, repository.ErrWorkoutSetNotFound
	}
	return w.UserID, nil
}

func (m *mockWorkoutRepository) UpdateSet(ctx context.Context, setID int64, weight float64, reps int) error {
	s, ok := m.sets[setID]
	if !ok {
		return repository.ErrWorkoutSetNotFound
	}
	s.Weight = weight
	s.Reps = reps
	return nil
}

// stubAuthorizer maps auth keys to user ids without a real auth stack
type stubAuthorizer struct {
	keys map[string]int64
}

func (a *stubAuthorizer) ResolveKey(ctx context.Context, authKey string) (int64, error) {
	if id, ok := a.keys[authKey]; ok {
		return id, nil
	}
	return 0, auth.ErrInvalidAuthKey
}

func (a *stubAuthorizer) Authorize(ctx context.Context, authKey string, ownerID int64) (int64, error) {
	id, err := a.ResolveKey(ctx, authKey)
	if err != nil {
		return 0, err
	}
	if id != ownerID {
		return 0, auth.ErrNotOwner
	}
	return id, nil
}

func newTestService() (*Service, *mockWorkoutRepository) {
	repo := newMockWorkoutRepository()
	authz := &stubAuthorizer{keys: map[string]int64{
		"alice-key": 1,
		"bob-key":   2,
	}}
	return NewService(repo, authz, nil), repo
}

func TestInsert(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	t.Run("authorized insert", func(t *testing.T) {
		id, err := svc.Insert(ctx, InsertRequest{
			UserID:    1,
			Date:      "2026-08-01",
			WorkoutID: 100,
			AuthKey:   "alice-key",
			RPE:       7,
		})
		if err != nil {
			t.Fatalf("insert failed: %v", err)
		}
		if id == 0 {
			t.Fatal("expected a row id")
		}
	})

	t.Run("duplicate external id", func(t *testing.T) {
		_, err := svc.Insert(ctx, InsertRequest{
			UserID:    1,
			Date:      "2026-08-02",
			WorkoutID: 100,
			AuthKey:   "alice-key",
		})
		if !errors.Is(err, repository.ErrDuplicateWorkoutID) {
			t.Fatalf("expected ErrDuplicateWorkoutID, got %v", err)
		}
	})

	t.Run("key of another user", func(t *testing.T) {
		_, err := svc.Insert(ctx, InsertRequest{
			UserID:    1,
			Date:      "2026-08-02",
			WorkoutID: 101,
			AuthKey:   "bob-key",
		})
		if !errors.Is(err, auth.ErrNotOwner) {
			t.Fatalf("expected ErrNotOwner, got %v", err)
		}
		if _, ok := repo.workouts[101]; ok {
			t.Fatal("rejected insert must not create a workout")
		}
	})

	t.Run("unknown key", func(t *testing.T) {
		_, err := svc.Insert(ctx, InsertRequest{
			UserID:    1,
			Date:      "2026-08-02",
			WorkoutID: 102,
			AuthKey:   "nope",
		})
		if !errors.Is(err, auth.ErrInvalidAuthKey) {
			t.Fatalf("expected ErrInvalidAuthKey, got %v", err)
		}
	})
}

// A set can only be attached to a workout the caller owns; the parent is
// resolved by its external id before the insert happens.
func TestInsertSet_RequiresParentOwnership(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	if _, err := svc.Insert(ctx, InsertRequest{UserID: 1, Date: "2026-08-01", WorkoutID: 100, AuthKey: "alice-key"}); err != nil {
		t.Fatalf("setup insert failed: %v", err)
	}

	t.Run("owner can add sets", func(t *testing.T) {
		id, err := svc.InsertSet(ctx, InsertSetRequest{
			WorkoutID:    100,
			ExerciseName: "Barbell Squats",
			Reps:         5,
			Weight:       120,
			AuthKey:      "alice-key",
		})
		if err != nil {
			t.Fatalf("insert set failed: %v", err)
		}
		if id == 0 {
			t.Fatal("expected a set id")
		}
	})

	t.Run("missing parent workout", func(t *testing.T) {
		_, err := svc.InsertSet(ctx, InsertSetRequest{
			WorkoutID:    999,
			ExerciseName: "Barbell Squats",
			AuthKey:      "alice-key",
		})
		if !errors.Is(err, repository.ErrWorkoutNotFound) {
			t.Fatalf("expected ErrWorkoutNotFound, got %v", err)
		}
	})

	t.Run("other user's workout", func(t *testing.T) {
		before := len(repo.sets)
		_, err := svc.InsertSet(ctx, InsertSetRequest{
			WorkoutID:    100,
			ExerciseName: "Barbell Squats",
			AuthKey:      "bob-key",
		})
		if !errors.Is(err, auth.ErrNotOwner) {
			t.Fatalf("expected ErrNotOwner, got %v", err)
		}
		if len(repo.sets) != before {
			t.Fatal("rejected insert must not create a set")
		}
	})
}

func TestListSets_NotFoundBeforeAuthorization(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	if _, err := svc.Insert(ctx, InsertRequest{UserID: 1, Date: "2026-08-01", WorkoutID: 100, AuthKey: "alice-key"}); err != nil {
		t.Fatalf("setup insert failed: %v", err)
	}

	// A missing workout reports not-found even with a bad key
	if _, err := svc.ListSets(ctx, 999, "nope"); !errors.Is(err, repository.ErrWorkoutNotFound) {
		t.Fatalf("expected ErrWorkoutNotFound, got %v", err)
	}

	if _, err := svc.ListSets(ctx, 100, "bob-key"); !errors.Is(err, auth.ErrNotOwner) {
		t.Fatalf("expected ErrNotOwner, got %v", err)
	}
	if _, err := svc.ListSets(ctx, 100, "nope"); !errors.Is(err, auth.ErrInvalidAuthKey) {
		t.Fatalf("expected ErrInvalidAuthKey, got %v", err)
	}

	sets, err := svc.ListSets(ctx, 100, "alice-key")
	if err != nil {
		t.Fatalf("owner list failed: %v", err)
	}
	if len(sets) != 0 {
		t.Fatalf("expected empty set list, got %d", len(sets))
	}
}

func TestUpdateSet(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	if _, err := svc.Insert(ctx, InsertRequest{UserID: 1, Date: "2026-08-01", WorkoutID: 100, AuthKey: "alice-key"}); err != nil {
		t.Fatalf("setup insert failed: %v", err)
	}
	setID, err := svc.InsertSet(ctx, InsertSetRequest{WorkoutID: 100, ExerciseName: "Barbell Squats", Reps: 5, Weight: 100, AuthKey: "alice-key"})
	if err != nil {
		t.Fatalf("setup set insert failed: %v", err)
	}

	weight, reps := 110.0, 3

	if err := svc.UpdateSet(ctx, UpdateSetRequest{AuthKey: "alice-key", SetID: 999, Weight: &weight, Reps: &reps}); !errors.Is(err, repository.ErrWorkoutSetNotFound) {
		t.Fatalf("expected ErrWorkoutSetNotFound, got %v", err)
	}

	if err := svc.UpdateSet(ctx, UpdateSetRequest{AuthKey: "bob-key", SetID: setID, Weight: &weight, Reps: &reps}); !errors.Is(err, auth.ErrNotOwner) {
		t.Fatalf("expected ErrNotOwner, got %v", err)
	}
	if repo.sets[setID].Weight != 100 || repo.sets[setID].Reps != 5 {
		t.Fatal("rejected update must not change the set")
	}

	if err := svc.UpdateSet(ctx, UpdateSetRequest{AuthKey: "alice-key", SetID: setID, Weight: &weight, Reps: &reps}); err != nil {
		t.Fatalf("owner update failed: %v", err)
	}
	if repo.sets[setID].Weight != 110 || repo.sets[setID].Reps != 3 {
		t.Fatal("update did not apply")
	}
}

// Property: deleting with a key that does not own the workout reports
// not-found and never removes anything; the owner's delete removes the
// workout and all of its sets.
func TestDelete_OwnershipScoped(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		svc, repo := newTestService()
		ctx := context.Background()

		workoutID := rapid.Int64Range(1, 1e9).Draw(t, "workoutID")
		setCount := rapid.IntRange(0, 5).Draw(t, "setCount")

		if _, err := svc.Insert(ctx, InsertRequest{UserID: 1, Date: "2026-08-01", WorkoutID: workoutID, AuthKey: "alice-key"}); err != nil {
			t.Fatalf("setup insert failed: %v", err)
		}
		for i := 0; i < setCount; i++ {
			if _, err := svc.InsertSet(ctx, InsertSetRequest{WorkoutID: workoutID, ExerciseName: "Deadlift", Reps: 5, Weight: 140, AuthKey: "alice-key"}); err != nil {
				t.Fatalf("setup set insert failed: %v", err)
			}
		}

		// Another user's key: the workout is invisible, nothing is deleted
		err := svc.Delete(ctx, DeleteRequest{AuthKey: "bob-key", WorkoutID: workoutID})
		if !errors.Is(err, repository.ErrWorkoutNotFound) {
			t.Fatalf("expected ErrWorkoutNotFound for foreign key, got %v", err)
		}
		if _, ok := repo.workouts[workoutID]; !ok {
			t.Fatal("foreign delete must not remove the workout")
		}
		if len(repo.sets) != setCount {
			t.Fatal("foreign delete must not remove sets")
		}

		// Unknown key fails before any lookup
		if err := svc.Delete(ctx, DeleteRequest{AuthKey: "nope", WorkoutID: workoutID}); !errors.Is(err, auth.ErrInvalidAuthKey) {
			t.Fatalf("expected ErrInvalidAuthKey, got %v", err)
		}

		// The owner's delete removes the workout and its sets
		if err := svc.Delete(ctx, DeleteRequest{AuthKey: "alice-key", WorkoutID: workoutID}); err != nil {
			t.Fatalf("owner delete failed: %v", err)
		}
		if _, ok := repo.workouts[workoutID]; ok {
			t.Fatal("workout should be gone")
		}
		if len(repo.sets) != 0 {
			t.Fatal("sets should be gone with their workout")
		}
	})
}

func TestListUserSets_FiltersByExercise(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	if _, err := svc.Insert(ctx, InsertRequest{UserID: 1, Date: "2026-08-01", WorkoutID: 100, AuthKey: "alice-key"}); err != nil {
		t.Fatalf("setup insert failed: %v", err)
	}
	for _, name := range []string{"Barbell Squats", "Deadlift", "Barbell Squats"} {
		if _, err := svc.InsertSet(ctx, InsertSetRequest{WorkoutID: 100, ExerciseName: name, Reps: 5, Weight: 100, AuthKey: "alice-key"}); err != nil {
			t.Fatalf("setup set insert failed: %v", err)
		}
	}

	all, err := svc.ListUserSets(ctx, "alice-key", "")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 sets, got %d", len(all))
	}
	for _, s := range all {
		if s.WorkoutDate != "2026-08-01" {
			t.Fatalf("set should carry the parent workout date, got %q", s.WorkoutDate)
		}
	}

	squats, err := svc.ListUserSets(ctx, "alice-key", "Barbell Squats")
	if err != nil {
		t.Fatalf("filtered list failed: %v", err)
	}
	if len(squats) != 2 {
		t.Fatalf("expected 2 squat sets, got %d", len(squats))
	}

	if _, err := svc.ListUserSets(ctx, "nope", ""); !errors.Is(err, auth.ErrInvalidAuthKey) {
		t.Fatalf("expected ErrInvalidAuthKey, got %v", err)
	}
}
