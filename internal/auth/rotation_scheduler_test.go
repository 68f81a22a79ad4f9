package auth

import (
	"context"
	"testing"
	"time"
)

func TestRotationScheduler_RunOnce(t *testing.T) {
	svc, repo := newTestAuthService()
	ctx := context.Background()
	now := time.Now()

	expired := register(t, svc, "expired@example.com", "Password1")
	fresh := register(t, svc, "fresh@example.com", "Password1")
	if err := repo.UpdateAuthKey(ctx, expired.ID, expired.AuthKey, now.Add(-time.Hour)); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	scheduler := NewRotationScheduler(svc, RotationSchedulerConfig{}, nil)

	if rotated := scheduler.RunOnce(ctx, now); rotated != 1 {
		t.Fatalf("expected 1 rotation, got %d", rotated)
	}

	rotatedUser, _ := repo.GetByID(ctx, expired.ID)
	if rotatedUser.AuthKey == expired.AuthKey {
		t.Fatal("expired key should have been replaced")
	}
	freshUser, _ := repo.GetByID(ctx, fresh.ID)
	if freshUser.AuthKey != fresh.AuthKey {
		t.Fatal("valid key should be untouched")
	}

	if scheduler.LastRun().IsZero() {
		t.Fatal("LastRun should be recorded after a sweep")
	}

	// A second sweep at the same instant finds nothing left to rotate
	if rotated := scheduler.RunOnce(ctx, now); rotated != 0 {
		t.Fatalf("second sweep should rotate nothing, got %d", rotated)
	}
}

func TestRotationScheduler_StartStop(t *testing.T) {
	svc, _ := newTestAuthService()

	scheduler := NewRotationScheduler(svc, RotationSchedulerConfig{Interval: time.Hour}, nil)
	scheduler.Start()
	scheduler.Start() // second Start is a no-op

	done := make(chan struct{})
	go func() {
		scheduler.Stop()
		scheduler.Stop() // second Stop is a no-op
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Stop did not return")
	}
}
