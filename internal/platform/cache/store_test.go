package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestLoad_SharesOneFetchAcrossCallers(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32
	release := make(chan struct{})

	loader := func(context.Context) ([]string, error) {
		calls.Add(1)
		<-release
		return []string{"MAD", "PAN"}, nil
	}

	const callers = 16
	var wg sync.WaitGroup
	errCh := make(chan error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			teams, err := Load(context.Background(), store, "roster:euroleague:2025", loader)
			if err == nil && len(teams) != 2 {
				err = errUnexpectedValue
			}
			errCh <- err
		}()
	}

	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()
	close(errCh)
	for err := range errCh {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
}

func TestLoad_RejectsMismatchedType(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	store.Set(context.Background(), "standings:euroleague:2025:RS", "not a slice")

	_, err := Load(context.Background(), store, "standings:euroleague:2025:RS", func(context.Context) ([]int, error) {
		return []int{1}, nil
	})
	if err == nil {
		t.Fatalf("expected type mismatch error")
	}
}

func TestGetOrLoad_CanceledCallerStopsWaiting(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	release := make(chan struct{})
	loaded := make(chan struct{})
	loader := func(ctx context.Context) (any, error) {
		<-release
		defer close(loaded)
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return "boxscore", nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := store.GetOrLoad(ctx, "boxscore:euroleague:2025:7", loader); !errors.Is(err, context.Canceled) {
		t.Fatalf("unexpected error: got=%v want=%v", err, context.Canceled)
	}

	close(release)
	<-loaded
	v, err := store.GetOrLoad(context.Background(), "boxscore:euroleague:2025:7", loader)
	if err != nil || v != "boxscore" {
		t.Fatalf("expected detached load to be cached: v=%v err=%v", v, err)
	}
}

func TestStore_GetOrLoad_UsesCachedValueAfterFirstLoad(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32

	loader := func(context.Context) (any, error) {
		calls.Add(1)
		return "cached", nil
	}

	if _, err := store.GetOrLoad(context.Background(), "k", loader); err != nil {
		t.Fatalf("first GetOrLoad error: %v", err)
	}
	if _, err := store.GetOrLoad(context.Background(), "k", loader); err != nil {
		t.Fatalf("second GetOrLoad error: %v", err)
	}

	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
}

func TestStore_SweepRemovesExpiredEntries(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	now := time.Date(2025, 10, 1, 18, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	ctx := context.Background()
	store.Set(ctx, "browser:session:old", "old")
	now = now.Add(45 * time.Second)
	store.Set(ctx, "browser:session:fresh", "fresh")
	now = now.Add(30 * time.Second)

	if removed := store.Sweep(); removed != 1 {
		t.Fatalf("unexpected removed count: got=%d want=1", removed)
	}
	if store.Len() != 1 {
		t.Fatalf("unexpected remaining entries: got=%d want=1", store.Len())
	}
	if _, ok := store.Get(ctx, "browser:session:fresh"); !ok {
		t.Fatalf("fresh entry must survive the sweep")
	}
}

func TestStore_SetRefreshesExpiry(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	now := time.Date(2025, 10, 1, 18, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	ctx := context.Background()
	store.Set(ctx, "k", "v")
	now = now.Add(50 * time.Second)
	store.Set(ctx, "k", "v")
	now = now.Add(50 * time.Second)

	if _, ok := store.Get(ctx, "k"); !ok {
		t.Fatalf("entry set again must not expire")
	}
	now = now.Add(time.Minute)
	if _, ok := store.Get(ctx, "k"); ok {
		t.Fatalf("entry must expire after ttl")
	}
}

var errUnexpectedValue = errors.New("unexpected loaded value")
