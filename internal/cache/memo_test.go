package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

var start = time.Date(2024, 7, 15, 12, 0, 0, 0, time.UTC)

type countingLoader struct {
	calls atomic.Int32
	value atomic.Int32
	err   error
}

func (l *countingLoader) load(ctx context.Context, _ struct{}) (int, error) {
	l.calls.Add(1)
	if l.err != nil {
		return 0, l.err
	}
	return int(l.value.Load()), nil
}

func TestMemoServesWithinWindow(t *testing.T) {
	clock := NewFakeClock(start)
	loader := &countingLoader{}
	loader.value.Store(7)
	memo := NewMemo("products", 300*time.Second, clock, loader.load)

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		v, err := memo.Get(ctx, struct{}{})
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if v != 7 {
			t.Errorf("Expected 7, got %d", v)
		}
		clock.Advance(60 * time.Second)
	}

	if got := loader.calls.Load(); got != 1 {
		t.Errorf("Expected 1 underlying read within the window, got %d", got)
	}
}

func TestMemoReloadsAfterWindow(t *testing.T) {
	clock := NewFakeClock(start)
	loader := &countingLoader{}
	loader.value.Store(1)
	memo := NewMemo("products", 300*time.Second, clock, loader.load)

	ctx := context.Background()
	if _, err := memo.Get(ctx, struct{}{}); err != nil {
		t.Fatalf("Get: %v", err)
	}

	loader.value.Store(2)
	clock.Advance(299 * time.Second)
	v, _ := memo.Get(ctx, struct{}{})
	if v != 1 {
		t.Errorf("Expected cached value 1 just inside the window, got %d", v)
	}

	clock.Advance(1 * time.Second)
	v, _ = memo.Get(ctx, struct{}{})
	if v != 2 {
		t.Errorf("Expected fresh value 2 once the window elapsed, got %d", v)
	}

	if got := loader.calls.Load(); got != 2 {
		t.Errorf("Expected 2 underlying reads, got %d", got)
	}
}

func TestMemoDoesNotCacheFailures(t *testing.T) {
	clock := NewFakeClock(start)
	loader := &countingLoader{err: errors.New("connection refused")}
	memo := NewMemo("goals", time.Minute, clock, loader.load)

	ctx := context.Background()
	if _, err := memo.Get(ctx, struct{}{}); err == nil {
		t.Fatal("Expected error from failing loader")
	}

	loader.err = nil
	loader.value.Store(5)
	v, err := memo.Get(ctx, struct{}{})
	if err != nil {
		t.Fatalf("Expected retry to succeed, got %v", err)
	}
	if v != 5 {
		t.Errorf("Expected 5, got %d", v)
	}
	if got := loader.calls.Load(); got != 2 {
		t.Errorf("Expected the failure to be retried against the loader, got %d calls", got)
	}
}

func TestMemoInvalidate(t *testing.T) {
	clock := NewFakeClock(start)
	loader := &countingLoader{}
	loader.value.Store(1)
	memo := NewMemo("goals", time.Minute, clock, loader.load)

	ctx := context.Background()
	_, _ = memo.Get(ctx, struct{}{})

	loader.value.Store(2)
	memo.Invalidate(struct{}{})

	v, _ := memo.Get(ctx, struct{}{})
	if v != 2 {
		t.Errorf("Expected value written before invalidation, got %d", v)
	}
}

func TestMemoKeysAreIndependent(t *testing.T) {
	clock := NewFakeClock(start)
	var calls atomic.Int32
	memo := NewMemo("by-date", time.Minute, clock, func(ctx context.Context, date string) (string, error) {
		calls.Add(1)
		return "logs for " + date, nil
	})

	ctx := context.Background()
	a, _ := memo.Get(ctx, "2024-07-14")
	b, _ := memo.Get(ctx, "2024-07-15")
	a2, _ := memo.Get(ctx, "2024-07-14")

	if a != "logs for 2024-07-14" || b != "logs for 2024-07-15" || a2 != a {
		t.Errorf("Unexpected values %q %q %q", a, b, a2)
	}
	if got := calls.Load(); got != 2 {
		t.Errorf("Expected one load per key, got %d", got)
	}

	memo.Purge()
	_, _ = memo.Get(ctx, "2024-07-15")
	if got := calls.Load(); got != 3 {
		t.Errorf("Expected purge to force a reload, got %d loads", got)
	}
}

func TestMemoZeroTTLDisablesCaching(t *testing.T) {
	loader := &countingLoader{}
	memo := NewMemo("disabled", 0, NewFakeClock(start), loader.load)

	ctx := context.Background()
	_, _ = memo.Get(ctx, struct{}{})
	_, _ = memo.Get(ctx, struct{}{})

	if got := loader.calls.Load(); got != 2 {
		t.Errorf("Expected every call to load, got %d", got)
	}
}

func TestMemoInvalidateDuringLoadIsNotStored(t *testing.T) {
	clock := NewFakeClock(start)
	release := make(chan struct{})
	entered := make(chan struct{})
	var calls atomic.Int32

	memo := NewMemo("goals", time.Minute, clock, func(ctx context.Context, _ struct{}) (int, error) {
		n := calls.Add(1)
		if n == 1 {
			close(entered)
			<-release
			return 1, nil
		}
		return 2, nil
	})

	ctx := context.Background()
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, _ = memo.Get(ctx, struct{}{})
	}()

	<-entered
	memo.Invalidate(struct{}{})
	close(release)
	wg.Wait()

	v, _ := memo.Get(ctx, struct{}{})
	if v != 2 {
		t.Errorf("Expected a load started before invalidation not to be served, got %d", v)
	}
}

func TestMemoStats(t *testing.T) {
	clock := NewFakeClock(start)
	loader := &countingLoader{}
	memo := NewMemo("products", 5*time.Minute, clock, loader.load)

	ctx := context.Background()
	_, _ = memo.Get(ctx, struct{}{})
	_, _ = memo.Get(ctx, struct{}{})

	stats := memo.Stats()
	if stats.Name != "products" || stats.TTL != 5*time.Minute {
		t.Errorf("Unexpected stats identity %+v", stats)
	}
	if stats.Hits != 1 || stats.Misses != 1 || stats.Entries != 1 {
		t.Errorf("Expected 1 hit, 1 miss, 1 entry, got %+v", stats)
	}

	clock.Advance(5 * time.Minute)
	if got := memo.Stats().Entries; got != 0 {
		t.Errorf("Expected expired entry not to count as live, got %d", got)
	}
}
