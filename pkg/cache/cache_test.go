package cache

import (
	"errors"
	"sync"
	"testing"
	"time"
)

func TestGetOrRefreshCachesWithinTTL(t *testing.T) {
	c := New()

	calls := 0
	refresh := func() (any, error) {
		calls++
		return "value", nil
	}

	for i := 0; i < 3; i++ {
		got, err := c.GetOrRefresh("key", time.Hour, refresh)
		if err != nil {
			t.Fatalf("GetOrRefresh: %v", err)
		}
		if got != "value" {
			t.Fatalf("GetOrRefresh = %v, want %q", got, "value")
		}
	}

	if calls != 1 {
		t.Errorf("refresh called %d times, want 1", calls)
	}
}

func TestGetOrRefreshExpires(t *testing.T) {
	c := New()
	now := time.Now()
	c.now = func() time.Time { return now }

	calls := 0
	refresh := func() (any, error) {
		calls++
		return calls, nil
	}

	if got, _ := c.GetOrRefresh("key", time.Hour, refresh); got != 1 {
		t.Fatalf("first read = %v, want 1", got)
	}

	now = now.Add(2 * time.Hour)
	if got, _ := c.GetOrRefresh("key", time.Hour, refresh); got != 2 {
		t.Errorf("stale read = %v, want refreshed value 2", got)
	}
}

func TestGetOrRefreshServesStaleOnError(t *testing.T) {
	c := New()
	now := time.Now()
	c.now = func() time.Time { return now }

	if _, err := c.GetOrRefresh("key", time.Hour, func() (any, error) { return "old", nil }); err != nil {
		t.Fatalf("seed: %v", err)
	}

	now = now.Add(2 * time.Hour)
	got, err := c.GetOrRefresh("key", time.Hour, func() (any, error) { return nil, errors.New("upstream down") })
	if err != nil {
		t.Fatalf("expected stale value, got error: %v", err)
	}
	if got != "old" {
		t.Errorf("got %v, want stale %q", got, "old")
	}
}

func TestGetOrRefreshPropagatesErrorWithoutEntry(t *testing.T) {
	c := New()

	_, err := c.GetOrRefresh("key", time.Hour, func() (any, error) { return nil, errors.New("upstream down") })
	if err == nil {
		t.Fatal("expected error when refresh fails with no cached entry")
	}
}

func TestGetOrRefreshDoesNotBlockOtherKeys(t *testing.T) {
	c := New()

	// Park a refresh of one key mid-flight.
	release := make(chan struct{})
	started := make(chan struct{})
	go c.GetOrRefresh("slow", time.Hour, func() (any, error) {
		close(started)
		<-release
		return "slow", nil
	})
	<-started
	defer close(release)

	// A different key must still refresh while "slow" is in flight.
	done := make(chan struct{})
	go func() {
		defer close(done)
		got, err := c.GetOrRefresh("fast", time.Hour, func() (any, error) { return "fast", nil })
		if err != nil || got != "fast" {
			t.Errorf("GetOrRefresh(fast) = %v, %v", got, err)
		}
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("read of an unrelated key blocked behind an in-flight refresh")
	}
}

func TestGetOrRefreshSingleRefreshUnderConcurrency(t *testing.T) {
	c := New()

	var calls int
	refresh := func() (any, error) {
		calls++
		time.Sleep(10 * time.Millisecond)
		return "value", nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := c.GetOrRefresh("key", time.Hour, refresh); err != nil {
				t.Errorf("GetOrRefresh: %v", err)
			}
		}()
	}
	wg.Wait()

	if calls != 1 {
		t.Errorf("refresh called %d times under concurrency, want 1", calls)
	}
}
