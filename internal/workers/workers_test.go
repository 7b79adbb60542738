// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/user-management-api/internal/cache"
	"github.com/MKhiriev/user-management-api/internal/logger"
)

// mockWorker is a test implementation of the Worker interface
// that tracks how many times Run was called.
type mockWorker struct {
	runCount int
}

func (m *mockWorker) Run() {
	m.runCount++
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}
	w3 := &mockWorker{}

	ws := NewWorkers(w1, w2, w3)
	ws.Run()

	for i, w := range []*mockWorker{w1, w2, w3} {
		if w.runCount != 1 {
			t.Errorf("worker[%d]: expected runCount=1, got %d", i, w.runCount)
		}
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := NewWorkers()

	// Should not panic on empty workers list
	ws.Run()
}

func TestWorkers_Run_Order(t *testing.T) {
	order := []int{}

	newOrderWorker := func(id int) Worker {
		return &orderWorker{id: id, order: &order}
	}

	ws := NewWorkers(
		newOrderWorker(1),
		newOrderWorker(2),
		newOrderWorker(3),
	)
	ws.Run()

	expected := []int{1, 2, 3}
	for i, v := range expected {
		if order[i] != v {
			t.Errorf("expected order[%d]=%d, got %d", i, v, order[i])
		}
	}
}

// orderWorker is a helper that appends its ID to a shared slice on Run.
type orderWorker struct {
	id    int
	order *[]int
}

func (o *orderWorker) Run() {
	*o.order = append(*o.order, o.id)
}

func TestCacheJanitor_SweepsExpiredEntries(t *testing.T) {
	usersCache := cache.NewUsers(time.Millisecond, true)
	usersCache.Set("stale", nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	janitor := NewCacheJanitor(ctx, usersCache, 5*time.Millisecond, logger.Nop())
	janitor.Run()

	deadline := time.After(time.Second)
	for usersCache.Len() > 0 {
		select {
		case <-deadline:
			t.Fatal("janitor did not sweep the expired entry in time")
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestCacheJanitor_StopsOnContextCancel(t *testing.T) {
	usersCache := cache.NewUsers(time.Millisecond, true)

	ctx, cancel := context.WithCancel(context.Background())
	janitor := NewCacheJanitor(ctx, usersCache, time.Millisecond, logger.Nop())
	janitor.Run()

	cancel()
	time.Sleep(10 * time.Millisecond)

	// The loop is no longer sweeping: an entry that expires after
	// cancellation stays in the map until someone accesses it.
	usersCache.Set("stale", nil)
	time.Sleep(20 * time.Millisecond)

	if usersCache.Len() != 1 {
		t.Errorf("expected stale entry to survive after janitor stop, cache len = %d", usersCache.Len())
	}
}

func TestNewCacheJanitor_ZeroIntervalFallsBackToDefault(t *testing.T) {
	janitor := NewCacheJanitor(context.Background(), cache.NewUsers(time.Minute, true), 0, logger.Nop())

	if janitor.interval != DefaultSweepInterval {
		t.Errorf("expected default interval %v, got %v", DefaultSweepInterval, janitor.interval)
	}
}
