package snowflake

import (
	"sync"
	"testing"
)

func TestGenID(t *testing.T) {
	if id := GenID(); id <= 0 {
		t.Fatalf("expected positive id, got %d", id)
	}
}

func TestGenID_Unique(t *testing.T) {
	const n = 10000
	ids := make(map[int64]struct{}, n)
	for i := 0; i < n; i++ {
		id := GenID()
		if _, ok := ids[id]; ok {
			t.Fatalf("duplicate id: %d", id)
		}
		ids[id] = struct{}{}
	}
}

func TestGenID_Concurrent(t *testing.T) {
	const (
		goroutines = 16
		perRoutine = 2000
	)

	var wg sync.WaitGroup
	results := make([][]int64, goroutines)

	wg.Add(goroutines)
	for g := 0; g < goroutines; g++ {
		go func(g int) {
			defer wg.Done()
			ids := make([]int64, 0, perRoutine)
			for i := 0; i < perRoutine; i++ {
				ids = append(ids, GenID())
			}
			results[g] = ids
		}(g)
	}
	wg.Wait()

	seen := make(map[int64]struct{}, goroutines*perRoutine)
	for _, ids := range results {
		for _, id := range ids {
			if _, ok := seen[id]; ok {
				t.Fatalf("duplicate id across goroutines: %d", id)
			}
			seen[id] = struct{}{}
		}
	}
}

func TestGenID_Increasing(t *testing.T) {
	prev := GenID()
	for i := 0; i < 1000; i++ {
		curr := GenID()
		if curr <= prev {
			t.Fatalf("ids not increasing: prev=%d curr=%d", prev, curr)
		}
		prev = curr
	}
}
