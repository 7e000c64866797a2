package engine

import (
	"testing"

	"github.com/lixenwraith/stress-bomb/core"
)

type testComponent struct {
	Value int
}

func TestStoreSetGet(t *testing.T) {
	s := NewStore[testComponent]()
	s.Set(1, testComponent{Value: 10})
	s.Set(2, testComponent{Value: 20})
	s.Set(1, testComponent{Value: 11})

	if s.Len() != 2 {
		t.Fatalf("Len = %d, want 2", s.Len())
	}
	c, ok := s.Get(1)
	if !ok || c.Value != 11 {
		t.Errorf("Get(1) = %+v, %v; want 11", c, ok)
	}

	c.Value = 99
	if got, _ := s.Get(1); got.Value != 99 {
		t.Error("Get should return a pointer into the store")
	}
	if _, ok := s.Get(3); ok {
		t.Error("Get(3) should miss")
	}
}

func TestStoreSwapRemoveKeepsIndex(t *testing.T) {
	s := NewStore[testComponent]()
	for e := core.Entity(1); e <= 4; e++ {
		s.Set(e, testComponent{Value: int(e)})
	}

	if !s.Remove(2) {
		t.Fatal("Remove(2) should report true")
	}
	if s.Remove(2) {
		t.Error("second Remove(2) should report false")
	}

	// Entity 4 moved into slot 1
	if e, c := s.At(1); e != 4 || c.Value != 4 {
		t.Errorf("At(1) = %d/%d, want 4/4", e, c.Value)
	}
	if c, ok := s.Get(4); !ok || c.Value != 4 {
		t.Error("index for moved entity not updated")
	}
	if s.Has(2) {
		t.Error("removed entity still present")
	}
}

func TestStoreReverseIterationRemoval(t *testing.T) {
	tests := []struct {
		name   string
		remove func(v int) bool
		want   int
	}{
		{"remove all", func(int) bool { return true }, 0},
		{"remove none", func(int) bool { return false }, 10},
		{"remove even", func(v int) bool { return v%2 == 0 }, 5},
		{"remove tail half", func(v int) bool { return v > 5 }, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStore[testComponent]()
			for e := core.Entity(1); e <= 10; e++ {
				s.Set(e, testComponent{Value: int(e)})
			}

			visited := make(map[core.Entity]int)
			for i := s.Len() - 1; i >= 0; i-- {
				e, c := s.At(i)
				visited[e]++
				if tt.remove(c.Value) {
					s.RemoveAt(i)
				}
			}

			if len(visited) != 10 {
				t.Errorf("visited %d entities, want 10", len(visited))
			}
			for e, n := range visited {
				if n != 1 {
					t.Errorf("entity %d visited %d times", e, n)
				}
			}
			if s.Len() != tt.want {
				t.Errorf("Len = %d, want %d", s.Len(), tt.want)
			}
		})
	}
}

func TestStoreClear(t *testing.T) {
	s := NewStore[testComponent]()
	s.Set(1, testComponent{})
	s.Set(2, testComponent{})
	s.Clear()

	if s.Len() != 0 || s.Has(1) || len(s.Entities()) != 0 {
		t.Error("Clear left entries behind")
	}
	s.Set(3, testComponent{Value: 3})
	if c, ok := s.Get(3); !ok || c.Value != 3 {
		t.Error("store unusable after Clear")
	}
}
