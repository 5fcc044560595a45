package world

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"minicraftplus-server/internal/model"
)

func TestStore_EnsureWorld_ReturnsSameInstance(t *testing.T) {
	s := NewStore()
	w1 := s.EnsureWorld(0, "overworld")
	w2 := s.EnsureWorld(0, "ignored name")

	assert.Same(t, w1, w2)
	assert.Equal(t, "overworld", w1.Name)
}

func TestStore_World_MissingIsNotOK(t *testing.T) {
	s := NewStore()
	_, ok := s.World(99)
	assert.False(t, ok)
}

func TestStore_NextEntityID_NeverCollides(t *testing.T) {
	s := NewStore()
	const n = 500

	ids := make([]model.EntityId, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ids[i] = s.NextEntityID()
		}(i)
	}
	wg.Wait()

	seen := make(map[model.EntityId]bool, n)
	for _, id := range ids {
		assert.False(t, seen[id], "duplicate entity id %d", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)
}
