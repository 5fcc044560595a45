// Package world holds the authoritative shared game state: worlds indexed
// by id, each with chunks indexed by coordinate and entities indexed by id.
package world

import (
	"sync"

	"minicraftplus-server/internal/model"
)

// World is one loaded level: a name, its chunk grid, and the entities
// currently inside it.
type World struct {
	ID   model.WorldId
	Name string

	mu           sync.RWMutex
	chunkByCoord map[model.ChunkCoord]*model.Chunk
	entityById   map[model.EntityId]*model.Entity
}

func newWorld(id model.WorldId, name string) *World {
	return &World{
		ID:           id,
		Name:         name,
		chunkByCoord: make(map[model.ChunkCoord]*model.Chunk),
		entityById:   make(map[model.EntityId]*model.Entity),
	}
}

// Chunk returns the chunk at coord, loading nothing — chunks are created by
// SetChunk on demand, never evicted.
func (w *World) Chunk(coord model.ChunkCoord) (*model.Chunk, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	c, ok := w.chunkByCoord[coord]
	return c, ok
}

// SetChunk installs or replaces the chunk at coord. A coordinate never maps
// to two chunks: this call always owns the slot.
func (w *World) SetChunk(coord model.ChunkCoord, chunk *model.Chunk) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.chunkByCoord[coord] = chunk
}

// EnsureChunk returns the chunk at coord, creating an empty one if absent.
func (w *World) EnsureChunk(coord model.ChunkCoord) *model.Chunk {
	w.mu.Lock()
	defer w.mu.Unlock()
	c, ok := w.chunkByCoord[coord]
	if !ok {
		c = &model.Chunk{}
		w.chunkByCoord[coord] = c
	}
	return c
}

// Entity looks up a live entity by id.
func (w *World) Entity(id model.EntityId) (*model.Entity, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	e, ok := w.entityById[id]
	return e, ok
}

// PutEntity registers or re-registers an entity under its own id.
func (w *World) PutEntity(e *model.Entity) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.entityById[e.ID] = e
}

// RemoveEntity marks an entity removed and drops it from the registry.
func (w *World) RemoveEntity(id model.EntityId) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if e, ok := w.entityById[id]; ok {
		e.Remove()
	}
	delete(w.entityById, id)
}

// Entities returns a snapshot of every live entity, safe to range over
// without holding the world's lock.
func (w *World) Entities() []*model.Entity {
	w.mu.RLock()
	defer w.mu.RUnlock()
	out := make([]*model.Entity, 0, len(w.entityById))
	for _, e := range w.entityById {
		out = append(out, e)
	}
	return out
}

// Tick runs one simulation step over every live entity in this world. Per
// the concurrency model, this is the single point where entity tick logic
// runs; it is invoked only from the server's tick thread. Entity AI/physics
// beyond dirty-field bookkeeping is out of the protocol core's scope and is
// left to the caller-supplied tick function.
func (w *World) Tick(tick func(*model.Entity)) {
	for _, e := range w.Entities() {
		if !e.Removed {
			tick(e)
		}
	}
}
