package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"minicraftplus-server/internal/model"
)

func TestWorld_EnsureChunk_CreatesOnce(t *testing.T) {
	w := newWorld(0, "overworld")
	c1 := w.EnsureChunk(model.ChunkCoord{X: 1, Y: 2})
	c2 := w.EnsureChunk(model.ChunkCoord{X: 1, Y: 2})
	assert.Same(t, c1, c2)
}

func TestWorld_SetChunk_Overwrites(t *testing.T) {
	w := newWorld(0, "overworld")
	first := &model.Chunk{}
	second := &model.Chunk{}
	w.SetChunk(model.ChunkCoord{}, first)
	w.SetChunk(model.ChunkCoord{}, second)

	got, ok := w.Chunk(model.ChunkCoord{})
	require.True(t, ok)
	assert.Same(t, second, got)
}

func TestWorld_PutAndRemoveEntity(t *testing.T) {
	w := newWorld(0, "overworld")
	loc := model.NewLocation(0, model.NewFixedLocation(0, 0, 0, 0), model.DirectionNone)
	e := model.NewMobEntity(1, loc, model.MobCow, 10)
	w.PutEntity(&e)

	got, ok := w.Entity(1)
	require.True(t, ok)
	assert.Equal(t, model.MobCow, got.Mob.Type)

	w.RemoveEntity(1)
	_, ok = w.Entity(1)
	assert.False(t, ok)
	assert.True(t, e.Removed)
}

func TestWorld_Tick_SkipsRemovedEntities(t *testing.T) {
	w := newWorld(0, "overworld")
	loc := model.NewLocation(0, model.NewFixedLocation(0, 0, 0, 0), model.DirectionNone)
	live := model.NewMobEntity(1, loc, model.MobCow, 10)
	dead := model.NewMobEntity(2, loc, model.MobCow, 10)
	dead.Remove()
	w.PutEntity(&live)
	w.PutEntity(&dead)

	var visited []model.EntityId
	w.Tick(func(e *model.Entity) {
		visited = append(visited, e.ID)
	})

	assert.Equal(t, []model.EntityId{1}, visited)
}
