package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLocation() Location {
	return NewLocation(0, NewFixedLocation(1, 0, 2, 0), DirectionNone)
}

func TestEntity_Arrow_RawRoundTrip(t *testing.T) {
	e := NewArrowEntity(7, testLocation(), 3, DirectionUp, 5)
	raw := e.Raw()

	got, err := ParseEntity(raw)
	require.NoError(t, err)
	assert.Equal(t, EntityKindArrow, got.Kind)
	assert.Equal(t, EntityId(7), got.ID)
	require.NotNil(t, got.Arrow)
	assert.Equal(t, EntityId(3), got.Arrow.OwnerID)
	assert.Equal(t, DirectionUp, got.Arrow.Direction)
	assert.Equal(t, int16(5), got.Arrow.Damage)
}

func TestEntity_Item_RawRoundTrip(t *testing.T) {
	item := NewStackableItem(StackableGold, 4)
	e := NewItemEntity(9, testLocation(), item, 200)
	raw := e.Raw()

	got, err := ParseEntity(raw)
	require.NoError(t, err)
	assert.Equal(t, EntityKindItem, got.Kind)
	require.NotNil(t, got.ItemData)
	assert.Equal(t, StackableGold, got.ItemData.Item.Material)
	assert.Equal(t, uint16(4), got.ItemData.Item.Amount)
	assert.Equal(t, int32(200), got.ItemData.Lifetime)
}

func TestEntity_Mob_RawRoundTrip(t *testing.T) {
	e := NewMobEntity(11, testLocation(), MobZombie, 20)
	raw := e.Raw()

	got, err := ParseEntity(raw)
	require.NoError(t, err)
	assert.Equal(t, EntityKindMob, got.Kind)
	require.NotNil(t, got.Mob)
	assert.Equal(t, MobZombie, got.Mob.Type)
	assert.Equal(t, int16(20), got.Mob.Health)
}

func TestEntity_Furniture_RawRoundTrip(t *testing.T) {
	e := NewFurnitureEntity(13, testLocation(), FurnitureChestEntity)
	raw := e.Raw()

	got, err := ParseEntity(raw)
	require.NoError(t, err)
	assert.Equal(t, EntityKindFurniture, got.Kind)
	require.NotNil(t, got.Furniture)
	assert.Equal(t, FurnitureChestEntity, got.Furniture.Type)
}

func TestEntity_Spawner_RawRoundTrip(t *testing.T) {
	e := NewSpawnerEntity(17, testLocation(), MobZombie, 3)
	raw := e.Raw()

	got, err := ParseEntity(raw)
	require.NoError(t, err)
	require.NotNil(t, got.Furniture)
	assert.Equal(t, FurnitureSpawnerEntity, got.Furniture.Type)
	assert.Equal(t, MobZombie, got.Furniture.SpawnerMobType)
	assert.Equal(t, int32(3), got.Furniture.SpawnerMaxMobLevel)
}

func TestEntity_Particle_RawRoundTrip(t *testing.T) {
	e := NewParticleEntity(19, testLocation(), ParticleSmash, 40)
	raw := e.Raw()

	got, err := ParseEntity(raw)
	require.NoError(t, err)
	require.NotNil(t, got.Particle)
	assert.Equal(t, ParticleSmash, got.Particle.Type)
	assert.Equal(t, int32(40), got.Particle.Lifetime)
}

func TestEntity_RawUpdate_DrainsInOrderAndClears(t *testing.T) {
	e := NewMobEntity(1, testLocation(), MobCow, 10)

	assert.Equal(t, "", e.RawUpdate())

	e.SetLocation(NewLocation(0, NewFixedLocation(2, 0, 3, 0), DirectionNone))
	update := e.RawUpdate()
	assert.Equal(t, "x,32;y,48", update)

	// draining clears the dirty set
	assert.Equal(t, "", e.RawUpdate())
}

func TestEntity_MarkDirty_DedupesRepeatedField(t *testing.T) {
	e := NewMobEntity(1, testLocation(), MobCow, 10)
	e.MarkDirty(string(fieldLevel), func() string { return "1" })
	e.MarkDirty(string(fieldLevel), func() string { return "2" })

	assert.Equal(t, "level,2", e.RawUpdate())
}
