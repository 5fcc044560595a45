package proto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"minicraftplus-server/internal/model"
)

func sampleEntity() model.Entity {
	loc := model.NewLocation(0, model.NewFixedLocation(1, 0, 2, 0), model.DirectionNone)
	return model.NewMobEntity(5, loc, model.MobCow, 10)
}

func TestEntitiesPacket_RoundTrip_NoDuplicate(t *testing.T) {
	e1 := sampleEntity()
	e2 := model.NewMobEntity(6, e1.Location, model.MobZombie, 20)
	p := EntitiesPacket{Entities: []model.Entity{e1, e2}}

	raw := p.Encode()
	// exactly one comma separating the two entities, not a duplicated first
	assert.Equal(t, 1, countRune(raw.Payload, ','))

	got, err := Decode(EncodeRaw(p))
	require.NoError(t, err)
	gotPacket := got.(EntitiesPacket)
	require.Len(t, gotPacket.Entities, 2)
	assert.Equal(t, e1, gotPacket.Entities[0])
	assert.Equal(t, e2, gotPacket.Entities[1])
}

func countRune(s string, r rune) int {
	n := 0
	for _, c := range s {
		if c == r {
			n++
		}
	}
	return n
}

func TestEntitiesPacket_EmptyRoundTrip(t *testing.T) {
	p := EntitiesPacket{}
	got, err := Decode(EncodeRaw(p))
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestEntityPacket_DescribeRoundTrip(t *testing.T) {
	e := sampleEntity()
	p := EntityPacket{Describe: &e}
	got, err := Decode(EncodeRaw(p))
	require.NoError(t, err)
	gotPacket := got.(EntityPacket)
	require.NotNil(t, gotPacket.Describe)
	assert.Equal(t, e, *gotPacket.Describe)
}

func TestEntityPacket_BareIDRoundTrip(t *testing.T) {
	p := EntityPacket{ID: 9}
	got, err := Decode(EncodeRaw(p))
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestEntityPacket_FieldsRoundTrip(t *testing.T) {
	p := EntityPacket{ID: 9, Fields: "x,16;y,32"}
	got, err := Decode(EncodeRaw(p))
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestAddPacket_RoundTrip(t *testing.T) {
	p := AddPacket{Entity: sampleEntity()}
	got, err := Decode(EncodeRaw(p))
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestRemovePacket_BareIDRoundTrip(t *testing.T) {
	p := RemovePacket{EntityID: 3}
	got, err := Decode(EncodeRaw(p))
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestRemovePacket_WithWorldRoundTrip(t *testing.T) {
	w := model.WorldId(2)
	p := RemovePacket{EntityID: 3, World: &w}
	got, err := Decode(EncodeRaw(p))
	require.NoError(t, err)
	gotPacket := got.(RemovePacket)
	assert.Equal(t, p.EntityID, gotPacket.EntityID)
	require.NotNil(t, gotPacket.World)
	assert.Equal(t, *p.World, *gotPacket.World)
}

func TestMovePacket_RoundTrip(t *testing.T) {
	p := MovePacket{
		Fixed:     model.FixedLocationFromPacked(16, 32),
		Direction: model.DirectionUp,
		World:     0,
	}
	got, err := Decode(EncodeRaw(p))
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestHurtPacket_RoundTrip(t *testing.T) {
	p := HurtPacket{EntityID: 5, Damage: 3, Direction: model.DirectionLeft}
	got, err := Decode(EncodeRaw(p))
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestPushPickupStopFishing_RoundTrip(t *testing.T) {
	for _, p := range []Packet{
		PushPacket{EntityID: 1},
		PickupPacket{EntityID: 2},
		StopFishingPacket{EntityID: 3},
	} {
		got, err := Decode(EncodeRaw(p))
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}
}
