package model

import (
	"fmt"
	"strconv"
	"strings"
)

// EntityKind names the tagged family an entity belongs to. Each kind is
// one flat struct with a Name[...] bracket prefix used for both encoding
// and decode dispatch.
type EntityKind string

const (
	EntityKindArrow     EntityKind = "Arrow"
	EntityKindItem      EntityKind = "Item"
	EntityKindMob       EntityKind = "Mob"
	EntityKindFurniture EntityKind = "Furniture"
	EntityKindParticle  EntityKind = "Particle"
)

// MobType and FurnitureType name the sub-variant carried inside a Mob or
// Furniture entity's bracket payload.
type MobType string

const (
	MobPlayer    MobType = "Player"
	MobZombie    MobType = "Zombie"
	MobCow       MobType = "Cow"
	MobPig       MobType = "Pig"
	MobSheep     MobType = "Sheep"
	MobSkeleton  MobType = "Skeleton"
	MobSlime     MobType = "Slime"
	MobSnake     MobType = "Snake"
	MobCreeper   MobType = "Creeper"
	MobAirWizard MobType = "AirWizard"
	MobKnight    MobType = "Knight"
)

type FurnitureType string

const (
	FurnitureChestEntity     FurnitureType = "Chest"
	FurnitureBedEntity       FurnitureType = "Bed"
	FurnitureWorkbenchEntity FurnitureType = "Workbench"
	FurnitureOvenEntity      FurnitureType = "Oven"
	FurnitureFurnaceEntity   FurnitureType = "Furnace"
	FurnitureAnvilEntity     FurnitureType = "Anvil"
	FurnitureLanternEntity   FurnitureType = "Lantern"
	FurnitureTntEntity       FurnitureType = "Tnt"
	FurnitureSpawnerEntity   FurnitureType = "Spawner"
)

type ParticleType string

const (
	ParticleFire  ParticleType = "Fire"
	ParticleSmash ParticleType = "Smash"
	ParticleText  ParticleType = "Text"
)

// updateField names the attributes an entity can report in an update-delta.
type updateField string

const (
	fieldID    updateField = "eid"
	fieldX     updateField = "x"
	fieldY     updateField = "y"
	fieldLevel updateField = "level"
)

// fieldExtractor lazily renders one update field's current value. Extractors
// are only called when the field is actually dirty and about to be drained.
type fieldExtractor func() string

// Entity is the common envelope every tagged variant embeds. It owns the
// identity, position and the dirty-field bookkeeping used by rawUpdate.
type Entity struct {
	Kind     EntityKind
	ID       EntityId
	Location Location
	Removed  bool

	dirty      map[updateField]fieldExtractor
	dirtyOrder []updateField

	Arrow     *ArrowData
	ItemData  *ItemEntityData
	Mob       *MobData
	Furniture *FurnitureData
	Particle  *ParticleData
}

// ArrowData is the payload for an Arrow entity.
type ArrowData struct {
	OwnerID   EntityId
	Direction Direction
	Damage    int16
}

// ItemEntityData is the payload for a world-dropped Item entity.
type ItemEntityData struct {
	Item     Item
	Lifetime int32
}

// MobData is the payload for a Mob entity.
type MobData struct {
	Type   MobType
	Health int16
}

// FurnitureData is the payload for a Furniture entity, including the extra
// spawner fields carried by mob-spawner furniture.
type FurnitureData struct {
	Type FurnitureType

	SpawnerMobType     MobType
	SpawnerMaxMobLevel int32
}

// ParticleData is the payload for a short-lived cosmetic Particle entity.
type ParticleData struct {
	Type     ParticleType
	Lifetime int32
}

func newEntity(kind EntityKind, id EntityId, loc Location) Entity {
	return Entity{
		Kind:     kind,
		ID:       id,
		Location: loc,
		dirty:    make(map[updateField]fieldExtractor),
	}
}

// NewArrowEntity builds an Arrow entity fired by owner in the given
// direction.
func NewArrowEntity(id EntityId, loc Location, owner EntityId, dir Direction, damage int16) Entity {
	e := newEntity(EntityKindArrow, id, loc)
	e.Arrow = &ArrowData{OwnerID: owner, Direction: dir, Damage: damage}
	return e
}

// NewItemEntity builds a world-dropped Item entity that despawns after
// lifetime ticks.
func NewItemEntity(id EntityId, loc Location, item Item, lifetime int32) Entity {
	e := newEntity(EntityKindItem, id, loc)
	e.ItemData = &ItemEntityData{Item: item, Lifetime: lifetime}
	return e
}

// NewMobEntity builds a Mob entity of the given type and starting health.
func NewMobEntity(id EntityId, loc Location, mobType MobType, health int16) Entity {
	e := newEntity(EntityKindMob, id, loc)
	e.Mob = &MobData{Type: mobType, Health: health}
	return e
}

// NewFurnitureEntity builds a plain (non-spawner) Furniture entity.
func NewFurnitureEntity(id EntityId, loc Location, furnitureType FurnitureType) Entity {
	e := newEntity(EntityKindFurniture, id, loc)
	e.Furniture = &FurnitureData{Type: furnitureType}
	return e
}

// NewSpawnerEntity builds a Furniture entity that spawns mobType up to
// maxMobLevel.
func NewSpawnerEntity(id EntityId, loc Location, mobType MobType, maxMobLevel int32) Entity {
	e := newEntity(EntityKindFurniture, id, loc)
	e.Furniture = &FurnitureData{Type: FurnitureSpawnerEntity, SpawnerMobType: mobType, SpawnerMaxMobLevel: maxMobLevel}
	return e
}

// NewParticleEntity builds a Particle entity that despawns after lifetime
// ticks.
func NewParticleEntity(id EntityId, loc Location, particleType ParticleType, lifetime int32) Entity {
	e := newEntity(EntityKindParticle, id, loc)
	e.Particle = &ParticleData{Type: particleType, Lifetime: lifetime}
	return e
}

// MarkDirty flags field as changed since the last drain, with extract called
// only if and when the field is actually drained.
func (e *Entity) MarkDirty(field string, extract fieldExtractor) {
	f := updateField(field)
	if e.dirty == nil {
		e.dirty = make(map[updateField]fieldExtractor)
	}
	if _, already := e.dirty[f]; !already {
		e.dirtyOrder = append(e.dirtyOrder, f)
	}
	e.dirty[f] = extract
}

// MarkMoved flags the position fields dirty, as a side effect of SetLocation.
func (e *Entity) MarkMoved() {
	e.MarkDirty(string(fieldX), func() string { return strconv.Itoa(int(e.Location.Fixed.PackedX())) })
	e.MarkDirty(string(fieldY), func() string { return strconv.Itoa(int(e.Location.Fixed.PackedY())) })
}

// SetLocation updates the entity's position and marks it moved.
func (e *Entity) SetLocation(loc Location) {
	e.Location = loc
	e.MarkMoved()
}

// Remove marks the entity removed.
func (e *Entity) Remove() {
	e.Removed = true
}

// base renders the shared "x:y" packed-location prefix every variant's raw
// form starts with.
func (e Entity) base() string {
	return fmt.Sprintf("%d:%d", e.Location.Fixed.PackedX(), e.Location.Fixed.PackedY())
}

// Raw renders the entity's full self-description: Name[base:id:...fields].
func (e Entity) Raw() string {
	switch e.Kind {
	case EntityKindArrow:
		return fmt.Sprintf("%s[%s:%d:%d:%d:%d:%d]", e.Kind, e.base(), e.ID,
			e.Arrow.OwnerID, int32(e.Arrow.Direction), e.Arrow.Damage, e.Location.World)
	case EntityKindItem:
		return fmt.Sprintf("%s[%s:%d:%d:%d:%d:%d]", e.Kind, e.base(), e.ID,
			e.ItemData.Item.Material, e.ItemData.Item.Amount, e.ItemData.Lifetime, e.Location.World)
	case EntityKindMob:
		return fmt.Sprintf("%s[%s:%d:%s:%d:%d]", e.Kind, e.base(), e.ID,
			e.Mob.Type, e.Mob.Health, e.Location.World)
	case EntityKindFurniture:
		if e.Furniture.Type == FurnitureSpawnerEntity {
			return fmt.Sprintf("%s[%s:%d:%s:%s:%d:%d]", e.Kind, e.base(), e.ID,
				e.Furniture.Type, e.Furniture.SpawnerMobType, e.Furniture.SpawnerMaxMobLevel, e.Location.World)
		}
		return fmt.Sprintf("%s[%s:%d:%s:%d]", e.Kind, e.base(), e.ID, e.Furniture.Type, e.Location.World)
	case EntityKindParticle:
		return fmt.Sprintf("%s[%s:%d:%s:%d:%d]", e.Kind, e.base(), e.ID,
			e.Particle.Type, e.Particle.Lifetime, e.Location.World)
	default:
		return fmt.Sprintf("%s[%s:%d:%d]", e.Kind, e.base(), e.ID, e.Location.World)
	}
}

// RawUpdate drains every field marked dirty since the last call and renders
// "field,value;field,value;...". An entity with nothing dirty renders "".
// The dirty set is empty afterward.
func (e *Entity) RawUpdate() string {
	var parts []string
	for _, field := range e.dirtyOrder {
		extract, ok := e.dirty[field]
		if !ok {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s,%s", field, extract()))
	}
	e.dirty = make(map[updateField]fieldExtractor)
	e.dirtyOrder = nil
	return strings.Join(parts, ";")
}

// entityKindPrefix returns the Name[ prefix used to dispatch decode.
func entityKindPrefix(raw string) (EntityKind, string, bool) {
	idx := strings.IndexByte(raw, '[')
	if idx < 0 || !strings.HasSuffix(raw, "]") {
		return "", "", false
	}
	return EntityKind(raw[:idx]), raw[idx+1 : len(raw)-1], true
}

// ParseEntity decodes a Name[...] bracket-grammar entity self-description.
func ParseEntity(raw string) (Entity, error) {
	kind, body, ok := entityKindPrefix(raw)
	if !ok {
		return Entity{}, fmt.Errorf("model: malformed entity %q", raw)
	}

	fields := strings.Split(body, ":")
	if len(fields) < 3 {
		return Entity{}, fmt.Errorf("model: entity %q missing fields", raw)
	}

	packedX, err := strconv.ParseInt(fields[0], 10, 32)
	if err != nil {
		return Entity{}, fmt.Errorf("model: entity %q bad x: %w", raw, err)
	}
	packedY, err := strconv.ParseInt(fields[1], 10, 32)
	if err != nil {
		return Entity{}, fmt.Errorf("model: entity %q bad y: %w", raw, err)
	}
	id, err := strconv.ParseUint(fields[2], 10, 32)
	if err != nil {
		return Entity{}, fmt.Errorf("model: entity %q bad id: %w", raw, err)
	}
	fixed := FixedLocationFromPacked(int32(packedX), int32(packedY))

	switch kind {
	case EntityKindArrow:
		if len(fields) != 7 {
			return Entity{}, fmt.Errorf("model: arrow entity %q malformed", raw)
		}
		owner, _ := strconv.ParseUint(fields[3], 10, 32)
		dir, _ := strconv.ParseInt(fields[4], 10, 32)
		damage, _ := strconv.ParseInt(fields[5], 10, 16)
		world, _ := strconv.ParseInt(fields[6], 10, 16)
		loc := NewLocation(WorldId(world), fixed, DirectionNone)
		return NewArrowEntity(EntityId(id), loc, EntityId(owner), Direction(dir), int16(damage)), nil
	case EntityKindItem:
		if len(fields) != 7 {
			return Entity{}, fmt.Errorf("model: item entity %q malformed", raw)
		}
		material, _ := strconv.ParseUint(fields[3], 10, 16)
		amount, _ := strconv.ParseUint(fields[4], 10, 16)
		lifetime, _ := strconv.ParseInt(fields[5], 10, 32)
		world, _ := strconv.ParseInt(fields[6], 10, 16)
		loc := NewLocation(WorldId(world), fixed, DirectionNone)
		item := NewItem(ItemMaterial(material))
		item.Amount = uint16(amount)
		return NewItemEntity(EntityId(id), loc, item, int32(lifetime)), nil
	case EntityKindMob:
		if len(fields) != 6 {
			return Entity{}, fmt.Errorf("model: mob entity %q malformed", raw)
		}
		health, _ := strconv.ParseInt(fields[4], 10, 16)
		world, _ := strconv.ParseInt(fields[5], 10, 16)
		loc := NewLocation(WorldId(world), fixed, DirectionNone)
		return NewMobEntity(EntityId(id), loc, MobType(fields[3]), int16(health)), nil
	case EntityKindFurniture:
		if FurnitureType(fields[3]) == FurnitureSpawnerEntity {
			if len(fields) != 7 {
				return Entity{}, fmt.Errorf("model: spawner entity %q malformed", raw)
			}
			maxLevel, _ := strconv.ParseInt(fields[5], 10, 32)
			world, _ := strconv.ParseInt(fields[6], 10, 16)
			loc := NewLocation(WorldId(world), fixed, DirectionNone)
			return NewSpawnerEntity(EntityId(id), loc, MobType(fields[4]), int32(maxLevel)), nil
		}
		if len(fields) != 5 {
			return Entity{}, fmt.Errorf("model: furniture entity %q malformed", raw)
		}
		world, _ := strconv.ParseInt(fields[4], 10, 16)
		loc := NewLocation(WorldId(world), fixed, DirectionNone)
		return NewFurnitureEntity(EntityId(id), loc, FurnitureType(fields[3])), nil
	case EntityKindParticle:
		if len(fields) != 6 {
			return Entity{}, fmt.Errorf("model: particle entity %q malformed", raw)
		}
		lifetime, _ := strconv.ParseInt(fields[4], 10, 32)
		world, _ := strconv.ParseInt(fields[5], 10, 16)
		loc := NewLocation(WorldId(world), fixed, DirectionNone)
		return NewParticleEntity(EntityId(id), loc, ParticleType(fields[3]), int32(lifetime)), nil
	default:
		return Entity{}, fmt.Errorf("model: unknown entity kind %q", kind)
	}
}
