package proto

import (
	"fmt"
	"strconv"
	"strings"

	"minicraftplus-server/internal/model"
	"minicraftplus-server/internal/wire"
)

// EntitiesPacket bulk-announces every entity visible in a level. Each
// element is one entity's full self-description, comma-joined with no
// leading duplicate.
type EntitiesPacket struct {
	Entities []model.Entity
}

func (p EntitiesPacket) Tag() Tag { return TagEntities }

func (p EntitiesPacket) Encode() wire.RawPacket {
	parts := make([]string, len(p.Entities))
	for i, e := range p.Entities {
		parts[i] = e.Raw()
	}
	return wire.RawPacket{Payload: strings.Join(parts, ",")}
}

func DecodeEntities(raw wire.RawPacket) (Packet, error) {
	if err := checkTag(raw, TagEntities); err != nil {
		return nil, err
	}
	if raw.Payload == "" {
		return EntitiesPacket{}, nil
	}
	texts := strings.Split(raw.Payload, ",")
	entities := make([]model.Entity, 0, len(texts))
	for _, t := range texts {
		e, err := model.ParseEntity(t)
		if err != nil {
			return nil, malformed(TagEntities, raw.Payload, err)
		}
		entities = append(entities, e)
	}
	return EntitiesPacket{Entities: entities}, nil
}

// EntityPacket is sent both ways: a full self-description (when the
// receiver has never seen the entity, or for the reverse-direction request
// triggered by an unknown id), or a lightweight id-plus-dirty-fields delta.
type EntityPacket struct {
	// Describe is set for a full self-description; nil for an update.
	Describe *model.Entity

	// ID and Fields are set for an update; Fields is the drained dirty-field
	// text already formatted as "field,value;field,value;...", or "" for a
	// bare id-only reference.
	ID     model.EntityId
	Fields string
}

func (p EntityPacket) Tag() Tag { return TagEntity }

func (p EntityPacket) Encode() wire.RawPacket {
	if p.Describe != nil {
		return wire.RawPacket{Payload: p.Describe.Raw()}
	}
	if p.Fields == "" {
		return wire.RawPacket{Payload: strconv.FormatUint(uint64(p.ID), 10)}
	}
	return wire.RawPacket{Payload: fmt.Sprintf("%d;%s", p.ID, p.Fields)}
}

func DecodeEntity(raw wire.RawPacket) (Packet, error) {
	if err := checkTag(raw, TagEntity); err != nil {
		return nil, err
	}
	if strings.Contains(raw.Payload, "[") {
		e, err := model.ParseEntity(raw.Payload)
		if err != nil {
			return nil, malformed(TagEntity, raw.Payload, err)
		}
		return EntityPacket{Describe: &e}, nil
	}

	idPart := raw.Payload
	fields := ""
	if idx := strings.IndexByte(raw.Payload, ';'); idx >= 0 {
		idPart, fields = raw.Payload[:idx], raw.Payload[idx+1:]
	}
	id, err := parseUint32(TagEntity, raw.Payload, idPart)
	if err != nil {
		return nil, err
	}
	return EntityPacket{ID: model.EntityId(id), Fields: fields}, nil
}

// AddPacket announces a newly-visible entity to a client via its full
// self-description.
type AddPacket struct {
	Entity model.Entity
}

func (p AddPacket) Tag() Tag { return TagAdd }

func (p AddPacket) Encode() wire.RawPacket {
	return wire.RawPacket{Payload: p.Entity.Raw()}
}

func DecodeAdd(raw wire.RawPacket) (Packet, error) {
	if err := checkTag(raw, TagAdd); err != nil {
		return nil, err
	}
	e, err := model.ParseEntity(raw.Payload)
	if err != nil {
		return nil, malformed(TagAdd, raw.Payload, err)
	}
	return AddPacket{Entity: e}, nil
}

// RemovePacket retires an entity from a client's view, optionally scoped to
// a world (when the entity left a level rather than being destroyed).
type RemovePacket struct {
	EntityID model.EntityId
	World    *model.WorldId
}

func (p RemovePacket) Tag() Tag { return TagRemove }

func (p RemovePacket) Encode() wire.RawPacket {
	if p.World != nil {
		return wire.RawPacket{Payload: fmt.Sprintf("%d;%d", p.EntityID, *p.World)}
	}
	return wire.RawPacket{Payload: strconv.FormatUint(uint64(p.EntityID), 10)}
}

func DecodeRemove(raw wire.RawPacket) (Packet, error) {
	if err := checkTag(raw, TagRemove); err != nil {
		return nil, err
	}
	fields := strings.Split(raw.Payload, ";")
	id, err := parseUint32(TagRemove, raw.Payload, fields[0])
	if err != nil {
		return nil, err
	}
	if len(fields) == 1 {
		return RemovePacket{EntityID: model.EntityId(id)}, nil
	}
	if len(fields) != 2 {
		return nil, malformed(TagRemove, raw.Payload, fmt.Errorf("wrong field count"))
	}
	world, err := parseInt16(TagRemove, raw.Payload, fields[1])
	if err != nil {
		return nil, err
	}
	w := model.WorldId(world)
	return RemovePacket{EntityID: model.EntityId(id), World: &w}, nil
}

// MovePacket reports the client's requested new position, direction and
// world.
type MovePacket struct {
	Fixed     model.FixedLocation
	Direction model.Direction
	World     model.WorldId
}

func (p MovePacket) Tag() Tag { return TagMove }

func (p MovePacket) Encode() wire.RawPacket {
	return wire.RawPacket{Payload: fmt.Sprintf("%d;%d;%d;%d",
		p.Fixed.PackedX(), p.Fixed.PackedY(), int32(p.Direction), p.World)}
}

func DecodeMove(raw wire.RawPacket) (Packet, error) {
	if err := checkTag(raw, TagMove); err != nil {
		return nil, err
	}
	f, err := splitExact(TagMove, raw.Payload, ";", 4)
	if err != nil {
		return nil, err
	}
	packedX, err := parseInt32(TagMove, raw.Payload, f[0])
	if err != nil {
		return nil, err
	}
	packedY, err := parseInt32(TagMove, raw.Payload, f[1])
	if err != nil {
		return nil, err
	}
	dir, err := parseInt32(TagMove, raw.Payload, f[2])
	if err != nil {
		return nil, err
	}
	world, err := parseInt16(TagMove, raw.Payload, f[3])
	if err != nil {
		return nil, err
	}
	return MovePacket{
		Fixed:     model.FixedLocationFromPacked(packedX, packedY),
		Direction: model.AddDirection(model.Direction(dir), model.DirectionNone),
		World:     model.WorldId(world),
	}, nil
}

// HurtPacket informs a client that an entity took damage from a direction.
type HurtPacket struct {
	EntityID  model.EntityId
	Damage    int32
	Direction model.Direction
}

func (p HurtPacket) Tag() Tag { return TagHurt }

func (p HurtPacket) Encode() wire.RawPacket {
	return wire.RawPacket{Payload: fmt.Sprintf("%d;%d;%d", p.EntityID, p.Damage, int32(p.Direction))}
}

func DecodeHurt(raw wire.RawPacket) (Packet, error) {
	if err := checkTag(raw, TagHurt); err != nil {
		return nil, err
	}
	f, err := splitExact(TagHurt, raw.Payload, ";", 3)
	if err != nil {
		return nil, err
	}
	id, err := parseUint32(TagHurt, raw.Payload, f[0])
	if err != nil {
		return nil, err
	}
	damage, err := parseInt32(TagHurt, raw.Payload, f[1])
	if err != nil {
		return nil, err
	}
	dir, err := parseInt32(TagHurt, raw.Payload, f[2])
	if err != nil {
		return nil, err
	}
	return HurtPacket{EntityID: model.EntityId(id), Damage: damage, Direction: model.Direction(dir)}, nil
}

// PushPacket requests the server push (attack/shove) the named entity.
type PushPacket struct {
	EntityID model.EntityId
}

func (p PushPacket) Tag() Tag { return TagPush }

func (p PushPacket) Encode() wire.RawPacket {
	return wire.RawPacket{Payload: strconv.FormatUint(uint64(p.EntityID), 10)}
}

func DecodePush(raw wire.RawPacket) (Packet, error) {
	if err := checkTag(raw, TagPush); err != nil {
		return nil, err
	}
	id, err := parseUint32(TagPush, raw.Payload, raw.Payload)
	if err != nil {
		return nil, err
	}
	return PushPacket{EntityID: model.EntityId(id)}, nil
}

// PickupPacket requests the server transfer a ground item entity into the
// player's inventory.
type PickupPacket struct {
	EntityID model.EntityId
}

func (p PickupPacket) Tag() Tag { return TagPickup }

func (p PickupPacket) Encode() wire.RawPacket {
	return wire.RawPacket{Payload: strconv.FormatUint(uint64(p.EntityID), 10)}
}

func DecodePickup(raw wire.RawPacket) (Packet, error) {
	if err := checkTag(raw, TagPickup); err != nil {
		return nil, err
	}
	id, err := parseUint32(TagPickup, raw.Payload, raw.Payload)
	if err != nil {
		return nil, err
	}
	return PickupPacket{EntityID: model.EntityId(id)}, nil
}

// StopFishingPacket tells a client its fishing rod entity (bobber) is gone.
type StopFishingPacket struct {
	EntityID model.EntityId
}

func (p StopFishingPacket) Tag() Tag { return TagStopFishing }

func (p StopFishingPacket) Encode() wire.RawPacket {
	return wire.RawPacket{Payload: strconv.FormatUint(uint64(p.EntityID), 10)}
}

func DecodeStopFishing(raw wire.RawPacket) (Packet, error) {
	if err := checkTag(raw, TagStopFishing); err != nil {
		return nil, err
	}
	id, err := parseUint32(TagStopFishing, raw.Payload, raw.Payload)
	if err != nil {
		return nil, err
	}
	return StopFishingPacket{EntityID: model.EntityId(id)}, nil
}
