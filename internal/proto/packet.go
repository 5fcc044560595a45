package proto

import "minicraftplus-server/internal/wire"

// Packet is a typed protocol message: every variant in the catalog
// implements it instead of sharing a virtual base.
type Packet interface {
	Tag() Tag
	Encode() wire.RawPacket
}

// EncodeRaw lowers a Packet to the frame-codec's wire.RawPacket, tagging it
// with the packet's declared Tag.
func EncodeRaw(p Packet) wire.RawPacket {
	raw := p.Encode()
	raw.Tag = uint16(p.Tag())
	return raw
}

// Decode dispatches a wire.RawPacket to the decoder for its tag. An unknown
// tag decodes to nil with no error so unhandled reserved tags (e.g.
// Usernames) can still flow through the session's unhandled-packet path.
func Decode(raw wire.RawPacket) (Packet, error) {
	switch Tag(raw.Tag) {
	case TagInvalid:
		return DecodeInvalid(raw)
	case TagPing:
		return DecodePing(raw)
	case TagLogin:
		return DecodeLogin(raw)
	case TagGame:
		return DecodeGame(raw)
	case TagInit:
		return DecodeInit(raw)
	case TagLoad:
		return DecodeLoad(raw)
	case TagTiles:
		return DecodeTiles(raw)
	case TagEntities:
		return DecodeEntities(raw)
	case TagTile:
		return DecodeTile(raw)
	case TagEntity:
		return DecodeEntity(raw)
	case TagPlayer:
		return DecodePlayer(raw)
	case TagMove:
		return DecodeMove(raw)
	case TagAdd:
		return DecodeAdd(raw)
	case TagRemove:
		return DecodeRemove(raw)
	case TagDisconnect:
		return DecodeDisconnect(raw)
	case TagSave:
		return DecodeSave(raw)
	case TagNotify:
		return DecodeNotify(raw)
	case TagInteract:
		return DecodeInteract(raw)
	case TagPush:
		return DecodePush(raw)
	case TagPickup:
		return DecodePickup(raw)
	case TagChestIn:
		return DecodeChestIn(raw)
	case TagChestOut:
		return DecodeChestOut(raw)
	case TagAddItems:
		return DecodeAddItems(raw)
	case TagBed:
		return DecodeBed(raw)
	case TagPotion:
		return DecodePotion(raw)
	case TagHurt:
		return DecodeHurt(raw)
	case TagDie:
		return DecodeDie(raw)
	case TagRespawn:
		return DecodeRespawn(raw)
	case TagDrop:
		return DecodeDrop(raw)
	case TagStamina:
		return DecodeStamina(raw)
	case TagShirt:
		return DecodeShirt(raw)
	case TagStopFishing:
		return DecodeStopFishing(raw)
	default:
		return nil, nil
	}
}
