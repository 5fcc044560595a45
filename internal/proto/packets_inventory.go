package proto

import (
	"fmt"
	"strconv"
	"strings"

	"minicraftplus-server/internal/model"
	"minicraftplus-server/internal/wire"
)

// PotionEffect pairs a carried potion with its remaining duration, as listed
// inside a player's stat line.
type PotionEffect struct {
	Type     model.PotionType
	Duration int32
}

// PlayerPacket reports the full player state sent right after a successful
// login: protocol version, stat line, and inventory.
type PlayerPacket struct {
	Version model.Version

	X, Y             int32
	SpawnX, SpawnY   int32
	Health           int32
	Hunger           int32
	Armor            int32
	ArmorDamageBuffer int32
	ArmorName        string
	Score            int32
	Level            int32
	PotionEffects    []PotionEffect
	ShirtColorRaw    int32
	SkinOn           bool

	Inventory []model.Item
}

func (p PlayerPacket) Tag() Tag { return TagPlayer }

func (p PlayerPacket) Encode() wire.RawPacket {
	effects := make([]string, len(p.PotionEffects))
	for i, e := range p.PotionEffects {
		effects[i] = fmt.Sprintf("%s;%d", model.PotionName(e.Type), e.Duration)
	}

	statLine := fmt.Sprintf("%d,%d,%d,%d,%d,%d,%d,%d,%s,%d,%d,PotionEffects[%s],%d,%s",
		p.X, p.Y, p.SpawnX, p.SpawnY, p.Health, p.Hunger, p.Armor, p.ArmorDamageBuffer,
		p.ArmorName, p.Score, p.Level, strings.Join(effects, ":"), p.ShirtColorRaw, boolString(p.SkinOn))

	inventoryLine := "NULL"
	if len(p.Inventory) > 0 {
		items := make([]string, len(p.Inventory))
		for i, it := range p.Inventory {
			items[i] = it.Raw()
		}
		inventoryLine = strings.Join(items, ",")
	}

	return wire.RawPacket{Payload: fmt.Sprintf("%s\n%s\n%s", p.Version, statLine, inventoryLine)}
}

func DecodePlayer(raw wire.RawPacket) (Packet, error) {
	if err := checkTag(raw, TagPlayer); err != nil {
		return nil, err
	}
	lines := strings.SplitN(raw.Payload, "\n", 3)
	if len(lines) != 3 {
		return nil, malformed(TagPlayer, raw.Payload, fmt.Errorf("expected 3 lines"))
	}

	version, err := model.ParseVersion(lines[0])
	if err != nil {
		return nil, malformed(TagPlayer, raw.Payload, err)
	}

	stats, err := splitExact(TagPlayer, lines[1], ",", 14)
	if err != nil {
		return nil, err
	}

	p := PlayerPacket{Version: version}
	ints := make([]int32, 11)
	for i := 0; i < 11; i++ {
		v, err := parseInt32(TagPlayer, raw.Payload, stats[i])
		if err != nil {
			return nil, err
		}
		ints[i] = v
	}
	p.X, p.Y, p.SpawnX, p.SpawnY = ints[0], ints[1], ints[2], ints[3]
	p.Health, p.Hunger, p.Armor, p.ArmorDamageBuffer = ints[4], ints[5], ints[6], ints[7]
	p.ArmorName = stats[8]
	p.Score, p.Level = ints[9], ints[10]

	effectsField := stats[11]
	if !strings.HasPrefix(effectsField, "PotionEffects[") || !strings.HasSuffix(effectsField, "]") {
		return nil, malformed(TagPlayer, raw.Payload, fmt.Errorf("malformed potion effects field"))
	}
	effectsBody := effectsField[len("PotionEffects[") : len(effectsField)-1]
	if effectsBody != "" {
		for _, entry := range strings.Split(effectsBody, ":") {
			parts, err := splitExact(TagPlayer, entry, ";", 2)
			if err != nil {
				return nil, err
			}
			duration, err := parseInt32(TagPlayer, raw.Payload, parts[1])
			if err != nil {
				return nil, err
			}
			p.PotionEffects = append(p.PotionEffects, PotionEffect{Type: model.PotionTypeByName(parts[0]), Duration: duration})
		}
	}

	shirtColor, err := parseInt32(TagPlayer, raw.Payload, stats[12])
	if err != nil {
		return nil, err
	}
	p.ShirtColorRaw = shirtColor
	skinOn, err := parseBool(TagPlayer, raw.Payload, stats[13])
	if err != nil {
		return nil, err
	}
	p.SkinOn = skinOn

	// One item per comma-separated entry (stride 1), matching the encode
	// grammar above exactly.
	if lines[2] != "NULL" && lines[2] != "" {
		for _, itemRaw := range strings.Split(lines[2], ",") {
			item, err := model.ParseItem(itemRaw)
			if err != nil {
				return nil, malformed(TagPlayer, itemRaw, err)
			}
			p.Inventory = append(p.Inventory, item)
		}
	}

	return p, nil
}

// InteractPacket asks the server to use the held item (client→server) or
// reports the outcome (server→client: the item, remaining stamina, and
// arrow count).
type InteractPacket struct {
	ItemRaw string

	// HasResult is true only on the server→client direction.
	HasResult  bool
	Stamina    int32
	ArrowCount int32
}

func (p InteractPacket) Tag() Tag { return TagInteract }

func (p InteractPacket) Encode() wire.RawPacket {
	if !p.HasResult {
		return wire.RawPacket{Payload: p.ItemRaw}
	}
	return wire.RawPacket{Payload: fmt.Sprintf("%s;%d;%d", p.ItemRaw, p.Stamina, p.ArrowCount)}
}

func DecodeInteract(raw wire.RawPacket) (Packet, error) {
	if err := checkTag(raw, TagInteract); err != nil {
		return nil, err
	}
	fields := strings.Split(raw.Payload, ";")
	switch len(fields) {
	case 1:
		return InteractPacket{ItemRaw: fields[0]}, nil
	case 3:
		stamina, err := parseInt32(TagInteract, raw.Payload, fields[1])
		if err != nil {
			return nil, err
		}
		arrows, err := parseInt32(TagInteract, raw.Payload, fields[2])
		if err != nil {
			return nil, err
		}
		return InteractPacket{ItemRaw: fields[0], HasResult: true, Stamina: stamina, ArrowCount: arrows}, nil
	default:
		return nil, malformed(TagInteract, raw.Payload, fmt.Errorf("wrong field count"))
	}
}

// ChestInPacket places an item from the player's inventory
// into a chest slot.
type ChestInPacket struct {
	ChestID  model.EntityId
	Index    int32
	ItemRaw  string
}

func (p ChestInPacket) Tag() Tag { return TagChestIn }

func (p ChestInPacket) Encode() wire.RawPacket {
	return wire.RawPacket{Payload: fmt.Sprintf("%d;%d;%s", p.ChestID, p.Index, p.ItemRaw)}
}

func DecodeChestIn(raw wire.RawPacket) (Packet, error) {
	if err := checkTag(raw, TagChestIn); err != nil {
		return nil, err
	}
	fields := strings.SplitN(raw.Payload, ";", 3)
	if len(fields) != 3 {
		return nil, malformed(TagChestIn, raw.Payload, fmt.Errorf("wrong field count"))
	}
	chestID, err := parseUint32(TagChestIn, raw.Payload, fields[0])
	if err != nil {
		return nil, err
	}
	index, err := parseInt32(TagChestIn, raw.Payload, fields[1])
	if err != nil {
		return nil, err
	}
	return ChestInPacket{ChestID: model.EntityId(chestID), Index: index, ItemRaw: fields[2]}, nil
}

// ChestOutPacket moves between chest and inventory. Inbound (client→server)
// requests a slot; its short form ("chestId") asks to close the chest and
// its long form additionally carries the index being withdrawn, whether the
// whole stack moves, and the inventory slot it lands in. Outbound
// (server→client) reports the item that actually moved and its resulting
// inventory index.
type ChestOutPacket struct {
	Inbound bool

	// Inbound fields.
	ChestID     model.EntityId
	ItemIndex   int32
	WholeStack  bool
	InputIndex  int32
	HasDetail   bool

	// Outbound fields.
	ItemRaw string
	Index   int32
}

func (p ChestOutPacket) Tag() Tag { return TagChestOut }

func (p ChestOutPacket) Encode() wire.RawPacket {
	if p.Inbound {
		if !p.HasDetail {
			return wire.RawPacket{Payload: strconv.FormatUint(uint64(p.ChestID), 10)}
		}
		return wire.RawPacket{Payload: fmt.Sprintf("%d;%d;%s;%d",
			p.ChestID, p.ItemIndex, boolString(p.WholeStack), p.InputIndex)}
	}
	return wire.RawPacket{Payload: fmt.Sprintf("%s;%d", p.ItemRaw, p.Index)}
}

// DecodeChestOut implements both the inbound and outbound grammar in full.
func DecodeChestOut(raw wire.RawPacket) (Packet, error) {
	if err := checkTag(raw, TagChestOut); err != nil {
		return nil, err
	}
	fields := strings.Split(raw.Payload, ";")
	switch len(fields) {
	case 1:
		chestID, err := parseUint32(TagChestOut, raw.Payload, fields[0])
		if err != nil {
			return nil, err
		}
		return ChestOutPacket{Inbound: true, ChestID: model.EntityId(chestID)}, nil
	case 4:
		chestID, err := parseUint32(TagChestOut, raw.Payload, fields[0])
		if err != nil {
			return nil, err
		}
		itemIndex, err := parseInt32(TagChestOut, raw.Payload, fields[1])
		if err != nil {
			return nil, err
		}
		wholeStack, err := parseBool(TagChestOut, raw.Payload, fields[2])
		if err != nil {
			return nil, err
		}
		inputIndex, err := parseInt32(TagChestOut, raw.Payload, fields[3])
		if err != nil {
			return nil, err
		}
		return ChestOutPacket{
			Inbound: true, HasDetail: true, ChestID: model.EntityId(chestID),
			ItemIndex: itemIndex, WholeStack: wholeStack, InputIndex: inputIndex,
		}, nil
	case 2:
		index, err := parseInt32(TagChestOut, raw.Payload, fields[1])
		if err != nil {
			return nil, err
		}
		return ChestOutPacket{ItemRaw: fields[0], Index: index}, nil
	default:
		return nil, malformed(TagChestOut, raw.Payload, fmt.Errorf("wrong field count"))
	}
}

// AddItemsPacket bulk-grants items to a client's inventory. Encode joins
// every item exactly once.
type AddItemsPacket struct {
	Items []model.Item
}

func (p AddItemsPacket) Tag() Tag { return TagAddItems }

func (p AddItemsPacket) Encode() wire.RawPacket {
	parts := make([]string, len(p.Items))
	for i, it := range p.Items {
		parts[i] = it.Raw()
	}
	return wire.RawPacket{Payload: strings.Join(parts, ";")}
}

func DecodeAddItems(raw wire.RawPacket) (Packet, error) {
	if err := checkTag(raw, TagAddItems); err != nil {
		return nil, err
	}
	if raw.Payload == "" {
		return AddItemsPacket{}, nil
	}
	items := make([]model.Item, 0)
	for _, r := range strings.Split(raw.Payload, ";") {
		item, err := model.ParseItem(r)
		if err != nil {
			return nil, malformed(TagAddItems, raw.Payload, err)
		}
		items = append(items, item)
	}
	return AddItemsPacket{Items: items}, nil
}

// BedPacket requests sleeping (or waking) in the named bed entity.
type BedPacket struct {
	Sleeping bool
	BedID    model.EntityId
}

func (p BedPacket) Tag() Tag { return TagBed }

func (p BedPacket) Encode() wire.RawPacket {
	return wire.RawPacket{Payload: fmt.Sprintf("%s;%d", boolString(p.Sleeping), p.BedID)}
}

func DecodeBed(raw wire.RawPacket) (Packet, error) {
	if err := checkTag(raw, TagBed); err != nil {
		return nil, err
	}
	f, err := splitExact(TagBed, raw.Payload, ";", 2)
	if err != nil {
		return nil, err
	}
	sleeping, err := parseBool(TagBed, raw.Payload, f[0])
	if err != nil {
		return nil, err
	}
	bedID, err := parseUint32(TagBed, raw.Payload, f[1])
	if err != nil {
		return nil, err
	}
	return BedPacket{Sleeping: sleeping, BedID: model.EntityId(bedID)}, nil
}

// PotionPacket toggles a potion effect on or off.
type PotionPacket struct {
	Type    model.PotionType
	Enabled bool
}

func (p PotionPacket) Tag() Tag { return TagPotion }

func (p PotionPacket) Encode() wire.RawPacket {
	return wire.RawPacket{Payload: fmt.Sprintf("%s;%s", model.PotionName(p.Type), boolString(p.Enabled))}
}

func DecodePotion(raw wire.RawPacket) (Packet, error) {
	if err := checkTag(raw, TagPotion); err != nil {
		return nil, err
	}
	f, err := splitExact(TagPotion, raw.Payload, ";", 2)
	if err != nil {
		return nil, err
	}
	enabled, err := parseBool(TagPotion, raw.Payload, f[1])
	if err != nil {
		return nil, err
	}
	return PotionPacket{Type: model.PotionTypeByName(f[0]), Enabled: enabled}, nil
}

// DropPacket removes an item from inventory and spawns it on the ground.
type DropPacket struct {
	ItemRaw string
}

func (p DropPacket) Tag() Tag { return TagDrop }

func (p DropPacket) Encode() wire.RawPacket {
	return wire.RawPacket{Payload: p.ItemRaw}
}

func DecodeDrop(raw wire.RawPacket) (Packet, error) {
	if err := checkTag(raw, TagDrop); err != nil {
		return nil, err
	}
	return DropPacket{ItemRaw: raw.Payload}, nil
}

// StaminaPacket reports the player's current stamina.
type StaminaPacket struct {
	Stamina int32
}

func (p StaminaPacket) Tag() Tag { return TagStamina }

func (p StaminaPacket) Encode() wire.RawPacket {
	return wire.RawPacket{Payload: strconv.FormatInt(int64(p.Stamina), 10)}
}

func DecodeStamina(raw wire.RawPacket) (Packet, error) {
	if err := checkTag(raw, TagStamina); err != nil {
		return nil, err
	}
	stamina, err := parseInt32(TagStamina, raw.Payload, raw.Payload)
	if err != nil {
		return nil, err
	}
	return StaminaPacket{Stamina: stamina}, nil
}

// ShirtPacket changes the player's shirt color.
type ShirtPacket struct {
	ColorRaw int32
}

func (p ShirtPacket) Tag() Tag { return TagShirt }

func (p ShirtPacket) Encode() wire.RawPacket {
	return wire.RawPacket{Payload: strconv.FormatInt(int64(p.ColorRaw), 10)}
}

func DecodeShirt(raw wire.RawPacket) (Packet, error) {
	if err := checkTag(raw, TagShirt); err != nil {
		return nil, err
	}
	color, err := parseInt32(TagShirt, raw.Payload, raw.Payload)
	if err != nil {
		return nil, err
	}
	return ShirtPacket{ColorRaw: color}, nil
}

// NotifyPacket delivers a timed on-screen message. Decode takes everything
// after the first ';' as the note text, so a note containing ';' survives
// intact.
type NotifyPacket struct {
	NoteTime int32
	Note     string
}

func (p NotifyPacket) Tag() Tag { return TagNotify }

func (p NotifyPacket) Encode() wire.RawPacket {
	return wire.RawPacket{Payload: fmt.Sprintf("%d;%s", p.NoteTime, p.Note)}
}

func DecodeNotify(raw wire.RawPacket) (Packet, error) {
	if err := checkTag(raw, TagNotify); err != nil {
		return nil, err
	}
	idx := strings.IndexByte(raw.Payload, ';')
	if idx < 0 {
		return nil, malformed(TagNotify, raw.Payload, fmt.Errorf("missing ';'"))
	}
	noteTime, err := parseInt32(TagNotify, raw.Payload, raw.Payload[:idx])
	if err != nil {
		return nil, err
	}
	return NotifyPacket{NoteTime: noteTime, Note: raw.Payload[idx+1:]}, nil
}
