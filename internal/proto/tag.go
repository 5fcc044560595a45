// Package proto implements the Minicraft+ packet catalog: one Go type per
// wire packet variant, each able to encode itself to, and decode itself
// from, a wire.RawPacket.
package proto

// Tag identifies a packet variant. Only the low byte travels on the wire;
// Tag is kept as a 16-bit value internally per the frame codec's contract.
type Tag uint16

const (
	TagInvalid     Tag = 0x01
	TagPing        Tag = 0x02
	TagUsernames   Tag = 0x03 // reserved, recognized but never handled
	TagLogin       Tag = 0x04
	TagGame        Tag = 0x05
	TagInit        Tag = 0x06
	TagLoad        Tag = 0x07
	TagTiles       Tag = 0x08
	TagEntities    Tag = 0x09
	TagTile        Tag = 0x0A
	TagEntity      Tag = 0x0B
	TagPlayer      Tag = 0x0C
	TagMove        Tag = 0x0D
	TagAdd         Tag = 0x0E
	TagRemove      Tag = 0x0F
	TagDisconnect  Tag = 0x10
	TagSave        Tag = 0x11
	TagNotify      Tag = 0x12
	TagInteract    Tag = 0x13
	TagPush        Tag = 0x14
	TagPickup      Tag = 0x15
	TagChestIn     Tag = 0x16
	TagChestOut    Tag = 0x17
	TagAddItems    Tag = 0x18
	TagBed         Tag = 0x19
	TagPotion      Tag = 0x1A
	TagHurt        Tag = 0x1B
	TagDie         Tag = 0x1C
	TagRespawn     Tag = 0x1D
	TagDrop        Tag = 0x1E
	TagStamina     Tag = 0x1F
	TagShirt       Tag = 0x20
	TagStopFishing Tag = 0x21
)

func (t Tag) String() string {
	if name, ok := tagNames[t]; ok {
		return name
	}
	return "Unknown"
}

var tagNames = map[Tag]string{
	TagInvalid:     "Invalid",
	TagPing:        "Ping",
	TagUsernames:   "Usernames",
	TagLogin:       "Login",
	TagGame:        "Game",
	TagInit:        "Init",
	TagLoad:        "Load",
	TagTiles:       "Tiles",
	TagEntities:    "Entities",
	TagTile:        "Tile",
	TagEntity:      "Entity",
	TagPlayer:      "Player",
	TagMove:        "Move",
	TagAdd:         "Add",
	TagRemove:      "Remove",
	TagDisconnect:  "Disconnect",
	TagSave:        "Save",
	TagNotify:      "Notify",
	TagInteract:    "Interact",
	TagPush:        "Push",
	TagPickup:      "Pickup",
	TagChestIn:     "ChestIn",
	TagChestOut:    "ChestOut",
	TagAddItems:    "AddItems",
	TagBed:         "Bed",
	TagPotion:      "Potion",
	TagHurt:        "Hurt",
	TagDie:         "Die",
	TagRespawn:     "Respawn",
	TagDrop:        "Drop",
	TagStamina:     "Stamina",
	TagShirt:       "Shirt",
	TagStopFishing: "StopFishing",
}
