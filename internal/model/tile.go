package model

// TileId identifies a tile's material.
type TileId uint16

// Tile is a material id plus one data byte (rotation, growth stage, etc.).
type Tile struct {
	ID   TileId
	Data uint8
}

// ChunkWidth and ChunkHeight fix the chunk grid size for the core protocol.
const (
	ChunkWidth  = 16
	ChunkHeight = 16
	ChunkSize   = ChunkWidth * ChunkHeight
)

// Chunk is a fixed 16x16 grid of tiles, row-major indexed x + y*ChunkWidth.
type Chunk struct {
	Tiles [ChunkSize]Tile
}

// TileAt returns the tile at (x, y) within the chunk.
func (c *Chunk) TileAt(x, y int) Tile {
	return c.Tiles[x+y*ChunkWidth]
}

// SetTileAt sets the tile at (x, y) within the chunk.
func (c *Chunk) SetTileAt(x, y int, t Tile) {
	c.Tiles[x+y*ChunkWidth] = t
}

// ChunkCoord is an integer 2D chunk coordinate with structural equality,
// usable directly as a map key.
type ChunkCoord struct {
	X int32
	Y int32
}

var tileNames = map[TileId]string{
	0:  "Grass",
	1:  "Dirt",
	2:  "Flower",
	3:  "Hole",
	4:  "Stairs Up",
	5:  "Stairs Down",
	6:  "Water",
	7:  "Lava",
	8:  "Rock",
	9:  "Tree",
	10: "Tree Sapling",
	11: "Sand",
	12: "Cactus",
	13: "Cactus Sapling",
	14: "Iron Ore",
	15: "Gold Ore",
	16: "Gem Ore",
	17: "Lapis Ore",
	18: "Lava Brick",
	19: "Exploded",
	20: "Farmland",
	21: "Wheat",
	22: "Hard Rock",
	23: "Infinite Fall",
	24: "Cloud",
	25: "Cloud Cactus",
	26: "Wood Door",
	27: "Stone Door",
	28: "Obsidian Door",
	29: "Wood Floor",
	30: "Stone Floor",
	31: "Obsidian Floor",
	32: "Wood Wall",
	33: "Stone Wall",
	34: "Obsidian Wall",
	35: "Wool",
	36: "Red Wool",
	37: "Blue Wool",
	38: "Green Wool",
	39: "Yellow Wool",
	40: "Black Wool",
	41: "Path",
	42: "Potato",
	43: "Torch",
}

var tileMaterialsByName = func() map[string]TileId {
	m := make(map[string]TileId, len(tileNames))
	for id, name := range tileNames {
		m[name] = id
	}
	return m
}()

// TileName returns the catalog display name for a tile material id.
func TileName(id TileId) string {
	name, ok := tileNames[id]
	if !ok {
		return "Grass"
	}
	return name
}

// TileMaterialByName resolves a catalog display name back to a tile id.
func TileMaterialByName(name string) TileId {
	return tileMaterialsByName[name]
}
