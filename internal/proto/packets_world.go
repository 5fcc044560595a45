package proto

import (
	"fmt"
	"strconv"
	"strings"

	"minicraftplus-server/internal/model"
	"minicraftplus-server/internal/wire"
)

// GamePacket reports the world clock and session-wide game state.
type GamePacket struct {
	Mode          string
	Time          int32
	GameSpeed     int32
	PastDay       bool
	Score         int32
	PlayerCount   int32
	AwakenPlayer  int32
}

func (p GamePacket) Tag() Tag { return TagGame }

func (p GamePacket) Encode() wire.RawPacket {
	return wire.RawPacket{Payload: fmt.Sprintf("%s;%d;%d;%s;%d;%d;%d",
		p.Mode, p.Time, p.GameSpeed, boolString(p.PastDay), p.Score, p.PlayerCount, p.AwakenPlayer)}
}

func DecodeGame(raw wire.RawPacket) (Packet, error) {
	if err := checkTag(raw, TagGame); err != nil {
		return nil, err
	}
	f, err := splitExact(TagGame, raw.Payload, ";", 7)
	if err != nil {
		return nil, err
	}
	time, err := parseInt32(TagGame, raw.Payload, f[1])
	if err != nil {
		return nil, err
	}
	speed, err := parseInt32(TagGame, raw.Payload, f[2])
	if err != nil {
		return nil, err
	}
	pastDay, err := parseBool(TagGame, raw.Payload, f[3])
	if err != nil {
		return nil, err
	}
	score, err := parseInt32(TagGame, raw.Payload, f[4])
	if err != nil {
		return nil, err
	}
	playerCount, err := parseInt32(TagGame, raw.Payload, f[5])
	if err != nil {
		return nil, err
	}
	awaken, err := parseInt32(TagGame, raw.Payload, f[6])
	if err != nil {
		return nil, err
	}
	return GamePacket{Mode: f[0], Time: time, GameSpeed: speed, PastDay: pastDay,
		Score: score, PlayerCount: playerCount, AwakenPlayer: awaken}, nil
}

// InitPacket hands the client its player entity id and starting level/
// position.
type InitPacket struct {
	PlayerID model.EntityId
	Width    int32
	Height   int32
	Level    int32
	X        int32
	Y        int32
}

func (p InitPacket) Tag() Tag { return TagInit }

func (p InitPacket) Encode() wire.RawPacket {
	return wire.RawPacket{Payload: fmt.Sprintf("%d,%d,%d,%d,%d,%d",
		p.PlayerID, p.Width, p.Height, p.Level, p.X, p.Y)}
}

func DecodeInit(raw wire.RawPacket) (Packet, error) {
	if err := checkTag(raw, TagInit); err != nil {
		return nil, err
	}
	f, err := splitExact(TagInit, raw.Payload, ",", 6)
	if err != nil {
		return nil, err
	}
	id, err := parseUint32(TagInit, raw.Payload, f[0])
	if err != nil {
		return nil, err
	}
	w, err := parseInt32(TagInit, raw.Payload, f[1])
	if err != nil {
		return nil, err
	}
	h, err := parseInt32(TagInit, raw.Payload, f[2])
	if err != nil {
		return nil, err
	}
	level, err := parseInt32(TagInit, raw.Payload, f[3])
	if err != nil {
		return nil, err
	}
	x, err := parseInt32(TagInit, raw.Payload, f[4])
	if err != nil {
		return nil, err
	}
	y, err := parseInt32(TagInit, raw.Payload, f[5])
	if err != nil {
		return nil, err
	}
	return InitPacket{PlayerID: model.EntityId(id), Width: w, Height: h, Level: level, X: x, Y: y}, nil
}

// LoadPacket requests the tiles/entities for a level, sent once right after
// Init is received.
type LoadPacket struct {
	CurrentLevel int32
}

func (p LoadPacket) Tag() Tag { return TagLoad }

func (p LoadPacket) Encode() wire.RawPacket {
	return wire.RawPacket{Payload: strconv.FormatInt(int64(p.CurrentLevel), 10)}
}

func DecodeLoad(raw wire.RawPacket) (Packet, error) {
	if err := checkTag(raw, TagLoad); err != nil {
		return nil, err
	}
	level, err := parseInt32(TagLoad, raw.Payload, raw.Payload)
	if err != nil {
		return nil, err
	}
	return LoadPacket{CurrentLevel: level}, nil
}

// TilesPacket bulk-transmits a level's tiles as a flat, row-major sequence.
type TilesPacket struct {
	Tiles []model.Tile
}

func (p TilesPacket) Tag() Tag { return TagTiles }

func (p TilesPacket) Encode() wire.RawPacket {
	parts := make([]string, 0, len(p.Tiles)*2)
	for _, t := range p.Tiles {
		parts = append(parts, strconv.FormatUint(uint64(t.ID), 10), strconv.FormatUint(uint64(t.Data), 10))
	}
	return wire.RawPacket{Payload: strings.Join(parts, ",")}
}

func DecodeTiles(raw wire.RawPacket) (Packet, error) {
	if err := checkTag(raw, TagTiles); err != nil {
		return nil, err
	}
	if raw.Payload == "" {
		return TilesPacket{}, nil
	}
	fields := strings.Split(raw.Payload, ",")
	if len(fields)%2 != 0 {
		return nil, malformed(TagTiles, raw.Payload, fmt.Errorf("odd field count"))
	}
	tiles := make([]model.Tile, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		id, err := strconv.ParseUint(fields[i], 10, 16)
		if err != nil {
			return nil, malformed(TagTiles, raw.Payload, err)
		}
		data, err := strconv.ParseUint(fields[i+1], 10, 8)
		if err != nil {
			return nil, malformed(TagTiles, raw.Payload, err)
		}
		tiles = append(tiles, model.Tile{ID: model.TileId(id), Data: uint8(data)})
	}
	return TilesPacket{Tiles: tiles}, nil
}

// TilePacket reports a single tile change at a flat row-major index within a
// world.
type TilePacket struct {
	World    model.WorldId
	Position int32
	Tile     model.Tile
}

func (p TilePacket) Tag() Tag { return TagTile }

func (p TilePacket) Encode() wire.RawPacket {
	return wire.RawPacket{Payload: fmt.Sprintf("%d;%d;%d;%d", p.World, p.Position, p.Tile.ID, p.Tile.Data)}
}

func DecodeTile(raw wire.RawPacket) (Packet, error) {
	if err := checkTag(raw, TagTile); err != nil {
		return nil, err
	}
	f, err := splitExact(TagTile, raw.Payload, ";", 4)
	if err != nil {
		return nil, err
	}
	world, err := parseInt16(TagTile, raw.Payload, f[0])
	if err != nil {
		return nil, err
	}
	position, err := parseInt32(TagTile, raw.Payload, f[1])
	if err != nil {
		return nil, err
	}
	id, err := strconv.ParseUint(f[2], 10, 16)
	if err != nil {
		return nil, malformed(TagTile, raw.Payload, err)
	}
	data, err := strconv.ParseUint(f[3], 10, 8)
	if err != nil {
		return nil, malformed(TagTile, raw.Payload, err)
	}
	return TilePacket{World: model.WorldId(world), Position: position, Tile: model.Tile{ID: model.TileId(id), Data: uint8(data)}}, nil
}
