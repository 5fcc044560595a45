package session

import (
	"minicraftplus-server/internal/model"
	"minicraftplus-server/internal/proto"
)

// HandlerFunc processes one decoded packet for a session. It returns
// handled=true when the packet was appropriate for the session's current
// state (resetting the bad-packet counter) and false when it was not
// (incrementing it).
type HandlerFunc func(*Session, proto.Packet) (handled bool, err error)

// Table is the tag-keyed handler registry driving Session.Run.
type Table map[proto.Tag]HandlerFunc

// DefaultLevelWidth/Height size the single level handed out by Init/Load in
// the absence of a real world-generation engine, which is out of scope here.
const (
	DefaultLevelWidth  = 128
	DefaultLevelHeight = 128
)

// InitPlayerID is the player id sent in the Init packet's PlayerID field.
// It is a fixed value independent of the entity id a session is actually
// assigned (tracked in Session.PlayerID), matching the handshake payload
// clients expect on first login.
const InitPlayerID = 12

// NewDefaultTable builds the handler table implementing the session state
// machine.
func NewDefaultTable() Table {
	return Table{
		proto.TagLogin:       handleLogin,
		proto.TagLoad:        handleLoad,
		proto.TagPing:        handlePing,
		proto.TagMove:        handleMove,
		proto.TagDisconnect:  handleDisconnect,
		proto.TagSave:        handleSave,
		proto.TagDie:         handlePlayingOnly,
		proto.TagRespawn:     handlePlayingOnly,
		proto.TagInteract:    handlePlayingOnly,
		proto.TagPush:        handlePlayingOnly,
		proto.TagPickup:      handlePlayingOnly,
		proto.TagChestIn:     handlePlayingOnly,
		proto.TagChestOut:    handlePlayingOnly,
		proto.TagBed:         handlePlayingOnly,
		proto.TagPotion:      handlePlayingOnly,
		proto.TagDrop:        handlePlayingOnly,
		proto.TagShirt:       handlePlayingOnly,
		proto.TagEntity:      handlePlayingOnly,
	}
}

func handleLogin(s *Session, p proto.Packet) (bool, error) {
	if s.state != StateNew {
		return false, nil
	}
	login := p.(proto.LoginPacket)

	s.Username = login.Username
	s.Version = login.Version
	s.PlayerID = s.store.NextEntityID()
	s.World = s.store.EnsureWorld(0, "overworld")

	startLoc := model.NewLocation(s.World.ID, model.NewFixedLocation(0, 0, 0, 0), model.DirectionDown)
	player := model.NewMobEntity(s.PlayerID, startLoc, model.MobPlayer, 10)
	s.World.PutEntity(&player)
	s.MarkAnnounced(s.PlayerID)

	if err := s.Send(proto.PlayerPacket{
		Version:   model.DefaultVersion,
		ArmorName: "NULL",
		Health:    10,
		Hunger:    10,
	}); err != nil {
		return false, err
	}
	if err := s.Send(proto.InitPacket{
		PlayerID: InitPlayerID,
		Width:    DefaultLevelWidth,
		Height:   DefaultLevelHeight,
	}); err != nil {
		return false, err
	}

	s.state = StateLoading
	return true, nil
}

func handleLoad(s *Session, p proto.Packet) (bool, error) {
	if s.state != StateLoading {
		return false, nil
	}

	var tiles []model.Tile
	for y := 0; y < DefaultLevelHeight; y++ {
		for x := 0; x < DefaultLevelWidth; x++ {
			tiles = append(tiles, model.Tile{})
		}
	}

	if err := s.Send(proto.TilesPacket{Tiles: tiles}); err != nil {
		return false, err
	}

	var toAnnounce []model.Entity
	for _, e := range s.World.Entities() {
		if s.HasAnnounced(e.ID) {
			continue
		}
		toAnnounce = append(toAnnounce, *e)
		s.MarkAnnounced(e.ID)
	}
	if err := s.Send(proto.EntitiesPacket{Entities: toAnnounce}); err != nil {
		return false, err
	}
	if err := s.Send(proto.GamePacket{
		Mode:        "survival",
		Time:        6000,
		GameSpeed:   1,
		PastDay:     true,
		Score:       10,
		PlayerCount: 1,
		AwakenPlayer: 1,
	}); err != nil {
		return false, err
	}

	s.state = StatePlaying
	return true, nil
}

func handlePing(s *Session, p proto.Packet) (bool, error) {
	return true, nil
}

func handleMove(s *Session, p proto.Packet) (bool, error) {
	if s.state != StatePlaying {
		return false, nil
	}
	move := p.(proto.MovePacket)
	if entity, ok := s.World.Entity(s.PlayerID); ok {
		entity.SetLocation(model.NewLocation(move.World, move.Fixed, move.Direction))
	}
	return true, nil
}

func handleDisconnect(s *Session, p proto.Packet) (bool, error) {
	_ = s.Close()
	return true, nil
}

func handleSave(s *Session, p proto.Packet) (bool, error) {
	if s.state != StatePlaying {
		return false, nil
	}
	return true, nil
}

// handlePlayingOnly acknowledges any packet whose grammar has already been
// decoded and which is only meaningful once a session has finished loading;
// resolving their gameplay effects (inventory, combat, furniture) is out of
// the protocol core's scope.
func handlePlayingOnly(s *Session, p proto.Packet) (bool, error) {
	return s.state == StatePlaying, nil
}
