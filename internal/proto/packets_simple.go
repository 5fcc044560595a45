package proto

import (
	"fmt"

	"minicraftplus-server/internal/model"
	"minicraftplus-server/internal/wire"
)

// InvalidPacket carries a free-form diagnostic message. The server sends it
// once before force-disconnecting a session that exceeded the bad-packet
// threshold.
type InvalidPacket struct {
	Message string
}

func (p InvalidPacket) Tag() Tag { return TagInvalid }

func (p InvalidPacket) Encode() wire.RawPacket {
	return wire.RawPacket{Payload: p.Message}
}

func DecodeInvalid(raw wire.RawPacket) (Packet, error) {
	if err := checkTag(raw, TagInvalid); err != nil {
		return nil, err
	}
	return InvalidPacket{Message: raw.Payload}, nil
}

// PingMode distinguishes a heartbeat sent on a timer from one sent on
// explicit user action.
type PingMode string

const (
	PingAuto   PingMode = "auto"
	PingManual PingMode = "manual"
)

type PingPacket struct {
	Mode PingMode
}

func (p PingPacket) Tag() Tag { return TagPing }

func (p PingPacket) Encode() wire.RawPacket {
	return wire.RawPacket{Payload: string(p.Mode)}
}

func DecodePing(raw wire.RawPacket) (Packet, error) {
	if err := checkTag(raw, TagPing); err != nil {
		return nil, err
	}
	switch PingMode(raw.Payload) {
	case PingAuto, PingManual:
		return PingPacket{Mode: PingMode(raw.Payload)}, nil
	default:
		return nil, malformed(TagPing, raw.Payload, fmt.Errorf("unknown ping mode"))
	}
}

// LoginPacket is the client's handshake: its chosen username and the
// protocol version it speaks.
type LoginPacket struct {
	Username string
	Version  model.Version
}

func (p LoginPacket) Tag() Tag { return TagLogin }

func (p LoginPacket) Encode() wire.RawPacket {
	return wire.RawPacket{Payload: fmt.Sprintf("%s;%s", p.Username, p.Version)}
}

func DecodeLogin(raw wire.RawPacket) (Packet, error) {
	if err := checkTag(raw, TagLogin); err != nil {
		return nil, err
	}
	fields, err := splitExact(TagLogin, raw.Payload, ";", 2)
	if err != nil {
		return nil, err
	}
	version, err := model.ParseVersion(fields[1])
	if err != nil {
		return nil, malformed(TagLogin, raw.Payload, err)
	}
	return LoginPacket{Username: fields[0], Version: version}, nil
}

// DisconnectPacket has no payload; either side sends it to end the session
// cleanly.
type DisconnectPacket struct{}

func (p DisconnectPacket) Tag() Tag            { return TagDisconnect }
func (p DisconnectPacket) Encode() wire.RawPacket { return wire.RawPacket{} }

func DecodeDisconnect(raw wire.RawPacket) (Packet, error) {
	if err := checkTag(raw, TagDisconnect); err != nil {
		return nil, err
	}
	return DisconnectPacket{}, nil
}

// SavePacket requests the server persist the client's world state. No
// payload; the persistence format itself is out of scope.
type SavePacket struct{}

func (p SavePacket) Tag() Tag               { return TagSave }
func (p SavePacket) Encode() wire.RawPacket { return wire.RawPacket{} }

func DecodeSave(raw wire.RawPacket) (Packet, error) {
	if err := checkTag(raw, TagSave); err != nil {
		return nil, err
	}
	return SavePacket{}, nil
}

// DiePacket notifies the server the player's character has died. No payload.
type DiePacket struct{}

func (p DiePacket) Tag() Tag               { return TagDie }
func (p DiePacket) Encode() wire.RawPacket { return wire.RawPacket{} }

func DecodeDie(raw wire.RawPacket) (Packet, error) {
	if err := checkTag(raw, TagDie); err != nil {
		return nil, err
	}
	return DiePacket{}, nil
}

// RespawnPacket requests a fresh spawn after death. No payload.
type RespawnPacket struct{}

func (p RespawnPacket) Tag() Tag               { return TagRespawn }
func (p RespawnPacket) Encode() wire.RawPacket { return wire.RawPacket{} }

func DecodeRespawn(raw wire.RawPacket) (Packet, error) {
	if err := checkTag(raw, TagRespawn); err != nil {
		return nil, err
	}
	return RespawnPacket{}, nil
}
