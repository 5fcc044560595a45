// Package session implements the per-client state machine and read loop
// described in the protocol core: handshake, bad-packet budget enforcement,
// and dispatch of decoded packets to their handlers.
package session

import (
	"bufio"
	"io"
	"net"
	"sync"

	lru "github.com/hashicorp/golang-lru"
	"github.com/sirupsen/logrus"

	"minicraftplus-server/internal/model"
	"minicraftplus-server/internal/proto"
	"minicraftplus-server/internal/wire"
	"minicraftplus-server/internal/world"
)

// State is one node of the session state machine.
type State int

const (
	StateNew State = iota
	StateAuthed
	StateLoading
	StatePlaying
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateNew:
		return "new"
	case StateAuthed:
		return "authed"
	case StateLoading:
		return "loading"
	case StatePlaying:
		return "playing"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// BadPacketLimit is the count of bad packets a session tolerates before
// being force-disconnected. The 16th bad packet crosses the threshold.
const BadPacketLimit = 15

// announceCacheSize bounds the per-session set of entity ids remembered as
// already-announced via an Add packet.
const announceCacheSize = 4096

// Session is one connected client's state machine and I/O loop.
type Session struct {
	conn   net.Conn
	reader *bufio.Reader

	writeMu sync.Mutex

	store *world.Store
	log   *logrus.Entry

	state          State
	badPackets     int
	badPacketLimit int

	Username string
	Version  model.Version
	PlayerID model.EntityId
	World    *world.World

	announced *lru.Cache
}

// New wraps an accepted connection in a fresh session bound to store. A
// badPacketLimit of 0 falls back to BadPacketLimit.
func New(conn net.Conn, store *world.Store, log *logrus.Entry, badPacketLimit int) *Session {
	cache, _ := lru.New(announceCacheSize)
	if badPacketLimit <= 0 {
		badPacketLimit = BadPacketLimit
	}
	return &Session{
		conn:           conn,
		reader:         bufio.NewReader(conn),
		store:          store,
		log:            log,
		state:          StateNew,
		announced:      cache,
		badPacketLimit: badPacketLimit,
	}
}

// State returns the session's current state-machine node.
func (s *Session) State() State { return s.state }

// HasAnnounced reports whether id has already been sent to this client via
// an Add packet.
func (s *Session) HasAnnounced(id model.EntityId) bool {
	return s.announced.Contains(id)
}

// MarkAnnounced records that id has been sent to this client.
func (s *Session) MarkAnnounced(id model.EntityId) {
	s.announced.Add(id, struct{}{})
}

// Send encodes and writes p as a single frame. Writes to one socket are
// serialized with writeMu so broadcasts from the tick thread never
// interleave with a session's own replies.
func (s *Session) Send(p proto.Packet) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	return wire.WriteFrame(s.conn, proto.EncodeRaw(p))
}

// Close transitions the session to Closed and releases the socket. Safe to
// call more than once.
func (s *Session) Close() error {
	if s.state == StateClosed {
		return nil
	}
	s.state = StateClosed
	return s.conn.Close()
}

// fail sends a terminal Invalid packet with message then closes the
// session.
func (s *Session) fail(message string) {
	_ = s.Send(proto.InvalidPacket{Message: message})
	_ = s.Close()
}

// Run drives the session's blocking read loop until the connection closes
// or the bad-packet threshold is crossed. Transport and frame errors are
// fatal for the session; decode and unhandled-packet errors only affect the
// bad-packet counter.
func (s *Session) Run(handlers Table) {
	defer s.Close()

	for s.state != StateClosed {
		raw, err := wire.ReadFrame(s.reader)
		if err != nil {
			if err != io.EOF {
				s.log.WithError(err).Warn("session: transport error, closing")
			}
			return
		}

		handled, err := s.dispatch(handlers, raw)
		if err != nil {
			s.log.WithError(err).WithField("tag", raw.Tag).Debug("session: decode error")
			s.badPackets++
		} else if !handled {
			s.badPackets++
		} else {
			s.badPackets = 0
		}

		if s.badPackets > s.badPacketLimit {
			s.fail("Many bad packets")
			return
		}
	}
}

// dispatch decodes raw and routes it to the handler registered for its tag
// given the session's current state. It returns handled=false for any
// packet whose state doesn't accept it, including the reserved Usernames
// tag, which is recognized but never handled.
func (s *Session) dispatch(handlers Table, raw wire.RawPacket) (handled bool, err error) {
	pkt, err := proto.Decode(raw)
	if err != nil {
		return false, err
	}
	if pkt == nil {
		return false, nil
	}

	fn, ok := handlers[proto.Tag(raw.Tag)]
	if !ok {
		return false, nil
	}
	return fn(s, pkt)
}

