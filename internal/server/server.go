// Package server drives the accept loop, the fixed-rate simulation tick,
// and the admin command channel.
package server

import (
	"net"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"minicraftplus-server/internal/session"
	"minicraftplus-server/internal/world"
)

// AcceptBacklog is the intended TCP accept backlog; the standard library's
// net.Listen does not expose a backlog knob directly, so this documents the
// target a deployment should size the OS's listen queue to.
const AcceptBacklog = 100

// DefaultTickRate is the simulation clock's target frequency when none is
// configured.
const DefaultTickRate = 60

// idleSleep is taken once per tick-loop iteration to avoid busy-spinning
// while waiting for the next tick boundary.
const idleSleep = 2 * time.Millisecond

// Server ties together the listener, the world store, and the session
// handler table.
type Server struct {
	listener net.Listener
	store    *world.Store
	handlers session.Table
	log      *logrus.Entry

	running int32

	mu       sync.Mutex
	sessions map[*session.Session]struct{}

	onTick     func(*world.Store)
	tickPeriod time.Duration

	badPacketLimit int
}

// New binds addr and returns a Server ready to Start. badPacketLimit is
// handed to every accepted session; 0 falls back to session.BadPacketLimit.
// tickRate of 0 falls back to DefaultTickRate.
func New(addr string, store *world.Store, handlers session.Table, log *logrus.Entry, badPacketLimit, tickRate int) (*Server, error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	if tickRate <= 0 {
		tickRate = DefaultTickRate
	}
	return &Server{
		listener:       listener,
		store:          store,
		handlers:       handlers,
		log:            log,
		sessions:       make(map[*session.Session]struct{}),
		badPacketLimit: badPacketLimit,
		tickPeriod:     time.Second / time.Duration(tickRate),
	}, nil
}

// OnTick registers the function invoked once per simulation tick. It is the
// single point where entity tick logic runs, per the concurrency model.
func (s *Server) OnTick(fn func(*world.Store)) {
	s.onTick = fn
}

// Start launches the accept loop and the tick loop as separate goroutines
// and returns immediately.
func (s *Server) Start() {
	atomic.StoreInt32(&s.running, 1)
	go s.acceptLoop()
	go s.tickLoop()
}

// Stop sets the running flag false; the accept loop unblocks by closing the
// listener, and the tick loop exits at its next checkpoint.
func (s *Server) Stop() {
	atomic.StoreInt32(&s.running, 0)
	_ = s.listener.Close()
}

func (s *Server) isRunning() bool {
	return atomic.LoadInt32(&s.running) != 0
}

func (s *Server) acceptLoop() {
	for s.isRunning() {
		conn, err := s.listener.Accept()
		if err != nil {
			if !s.isRunning() {
				return
			}
			s.log.WithError(err).Warn("server: accept error")
			continue
		}
		sess := session.New(conn, s.store, s.log.WithField("component", "session"), s.badPacketLimit)
		s.track(sess)
		go func() {
			defer s.untrack(sess)
			sess.Run(s.handlers)
		}()
	}
}

func (s *Server) track(sess *session.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess] = struct{}{}
}

func (s *Server) untrack(sess *session.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sess)
}

func (s *Server) tickLoop() {
	last := time.Now()
	var delta time.Duration

	for s.isRunning() {
		now := time.Now()
		delta += now.Sub(last)
		last = now

		for delta >= s.tickPeriod {
			if s.onTick != nil {
				s.onTick(s.store)
			}
			delta -= s.tickPeriod
		}

		time.Sleep(idleSleep)
	}
}

// SessionCount reports how many sessions are currently tracked, for admin
// commands and diagnostics.
func (s *Server) SessionCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
