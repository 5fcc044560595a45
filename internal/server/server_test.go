package server

import (
	"io"
	"net"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"minicraftplus-server/internal/session"
	"minicraftplus-server/internal/world"
)

func discardLog() *logrus.Entry {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log.WithField("component", "test")
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	srv, err := New("127.0.0.1:0", world.NewStore(), session.Table{}, discardLog(), 0, 0)
	require.NoError(t, err)
	t.Cleanup(srv.Stop)
	return srv
}

func TestServer_New_DefaultsTickRate(t *testing.T) {
	srv := newTestServer(t)
	assert.Equal(t, time.Second/DefaultTickRate, srv.tickPeriod)
}

func TestServer_New_HonorsExplicitTickRate(t *testing.T) {
	srv, err := New("127.0.0.1:0", world.NewStore(), session.Table{}, discardLog(), 0, 20)
	require.NoError(t, err)
	defer srv.Stop()
	assert.Equal(t, time.Second/20, srv.tickPeriod)
}

func TestServer_OnTick_FiresOnSchedule(t *testing.T) {
	srv, err := New("127.0.0.1:0", world.NewStore(), session.Table{}, discardLog(), 0, 200)
	require.NoError(t, err)
	defer srv.Stop()

	ticks := make(chan struct{}, 8)
	srv.OnTick(func(*world.Store) {
		select {
		case ticks <- struct{}{}:
		default:
		}
	})
	srv.Start()

	select {
	case <-ticks:
	case <-time.After(time.Second):
		t.Fatal("tick loop never fired")
	}
}

func TestServer_AcceptLoop_TracksAndUntracksSessions(t *testing.T) {
	srv := newTestServer(t)
	addr := srv.listener.Addr().String()
	srv.Start()

	conn, err := net.Dial("tcp", addr)
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return srv.SessionCount() == 1
	}, time.Second, 10*time.Millisecond)

	conn.Close()

	require.Eventually(t, func() bool {
		return srv.SessionCount() == 0
	}, time.Second, 10*time.Millisecond)
}

func TestServer_Stop_ClosesListener(t *testing.T) {
	srv := newTestServer(t)
	srv.Start()
	srv.Stop()
	assert.False(t, srv.isRunning())
}
