package server

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"minicraftplus-server/internal/session"
	"minicraftplus-server/internal/world"
)

type recordingSender struct {
	lines []string
}

func (s *recordingSender) Reply(line string) {
	s.lines = append(s.lines, line)
}

func TestDispatchCommand_UnknownCommand(t *testing.T) {
	sender := &recordingSender{}
	DispatchCommand("fly", CommandTable{}, sender)
	require.Len(t, sender.lines, 1)
	assert.Equal(t, "unknown command: fly", sender.lines[0])
}

func TestDispatchCommand_EmptyLineIsNoop(t *testing.T) {
	sender := &recordingSender{}
	DispatchCommand("   ", CommandTable{}, sender)
	assert.Empty(t, sender.lines)
}

func TestDispatchCommand_LowercasesCommandName(t *testing.T) {
	sender := &recordingSender{}
	called := false
	table := CommandTable{"stop": func(args []string, s Sender) { called = true }}
	DispatchCommand("STOP", table, sender)
	assert.True(t, called)
}

func TestDefaultCommandTable_PingReportsSessionCount(t *testing.T) {
	srv, err := New("127.0.0.1:0", world.NewStore(), session.Table{}, discardLog(), 0, 0)
	require.NoError(t, err)
	defer srv.Stop()

	sender := &recordingSender{}
	table := srv.NewDefaultCommandTable()
	DispatchCommand("ping", table, sender)

	require.Len(t, sender.lines, 1)
	assert.True(t, strings.Contains(sender.lines[0], "0 sessions"))
}

func TestDefaultCommandTable_StopStopsServer(t *testing.T) {
	srv, err := New("127.0.0.1:0", world.NewStore(), session.Table{}, discardLog(), 0, 0)
	require.NoError(t, err)
	srv.Start()

	sender := &recordingSender{}
	table := srv.NewDefaultCommandTable()
	DispatchCommand("stop", table, sender)

	require.Len(t, sender.lines, 1)
	assert.Equal(t, "stopping server", sender.lines[0])
	assert.False(t, srv.isRunning())
}
