package server

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// Sender can receive one-line responses from a dispatched command.
type Sender interface {
	Reply(line string)
}

// stdoutSender writes replies straight to the process's standard output,
// matching how the admin channel is normally wired from cmd/.
type stdoutSender struct{ w io.Writer }

func (s stdoutSender) Reply(line string) {
	fmt.Fprintln(s.w, line)
}

// CommandExecutor runs one admin command's body.
type CommandExecutor func(args []string, sender Sender)

// CommandTable is a lowercase-command-name-keyed executor registry.
type CommandTable map[string]CommandExecutor

// NewDefaultCommandTable returns the built-in stop/ping admin commands.
func (s *Server) NewDefaultCommandTable() CommandTable {
	return CommandTable{
		"stop": func(args []string, sender Sender) {
			sender.Reply("stopping server")
			s.Stop()
		},
		"ping": func(args []string, sender Sender) {
			sender.Reply(fmt.Sprintf("pong (%d sessions)", s.SessionCount()))
		},
	}
}

// DispatchCommand splits line on spaces, lowercases the first token, and
// invokes the matching executor with the remaining arguments. Unknown
// commands produce a one-line error via sender.
func DispatchCommand(line string, table CommandTable, sender Sender) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return
	}
	name := strings.ToLower(fields[0])
	executor, ok := table[name]
	if !ok {
		sender.Reply(fmt.Sprintf("unknown command: %s", name))
		return
	}
	executor(fields[1:], sender)
}

// ReadAdminCommands reads newline-delimited commands from r until EOF or a
// read error, dispatching each non-empty line against table. It does not
// watch the server's running state; cmd/ runs it on its own goroutine
// reading os.Stdin and exits once "stop" has run.
func ReadAdminCommands(r io.Reader, w io.Writer, table CommandTable, log *logrus.Entry) {
	scanner := bufio.NewScanner(r)
	sender := stdoutSender{w: w}
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		DispatchCommand(line, table, sender)
	}
	if err := scanner.Err(); err != nil {
		log.WithError(err).Warn("server: admin command reader stopped")
	}
}
