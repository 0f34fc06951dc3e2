package cli

import (
	"github.com/kcaldas/microshell/pkg/commands"
	"github.com/kcaldas/microshell/pkg/events"
	"github.com/kcaldas/microshell/pkg/logging"
)

// sessionStats tallies the command outcomes one engine publishes. Handlers
// run on the engine's tick, so no locking is needed.
type sessionStats struct {
	session  string
	logger   logging.Logger
	executed int
	failed   int
	pending  int
	notFound int
}

// watchSession subscribes to the outcomes published by the engine with the
// given session id. Events from other sessions on the same bus are ignored.
func watchSession(sub events.Subscriber, session string, logger logging.Logger) *sessionStats {
	s := &sessionStats{session: session, logger: logger}

	sub.Subscribe(events.TopicCommandExecuted, func(e interface{}) {
		ev, ok := e.(events.CommandExecuted)
		if !ok || ev.Session != s.session {
			return
		}
		s.executed++
		switch ev.Status {
		case commands.Success:
		case commands.IOPending:
			s.pending++
			s.logger.Info("command left I/O pending", "command", ev.Name)
		default:
			s.failed++
			s.logger.Debug("command failed", "command", ev.Name, "status", ev.Status)
		}
	})

	sub.Subscribe(events.TopicCommandNotFound, func(e interface{}) {
		ev, ok := e.(events.CommandNotFound)
		if !ok || ev.Session != s.session {
			return
		}
		s.notFound++
		s.logger.Debug("unknown command", "command", ev.Name)
	})

	return s
}

func (s *sessionStats) report() {
	s.logger.Info("shell session ended",
		"session", s.session,
		"executed", s.executed,
		"failed", s.failed,
		"io_pending", s.pending,
		"not_found", s.notFound)
}
