package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"

	"github.com/kcaldas/microshell/internal/di"
	"github.com/kcaldas/microshell/pkg/history"
	"github.com/kcaldas/microshell/pkg/logging"
	"github.com/kcaldas/microshell/pkg/shell"
	"github.com/kcaldas/microshell/pkg/transport"
	"github.com/kcaldas/microshell/pkg/version"
)

// debugLogFile is the default log file used while the shell owns the
// terminal.
const debugLogFile = "microshell.log"

// port is a transport the shell can be served on.
type port interface {
	transport.Reader
	transport.Writer
	Ended() bool
	Err() error
	Close() error
}

func runShell(cmd *cobra.Command) error {
	p, interactive, err := openPort(cmd.OutOrStdout(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer p.Close()

	// Log lines on stderr would land in the middle of the raw terminal.
	if interactive {
		fileLogger, closeLog := logging.NewFileLoggerFromEnv(debugLogFile)
		if verbose {
			fileLogger.SetLevel(slog.LevelDebug)
		}
		defer closeLog()
		logging.SetGlobalLogger(fileLogger)
	}
	logger := logging.NewComponentLogger("cli")

	engine, err := di.ProvideEngine(di.ConfigPath(configPath), logging.GetGlobalLogger())
	if err != nil {
		return fmt.Errorf("failed to initialize shell: %w", err)
	}

	stats := watchSession(di.ProvideSubscriber(), engine.SessionID(), logger)

	demo := NewDemo(engine)
	if _, err := demo.Register(logger); err != nil {
		return fmt.Errorf("failed to register commands: %w", err)
	}

	journal, err := openHistory(engine)
	if err != nil {
		logging.LogError(logger, "history file unavailable", err)
	}

	if !engine.Init(p, p, version.GetInfo().Banner()) {
		return fmt.Errorf("failed to initialize shell: banner longer than %d bytes", engine.Config().MaxBanner)
	}
	logger.Debug("shell started", "session", engine.SessionID(), "tick", engine.Config().Tick())

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runLoop(ctx, engine, demo, p, engine.Config().Tick())
	stats.report()

	if journal != nil {
		if err := journal.Save(engine.History()); err != nil {
			logging.LogError(logger, "failed to save history", err, "path", journal.Path())
		}
	}

	if err := p.Err(); err != nil {
		logging.LogError(logger, "transport failed", err)
		return fmt.Errorf("transport failed: %w", err)
	}
	return nil
}

// openHistory seeds the engine with the lines saved by the previous run. It
// returns nil when the history file is disabled or could not be read, so an
// unreadable file is never overwritten on exit.
func openHistory(engine *shell.Engine) (*history.File, error) {
	if histFile == "" || len(execLines) > 0 || engine.Config().HistoryDepth == 0 {
		return nil, nil
	}
	path, err := homedir.Expand(histFile)
	if err != nil {
		return nil, err
	}

	journal := history.NewFile(path, engine.Config().HistoryDepth)
	lines, err := journal.Load()
	if err != nil {
		return nil, err
	}
	engine.Preload(lines)
	return journal, nil
}

// openPort picks the transport from the flags. interactive is true when the
// shell takes over this process's terminal.
func openPort(out, status io.Writer) (p port, interactive bool, err error) {
	switch {
	case len(execLines) > 0:
		return newScriptPort(execLines, out), false, nil

	case usePTY:
		pt, err := transport.OpenPTY(transport.DefaultStreamBuffer)
		if err != nil {
			return nil, false, err
		}
		logging.NewTransportLogger("pty", pt.Name()).Info("pseudo-terminal ready")
		fmt.Fprintf(status, "shell attached to %s\n", pt.Name())
		return pt, false, nil

	case serialPort != "":
		sp, err := transport.OpenSerial(serialPort, baudRate, transport.DefaultStreamBuffer)
		if err != nil {
			return nil, false, err
		}
		logging.NewTransportLogger("serial", sp.Name()).Info("serial port open", "baud", baudRate)
		return sp, false, nil

	default:
		sp, err := openStdio()
		if err != nil {
			return nil, false, fmt.Errorf("failed to set terminal raw mode: %w", err)
		}
		return sp, isTerminal(os.Stdin), nil
	}
}

// scriptPort feeds a fixed set of lines to the shell and copies everything
// the shell wrote to out when closed.
type scriptPort struct {
	*transport.Loopback
	out io.Writer
}

func newScriptPort(lines []string, out io.Writer) *scriptPort {
	lb := transport.NewLoopback("")
	for _, line := range lines {
		lb.Feed(line + "\r")
	}
	return &scriptPort{Loopback: lb, out: out}
}

func (p *scriptPort) Ended() bool { return p.Pending() == 0 }
func (p *scriptPort) Err() error  { return nil }

func (p *scriptPort) Close() error {
	_, err := io.WriteString(p.out, p.TakeOutput())
	return err
}

// runLoop calls Task once per tick until the exit command runs, the input
// ends or ctx is cancelled.
func runLoop(ctx context.Context, engine *shell.Engine, demo *Demo, p port, tick time.Duration) {
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	for {
		engine.Task()
		if demo.Quit() || p.Ended() {
			return
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
