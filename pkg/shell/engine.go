// Package shell ties the pieces of the command line together: it pulls bytes
// from a transport, decodes them into edit events, edits the line, and hands
// submitted lines to the command dispatcher.
//
// An Engine is owned by one goroutine. The embedding application calls Task
// on every scheduler tick; Task never blocks.
package shell

import (
	"github.com/google/uuid"
	"github.com/kcaldas/microshell/pkg/commands"
	"github.com/kcaldas/microshell/pkg/config"
	"github.com/kcaldas/microshell/pkg/events"
	"github.com/kcaldas/microshell/pkg/format"
	"github.com/kcaldas/microshell/pkg/history"
	"github.com/kcaldas/microshell/pkg/linebuf"
	"github.com/kcaldas/microshell/pkg/logging"
	"github.com/kcaldas/microshell/pkg/transport"
	"github.com/kcaldas/microshell/pkg/vt100"
)

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for debug tracing. The engine adds its
// component and session attributes.
func WithLogger(logger logging.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

// WithPublisher makes the engine publish command outcomes.
func WithPublisher(p events.Publisher) Option {
	return func(e *Engine) { e.publisher = p }
}

// WithDecoderOptions passes options to the escape sequence decoder, for
// example extra control key bindings.
func WithDecoderOptions(opts ...vt100.Option) Option {
	return func(e *Engine) { e.decoderOpts = append(e.decoderOpts, opts...) }
}

// Engine is a command line shell bound to one transport.
type Engine struct {
	cfg config.Shell

	decoder    *vt100.Decoder
	editor     *linebuf.Editor
	hist       *history.Store
	registry   *commands.Registry
	dispatcher *commands.Dispatcher

	in    transport.Reader
	out   transport.Writer
	ready bool
	last  commands.Status

	session     string
	logger      logging.Logger
	publisher   events.Publisher
	decoderOpts []vt100.Option
}

// New allocates every buffer the engine will use, sized from cfg. The engine
// does nothing until Init attaches a transport.
func New(cfg config.Shell, opts ...Option) *Engine {
	e := &Engine{
		cfg:     cfg,
		session: uuid.NewString(),
		last:    commands.Success,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = logging.NewComponentLogger("shell")
	} else {
		e.logger = e.logger.With("component", "shell")
	}
	e.logger = e.logger.With("session", e.session)

	buf := linebuf.New(cfg.MaxInput)
	e.hist = history.NewStore(cfg.HistoryDepth, buf.Cap())
	e.editor = linebuf.NewEditor(buf, e.hist, linebuf.WithBell(cfg.Bell))
	e.decoder = vt100.NewDecoder(e.decoderOpts...)
	e.registry = commands.NewRegistry(cfg.MaxCommands, cfg.MaxName)
	e.dispatcher = commands.NewDispatcher(e.registry, commands.NewTokenizer(buf.Cap(), cfg.MaxArgs))

	return e
}

// Init attaches the transport, prints banner and shows the first prompt.
// It returns false, changing nothing, when either side of the transport is
// missing or banner is longer than the configured maximum. Init may be
// called again to re-attach.
func (e *Engine) Init(r transport.Reader, w transport.Writer, banner string) bool {
	if r == nil || w == nil {
		e.logger.Debug("init rejected", "reason", "missing reader or writer")
		return false
	}
	if len(banner) > e.cfg.MaxBanner {
		e.logger.Debug("init rejected", "reason", "banner too long", "length", len(banner), "max", e.cfg.MaxBanner)
		return false
	}

	e.in, e.out = r, w
	e.decoder.Reset()
	e.editor.Reset()
	e.ready = true

	if banner != "" {
		e.Println(banner)
	}
	e.prompt()

	e.logger.Debug("shell initialized", "commands", e.registry.Len(), "history", e.hist.Cap())
	return true
}

// Register adds p under name. It fails when the table is full or the name is
// unusable; registering an existing name adds an entry that is never
// reached.
func (e *Engine) Register(p commands.Program, name string) error {
	if err := e.registry.Register(name, p); err != nil {
		e.logger.Debug("register failed", "command", name, "error", err)
		return err
	}
	e.logger.Debug("command registered", "command", name, "count", e.registry.Len())
	return nil
}

// UnregisterAll empties the command table.
func (e *Engine) UnregisterAll() {
	e.registry.UnregisterAll()
	e.logger.Debug("commands cleared")
}

// Commands returns the registered commands in registration order.
func (e *Engine) Commands() []commands.Entry {
	return e.registry.Entries()
}

// PrintCommands lists every registered command name, one per line.
func (e *Engine) PrintCommands() {
	e.Println("Available commands:")
	for _, name := range e.registry.Names() {
		e.Print("  ")
		e.Println(name)
	}
}

// PrintError reports a program failure as "error: KIND - field".
func (e *Engine) PrintError(code commands.ErrorCode, field string) {
	e.Printf("error: %s - %s\r\n", code.String(), field)
}

// Print writes s as is.
func (e *Engine) Print(s string) {
	if e.out == nil {
		return
	}
	transport.WriteString(e.out, s)
}

// Println writes s followed by CR LF.
func (e *Engine) Println(s string) {
	e.Print(s)
	e.Print("\r\n")
}

// Printf renders format with the shell's own formatter.
func (e *Engine) Printf(f string, args ...any) {
	if e.out == nil {
		return
	}
	format.Fprintf(e.out, f, args...)
}

// Task is the per-tick step. It consumes bytes until the reader runs dry or
// one line has been dispatched, and returns the number of bytes consumed.
// It returns 0 at once when the engine is not initialized or no byte is
// waiting.
func (e *Engine) Task() int {
	if !e.ready {
		return 0
	}

	n := 0
	for {
		b, ok := e.in.Get()
		if !ok {
			return n
		}
		n++

		ev, ok := e.decoder.Feed(b)
		if !ok {
			continue
		}

		switch e.editor.Apply(ev, e.out) {
		case linebuf.ActionSubmit:
			e.execute()
			e.editor.Reset()
			e.prompt()
			return n
		case linebuf.ActionCancel:
			e.prompt()
		}
	}
}

// History returns the stored lines, oldest first.
func (e *Engine) History() []string {
	return e.hist.Entries()
}

// Preload seeds the history with lines, oldest first, as if they had been
// submitted. Lines wider than the line buffer are truncated.
func (e *Engine) Preload(lines []string) {
	for _, line := range lines {
		e.hist.Append([]byte(line))
	}
}

// SessionID identifies this engine in logs and published events.
func (e *Engine) SessionID() string {
	return e.session
}

// Last returns the status of the most recently dispatched line.
func (e *Engine) Last() commands.Status {
	return e.last
}

// Config returns the limits the engine was built with.
func (e *Engine) Config() config.Shell {
	return e.cfg
}

func (e *Engine) execute() {
	res := e.dispatcher.Dispatch(e, e.editor.Line())
	e.last = res.Status

	if len(res.Args) == 0 {
		return
	}

	if !res.Found {
		e.logger.Debug("command not found", "command", res.Name())
		e.publish(events.TopicCommandNotFound, events.CommandNotFound{
			Session: e.session,
			Name:    res.Name(),
		})
		return
	}

	e.logger.Debug("command dispatched", "command", res.Name(), "argc", len(res.Args), "status", res.Status)
	e.publish(events.TopicCommandExecuted, events.CommandExecuted{
		Session: e.session,
		Name:    res.Name(),
		Args:    append([]string(nil), res.Args...),
		Status:  res.Status,
	})
}

func (e *Engine) publish(topic string, event interface{}) {
	if e.publisher != nil {
		e.publisher.Publish(topic, event)
	}
}

func (e *Engine) prompt() {
	e.Print(e.cfg.Prompt)
}

var _ commands.Terminal = (*Engine)(nil)
