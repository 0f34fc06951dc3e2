package commands

// Result describes one dispatched line.
type Result struct {
	// Args is the token vector; nil for a blank line. Only valid until the
	// next dispatch.
	Args []string
	// Found is false when the first token matched no registered command.
	Found  bool
	Status Status
}

// Name returns the command name, or "" for a blank line.
func (r Result) Name() string {
	if len(r.Args) == 0 {
		return ""
	}
	return r.Args[0]
}

// Dispatcher tokenizes lines and runs the matching program.
type Dispatcher struct {
	registry  *Registry
	tokenizer *Tokenizer
}

// NewDispatcher connects a registry and a tokenizer.
func NewDispatcher(registry *Registry, tokenizer *Tokenizer) *Dispatcher {
	return &Dispatcher{registry: registry, tokenizer: tokenizer}
}

// Dispatch runs line. A blank line succeeds without doing anything. An
// unknown command is reported on term and fails without running anything.
// Otherwise the program's own status is returned.
func (d *Dispatcher) Dispatch(term Terminal, line []byte) Result {
	args := d.tokenizer.Split(line)
	if len(args) == 0 {
		return Result{Status: Success}
	}

	p, ok := d.registry.Lookup(args[0])
	if !ok {
		term.Printf("error: command not found - %s\r\n", args[0])
		return Result{Args: args, Status: Failure}
	}

	return Result{Args: args, Found: true, Status: p.Run(term, args)}
}
