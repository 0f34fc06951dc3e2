// Package commands holds the command table of the shell: the programs a user
// can invoke, the tokenizer that turns a submitted line into argv, and the
// dispatcher that connects the two.
package commands

// Status is what a program reports back to the shell.
type Status int

const (
	// Success means the program completed.
	Success Status = 0
	// Failure means the program ran but could not do what was asked.
	Failure Status = 1
	// IOPending means the program started work that completes later through
	// its own mechanism. The shell does not poll it; the status is surfaced
	// to the embedding application.
	IOPending Status = -1
)

func (s Status) String() string {
	switch s {
	case Success:
		return "success"
	case Failure:
		return "failure"
	case IOPending:
		return "io-pending"
	default:
		return "unknown"
	}
}

// ErrorCode classifies the failures programs report through
// Terminal.PrintError. The shell only formats them.
type ErrorCode int

const (
	CodeArgCount   ErrorCode = iota // missing or extra arguments
	CodeOutOfRange                  // argument outside the accepted range
	CodeValue                       // argument has an unexpected value
	CodeAction                      // action not valid in the current state
	CodeParse                       // input could not be parsed
	CodeStorage                     // storage or memory device unavailable
	CodeIO                          // I/O device failure interrupted the program
)

var codeNames = [...]string{
	CodeArgCount:   "ARGCOUNT",
	CodeOutOfRange: "OUTOFRANGE",
	CodeValue:      "VALUE",
	CodeAction:     "ACTION",
	CodeParse:      "PARSE",
	CodeStorage:    "STORAGE",
	CodeIO:         "IO",
}

func (c ErrorCode) String() string {
	if c >= 0 && int(c) < len(codeNames) {
		return codeNames[c]
	}
	return "UNKNOWN"
}

// Terminal is the output surface a running program gets.
type Terminal interface {
	Print(s string)
	Println(s string)
	Printf(format string, args ...any)
	PrintError(code ErrorCode, field string)
}

// Program is a command the shell can run. args[0] is the name the program
// was invoked by; len(args) is the argument count. Programs validate their
// own arguments and report problems through term.
type Program interface {
	Run(term Terminal, args []string) Status
}

// ProgramFunc adapts a function to the Program interface.
type ProgramFunc func(term Terminal, args []string) Status

// Run calls f.
func (f ProgramFunc) Run(term Terminal, args []string) Status {
	return f(term, args)
}
