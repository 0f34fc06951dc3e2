package events

import "github.com/kcaldas/microshell/pkg/commands"

// Topics published by the shell engine.
const (
	TopicCommandExecuted = "command.executed"
	TopicCommandNotFound = "command.notfound"
)

// CommandExecuted is published after a registered program returns,
// including programs that return IOPending.
type CommandExecuted struct {
	Session string
	Name    string
	Args    []string // copy, safe to keep
	Status  commands.Status
}

// Topic returns the event topic for executed commands
func (e CommandExecuted) Topic() string {
	return TopicCommandExecuted
}

// CommandNotFound is published when a line names no registered program.
type CommandNotFound struct {
	Session string
	Name    string
}

// Topic returns the event topic for unknown commands
func (e CommandNotFound) Topic() string {
	return TopicCommandNotFound
}
