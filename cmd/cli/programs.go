package cli

import (
	"errors"
	"strconv"
	"strings"

	"github.com/kcaldas/microshell/pkg/commands"
	"github.com/kcaldas/microshell/pkg/logging"
	"github.com/kcaldas/microshell/pkg/shell"
)

// Program describes one demo command.
type Program struct {
	Name    string
	Usage   string
	Summary string
	Run     commands.ProgramFunc
}

// Demo is the set of commands the microshell binary ships with. It stands in
// for the firmware commands a device would register: an LED, some
// arithmetic, and housekeeping.
type Demo struct {
	engine *shell.Engine
	led    bool
	quit   bool
}

// NewDemo creates the demo commands for engine. engine may be nil when only
// the descriptions are needed.
func NewDemo(engine *shell.Engine) *Demo {
	return &Demo{engine: engine}
}

// Programs returns the demo commands in registration priority order. When
// the command table is small, the ones at the end are left out. exit comes
// first since a raw terminal has no other way out.
func (d *Demo) Programs() []Program {
	return []Program{
		{"exit", "exit", "leave the shell", d.exit},
		{"help", "help", "list the available commands", d.help},
		{"led", "led <on|off|toggle>", "drive the status LED", d.ledCmd},
		{"echo", "echo [text...]", "print the arguments", d.echo},
		{"add", "add <a> <b>", "add two integers", d.add},
		{"history", "history", "show recently entered lines", d.history},
		{"clear", "clear", "clear the screen", d.clear},
	}
}

// Register adds as many demo commands as the engine's table holds. The
// names of commands that did not fit are returned.
func (d *Demo) Register(logger logging.Logger) ([]string, error) {
	var skipped []string
	for _, p := range d.Programs() {
		err := d.engine.Register(p.Run, p.Name)
		if errors.Is(err, commands.ErrRegistryFull) {
			skipped = append(skipped, p.Name)
			continue
		}
		if err != nil {
			return skipped, err
		}
	}
	if len(skipped) > 0 {
		logger.Warn("command table full, some demo commands unavailable",
			"skipped", strings.Join(skipped, ","), "max_commands", d.engine.Config().MaxCommands)
	}
	return skipped, nil
}

// LED reports the simulated LED state.
func (d *Demo) LED() bool {
	return d.led
}

// Quit reports whether the exit command has run.
func (d *Demo) Quit() bool {
	return d.quit
}

func (d *Demo) help(term commands.Terminal, args []string) commands.Status {
	d.engine.PrintCommands()
	return commands.Success
}

func (d *Demo) exit(term commands.Terminal, args []string) commands.Status {
	term.Println("bye")
	d.quit = true
	return commands.Success
}

func (d *Demo) ledCmd(term commands.Terminal, args []string) commands.Status {
	if len(args) != 2 {
		term.PrintError(commands.CodeArgCount, "led")
		return commands.Failure
	}

	switch args[1] {
	case "on":
		d.led = true
	case "off":
		d.led = false
	case "toggle":
		d.led = !d.led
	default:
		term.PrintError(commands.CodeValue, "state")
		return commands.Failure
	}

	if d.led {
		term.Println("LED is on")
	} else {
		term.Println("LED is off")
	}
	return commands.Success
}

func (d *Demo) echo(term commands.Terminal, args []string) commands.Status {
	term.Println(strings.Join(args[1:], " "))
	return commands.Success
}

func (d *Demo) add(term commands.Terminal, args []string) commands.Status {
	if len(args) != 3 {
		term.PrintError(commands.CodeArgCount, "add")
		return commands.Failure
	}

	var operands [2]int32
	for i, field := range [2]string{"a", "b"} {
		v, err := strconv.ParseInt(args[i+1], 0, 32)
		if errors.Is(err, strconv.ErrRange) {
			term.PrintError(commands.CodeOutOfRange, field)
			return commands.Failure
		}
		if err != nil {
			term.PrintError(commands.CodeParse, field)
			return commands.Failure
		}
		operands[i] = int32(v)
	}

	term.Printf("%d\r\n", int64(operands[0])+int64(operands[1]))
	return commands.Success
}

func (d *Demo) history(term commands.Terminal, args []string) commands.Status {
	for i, line := range d.engine.History() {
		term.Printf("%3d  %s\r\n", i+1, line)
	}
	return commands.Success
}

func (d *Demo) clear(term commands.Terminal, args []string) commands.Status {
	term.Print("\x1b[2J\x1b[H")
	return commands.Success
}
