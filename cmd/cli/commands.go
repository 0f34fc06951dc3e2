package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	nameStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981")).Bold(true)
	usageStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	headingStyle = lipgloss.NewStyle().Bold(true).Underline(true)
)

// newCommandsCommand creates the commands command
func newCommandsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "commands",
		Short: "List the commands available inside the shell",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprint(cmd.OutOrStdout(), renderCommandList(NewDemo(nil).Programs()))
			return err
		},
	}
}

// renderCommandList lays the programs out in aligned columns.
func renderCommandList(programs []Program) string {
	width := 0
	for _, p := range programs {
		width = max(width, len(p.Usage))
	}

	var b strings.Builder
	b.WriteString(headingStyle.Render("Shell commands"))
	b.WriteString("\n")
	for _, p := range programs {
		name, args, _ := strings.Cut(p.Usage, " ")
		usage := nameStyle.Render(name)
		if args != "" {
			usage += " " + usageStyle.Render(args)
		}
		pad := strings.Repeat(" ", width-len(p.Usage)+2)
		b.WriteString("  " + usage + pad + p.Summary + "\n")
	}
	return b.String()
}
