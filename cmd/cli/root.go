package cli

import (
	"github.com/kcaldas/microshell/pkg/config"
	"github.com/kcaldas/microshell/pkg/history"
	"github.com/kcaldas/microshell/pkg/logging"
	"github.com/kcaldas/microshell/pkg/transport"
	"github.com/kcaldas/microshell/pkg/version"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath string
	envFile    string
	histFile   string
	verbose    bool
	quiet      bool

	// Transport flags
	execLines  []string
	usePTY     bool
	serialPort string
	baudRate   int
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "microshell",
	Short: "Line-editing command shell for serial consoles",
	Long: `microshell runs a small command line engine of the kind found on
microcontroller consoles. It decodes VT100 keys, edits the line in place,
keeps a short history and dispatches commands by name.

By default it talks to this terminal. Use --pty to expose it on a
pseudo-terminal or --serial to drive a real serial port. With --exec the
given lines are run in order and the shell exits.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.LoadDotEnv(envFile); err != nil {
			return err
		}

		// Configure logger based on flags
		var logger logging.Logger
		if quiet {
			logger = logging.NewQuietLogger()
		} else if verbose {
			logger = logging.NewVerboseLogger()
		} else {
			logger = logging.NewDefaultLogger()
		}
		logging.SetGlobalLogger(logger)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runShell(cmd)
	},
}

func init() {
	// Global flags available to all commands
	RootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "shell config file (default ~/.microshell.yaml)")
	RootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "file of MICROSHELL_* overrides loaded before the config")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output (debug level)")
	RootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "quiet output (errors only)")
	RootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	// Transport selection (only for the shell itself, not subcommands)
	RootCmd.Flags().StringVar(&histFile, "history-file", "~/"+history.DefaultFileName, "file the line history is kept in between runs (empty disables)")
	RootCmd.Flags().BoolVar(&usePTY, "pty", false, "serve the shell on a new pseudo-terminal")
	RootCmd.Flags().StringVar(&serialPort, "serial", "", "serve the shell on a serial port, e.g. /dev/ttyUSB0")
	RootCmd.Flags().IntVar(&baudRate, "baud", transport.DefaultBaudRate, "serial baud rate")
	RootCmd.Flags().StringArrayVarP(&execLines, "exec", "e", nil, "run this command line and exit (repeatable)")
	RootCmd.MarkFlagsMutuallyExclusive("exec", "pty", "serial")

	addCommands()
}

// addCommands adds all CLI subcommands to the root command
func addCommands() {
	RootCmd.AddCommand(newCommandsCommand())
	RootCmd.AddCommand(newVersionCommand())
}
