//go:build wireinject

package di

import (
	"github.com/google/wire"
	"github.com/kcaldas/microshell/pkg/config"
	"github.com/kcaldas/microshell/pkg/events"
	"github.com/kcaldas/microshell/pkg/logging"
	"github.com/kcaldas/microshell/pkg/shell"
	"github.com/kcaldas/microshell/pkg/vt100"
)

// ConfigPath is the YAML file the shell limits are read from. Empty selects
// the default path in the home directory.
type ConfigPath string

// Shared event bus instance
var eventBus = events.NewEventBus()

// Wire providers for event bus system

func ProvidePublisher() events.Publisher {
	return eventBus
}

func ProvideSubscriber() events.Subscriber {
	return eventBus
}

// ProvideConfigManager provides a configuration manager
func ProvideConfigManager() config.Manager {
	return config.NewConfigManager()
}

// ProvideShellConfig loads and validates the shell limits.
func ProvideShellConfig(path ConfigPath, manager config.Manager) (config.Shell, error) {
	return config.Load(string(path), manager)
}

// ProvideEngineOptions binds Ctrl-C to cancel the line and Ctrl-D to delete
// forward, as an interactive terminal user expects.
func ProvideEngineOptions(logger logging.Logger, publisher events.Publisher) []shell.Option {
	return []shell.Option{
		shell.WithLogger(logger),
		shell.WithPublisher(publisher),
		shell.WithDecoderOptions(
			vt100.WithControl(vt100.ETX, vt100.Cancel),
			vt100.WithControl(vt100.EOT, vt100.DeleteForward),
		),
	}
}

// NewEngine builds an engine from loaded limits.
func NewEngine(cfg config.Shell, opts []shell.Option) *shell.Engine {
	return shell.New(cfg, opts...)
}

// ProvideEngine is an injector function - Wire will generate the implementation
func ProvideEngine(path ConfigPath, logger logging.Logger) (*shell.Engine, error) {
	wire.Build(
		ProvideConfigManager,
		ProvideShellConfig,
		ProvidePublisher,
		ProvideEngineOptions,
		NewEngine,
	)
	return nil, nil
}
