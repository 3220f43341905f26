// Package cli wires the command line: the interactive guide, the web server and
// the headless commands.
package cli

import (
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"mlguide/internal/catalog"
	"mlguide/internal/config"
	"mlguide/internal/eventbus"
	"mlguide/internal/logging"
	"mlguide/internal/ui"
)

// AppName is the binary and config directory name
const AppName = "mlguide"

// rootOptions holds the persistent flags shared by every command
type rootOptions struct {
	configPath string
	logLevel   string
}

// loadConfig reads the config file, or defaults when it is missing, and
// applies --log-level on top
func (o *rootOptions) loadConfig() (*config.Config, error) {
	cfg, err := config.NewConfigService(o.configPath).Load()
	if err != nil {
		return nil, err
	}
	if err := o.applyLogLevel(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (o *rootOptions) applyLogLevel(cfg *config.Config) error {
	if o.logLevel == "" {
		return nil
	}
	cfg.Log.Level = o.logLevel
	return errors.Wrap(cfg.Validate(), "invalid --log-level")
}

// NewRootCmd builds the command tree
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   AppName + " [query]",
		Short: "Which model fits which dataset",
		Long: `mlguide is a searchable cheat-sheet of classic and deep learning models,
the datasets they suit, and why data cleaning matters.

Run it without a command to open the interactive guide. An optional query
pre-fills the search box.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			query := ""
			if len(args) == 1 {
				query = args[0]
			}
			return runGuide(opts, query)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default "+config.DefaultPath()+")")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn or error")

	cmd.AddCommand(
		newServeCmd(opts),
		newListCmd(opts),
		newConfigCmd(opts),
	)
	return cmd
}

// Execute runs the root command and exits non-zero on failure
func Execute() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		cmd.PrintErrln("Error:", err)
		os.Exit(1)
	}
}

// guide is a terminal session whose logging is already redirected to a file
type guide struct {
	bus         eventbus.EventBus
	program     *tea.Program
	logFile     io.Closer
	unsubscribe func()
}

// Close stops event delivery and releases the log file
func (g *guide) Close() {
	g.unsubscribe()
	g.bus.Close()
	g.logFile.Close()
}

// prepareGuide loads config and moves logging to a file before the bus
// publishes anything, so no log line reaches the terminal the UI is about to own
func prepareGuide(opts *rootOptions, query string) (*guide, error) {
	cfg, err := opts.loadConfig()
	if err != nil {
		return nil, err
	}
	if query != "" {
		cfg.UI.InitialQuery = query
	}

	logFile, err := logging.SetupFile(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return nil, err
	}

	bus := eventbus.New()
	bus.Publish(eventbus.ConfigLoadedEvent{Path: config.NewConfigService(opts.configPath).Path()})

	store := catalog.Default
	model := ui.NewModel(bus, cfg, store)
	p := tea.NewProgram(model, tea.WithAltScreen())
	model.SetProgram(p)

	// Forward errors to the UI status line; Send is a no-op once the program exits
	unsubscribe := bus.Subscribe(eventbus.EventError, func(e eventbus.DomainEvent) {
		p.Send(ui.EventMsg{Event: e})
	})

	bus.Subscribe(eventbus.EventQuickFilterPressed, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.QuickFilterPressedEvent); ok {
			log.Info().Str("query", ev.Query).Msg("quick filter pressed")
		}
	})

	bus.Publish(eventbus.AppReadyEvent{Models: store.Len(), Tips: len(store.Tips())})
	log.Info().Str("query", cfg.UI.InitialQuery).Msg("starting guide")

	return &guide{bus: bus, program: p, logFile: logFile, unsubscribe: unsubscribe}, nil
}

// runGuide runs the interactive terminal guide until the user quits
func runGuide(opts *rootOptions, query string) error {
	g, err := prepareGuide(opts, query)
	if err != nil {
		return err
	}
	defer g.Close()

	if _, err := g.program.Run(); err != nil {
		return errors.Wrap(err, "error running program")
	}
	return nil
}
