package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"citysearch/internal/citydata"
	"citysearch/internal/config"
	"citysearch/internal/eventbus"
	"citysearch/internal/logging"
	"citysearch/internal/logic"
	"citysearch/internal/ui"
	"citysearch/internal/ui/views"
)

type rootOptions struct {
	configPath  string
	endpoint    string
	sourceFile  string
	resolver    string
	httpTimeout time.Duration
	logLevel    string
	logDir      string
	noColor     bool
	debug       bool
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(&rootOptions{})
}

func newRootCmd(opts *rootOptions) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "citysearch",
		Short:         "Search cities by name and look up their country",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg, opts)
		},
	}

	flags := rootCmd.Flags()
	flags.StringVar(&opts.configPath, "config", "", "config file (default is $XDG_CONFIG_HOME/citysearch/config.toml)")
	flags.StringVar(&opts.endpoint, "endpoint", "", "city population endpoint")
	flags.StringVar(&opts.sourceFile, "source-file", "", "read cities from a local JSON file instead of the endpoint")
	flags.StringVar(&opts.resolver, "resolver", "", "selection resolver: store or remote")
	flags.DurationVar(&opts.httpTimeout, "http-timeout", 0, "HTTP timeout, 0 for none")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.StringVar(&opts.logDir, "log-dir", "", "directory for the rotated log file (default is $XDG_CACHE_HOME/citysearch)")
	flags.BoolVar(&opts.noColor, "no-color", false, "disable colors")
	flags.BoolVar(&opts.debug, "debug", false, "log at debug level")

	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// loadConfig reads the config file and applies flags the user set explicitly
func loadConfig(cmd *cobra.Command, opts *rootOptions) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	svc := config.NewConfigService()
	if opts.configPath != "" {
		// an explicit file must exist
		svc = config.NewConfigServiceAt(opts.configPath)
		cfg, err = svc.LoadFromPath(svc.Path())
	} else {
		cfg, err = svc.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	opts.configPath = svc.Path()

	flags := cmd.Flags()
	if flags.Changed("endpoint") {
		cfg.Endpoint = opts.endpoint
	}
	if flags.Changed("source-file") {
		cfg.SourceFile = opts.sourceFile
	}
	if flags.Changed("resolver") {
		cfg.Resolver = opts.resolver
	}
	if flags.Changed("http-timeout") {
		cfg.Timeout.Duration = opts.httpTimeout
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = opts.logLevel
	}
	if flags.Changed("log-dir") {
		cfg.Log.Dir = opts.logDir
	}
	if flags.Changed("no-color") {
		cfg.UISettings.NoColor = opts.noColor
	}
	if opts.debug {
		cfg.Log.Level = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	return cfg, nil
}

func run(parent context.Context, cfg *config.Config, opts *rootOptions) error {
	if parent == nil {
		parent = context.Background()
	}

	logging.Init(logConfig(cfg, opts.debug))
	defer logging.Shutdown()

	log := logging.ForComponent(logging.CompConfig)
	log.Info("starting",
		"version", buildVersion(),
		"config", opts.configPath,
		"endpoint", cfg.Endpoint,
		"source_file", cfg.SourceFile,
		"resolver", cfg.Resolver)

	views.ApplyColorMode(cfg.UISettings.NoColor)

	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	bus := eventbus.New()
	defer bus.Close()

	unsubscribe := logEvents(bus)
	defer func() {
		for _, u := range unsubscribe {
			u()
		}
	}()

	store := logic.NewMemorySuggestionStore()
	source := cfg.NewSource()
	resolver, err := citydata.NewResolver(cfg.Resolver, store, source, bus)
	if err != nil {
		return err
	}

	model := ui.NewModel(ctx, bus, cfg, store, source, resolver)

	programOpts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if cfg.UISettings.Mouse {
		programOpts = append(programOpts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(model, programOpts...)
	model.SetProgram(p)

	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("running program: %w", err)
	}
	log.Info("exiting")
	return nil
}

// logConfig maps the log section of cfg onto the logger, writing to the
// user cache dir when no directory is configured
func logConfig(cfg *config.Config, debug bool) logging.Config {
	dir := cfg.Log.Dir
	if dir == "" {
		dir = config.DefaultLogDir()
	}
	return logging.Config{
		LogDir:     dir,
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
		Compress:   cfg.Log.Compress,
		Debug:      debug,
	}
}

var busEvents = []eventbus.EventType{
	eventbus.EventStoreLoaded,
	eventbus.EventStoreLoadFailed,
	eventbus.EventListShown,
	eventbus.EventListDismissed,
	eventbus.EventSelectionOpened,
	eventbus.EventSelectionFailed,
	eventbus.EventSelectionClosed,
	eventbus.EventResolverFetchDone,
}

// logEvents records every domain event at debug level
func logEvents(bus eventbus.EventBus) []func() {
	log := logging.ForComponent(logging.CompBus)
	unsubscribe := make([]func(), 0, len(busEvents))
	for _, t := range busEvents {
		unsubscribe = append(unsubscribe, bus.Subscribe(t, func(e eventbus.DomainEvent) {
			log.Debug("event", "type", string(e.Type()), "payload", fmt.Sprintf("%+v", e))
		}))
	}
	return unsubscribe
}
