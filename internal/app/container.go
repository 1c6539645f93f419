package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/doeshing/safety-dash/internal/application/dashboard"
	"github.com/doeshing/safety-dash/internal/application/doctor"
	"github.com/doeshing/safety-dash/internal/domain"
	"github.com/doeshing/safety-dash/internal/infrastructure/ai"
	"github.com/doeshing/safety-dash/internal/infrastructure/catalog"
	"github.com/doeshing/safety-dash/internal/infrastructure/config"
	"github.com/doeshing/safety-dash/internal/infrastructure/evaldata"
	"github.com/doeshing/safety-dash/internal/pkg/logger"
	"github.com/doeshing/safety-dash/internal/ports"
)

// Options controls how the container is assembled.
type Options struct {
	ConfigPath  string
	Verbose     bool
	Interactive bool
}

// Container wires up application services with infrastructure adapters.
type Container struct {
	Config           domain.Config
	ConfigLoader     *config.FileLoader
	Catalog          *catalog.Catalog
	Evaluations      *evaldata.Store
	Client           *ai.Client
	DashboardService *dashboard.Service
	DoctorService    *doctor.Service
	Logger           ports.Logger

	closers []io.Closer
}

// BuildContainer constructs the dependency graph.
func BuildContainer(ctx context.Context, opts Options) (*Container, error) {
	cfgLoader := config.NewFileLoader(opts.ConfigPath)
	cfg, err := cfgLoader.Load(ctx)
	if err != nil {
		return nil, err
	}

	c := &Container{Config: cfg, ConfigLoader: cfgLoader}

	log, err := c.buildLogger(cfg.Logging, opts)
	if err != nil {
		return nil, err
	}
	c.Logger = log

	promptCatalog, err := catalog.NewDefault()
	if err != nil {
		return nil, fmt.Errorf("load prompt catalog: %w", err)
	}
	store, err := evaldata.NewDefault()
	if err != nil {
		return nil, fmt.Errorf("load evaluation data: %w", err)
	}

	clientOpts := []ai.Option{ai.WithLogger(log)}
	if cfg.Completion.MaxTokens > 0 {
		clientOpts = append(clientOpts, ai.WithMaxTokens(cfg.Completion.MaxTokens))
	}
	client := ai.NewClient(clientOpts...)

	c.Catalog = promptCatalog
	c.Evaluations = store
	c.Client = client
	c.DashboardService = &dashboard.Service{
		Config:  cfg,
		Catalog: promptCatalog,
		Client:  client,
		Logger:  log,
	}
	c.DoctorService = &doctor.Service{
		ConfigProvider: cfgLoader,
		Catalog:        promptCatalog,
		Dataset:        store,
	}
	return c, nil
}

// NewState starts a fresh interactive session on the configured default model.
func (c *Container) NewState() *dashboard.State {
	var model domain.ModelDescriptor
	if def, err := c.Config.GetDefaultModel(); err == nil {
		model = def.Descriptor()
	} else if descriptors := c.Config.Descriptors(); len(descriptors) > 0 {
		model = descriptors[0]
	}
	return dashboard.NewState(model, c.Catalog)
}

// Close releases log files opened by the container.
func (c *Container) Close() error {
	var first error
	for _, closer := range c.closers {
		if err := closer.Close(); err != nil && first == nil {
			first = err
		}
	}
	c.closers = nil
	return first
}

// buildLogger routes logs to logging.file when set. Otherwise verbose CLI runs
// log to stderr and the TUI discards logs so the screen stays intact.
func (c *Container) buildLogger(settings domain.LoggingSettings, opts Options) (*logger.ZeroLogger, error) {
	if settings.File != "" {
		f, err := os.OpenFile(settings.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		c.closers = append(c.closers, f)
		level := settings.Level
		if opts.Verbose {
			level = domain.LogLevelDebug
		}
		return logger.New(f, level), nil
	}
	if opts.Interactive {
		return logger.Nop(), nil
	}
	return logger.NewStd(opts.Verbose), nil
}
