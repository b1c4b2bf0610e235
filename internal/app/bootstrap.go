package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"consul-mcp/internal/config"
	"consul-mcp/pkg/logging"
)

// errTransportClosed ends the run loop when the transport finishes on its own.
var errTransportClosed = errors.New("transport closed")

// Application bootstraps and runs consul-mcp.
//
// Bootstrap happens in NewApplication: logging, configuration, the Consul
// client, the tool registry and the MCP server. Run then serves until the
// context is cancelled, a termination signal arrives, or the transport stops.
//
//	cfg := app.NewConfig(false, "")
//	cfg.Transport = "sse"
//	application, err := app.NewApplication(cfg)
//	if err != nil {
//	    return err
//	}
//	return application.Run(ctx)
type Application struct {
	config   *Config
	services *Services
}

// NewApplication loads configuration and wires all services.
func NewApplication(cfg *Config) (*Application, error) {
	logOutput := cfg.LogOutput
	if logOutput == nil {
		logOutput = os.Stderr
	}

	appLogLevel := logging.LevelInfo
	if cfg.Debug {
		appLogLevel = logging.LevelDebug
	}
	logging.InitForCLI(appLogLevel, logOutput)

	if cfg.ConsulMCPConfig == nil {
		loaded, err := config.LoadConfig(cfg.ConfigPath)
		if err != nil {
			logging.Error("Bootstrap", err, "Failed to load configuration")
			return nil, fmt.Errorf("failed to load configuration: %w", err)
		}
		cfg.ConsulMCPConfig = &loaded
	}

	cfg.applyOverrides(cfg.ConsulMCPConfig)
	if err := config.Validate(*cfg.ConsulMCPConfig); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if err := initLogging(cfg.ConsulMCPConfig.Logging, logOutput); err != nil {
		return nil, err
	}

	services, err := InitializeServices(cfg.ConsulMCPConfig, cfg.Version)
	if err != nil {
		logging.Error("Bootstrap", err, "Failed to initialize services")
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	return &Application{
		config:   cfg,
		services: services,
	}, nil
}

func initLogging(cfg config.LoggingConfig, output io.Writer) error {
	level, err := logging.ParseLevel(cfg.Level)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	logging.Init(level, output, logging.Format(cfg.Format))
	return nil
}

// Services returns the wired components.
func (a *Application) Services() *Services {
	return a.services
}

// Run serves MCP requests until ctx is cancelled, SIGINT or SIGTERM is
// received, or the transport closes. A transport that fails to serve is
// reported as an error; every other exit returns nil.
func (a *Application) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := a.services.Server
	if err := srv.Start(ctx); err != nil {
		return fmt.Errorf("failed to start MCP server: %w", err)
	}
	logging.Info("Bootstrap", "consul-mcp serving at %s", srv.GetEndpoint())

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		select {
		case err := <-srv.Done():
			if err != nil {
				return fmt.Errorf("MCP transport failed: %w", err)
			}
			return errTransportClosed
		case <-gctx.Done():
			return nil
		}
	})

	g.Go(func() error {
		<-gctx.Done()
		logging.Info("Bootstrap", "Shutting down")
		return srv.Stop(context.Background())
	})

	if err := g.Wait(); err != nil && !errors.Is(err, errTransportClosed) {
		return err
	}
	return nil
}
