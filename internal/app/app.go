package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/kspgrab/internal/config"
	"github.com/vk/kspgrab/internal/ctxlog"
	"github.com/vk/kspgrab/internal/extract"
	"github.com/vk/kspgrab/internal/fetch"
	"github.com/vk/kspgrab/internal/grabber"
	"github.com/vk/kspgrab/internal/session"
)

// Output formats understood by the renderer.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Options holds the settings of an App on top of the configuration file.
type Options struct {
	Config *config.Config
	// Output is FormatJSON or FormatYAML.
	Output string
	// AssumeAuthenticated skips the session probe before status requests.
	AssumeAuthenticated bool
}

// App encapsulates the application's dependencies and configuration.
type App struct {
	outW    io.Writer
	logger  *slog.Logger
	config  *config.Config
	output  string
	client  *fetch.Client
	grabber *grabber.Grabber
}

// NewApp is the constructor for the application. Results are written to outW
// and logs to logW.
func NewApp(outW, logW io.Writer, opts Options) (*App, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	output := opts.Output
	if output == "" {
		output = FormatJSON
	}
	if output != FormatJSON && output != FormatYAML {
		return nil, fmt.Errorf("invalid output format %q: must be 'json' or 'yaml'", output)
	}

	logger := newLogger(cfg.Log, logW)
	logger.Debug("Logger configured successfully.")

	timeout, err := cfg.TimeoutDuration()
	if err != nil {
		return nil, err
	}
	client, err := fetch.New(fetch.Options{
		BaseURL:   cfg.BaseURL,
		Timeout:   timeout,
		Cookie:    cfg.SessionCookie,
		UserAgent: cfg.UserAgent,
	})
	if err != nil {
		return nil, err
	}

	var sess session.Provider = session.NewPageProbe(client, session.DefaultProbePath)
	if opts.AssumeAuthenticated {
		sess = session.Static(true)
	}
	logger.Debug("Transport configured.", "base_url", cfg.BaseURL, "timeout", timeout, "assume_authenticated", opts.AssumeAuthenticated)

	return &App{
		outW:    outW,
		logger:  logger,
		config:  cfg,
		output:  output,
		client:  client,
		grabber: grabber.New(client, sess, extract.New(cfg.ExtractLocale()), cfg.TasksPath),
	}, nil
}

// Close releases the transport's idle connections.
func (a *App) Close() {
	a.client.Close()
}

// context attaches the App's logger to ctx.
func (a *App) context(ctx context.Context) context.Context {
	return ctxlog.WithLogger(ctx, a.logger)
}
