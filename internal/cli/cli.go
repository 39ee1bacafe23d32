package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vk/kspgrab/internal/app"
	"github.com/vk/kspgrab/internal/config"
	"github.com/vk/kspgrab/internal/taskid"
)

// Version is set at build time.
var Version = "dev"

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// flags holds the global flags shared by all subcommands.
type flags struct {
	configPath          string
	baseURL             string
	logLevel            string
	logFormat           string
	output              string
	sessionCookie       string
	timeout             string
	assumeAuthenticated bool
}

// Execute runs the root command with args and maps failures to ExitError:
// usage errors exit with 2, everything else with 1.
func Execute(ctx context.Context, args []string, outW, errW io.Writer) error {
	cmd := NewRootCommand(outW, errW)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return nil
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr
	}
	return &ExitError{Code: 1, Message: err.Error()}
}

// NewRootCommand builds the kspgrab command tree.
func NewRootCommand(outW, errW io.Writer) *cobra.Command {
	f := &flags{}

	root := &cobra.Command{
		Use:   "kspgrab",
		Short: "Extract KSP tasks, solutions, statuses and the task graph",
		Long: `kspgrab reads the public pages of the KSP contest site and prints
structured task data: assignment and solution fragments, the submission
status of a logged-in contestant, and the prerequisite graph of tasks.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(outW)
	root.SetErr(errW)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &ExitError{Code: 2, Message: err.Error()}
	})

	pf := root.PersistentFlags()
	pf.StringVarP(&f.configPath, "config", "c", "", "Path to an HCL configuration file.")
	pf.StringVar(&f.baseURL, "base-url", "", "Site URL, overrides base_url from the config file.")
	pf.StringVar(&f.logLevel, "log-level", "", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	pf.StringVar(&f.logFormat, "log-format", "", "Log output format. Options: 'text' or 'json'.")
	pf.StringVarP(&f.output, "output", "o", app.FormatJSON, "Result format. Options: 'json' or 'yaml'.")
	pf.StringVar(&f.sessionCookie, "session-cookie", "", "Cookie header sent with every request.")
	pf.StringVar(&f.timeout, "timeout", "", "Per-request timeout, e.g. '30s'. Empty means none.")
	pf.BoolVar(&f.assumeAuthenticated, "assume-authenticated", false, "Skip the login check before fetching statuses.")

	root.AddCommand(
		newLocateCommand(f, outW, errW),
		newTaskCommand(f, outW, errW, "assignment", "Print the assignment of a task", taskid.Assignment),
		newTaskCommand(f, outW, errW, "solution", "Print the solution of a task", taskid.Solution),
		newStatusCommand(f, outW, errW),
		newGraphCommand(f, outW, errW),
		&cobra.Command{
			Use:   "version",
			Short: "Print the version number",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(outW, "kspgrab version %s\n", Version)
			},
		},
	)
	return root
}

// loadConfig reads the configuration file and applies flag overrides.
func (f *flags) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, &ExitError{Code: 2, Message: err.Error()}
	}
	if f.baseURL != "" {
		cfg.BaseURL = f.baseURL
	}
	if f.logLevel != "" {
		cfg.Log.Level = strings.ToLower(f.logLevel)
	}
	if f.logFormat != "" {
		cfg.Log.Format = strings.ToLower(f.logFormat)
	}
	if f.sessionCookie != "" {
		cfg.SessionCookie = f.sessionCookie
	}
	if f.timeout != "" {
		cfg.Timeout = f.timeout
	}
	if err := cfg.Validate(); err != nil {
		return nil, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("CLI configuration resolved.", "base_url", cfg.BaseURL, "log_level", cfg.Log.Level)
	return cfg, nil
}

// newApp builds the App for a subcommand run.
func (f *flags) newApp(outW, errW io.Writer) (*app.App, error) {
	cfg, err := f.loadConfig()
	if err != nil {
		return nil, err
	}
	a, err := app.NewApp(outW, errW, app.Options{
		Config:              cfg,
		Output:              strings.ToLower(f.output),
		AssumeAuthenticated: f.assumeAuthenticated,
	})
	if err != nil {
		return nil, &ExitError{Code: 2, Message: err.Error()}
	}
	return a, nil
}
