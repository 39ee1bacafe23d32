package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/vk/kspgrab/internal/extract"
	"github.com/zclconf/go-cty/cty"
)

// Defaults applied to settings the file leaves out.
const (
	DefaultBaseURL   = "https://ksp.mff.cuni.cz"
	DefaultTasksPath = "/tasks.json"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

// Config is the decoded configuration file.
type Config struct {
	BaseURL       string `hcl:"base_url,optional"`
	TasksPath     string `hcl:"tasks_path,optional"`
	SessionCookie string `hcl:"session_cookie,optional"`
	UserAgent     string `hcl:"user_agent,optional"`
	Timeout       string `hcl:"timeout,optional"`

	Log    *LogConfig    `hcl:"log,block"`
	Locale *LocaleConfig `hcl:"locale,block"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `hcl:"level,optional"`
	Format string `hcl:"format,optional"`
}

// LocaleConfig overrides strings of extract.CzechLocale.
type LocaleConfig struct {
	SolutionWord   string   `hcl:"solution_word,optional"`
	PointsWord     string   `hcl:"points_word,optional"`
	UnknownName    string   `hcl:"unknown_name,optional"`
	SkipParagraphs []string `hcl:"skip_paragraphs,optional"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads the file at path. An empty path yields Default().
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(path, src, os.Environ())
}

// Parse decodes src, named filename for diagnostics, with environ exposed as
// the `env` object.
func Parse(filename string, src []byte, environ []string) (*Config, error) {
	cfg := &Config{}
	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{"env": envObject(environ)},
	}
	if err := hclsimple.Decode(filename, src, evalCtx, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// envObject turns KEY=VALUE pairs into a cty object.
func envObject(environ []string) cty.Value {
	attrs := make(map[string]cty.Value)
	for _, e := range environ {
		key, val, ok := strings.Cut(e, "=")
		if !ok || key == "" {
			continue
		}
		attrs[key] = cty.StringVal(val)
	}
	if len(attrs) == 0 {
		return cty.EmptyObjectVal
	}
	return cty.ObjectVal(attrs)
}

func (c *Config) applyDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.TasksPath == "" {
		c.TasksPath = DefaultTasksPath
	}
	if c.Log == nil {
		c.Log = &LogConfig{}
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.Log.Format == "" {
		c.Log.Format = DefaultLogFormat
	}
	if c.Locale == nil {
		c.Locale = &LocaleConfig{}
	}
}

// Validate checks the values that the rest of the program relies on.
func (c *Config) Validate() error {
	var errs []error

	u, err := url.Parse(c.BaseURL)
	if err != nil || !u.IsAbs() {
		errs = append(errs, fmt.Errorf("base_url must be an absolute URL, got %q", c.BaseURL))
	}
	if _, err := c.TimeoutDuration(); err != nil {
		errs = append(errs, err)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("invalid log level %q: must be 'debug', 'info', 'warn', or 'error'", c.Log.Level))
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		errs = append(errs, fmt.Errorf("invalid log format %q: must be 'text' or 'json'", c.Log.Format))
	}
	return errors.Join(errs...)
}

// TimeoutDuration parses Timeout. An empty value means no timeout.
func (c *Config) TimeoutDuration() (time.Duration, error) {
	if c.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil || d < 0 {
		return 0, fmt.Errorf("invalid timeout %q", c.Timeout)
	}
	return d, nil
}

// ExtractLocale returns extract.CzechLocale with the configured overrides.
func (c *Config) ExtractLocale() extract.Locale {
	locale := extract.CzechLocale
	if c.Locale == nil {
		return locale
	}
	if c.Locale.SolutionWord != "" {
		locale.SolutionWord = c.Locale.SolutionWord
	}
	if c.Locale.PointsWord != "" {
		locale.PointsWord = c.Locale.PointsWord
	}
	if c.Locale.UnknownName != "" {
		locale.UnknownName = c.Locale.UnknownName
	}
	if c.Locale.SkipParagraphs != nil {
		locale.SkipParagraphs = c.Locale.SkipParagraphs
	}
	return locale
}
