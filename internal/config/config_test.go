package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/kspgrab/internal/extract"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, DefaultTasksPath, cfg.TasksPath)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, extract.CzechLocale, cfg.ExtractLocale())
	require.NoError(t, cfg.Validate())

	timeout, err := cfg.TimeoutDuration()
	require.NoError(t, err)
	assert.Zero(t, timeout)
}

func TestParse(t *testing.T) {
	src := []byte(`
base_url       = "https://ksp.example"
tasks_path     = "/grafik/tasks.json"
session_cookie = "ksp_session=${env.KSP_SESSION}"
timeout        = "45s"

log {
  level  = "debug"
  format = "json"
}

locale {
  solution_word   = "Solution"
  points_word     = "point"
  skip_paragraphs = []
}
`)

	cfg, err := Parse("kspgrab.hcl", src, []string{"KSP_SESSION=s3cr3t", "PATH=/usr/bin", "MALFORMED"})
	require.NoError(t, err)

	assert.Equal(t, "https://ksp.example", cfg.BaseURL)
	assert.Equal(t, "/grafik/tasks.json", cfg.TasksPath)
	assert.Equal(t, "ksp_session=s3cr3t", cfg.SessionCookie)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)

	timeout, err := cfg.TimeoutDuration()
	require.NoError(t, err)
	assert.Equal(t, 45*time.Second, timeout)

	locale := cfg.ExtractLocale()
	assert.Equal(t, "Solution", locale.SolutionWord)
	assert.Equal(t, "point", locale.PointsWord)
	assert.Equal(t, extract.CzechLocale.UnknownName, locale.UnknownName)
	assert.Empty(t, locale.SkipParagraphs)
}

func TestParse_Errors(t *testing.T) {
	testCases := []struct {
		name        string
		src         string
		errContains string
	}{
		{"unknown env var", `session_cookie = env.NOT_SET`, "NOT_SET"},
		{"invalid level", "log {\n level = \"loud\"\n}", "invalid log level"},
		{"invalid format", "log {\n format = \"xml\"\n}", "invalid log format"},
		{"relative base url", `base_url = "/ksp"`, "base_url"},
		{"bad timeout", `timeout = "soon"`, "invalid timeout"},
		{"unknown attribute", `colour = "blue"`, "colour"},
		{"syntax error", `base_url = `, "failed to decode config"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := Parse("kspgrab.hcl", []byte(tc.src), nil)
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tc.errContains)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kspgrab.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`base_url = "http://localhost:8080"`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", cfg.BaseURL)
	assert.Equal(t, DefaultTasksPath, cfg.TasksPath)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	_, err = Load(filepath.Join(t.TempDir(), "missing.hcl"))
	require.Error(t, err)
}
