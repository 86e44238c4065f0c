package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultGitPath, cfg.GitPath)
	assert.Equal(t, DefaultUnified, cfg.Unified)
	assert.Equal(t, DefaultOutfile, cfg.Outfile)
	assert.Equal(t, DefaultAddColor, cfg.Highlight.AddColor)
	assert.Equal(t, DefaultRemoveColor, cfg.Highlight.RemoveColor)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
git_path: /usr/local/bin/git
unified: 100
outfile: report.html
highlight:
  add_color: "#9f9"
entities:
  "™": "&trade;"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/usr/local/bin/git", cfg.GitPath)
	assert.Equal(t, 100, cfg.Unified)
	assert.Equal(t, "report.html", cfg.Outfile)
	assert.Equal(t, "#9f9", cfg.Highlight.AddColor)
	// Unset fields keep their defaults.
	assert.Equal(t, DefaultRemoveColor, cfg.Highlight.RemoveColor)
	assert.Equal(t, "&trade;", cfg.Entities["™"])
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("unified: [nope"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config file")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "defaults are valid",
			mutate: func(c *Config) {},
		},
		{
			name:    "negative unified",
			mutate:  func(c *Config) { c.Unified = -1 },
			wantErr: "unified",
		},
		{
			name:    "missing template file",
			mutate:  func(c *Config) { c.Template = "/does/not/exist.html" },
			wantErr: "template",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
