package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valassis-fcalle/savi-project-bootstrap/pkg/errors"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "savi-project-bootstrap", cfg.ProjectFolder)
	assert.Equal(t, ".", cfg.BaseDir)
	assert.Equal(t, FlavorClassic, cfg.Flavor)
	assert.Equal(t, "master", cfg.DefaultBranch)
	assert.Equal(t, "git@github.com:valassis-fcalle/savi-project-bootstrap-demo.git", cfg.RemoteURL)
	assert.Equal(t, "SAVI", cfg.TicketPrefix)
	assert.Equal(t, Tools{NPM: "npm", NPX: "npx", Git: "git"}, cfg.Tools)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_DefaultsOnly(t *testing.T) {
	cfg, err := Load(LoadOptions{SearchDir: t.TempDir()})
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, filepath.Join(".", "savi-project-bootstrap"), cfg.ProjectDir())
}

func TestLoad_Layering(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".savi-bootstrap.toml"), `
project_folder = "from-file"
flavor = "jira"

[tools]
npm = "pnpm"
`)

	t.Run("file overrides defaults", func(t *testing.T) {
		cfg, err := Load(LoadOptions{SearchDir: dir})
		require.NoError(t, err)
		assert.Equal(t, "from-file", cfg.ProjectFolder)
		assert.Equal(t, FlavorJira, cfg.Flavor)
		assert.Equal(t, "pnpm", cfg.Tools.NPM)
		assert.Equal(t, "npx", cfg.Tools.NPX)
	})

	t.Run("env overrides file", func(t *testing.T) {
		t.Setenv("SAVI_PROJECT_FOLDER", "from-env")
		t.Setenv("SAVI_TOOLS__GIT", "/usr/bin/git")
		t.Setenv("SAVI_UNRELATED_SETTING", "ignored")

		cfg, err := Load(LoadOptions{SearchDir: dir})
		require.NoError(t, err)
		assert.Equal(t, "from-env", cfg.ProjectFolder)
		assert.Equal(t, "/usr/bin/git", cfg.Tools.Git)
	})

	t.Run("overrides win", func(t *testing.T) {
		t.Setenv("SAVI_PROJECT_FOLDER", "from-env")

		cfg, err := Load(LoadOptions{
			SearchDir: dir,
			Overrides: map[string]interface{}{"project_folder": "from-flag", "flavor": "classic"},
		})
		require.NoError(t, err)
		assert.Equal(t, "from-flag", cfg.ProjectFolder)
		assert.Equal(t, FlavorClassic, cfg.Flavor)
	})
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bootstrap.yaml")
	writeFile(t, path, "flavor: jira\nticket_prefix: CAPI\ntools:\n  npx: bunx\n")

	cfg, err := Load(LoadOptions{ConfigFile: path})
	require.NoError(t, err)
	assert.Equal(t, FlavorJira, cfg.Flavor)
	assert.Equal(t, "CAPI", cfg.TicketPrefix)
	assert.Equal(t, "bunx", cfg.Tools.NPX)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing explicit file", func(t *testing.T) {
		_, err := Load(LoadOptions{ConfigFile: filepath.Join(t.TempDir(), "nope.toml")})
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
	})

	t.Run("unknown key", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.toml")
		writeFile(t, path, "colour = \"red\"\n")

		_, err := Load(LoadOptions{ConfigFile: path})
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
	})

	t.Run("invalid flavor", func(t *testing.T) {
		_, err := Load(LoadOptions{
			SearchDir: t.TempDir(),
			Overrides: map[string]interface{}{"flavor": "gitlab"},
		})
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(c *Config) {}},
		{name: "empty folder", mutate: func(c *Config) { c.ProjectFolder = " " }, wantErr: true},
		{name: "dot folder", mutate: func(c *Config) { c.ProjectFolder = "." }, wantErr: true},
		{name: "parent folder", mutate: func(c *Config) { c.ProjectFolder = ".." }, wantErr: true},
		{name: "nested folder", mutate: func(c *Config) { c.ProjectFolder = "a/b" }, wantErr: true},
		{name: "absolute folder", mutate: func(c *Config) { c.ProjectFolder = "/tmp" }, wantErr: true},
		{name: "empty base dir", mutate: func(c *Config) { c.BaseDir = "" }, wantErr: true},
		{name: "unknown flavor", mutate: func(c *Config) { c.Flavor = "svn" }, wantErr: true},
		{name: "empty branch", mutate: func(c *Config) { c.DefaultBranch = "" }, wantErr: true},
		{name: "empty remote", mutate: func(c *Config) { c.RemoteURL = "" }, wantErr: true},
		{name: "jira without prefix", mutate: func(c *Config) {
			c.Flavor = FlavorJira
			c.TicketPrefix = ""
		}, wantErr: true},
		{name: "classic without prefix", mutate: func(c *Config) { c.TicketPrefix = "" }},
		{name: "empty npx", mutate: func(c *Config) { c.Tools.NPX = "" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid), "got %v", err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestToTOML(t *testing.T) {
	cfg := Default()
	cfg.Flavor = FlavorJira

	out, err := cfg.ToTOML()
	require.NoError(t, err)

	content := string(out)
	assert.Regexp(t, `project_folder = ['"]savi-project-bootstrap['"]`, content)
	assert.Regexp(t, `flavor = ['"]jira['"]`, content)
	assert.Contains(t, content, "[tools]")

	path := filepath.Join(t.TempDir(), "roundtrip.toml")
	writeFile(t, path, content)
	loaded, err := Load(LoadOptions{ConfigFile: path})
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}
