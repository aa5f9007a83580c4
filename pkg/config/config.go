package config

import (
	"path/filepath"
	"strings"

	"github.com/valassis-fcalle/savi-project-bootstrap/pkg/errors"
)

// Flavor selects one of the two bootstrap variants
type Flavor string

const (
	// FlavorClassic extends the conventional-commit preset and releases
	// notes only.
	FlavorClassic Flavor = "classic"
	// FlavorJira requires ticket references in commit messages and commits a
	// generated changelog back on release.
	FlavorJira Flavor = "jira"
)

// Flavors lists every supported flavor
var Flavors = []Flavor{FlavorClassic, FlavorJira}

// Tools holds the binaries invoked by the pipeline
type Tools struct {
	NPM string `koanf:"npm" toml:"npm"`
	NPX string `koanf:"npx" toml:"npx"`
	Git string `koanf:"git" toml:"git"`
}

// Config is the fully resolved scaffold configuration
type Config struct {
	ProjectFolder string `koanf:"project_folder" toml:"project_folder"`
	BaseDir       string `koanf:"base_dir" toml:"base_dir"`
	Flavor        Flavor `koanf:"flavor" toml:"flavor"`
	DefaultBranch string `koanf:"default_branch" toml:"default_branch"`
	RemoteURL     string `koanf:"remote_url" toml:"remote_url"`
	TicketPrefix  string `koanf:"ticket_prefix" toml:"ticket_prefix"`
	Tools         Tools  `koanf:"tools" toml:"tools"`
}

// ProjectDir returns the target project folder path
func (c *Config) ProjectDir() string {
	return filepath.Join(c.BaseDir, c.ProjectFolder)
}

// IsJira reports whether the jira flavor is selected
func (c *Config) IsJira() bool {
	return c.Flavor == FlavorJira
}

// Validate checks the configuration. The project folder is removed
// recursively on every run, so it must be a single plain path element.
func (c *Config) Validate() error {
	folder := c.ProjectFolder
	switch {
	case strings.TrimSpace(folder) == "":
		return errors.New(errors.ErrConfigValid, "project_folder cannot be empty")
	case folder == "." || folder == "..":
		return errors.Newf(errors.ErrConfigValid, "project_folder %q would reset the base directory", folder)
	case strings.ContainsAny(folder, `/\`) || filepath.IsAbs(folder):
		return errors.Newf(errors.ErrConfigValid, "project_folder %q must be a single folder name", folder)
	}

	if c.BaseDir == "" {
		return errors.New(errors.ErrConfigValid, "base_dir cannot be empty")
	}

	if !c.Flavor.Valid() {
		return errors.Newf(errors.ErrConfigValid, "unknown flavor %q (want one of %s)", c.Flavor, flavorNames())
	}

	if c.DefaultBranch == "" {
		return errors.New(errors.ErrConfigValid, "default_branch cannot be empty")
	}
	if c.RemoteURL == "" {
		return errors.New(errors.ErrConfigValid, "remote_url cannot be empty")
	}
	if c.IsJira() && c.TicketPrefix == "" {
		return errors.New(errors.ErrConfigValid, "ticket_prefix is required for the jira flavor")
	}

	tools := []struct{ name, bin string }{
		{"npm", c.Tools.NPM},
		{"npx", c.Tools.NPX},
		{"git", c.Tools.Git},
	}
	for _, tool := range tools {
		if tool.bin == "" {
			return errors.Newf(errors.ErrConfigValid, "tools.%s cannot be empty", tool.name)
		}
	}

	return nil
}

// Valid reports whether f is a known flavor
func (f Flavor) Valid() bool {
	for _, known := range Flavors {
		if f == known {
			return true
		}
	}
	return false
}

func flavorNames() string {
	names := make([]string, len(Flavors))
	for i, f := range Flavors {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}
