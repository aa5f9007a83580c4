// Package config resolves the scaffold configuration from embedded defaults,
// an optional project-local file, SAVI_* environment variables and
// command-line overrides.
package config
