package config

import (
	"github.com/pelletier/go-toml/v2"
)

// ToTOML renders the configuration in the same shape as the defaults file
func (c *Config) ToTOML() ([]byte, error) {
	return toml.Marshal(c)
}
