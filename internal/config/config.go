package config

import "golang.org/x/crypto/bcrypt"

// Config holds runtime settings for the booking CLI.
//
// Fields:
//   - UsersFile: JSON file holding the registered users.
//   - HashAlgorithm: algorithm used to hash passwords of new sign-ups.
//   - BcryptCost: bcrypt work factor when HashAlgorithm is bcrypt.
//   - UniqueNames: refuse to register a name that is already stored.
//   - LogLevel: minimum level written by the structured logger.
type Config struct {
	UsersFile     string
	HashAlgorithm string
	BcryptCost    int
	UniqueNames   bool
	LogLevel      string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.UsersFile = "localDb/users.json"
	c.HashAlgorithm = "bcrypt"
	c.BcryptCost = bcrypt.DefaultCost
	c.UniqueNames = false
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
