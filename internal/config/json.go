package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/ticketbooking/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields distinguish "absent" from a zero value.
type JsonConfig struct {
	UsersFile     string `json:"users_file"`
	HashAlgorithm string `json:"hash_algorithm"`
	BcryptCost    int    `json:"bcrypt_cost"`
	UniqueNames   *bool  `json:"unique_names"`
	LogLevel      string `json:"log_level"`
}

// parseJson overlays cfg with values from the JSON file named by -c/-config.
// Without such a flag it does nothing. Read or decode errors panic.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigPath()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.UsersFile != "" {
		cfg.UsersFile = jc.UsersFile
	}
	if jc.HashAlgorithm != "" {
		cfg.HashAlgorithm = jc.HashAlgorithm
	}
	if jc.BcryptCost != 0 {
		cfg.BcryptCost = jc.BcryptCost
	}
	if jc.UniqueNames != nil {
		cfg.UniqueNames = *jc.UniqueNames
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
}
