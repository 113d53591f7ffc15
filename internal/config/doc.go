// Package config loads runtime configuration for the booking CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-f string   path of the users JSON file
//	-a string   password hash algorithm for new accounts: bcrypt | argon2id
//	-k int      bcrypt cost
//	-u          reject sign-ups whose name already exists (use -u=false to disable)
//	-l string   log level: debug | info | warn | error
//
// # JSON schema
//
//	{
//	  "users_file": "localDb/users.json",
//	  "hash_algorithm": "bcrypt",
//	  "bcrypt_cost": 10,
//	  "unique_names": false,
//	  "log_level": "info"
//	}
//
// Keys missing from the JSON file keep their default values.
package config
