package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/ticketbooking/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
// os.Args is filtered to the flags handled here first, so -c/-config and
// anything else on the command line do not make parsing fail.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-f", "-a", "-k", "-u", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.UsersFile, "f", cfg.UsersFile, "path of the users JSON file")
	fs.StringVar(&cfg.HashAlgorithm, "a", cfg.HashAlgorithm, "password hash algorithm (bcrypt|argon2id)")
	fs.IntVar(&cfg.BcryptCost, "k", cfg.BcryptCost, "bcrypt cost")
	fs.BoolVar(&cfg.UniqueNames, "u", cfg.UniqueNames, "reject duplicate user names on sign-up")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug|info|warn|error)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
