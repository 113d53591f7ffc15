package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/ticketbooking/internal/config"
	"github.com/dmitrijs2005/ticketbooking/internal/cryptox"
	"github.com/dmitrijs2005/ticketbooking/internal/logging"
	"github.com/dmitrijs2005/ticketbooking/internal/users"
)

type App struct {
	config   *config.Config
	log      logging.Logger
	store    *users.Store
	hasher   cryptox.Hasher
	reader   *bufio.Reader
	out      io.Writer
	userName string
}

// NewApp creates the users file if needed, loads it and returns an App bound
// to stdin/stdout.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	log := logging.New(c.LogLevel, os.Stderr).With("users_file", c.UsersFile)

	hasher, err := cryptox.NewHasher(c.HashAlgorithm, c.BcryptCost)
	if err != nil {
		return nil, err
	}

	storage := users.NewFileStorage(c.UsersFile)
	if err := storage.Init(ctx); err != nil {
		return nil, fmt.Errorf("init users file: %w", err)
	}

	var opts []users.Option
	if c.UniqueNames {
		opts = append(opts, users.WithUniqueNames())
	}

	store, err := users.NewStore(ctx, storage, cryptox.MultiVerifier{}, log, opts...)
	if err != nil {
		return nil, err
	}

	app := newApp(store, hasher, log, os.Stdin, os.Stdout)
	app.config = c
	return app, nil
}

func newApp(store *users.Store, hasher cryptox.Hasher, log logging.Logger, in io.Reader, out io.Writer) *App {
	return &App{
		log:    log,
		store:  store,
		hasher: hasher,
		reader: bufio.NewReader(in),
		out:    out,
	}
}

func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.userName != ""
}

func (a *App) getStatus() string {
	if a.userName == "" {
		return ""
	}
	return fmt.Sprintf("(%s)", a.userName)
}
