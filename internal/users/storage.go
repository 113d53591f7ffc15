package users

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/ticketbooking/internal/common"
	"github.com/dmitrijs2005/ticketbooking/internal/filex"
)

// Storage loads and saves the whole user collection at once.
type Storage interface {
	Load(ctx context.Context) ([]User, error)
	Save(ctx context.Context, list []User) error
}

// FileStorage keeps the collection as a JSON array in a single file.
type FileStorage struct {
	path string
	perm os.FileMode
}

var _ Storage = (*FileStorage)(nil)

func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path, perm: 0o600}
}

func (f *FileStorage) Path() string {
	return f.path
}

// Load reads and decodes the file. A missing or unreadable file yields
// common.ErrIO; content that is not an array of users yields common.ErrFormat.
func (f *FileStorage) Load(ctx context.Context) ([]User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrIO, err)
	}

	var list []User
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", common.ErrFormat, f.path, err)
	}
	for i, u := range list {
		if u.Name == "" {
			return nil, fmt.Errorf("%w: %s: record %d has no name", common.ErrFormat, f.path, i)
		}
	}
	if list == nil {
		list = []User{}
	}

	return list, nil
}

// Save overwrites the file with list, atomically from a reader's point of view.
func (f *FileStorage) Save(ctx context.Context, list []User) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if list == nil {
		list = []User{}
	}

	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode users: %v", common.ErrFormat, err)
	}
	data = append(data, '\n')

	if err := filex.WriteFileAtomic(f.path, data, f.perm); err != nil {
		return fmt.Errorf("%w: %w", common.ErrIO, err)
	}
	return nil
}

// Init creates an empty collection file (and its directory) if the file does
// not exist yet. An existing file is left alone.
func (f *FileStorage) Init(ctx context.Context) error {
	_, err := os.Stat(f.path)
	if err == nil {
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %w", common.ErrIO, err)
	}

	if err := filex.EnsureDir(filepath.Dir(f.path)); err != nil {
		return fmt.Errorf("%w: %w", common.ErrIO, err)
	}
	return f.Save(ctx, nil)
}
