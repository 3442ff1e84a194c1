package score

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
)

// Store persists the best score
type Store interface {
	// HighScore returns the stored value and whether one exists
	HighScore() (int, bool, error)
	SetHighScore(value int) error
}

// MemoryStore keeps the best score for the process lifetime
type MemoryStore struct {
	mu    sync.Mutex
	value int
	set   bool
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) HighScore() (int, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.value, m.set, nil
}

func (m *MemoryStore) SetHighScore(value int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.value, m.set = value, true
	return nil
}

// record is the on-disk TOML layout
type record struct {
	HighScore int       `toml:"high_score"`
	UpdatedAt time.Time `toml:"updated_at"`
}

// FileStore keeps the best score in a TOML file
type FileStore struct {
	path string
}

// NewFileStore creates a store backed by path, the file is created on first write
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file path
func (f *FileStore) Path() string {
	return f.path
}

func (f *FileStore) HighScore() (int, bool, error) {
	var rec record
	meta, err := toml.DecodeFile(f.path, &rec)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("decode %s: %w", f.path, err)
	}
	if !meta.IsDefined("high_score") {
		return 0, false, nil
	}
	return rec.HighScore, true, nil
}

// SetHighScore replaces the file atomically via a temp file and rename
func (f *FileStore) SetHighScore(value int) error {
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".highscore-*.toml")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	rec := record{HighScore: value, UpdatedAt: time.Now().UTC().Truncate(time.Second)}
	if err := toml.NewEncoder(tmp).Encode(rec); err != nil {
		tmp.Close()
		return fmt.Errorf("encode %s: %w", f.path, err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), f.path)
}
