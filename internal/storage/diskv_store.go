package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/peterbourgon/diskv/v3"

	"github.com/julianstephens/daylog/internal/constants"
)

// DiskvStore keeps each key as a file inside a directory.
type DiskvStore struct {
	path string
	d    *diskv.Diskv
}

func NewDiskvStore(path string) *DiskvStore {
	return &DiskvStore{path: path}
}

func (s *DiskvStore) open() {
	s.d = diskv.New(diskv.Options{
		BasePath:     s.path,
		CacheSizeMax: 1024 * 1024, // 1MB
		PathPerm:     0o700,
		FilePerm:     0o600,
	})
}

func (s *DiskvStore) Init() error {
	if err := os.MkdirAll(s.path, 0o700); err != nil {
		return fmt.Errorf("failed to create storage directory: %w", err)
	}
	s.open()

	if s.d.Has(constants.EntriesKey) {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}
	return s.Set(constants.EntriesKey, []byte("[]"))
}

func (s *DiskvStore) Load() error {
	if s.d != nil {
		return nil
	}

	info, err := os.Stat(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return ErrNotInitialized
	}
	if err != nil {
		return fmt.Errorf("failed to access storage: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("storage path %s is not a directory", s.path)
	}

	s.open()
	return nil
}

func (s *DiskvStore) Close() error {
	s.d = nil
	return nil
}

func (s *DiskvStore) Get(key string) ([]byte, error) {
	if s.d == nil {
		return nil, ErrNotInitialized
	}
	val, err := s.d.Read(key)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return val, nil
}

func (s *DiskvStore) Set(key string, value []byte) error {
	if s.d == nil {
		return ErrNotInitialized
	}
	if err := s.d.Write(key, value); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

func (s *DiskvStore) Delete(key string) error {
	if s.d == nil {
		return ErrNotInitialized
	}
	if err := s.d.Erase(key); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

func (s *DiskvStore) GetConfigPath() string {
	return s.path
}
