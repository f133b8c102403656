package storage

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
)

// Storer looks up specs by identifier.
type Storer[T ValidatingSpec] interface {
	Get(Identifier) (T, bool)
}

// FileStore loads every JSON asset under a directory. Assets are read once,
// at construction.
type FileStore[T ValidatingSpec] struct {
	path    string
	records map[Identifier]T

	mu sync.RWMutex
}

func NewFileStore[T ValidatingSpec](path string) (*FileStore[T], error) {
	s := &FileStore[T]{
		path:    path,
		records: map[Identifier]T{},
	}

	err := s.load()
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}

	return s, nil
}

func (s *FileStore[T]) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = map[Identifier]T{}

	return filepath.Walk(s.path, func(path string, info os.FileInfo, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if info.IsDir() || filepath.Ext(path) != ".json" {
			return nil
		}

		asset, err := s.loadAsset(path)
		if err != nil {
			return fmt.Errorf("%s: %w", filepath.Base(path), err)
		}

		err = asset.Validate()
		if err != nil {
			return fmt.Errorf("validating %s: %w", filepath.Base(path), err)
		}

		if _, ok := s.records[asset.Id()]; ok {
			return fmt.Errorf("duplicate key detected: %s", asset.Id())
		}

		s.records[asset.Id()] = asset.Spec
		return nil
	})
}

// Get returns the spec stored under id.
func (s *FileStore[T]) Get(id Identifier) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	val, ok := s.records[id]
	return val, ok
}

func (s *FileStore[T]) loadAsset(path string) (*Asset[T], error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}

	// Ignoring close error - file is read-only, error is not actionable
	defer func() { _ = file.Close() }()

	jsonData, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}

	asset := &Asset[T]{}
	err = json.Unmarshal(jsonData, asset)
	if err != nil {
		return nil, fmt.Errorf("unmarshalling asset: %w", err)
	}

	return asset, nil
}
