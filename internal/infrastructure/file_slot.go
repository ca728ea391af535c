package infrastructure

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"adsniper/internal/domain"
	"adsniper/pkg/logger"
)

// FileSlot is a durable key/value slot backed by a single file under a data
// directory. Writes go to a temp file first and are renamed into place, so a
// crashed write never leaves a half-written slot behind.
type FileSlot struct {
	path   string
	mutex  sync.Mutex
	logger *logger.Logger
}

var _ domain.SlotStore = (*FileSlot)(nil)

// creates a file-backed slot named after the slot key inside dataDir. The
// directory is created on demand.
func NewFileSlot(dataDir, name string, logger *logger.Logger) (*FileSlot, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}
	return &FileSlot{
		path:   filepath.Join(dataDir, name+".json"),
		logger: logger,
	}, nil
}

func (s *FileSlot) Get() (string, bool, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to read slot %s: %w", s.path, err)
	}
	return string(data), true, nil
}

func (s *FileSlot) Set(value string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, []byte(value), 0o644); err != nil {
		return fmt.Errorf("failed to write slot %s: %w", s.path, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace slot %s: %w", s.path, err)
	}

	s.logger.WithFields(map[string]any{
		"path":  s.path,
		"bytes": len(value),
	}).Debug("Persisted slot value")
	return nil
}
