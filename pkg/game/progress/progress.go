// Package progress keeps best and last completion times per level, and the
// highest level reached, in a YAML file.
package progress

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"tiltmaze/pkg/game/state"
)

// Progress is the persisted record
type Progress struct {
	BestTimes    map[int]float64 `yaml:"best_times"`
	LastTimes    map[int]float64 `yaml:"last_times"`
	HighestLevel int             `yaml:"highest_level"`
}

func empty() Progress {
	return Progress{
		BestTimes:    map[int]float64{},
		LastTimes:    map[int]float64{},
		HighestLevel: 1,
	}
}

// Store is a Progress backed by a file. An empty path keeps it in memory.
type Store struct {
	path string
	data Progress
}

// Open loads the store at path. A missing file is an empty record. An
// unreadable or malformed file also yields an empty record, along with the
// error so the caller can report it.
func Open(path string) (*Store, error) {
	s := &Store{path: path, data: empty()}
	if path == "" {
		return s, nil
	}

	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("read progress %s: %w", path, err)
	}

	var p Progress
	if err := yaml.Unmarshal(raw, &p); err != nil {
		return s, fmt.Errorf("parse progress %s: %w", path, err)
	}
	if p.BestTimes != nil {
		s.data.BestTimes = p.BestTimes
	}
	if p.LastTimes != nil {
		s.data.LastTimes = p.LastTimes
	}
	if p.HighestLevel > 1 {
		s.data.HighestLevel = p.HighestLevel
	}
	return s, nil
}

// Record stores a completion time: it becomes the last time, the best time
// if it beats the previous one, and raises the highest level if needed
func (s *Store) Record(level int, seconds float64) error {
	s.data.LastTimes[level] = seconds
	if best, ok := s.data.BestTimes[level]; !ok || seconds < best {
		s.data.BestTimes[level] = seconds
	}
	if level > s.data.HighestLevel {
		s.data.HighestLevel = level
	}
	return s.save()
}

// Best returns the best time for a level
func (s *Store) Best(level int) (float64, bool) {
	t, ok := s.data.BestTimes[level]
	return t, ok
}

// Last returns the most recent time for a level
func (s *Store) Last(level int) (float64, bool) {
	t, ok := s.data.LastTimes[level]
	return t, ok
}

// HighestLevel returns the highest level completed, at least 1
func (s *Store) HighestLevel() int {
	return s.data.HighestLevel
}

// Clear forgets everything and removes the file
func (s *Store) Clear() error {
	s.data = empty()
	if s.path == "" {
		return nil
	}
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove progress %s: %w", s.path, err)
	}
	return nil
}

// save writes the record through a temp file so a crash never leaves a
// truncated file behind
func (s *Store) save() error {
	if s.path == "" {
		return nil
	}
	raw, err := yaml.Marshal(s.data)
	if err != nil {
		return fmt.Errorf("encode progress: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create progress dir: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("write progress %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace progress %s: %w", s.path, err)
	}
	return nil
}

// LevelBuilt is a no-op; the store only cares about wins
func (s *Store) LevelBuilt(state.LevelBuiltEvent) {}

// LevelWon records the time. Write failures are logged and otherwise
// ignored so they never interrupt play.
func (s *Store) LevelWon(e state.LevelWonEvent) {
	if err := s.Record(e.Level, e.Seconds); err != nil {
		log.WithError(err).Warn("Could not save progress")
	}
}
