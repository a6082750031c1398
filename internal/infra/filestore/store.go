// Package filestore provides a single-file implementation of StateRepository.
// The whole task list is read on Load and rewritten on Save, as JSON or YAML.
package filestore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/runoshun/pt/internal/domain"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of the state file.
type Format string

// Supported formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatForPath picks the format from the file extension. Unknown extensions use JSON.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// storeData represents the file structure.
// Fields are ordered to minimize memory padding.
type storeData struct {
	Tasks []*taskData `json:"tasks" yaml:"tasks"`
	Meta  meta        `json:"meta" yaml:"meta"`
}

// meta contains store metadata.
type meta struct {
	Updated    time.Time `json:"updated,omitempty" yaml:"updated,omitempty"`
	NextTaskID int       `json:"nextTaskID" yaml:"next_task_id"`
	Schema     int       `json:"schema" yaml:"schema"`
}

// taskData is the persisted representation of a task.
type taskData = domain.Task

const schemaVersion = 1

// Store implements domain.StateRepository using one file.
type Store struct {
	now    func() time.Time
	path   string
	format Format
}

// New creates a new Store for the given file path, picking the format from the extension.
// The file does not need to exist; it will be created on first write.
func New(path string) *Store {
	return NewWithFormat(path, FormatForPath(path))
}

// NewWithFormat creates a new Store with an explicit format.
func NewWithFormat(path string, format Format) *Store {
	return &Store{
		path:   path,
		format: format,
		now:    time.Now,
	}
}

// Path returns the state file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the state file. A missing or empty file yields an empty state.
func (s *Store) Load() (*domain.State, error) {
	content, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.NewState(), nil
		}
		return nil, fmt.Errorf("read store file: %w", err)
	}
	if len(strings.TrimSpace(string(content))) == 0 {
		return domain.NewState(), nil
	}

	var data storeData
	if err := s.unmarshal(content, &data); err != nil {
		return nil, fmt.Errorf("parse store file %s: %w", s.path, err)
	}

	state := &domain.State{NextID: data.Meta.NextTaskID}
	for _, t := range data.Tasks {
		if t == nil {
			continue
		}
		state.Tasks = append(state.Tasks, t)
	}
	state.Normalize()
	return state, nil
}

// Save replaces the state file with state.
func (s *Store) Save(state *domain.State) error {
	data := storeData{
		Tasks: state.Tasks,
		Meta: meta{
			Schema:     schemaVersion,
			NextTaskID: state.NextID,
			Updated:    s.now().UTC().Truncate(time.Second),
		},
	}
	if data.Tasks == nil {
		data.Tasks = []*taskData{}
	}

	content, err := s.marshal(&data)
	if err != nil {
		return fmt.Errorf("marshal store data: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	return WriteAtomic(s.path, content, 0o600)
}

func (s *Store) marshal(data *storeData) ([]byte, error) {
	if s.format == FormatYAML {
		return yaml.Marshal(data)
	}
	content, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(content, '\n'), nil
}

func (s *Store) unmarshal(content []byte, data *storeData) error {
	if s.format == FormatYAML {
		return yaml.Unmarshal(content, data)
	}
	return json.Unmarshal(content, data)
}

// WriteAtomic writes to a temp file first, then renames it over path.
// A failure at any point leaves the previous file untouched.
func WriteAtomic(path string, content []byte, perm os.FileMode) error {
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, content, perm); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath) // Clean up
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}

// Ensure Store implements StateRepository.
var _ domain.StateRepository = (*Store)(nil)
