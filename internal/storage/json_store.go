package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/google/uuid"

	"github.com/julianstephens/timetrail/internal/models"
)

type Store struct {
	Version int                     `json:"version"`
	Records []models.ActivityRecord `json:"records"`
}

type JSONStore struct {
	path  string
	store *Store
}

func NewJSONStore(path string) *JSONStore {
	return &JSONStore{
		path: path,
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		// Already initialized; keep the existing records.
		return s.Load()
	}

	s.store = &Store{Version: 1}
	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'timetrail init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.store = &Store{}
	if err := json.Unmarshal(data, s.store); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) AddRecords(records []models.ActivityRecord) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	for _, rec := range records {
		if rec.ID == "" {
			rec.ID = uuid.New().String()
		}
		s.store.Records = append(s.store.Records, rec)
	}
	return s.save()
}

func (s *JSONStore) AllRecords() ([]models.ActivityRecord, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	records := make([]models.ActivityRecord, len(s.store.Records))
	copy(records, s.store.Records)

	// Stable date order to match the SQLite backend.
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Date.Before(records[j].Date)
	})
	return records, nil
}

func (s *JSONStore) CountRecords() (int, error) {
	if s.store == nil {
		return 0, fmt.Errorf("storage not loaded")
	}
	return len(s.store.Records), nil
}

func (s *JSONStore) GetPath() string {
	return s.path
}
