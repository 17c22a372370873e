package storage

import "github.com/julianstephens/timetrail/internal/models"

type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Records
	AddRecords(records []models.ActivityRecord) error
	AllRecords() ([]models.ActivityRecord, error)
	CountRecords() (int, error)

	// Utils
	GetPath() string
}
