package usecase

import (
	"github.com/mimesis-go/mimesis/internal/generator/models"
	"github.com/mimesis-go/mimesis/internal/generator/output"
)

// GenerateConfig type is used to describe generation of values by one provider method.
type GenerateConfig struct {
	Key    string
	Params map[string]any
	// Locale of data-backed providers, use case default if empty
	Locale string
	// Seed of random source, random if zero
	Seed  int64
	Count int
}

// TaskConfig type is used to describe config for task.
type TaskConfig struct {
	Schema *models.SchemaConfig
	Output output.Output
}

// Progress type is used to represent progress of generation.
type Progress struct {
	Done  uint64
	Total uint64
}
