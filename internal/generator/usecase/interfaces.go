package usecase

import (
	"context"

	"github.com/mimesis-go/mimesis/internal/generator/models"
	"github.com/mimesis-go/mimesis/internal/generator/usecase/general/generator/provider"
	"github.com/mimesis-go/mimesis/internal/generator/usecase/general/locale"
)

// UseCase interface implementation should generate values by provider keys and rows by schemas.
//
//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UseCase --output=mock --outpkg=mock
type UseCase interface {
	// Setup function should configure some use case parameters.
	Setup() error
	// Locales function should return all supported locales.
	Locales() []locale.Info
	// Providers function should return all provider methods available by key.
	Providers() []provider.MethodInfo
	// Generate function should call provider method by key and return generated values.
	Generate(ctx context.Context, config GenerateConfig) ([]any, error)
	// ValidateSchema function should check that schema fields can be generated.
	ValidateSchema(schema *models.SchemaConfig) error
	// CreateTask function should start task to generate schema rows and send them to output.
	CreateTask(ctx context.Context, config TaskConfig) (string, error)
	// GetProgress should return progress of data generation
	GetProgress(taskID string) (map[string]Progress, error)
	// GetResult should return task status (completed or not) and an error if necessary.
	GetResult(taskID string) (bool, error)
	// WaitResult should wait data generation and return error if needed
	WaitResult(taskID string) error
	// Teardown function should wait generation finish
	Teardown() error
}

// Observer interface implementation should count generated values.
type Observer interface {
	// AddValuesGenerated should add count to number of values generated by key
	AddValuesGenerated(key string, count int)
	// IncrementTaskFinished should record finished task
	IncrementTaskFinished(err error)
}
