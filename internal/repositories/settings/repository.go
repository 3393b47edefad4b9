// Package settings provides the interface for table settings
// persistence. One record is stored at a time; saves replace it
// wholesale.
package settings

//go:generate mockgen -destination=mock/mock_repository.go -package=settingsmock github.com/The-Night7/bofuri-mj/internal/repositories/settings Repository

import (
	"context"

	"github.com/The-Night7/bofuri-mj/internal/entities"
)

// Repository defines the storage interface for the settings record.
type Repository interface {
	// Save replaces the stored settings
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Get retrieves the stored settings
	// Returns errors.NotFound when none have been saved yet
	Get(ctx context.Context, input GetInput) (*GetOutput, error)
}

// SaveInput defines the input for saving the settings
type SaveInput struct {
	Settings *entities.Settings
}

// SaveOutput defines the output for saving the settings
type SaveOutput struct{}

// GetInput defines the input for retrieving the settings
type GetInput struct{}

// GetOutput defines the output for retrieving the settings
type GetOutput struct {
	Settings *entities.Settings
}
