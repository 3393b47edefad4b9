// Package compendium provides the interface for compendium snapshot
// persistence. One snapshot is stored at a time; imports replace it
// wholesale and combat treats it as read-only.
package compendium

//go:generate mockgen -destination=mock/mock_repository.go -package=compendiummock github.com/The-Night7/bofuri-mj/internal/repositories/compendium Repository

import (
	"context"

	"github.com/The-Night7/bofuri-mj/internal/entities"
)

// Repository defines the storage interface for the compendium snapshot.
type Repository interface {
	// Save replaces the stored snapshot
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Get retrieves the stored snapshot
	// Returns errors.NotFound when no snapshot has been imported yet
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Delete removes the stored snapshot
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// SaveInput defines the input for saving the snapshot
type SaveInput struct {
	Compendium *entities.Compendium
}

// SaveOutput defines the output for saving the snapshot
type SaveOutput struct{}

// GetInput defines the input for retrieving the snapshot
type GetInput struct{}

// GetOutput defines the output for retrieving the snapshot
type GetOutput struct {
	Compendium *entities.Compendium
}

// DeleteInput defines the input for deleting the snapshot
type DeleteInput struct{}

// DeleteOutput defines the output for deleting the snapshot
type DeleteOutput struct{}
