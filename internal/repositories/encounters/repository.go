// Package encounters provides storage for running encounters. Fights
// are ephemeral session state, so the default implementation is
// in-memory.
package encounters

import (
	"context"

	"github.com/The-Night7/bofuri-mj/internal/entities"
)

// Repository defines the storage interface for encounters.
type Repository interface {
	// Save stores a new encounter
	Save(ctx context.Context, input *SaveInput) (*SaveOutput, error)

	// Get retrieves an encounter by ID
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)

	// Update replaces an existing encounter
	Update(ctx context.Context, input *UpdateInput) (*UpdateOutput, error)

	// Delete removes an encounter
	Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error)
}

// SaveInput defines the request for saving an encounter
type SaveInput struct {
	Encounter *entities.Encounter
}

// SaveOutput defines the response for saving an encounter
type SaveOutput struct{}

// GetInput defines the request for retrieving an encounter
type GetInput struct {
	EncounterID string
}

// GetOutput defines the response for retrieving an encounter
type GetOutput struct {
	Encounter *entities.Encounter
}

// UpdateInput defines the request for updating an encounter
type UpdateInput struct {
	Encounter *entities.Encounter
}

// UpdateOutput defines the response for updating an encounter
type UpdateOutput struct{}

// DeleteInput defines the request for deleting an encounter
type DeleteInput struct {
	EncounterID string
}

// DeleteOutput defines the response for deleting an encounter
type DeleteOutput struct{}
