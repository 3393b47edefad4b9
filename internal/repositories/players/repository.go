// Package players provides the interface for player sheet persistence
package players

//go:generate mockgen -destination=mock/mock_repository.go -package=playersmock github.com/The-Night7/bofuri-mj/internal/repositories/players Repository

import (
	"context"

	"github.com/The-Night7/bofuri-mj/internal/entities"
)

// Repository defines the interface for player sheet persistence.
// Players are keyed by their unique name.
type Repository interface {
	// Create stores a new player sheet
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.AlreadyExists if a player with the same name exists
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a player by name
	// Returns errors.NotFound if the player doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces an existing player sheet
	// Returns errors.NotFound if the player doesn't exist
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes a player by name
	// Returns errors.NotFound if the player doesn't exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// List retrieves every player sheet
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

// CreateInput defines the input for creating a player
type CreateInput struct {
	Player *entities.Player
}

// CreateOutput defines the output for creating a player
type CreateOutput struct {
	Player *entities.Player
}

// GetInput defines the input for getting a player
type GetInput struct {
	Name string
}

// GetOutput defines the output for getting a player
type GetOutput struct {
	Player *entities.Player
}

// UpdateInput defines the input for updating a player
type UpdateInput struct {
	Player *entities.Player
}

// UpdateOutput defines the output for updating a player
type UpdateOutput struct {
	Player *entities.Player
}

// DeleteInput defines the input for deleting a player
type DeleteInput struct {
	Name string
}

// DeleteOutput defines the output for deleting a player
type DeleteOutput struct{}

// ListInput defines the input for listing players
type ListInput struct{}

// ListOutput defines the output for listing players
type ListOutput struct {
	Players []*entities.Player
}
