package encounters

import (
	"context"
	"sync"

	"github.com/The-Night7/bofuri-mj/internal/entities"
	"github.com/The-Night7/bofuri-mj/internal/errors"
)

// InMemoryRepository implements Repository using in-memory storage
type InMemoryRepository struct {
	mu    sync.RWMutex
	store map[string]*entities.Encounter
}

// NewInMemory creates a new in-memory repository
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		store: make(map[string]*entities.Encounter),
	}
}

var _ Repository = (*InMemoryRepository)(nil)

// Save stores a new encounter
func (r *InMemoryRepository) Save(ctx context.Context, input *SaveInput) (*SaveOutput, error) {
	if input == nil || input.Encounter == nil {
		return nil, errors.InvalidArgument("encounter is required")
	}
	if input.Encounter.ID == "" {
		return nil, errors.InvalidArgument("encounter ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.Encounter.ID]; exists {
		return nil, errors.AlreadyExistsf("encounter %s already exists", input.Encounter.ID)
	}
	r.store[input.Encounter.ID] = input.Encounter.Clone()

	return &SaveOutput{}, nil
}

// Get retrieves an encounter by ID
func (r *InMemoryRepository) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil || input.EncounterID == "" {
		return nil, errors.InvalidArgument("encounter ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	e, exists := r.store[input.EncounterID]
	if !exists {
		return nil, errors.NotFound("encounter not found")
	}

	// Copies keep callers from mutating the store directly.
	return &GetOutput{Encounter: e.Clone()}, nil
}

// Update replaces an existing encounter
func (r *InMemoryRepository) Update(ctx context.Context, input *UpdateInput) (*UpdateOutput, error) {
	if input == nil || input.Encounter == nil {
		return nil, errors.InvalidArgument("encounter is required")
	}
	if input.Encounter.ID == "" {
		return nil, errors.InvalidArgument("encounter ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.Encounter.ID]; !exists {
		return nil, errors.NotFound("encounter not found")
	}
	r.store[input.Encounter.ID] = input.Encounter.Clone()

	return &UpdateOutput{}, nil
}

// Delete removes an encounter
func (r *InMemoryRepository) Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error) {
	if input == nil || input.EncounterID == "" {
		return nil, errors.InvalidArgument("encounter ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.EncounterID]; !exists {
		return nil, errors.NotFound("encounter not found")
	}
	delete(r.store, input.EncounterID)

	return &DeleteOutput{}, nil
}
