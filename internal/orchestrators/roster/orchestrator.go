// Package roster implements the orchestrator for player sheet
// lifecycle: creation, edits, and the HP/MP write-backs that follow
// combat.
package roster

//go:generate mockgen -destination=mock/mock_service.go -package=rostermock github.com/The-Night7/bofuri-mj/internal/orchestrators/roster Service

import (
	"context"
	"log/slog"

	"github.com/The-Night7/bofuri-mj/internal/errors"
	"github.com/The-Night7/bofuri-mj/internal/repositories/players"
)

// Service defines the interface for roster operations
type Service interface {
	// CreatePlayer stores a new player sheet, defaulting current HP/MP
	// to the maxima when unset
	CreatePlayer(ctx context.Context, input *CreatePlayerInput) (*CreatePlayerOutput, error)

	// GetPlayer fetches a player sheet by name
	GetPlayer(ctx context.Context, input *GetPlayerInput) (*GetPlayerOutput, error)

	// ListPlayers fetches every player sheet
	ListPlayers(ctx context.Context, input *ListPlayersInput) (*ListPlayersOutput, error)

	// UpdatePlayer replaces an existing player sheet
	UpdatePlayer(ctx context.Context, input *UpdatePlayerInput) (*UpdatePlayerOutput, error)

	// DeletePlayer removes a player sheet
	DeletePlayer(ctx context.Context, input *DeletePlayerInput) (*DeletePlayerOutput, error)

	// RestPlayer restores a player's current HP/MP to the maxima
	RestPlayer(ctx context.Context, input *RestPlayerInput) (*RestPlayerOutput, error)
}

// Config holds the dependencies for the roster orchestrator
type Config struct {
	PlayerRepo players.Repository
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.PlayerRepo == nil {
		vb.RequiredField("PlayerRepo")
	}
	return vb.Build()
}

type orchestrator struct {
	playerRepo players.Repository
}

// NewOrchestrator creates a new roster orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &orchestrator{playerRepo: cfg.PlayerRepo}, nil
}

func (o *orchestrator) CreatePlayer(ctx context.Context, input *CreatePlayerInput) (*CreatePlayerOutput, error) {
	if input == nil || input.Player == nil {
		return nil, errors.InvalidArgument("player is required")
	}
	if input.Player.Name == "" {
		return nil, errors.InvalidArgument("player name is required")
	}
	if input.Player.Level < 1 {
		input.Player.Level = 1
	}
	input.Player.EnsureCurrent()

	out, err := o.playerRepo.Create(ctx, players.CreateInput{Player: input.Player})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "player created",
		"player", out.Player.Name,
		"level", out.Player.Level)

	return &CreatePlayerOutput{Player: out.Player}, nil
}

func (o *orchestrator) GetPlayer(ctx context.Context, input *GetPlayerInput) (*GetPlayerOutput, error) {
	if input == nil || input.Name == "" {
		return nil, errors.InvalidArgument("player name is required")
	}

	out, err := o.playerRepo.Get(ctx, players.GetInput{Name: input.Name})
	if err != nil {
		return nil, err
	}
	out.Player.EnsureCurrent()

	return &GetPlayerOutput{Player: out.Player}, nil
}

func (o *orchestrator) ListPlayers(ctx context.Context, input *ListPlayersInput) (*ListPlayersOutput, error) {
	out, err := o.playerRepo.List(ctx, players.ListInput{})
	if err != nil {
		return nil, err
	}
	for _, p := range out.Players {
		p.EnsureCurrent()
	}
	return &ListPlayersOutput{Players: out.Players}, nil
}

func (o *orchestrator) UpdatePlayer(ctx context.Context, input *UpdatePlayerInput) (*UpdatePlayerOutput, error) {
	if input == nil || input.Player == nil {
		return nil, errors.InvalidArgument("player is required")
	}
	if input.Player.Name == "" {
		return nil, errors.InvalidArgument("player name is required")
	}
	input.Player.EnsureCurrent()

	out, err := o.playerRepo.Update(ctx, players.UpdateInput{Player: input.Player})
	if err != nil {
		return nil, err
	}

	return &UpdatePlayerOutput{Player: out.Player}, nil
}

func (o *orchestrator) DeletePlayer(ctx context.Context, input *DeletePlayerInput) (*DeletePlayerOutput, error) {
	if input == nil || input.Name == "" {
		return nil, errors.InvalidArgument("player name is required")
	}
	if _, err := o.playerRepo.Delete(ctx, players.DeleteInput{Name: input.Name}); err != nil {
		return nil, err
	}
	return &DeletePlayerOutput{}, nil
}

func (o *orchestrator) RestPlayer(ctx context.Context, input *RestPlayerInput) (*RestPlayerOutput, error) {
	if input == nil || input.Name == "" {
		return nil, errors.InvalidArgument("player name is required")
	}

	got, err := o.playerRepo.Get(ctx, players.GetInput{Name: input.Name})
	if err != nil {
		return nil, err
	}

	got.Player.Reset()
	out, err := o.playerRepo.Update(ctx, players.UpdateInput{Player: got.Player})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "player rested",
		"player", out.Player.Name)

	return &RestPlayerOutput{Player: out.Player}, nil
}
