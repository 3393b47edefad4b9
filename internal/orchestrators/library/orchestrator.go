// Package library implements the orchestrator for the compendium:
// importing markdown documents into a stored snapshot and answering
// monster/skill queries against it.
package library

//go:generate mockgen -destination=mock/mock_service.go -package=librarymock github.com/The-Night7/bofuri-mj/internal/orchestrators/library Service

import (
	"context"
	"log/slog"

	builder "github.com/The-Night7/bofuri-mj/internal/compendium"
	"github.com/The-Night7/bofuri-mj/internal/engine"
	"github.com/The-Night7/bofuri-mj/internal/errors"
	compendiumrepo "github.com/The-Night7/bofuri-mj/internal/repositories/compendium"
)

// Service defines the interface for compendium operations
type Service interface {
	// Import parses markdown documents and replaces the stored
	// snapshot. Empty skill documents are skipped, not errors.
	Import(ctx context.Context, input *ImportInput) (*ImportOutput, error)

	// GetCompendium fetches the stored snapshot
	GetCompendium(ctx context.Context, input *GetCompendiumInput) (*GetCompendiumOutput, error)

	// GetMonster fetches one monster by its compendium key
	GetMonster(ctx context.Context, input *GetMonsterInput) (*GetMonsterOutput, error)

	// GetSkill fetches one skill by its compendium key
	GetSkill(ctx context.Context, input *GetSkillInput) (*GetSkillOutput, error)

	// ResolveMonster derives the monster's stat snapshot at a level.
	// Returns errors.FailedPrecondition when the monster carries no
	// stat data at all; callers must surface that, never fight with
	// a zero-stat entity.
	ResolveMonster(ctx context.Context, input *ResolveMonsterInput) (*ResolveMonsterOutput, error)
}

// Config holds the dependencies for the library orchestrator
type Config struct {
	CompendiumRepo compendiumrepo.Repository
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.CompendiumRepo == nil {
		vb.RequiredField("CompendiumRepo")
	}
	return vb.Build()
}

type orchestrator struct {
	repo compendiumrepo.Repository
}

// NewOrchestrator creates a new library orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &orchestrator{repo: cfg.CompendiumRepo}, nil
}

func (o *orchestrator) Import(ctx context.Context, input *ImportInput) (*ImportOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.MonsterDoc == "" && len(input.SkillDocs) == 0 {
		return nil, errors.InvalidArgument("at least one document is required")
	}

	built, err := builder.Build(&builder.BuildInput{
		MonsterDoc: input.MonsterDoc,
		SkillDocs:  input.SkillDocs,
		Densify:    input.Densify,
	})
	if err != nil {
		return nil, err
	}

	if _, err := o.repo.Save(ctx, compendiumrepo.SaveInput{Compendium: built.Compendium}); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "compendium imported",
		"monsters", len(built.Compendium.Monsters),
		"skills", len(built.Compendium.Skills),
		"densified", input.Densify)

	return &ImportOutput{
		MonsterCount: len(built.Compendium.Monsters),
		SkillCount:   len(built.Compendium.Skills),
	}, nil
}

func (o *orchestrator) GetCompendium(ctx context.Context, _ *GetCompendiumInput) (*GetCompendiumOutput, error) {
	out, err := o.repo.Get(ctx, compendiumrepo.GetInput{})
	if err != nil {
		return nil, err
	}
	return &GetCompendiumOutput{Compendium: out.Compendium}, nil
}

func (o *orchestrator) GetMonster(ctx context.Context, input *GetMonsterInput) (*GetMonsterOutput, error) {
	if input == nil || input.Name == "" {
		return nil, errors.InvalidArgument("monster name is required")
	}

	out, err := o.repo.Get(ctx, compendiumrepo.GetInput{})
	if err != nil {
		return nil, err
	}
	m, ok := out.Compendium.Monsters[input.Name]
	if !ok {
		return nil, errors.NotFoundf("monster %q not found", input.Name)
	}
	return &GetMonsterOutput{Monster: m}, nil
}

func (o *orchestrator) GetSkill(ctx context.Context, input *GetSkillInput) (*GetSkillOutput, error) {
	if input == nil || input.Name == "" {
		return nil, errors.InvalidArgument("skill name is required")
	}

	out, err := o.repo.Get(ctx, compendiumrepo.GetInput{})
	if err != nil {
		return nil, err
	}
	s, ok := out.Compendium.Skills[input.Name]
	if !ok {
		return nil, errors.NotFoundf("skill %q not found", input.Name)
	}
	return &GetSkillOutput{Skill: s}, nil
}

func (o *orchestrator) ResolveMonster(ctx context.Context, input *ResolveMonsterInput) (*ResolveMonsterOutput, error) {
	if input == nil || input.Name == "" {
		return nil, errors.InvalidArgument("monster name is required")
	}
	if input.Level < 1 {
		return nil, errors.InvalidArgumentf("level must be positive, got %d", input.Level)
	}

	got, err := o.GetMonster(ctx, &GetMonsterInput{Name: input.Name})
	if err != nil {
		return nil, err
	}

	v := engine.ResolveVariant(got.Monster, input.Level)
	if v == nil {
		return nil, errors.FailedPreconditionf("no stats available for monster %q", input.Name)
	}

	return &ResolveMonsterOutput{Monster: got.Monster, Variant: v}, nil
}
