// Package encounter implements the orchestrator for running fights:
// assembling participants, resolving exchanges, advancing the
// round-robin turn order, and writing player HP back to the roster.
package encounter

//go:generate mockgen -destination=mock/mock_service.go -package=encountermock github.com/The-Night7/bofuri-mj/internal/orchestrators/encounter Service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/The-Night7/bofuri-mj/internal/engine"
	"github.com/The-Night7/bofuri-mj/internal/entities"
	"github.com/The-Night7/bofuri-mj/internal/errors"
	"github.com/The-Night7/bofuri-mj/internal/orchestrators/library"
	"github.com/The-Night7/bofuri-mj/internal/pkg/clock"
	"github.com/The-Night7/bofuri-mj/internal/pkg/idgen"
	"github.com/The-Night7/bofuri-mj/internal/repositories/encounters"
	"github.com/The-Night7/bofuri-mj/internal/repositories/players"
	settingsrepo "github.com/The-Night7/bofuri-mj/internal/repositories/settings"
)

// Auto-rolls use a d100 like the table's physical dice.
const autoRollSides = 100

// Service defines the interface for encounter operations
type Service interface {
	// Start assembles a new encounter from roster players and
	// compendium monsters at their chosen levels
	Start(ctx context.Context, input *StartInput) (*StartOutput, error)

	// Get fetches a running encounter
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)

	// Attack resolves one exchange between two participants and logs it
	Attack(ctx context.Context, input *AttackInput) (*AttackOutput, error)

	// NextTurn advances the round-robin turn order, skipping downed
	// participants
	NextTurn(ctx context.Context, input *NextTurnInput) (*NextTurnOutput, error)

	// End removes a finished encounter
	End(ctx context.Context, input *EndInput) (*EndOutput, error)

	// GetSettings reports the rule tunables currently in effect
	GetSettings(ctx context.Context, input *GetSettingsInput) (*GetSettingsOutput, error)

	// UpdateSettings replaces the stored rule tunables; later
	// exchanges resolve with the new values
	UpdateSettings(ctx context.Context, input *UpdateSettingsInput) (*UpdateSettingsOutput, error)
}

// Config holds the dependencies for the encounter orchestrator
type Config struct {
	EncounterRepo encounters.Repository
	PlayerRepo    players.Repository
	Library       library.Service
	IDGenerator   idgen.Generator
	Clock         clock.Clock

	// SettingsRepo, when set, lets the table adjust the divisor at
	// runtime; stored settings override VITDivisor.
	SettingsRepo settingsrepo.Repository

	// VITDivisor scales defender VIT in the damage formula; zero
	// means the engine default.
	VITDivisor float64
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.EncounterRepo == nil {
		vb.RequiredField("EncounterRepo")
	}
	if c.PlayerRepo == nil {
		vb.RequiredField("PlayerRepo")
	}
	if c.Library == nil {
		vb.RequiredField("Library")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	return vb.Build()
}

type orchestrator struct {
	encounterRepo encounters.Repository
	playerRepo    players.Repository
	library       library.Service
	idGen         idgen.Generator
	clock         clock.Clock
	settingsRepo  settingsrepo.Repository
	vitDivisor    float64
}

// NewOrchestrator creates a new encounter orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}
	return &orchestrator{
		encounterRepo: cfg.EncounterRepo,
		playerRepo:    cfg.PlayerRepo,
		library:       cfg.Library,
		idGen:         cfg.IDGenerator,
		clock:         c,
		settingsRepo:  cfg.SettingsRepo,
		vitDivisor:    cfg.VITDivisor,
	}, nil
}

func (o *orchestrator) Start(ctx context.Context, input *StartInput) (*StartOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if len(input.PlayerNames)+len(input.Monsters) < 2 {
		return nil, errors.InvalidArgument("an encounter needs at least two participants")
	}

	e := &entities.Encounter{ID: o.idGen.Generate()}

	for _, name := range input.PlayerNames {
		got, err := o.playerRepo.Get(ctx, players.GetInput{Name: name})
		if err != nil {
			return nil, err
		}
		e.Participants = append(e.Participants, &entities.Participant{
			Side:       entities.SidePlayer,
			Entity:     entities.RuntimeFromPlayer(got.Player),
			PlayerName: got.Player.Name,
		})
	}

	for _, pick := range input.Monsters {
		count := pick.Count
		if count < 1 {
			count = 1
		}
		resolved, err := o.library.ResolveMonster(ctx, &library.ResolveMonsterInput{
			Name:  pick.Name,
			Level: pick.Level,
		})
		if err != nil {
			return nil, err
		}
		for i := 0; i < count; i++ {
			entity := entities.RuntimeFromVariant(resolved.Monster, resolved.Variant)
			if count > 1 {
				entity.Name = fmt.Sprintf("%s %d", entity.Name, i+1)
			}
			e.Participants = append(e.Participants, &entities.Participant{
				Side:   entities.SideMob,
				Entity: entity,
			})
		}
	}

	if _, err := o.encounterRepo.Save(ctx, &encounters.SaveInput{Encounter: e}); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "encounter started",
		"encounter_id", e.ID,
		"participants", len(e.Participants))

	return &StartOutput{Encounter: e, CurrentIndex: currentIndex(e)}, nil
}

func (o *orchestrator) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil || input.EncounterID == "" {
		return nil, errors.InvalidArgument("encounter ID is required")
	}
	got, err := o.encounterRepo.Get(ctx, &encounters.GetInput{EncounterID: input.EncounterID})
	if err != nil {
		return nil, err
	}
	return &GetOutput{
		Encounter:    got.Encounter,
		CurrentIndex: currentIndex(got.Encounter),
		Round:        got.Encounter.Round(),
	}, nil
}

func (o *orchestrator) Attack(ctx context.Context, input *AttackInput) (*AttackOutput, error) {
	if input == nil || input.EncounterID == "" {
		return nil, errors.InvalidArgument("encounter ID is required")
	}
	if input.Attacker == input.Defender {
		return nil, errors.InvalidArgument("attacker and defender must be different participants")
	}

	got, err := o.encounterRepo.Get(ctx, &encounters.GetInput{EncounterID: input.EncounterID})
	if err != nil {
		return nil, err
	}
	e := got.Encounter

	attacker, err := participantAt(e, input.Attacker)
	if err != nil {
		return nil, err
	}
	defender, err := participantAt(e, input.Defender)
	if err != nil {
		return nil, err
	}
	if !attacker.Entity.Alive() {
		return nil, errors.FailedPreconditionf("%s is down and cannot attack", attacker.Entity.Name)
	}

	rollA, err := o.rollOrUse(input.RollA)
	if err != nil {
		return nil, err
	}
	rollB, err := o.rollOrUse(input.RollB)
	if err != nil {
		return nil, err
	}

	outcome, err := engine.Resolve(attacker.Entity, defender.Entity, rollA, rollB, engine.Options{
		Kind:        input.Kind,
		ArmorPierce: input.ArmorPierce,
		VITDivisor:  o.divisor(ctx),
	})
	if err != nil {
		return nil, err
	}

	record := entities.ActionRecord{
		Attacker: attacker.Entity.Name,
		Defender: defender.Entity.Name,
		RollA:    rollA,
		RollB:    rollB,
		Hit:      outcome.Hit,
		Damage:   outcome.Damage,
		Counter:  outcome.Counter,
		Effects:  outcome.Effects,
		At:       o.clock.Now(),
	}
	e.Log = append(e.Log, record)

	if _, err := o.encounterRepo.Update(ctx, &encounters.UpdateInput{Encounter: e}); err != nil {
		return nil, err
	}

	// Player HP changes survive the encounter; monsters don't.
	for _, p := range []*entities.Participant{attacker, defender} {
		if p.Side != entities.SidePlayer {
			continue
		}
		if err := o.writeBackPlayer(ctx, p); err != nil {
			return nil, err
		}
	}

	slog.InfoContext(ctx, "exchange resolved",
		"encounter_id", e.ID,
		"attacker", record.Attacker,
		"defender", record.Defender,
		"hit", record.Hit)

	return &AttackOutput{Outcome: outcome, Record: record, Encounter: e}, nil
}

func (o *orchestrator) NextTurn(ctx context.Context, input *NextTurnInput) (*NextTurnOutput, error) {
	if input == nil || input.EncounterID == "" {
		return nil, errors.InvalidArgument("encounter ID is required")
	}

	got, err := o.encounterRepo.Get(ctx, &encounters.GetInput{EncounterID: input.EncounterID})
	if err != nil {
		return nil, err
	}
	e := got.Encounter

	e.Turn++
	if _, err := o.encounterRepo.Update(ctx, &encounters.UpdateInput{Encounter: e}); err != nil {
		return nil, err
	}

	idx := currentIndex(e)
	var current *entities.Participant
	if idx >= 0 {
		current = e.Participants[idx]
	}

	return &NextTurnOutput{
		CurrentIndex: idx,
		Participant:  current,
		Round:        e.Round(),
	}, nil
}

func (o *orchestrator) End(ctx context.Context, input *EndInput) (*EndOutput, error) {
	if input == nil || input.EncounterID == "" {
		return nil, errors.InvalidArgument("encounter ID is required")
	}
	if _, err := o.encounterRepo.Delete(ctx, &encounters.DeleteInput{EncounterID: input.EncounterID}); err != nil {
		return nil, err
	}
	return &EndOutput{}, nil
}

func (o *orchestrator) GetSettings(ctx context.Context, _ *GetSettingsInput) (*GetSettingsOutput, error) {
	return &GetSettingsOutput{
		Settings: &entities.Settings{VITDivisor: o.divisor(ctx)},
	}, nil
}

func (o *orchestrator) UpdateSettings(ctx context.Context, input *UpdateSettingsInput) (*UpdateSettingsOutput, error) {
	if input == nil || input.Settings == nil {
		return nil, errors.InvalidArgument("settings are required")
	}
	if input.Settings.VITDivisor <= 0 {
		return nil, errors.InvalidArgument("vit divisor must be positive")
	}
	if o.settingsRepo == nil {
		return nil, errors.FailedPrecondition("settings storage is not configured")
	}
	if _, err := o.settingsRepo.Save(ctx, settingsrepo.SaveInput{Settings: input.Settings}); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "settings updated",
		"vit_divisor", input.Settings.VITDivisor)

	return &UpdateSettingsOutput{Settings: input.Settings}, nil
}

// divisor resolves the VIT divisor in effect: stored settings first,
// then the configured value, then the engine default.
func (o *orchestrator) divisor(ctx context.Context) float64 {
	if o.settingsRepo != nil {
		got, err := o.settingsRepo.Get(ctx, settingsrepo.GetInput{})
		if err == nil && got.Settings.VITDivisor > 0 {
			return got.Settings.VITDivisor
		}
		if err != nil && !errors.IsNotFound(err) {
			slog.WarnContext(ctx, "failed to load settings, using configured divisor",
				"error", err)
		}
	}
	if o.vitDivisor > 0 {
		return o.vitDivisor
	}
	return engine.DefaultVITDivisor
}

func (o *orchestrator) rollOrUse(supplied *float64) (float64, error) {
	if supplied != nil {
		return *supplied, nil
	}
	roll, err := dice.NewRoll(1, autoRollSides)
	if err != nil {
		return 0, errors.Wrap(err, "failed to roll")
	}
	return float64(roll.GetValue()), nil
}

func (o *orchestrator) writeBackPlayer(ctx context.Context, p *entities.Participant) error {
	got, err := o.playerRepo.Get(ctx, players.GetInput{Name: p.PlayerName})
	if err != nil {
		return err
	}
	hp := p.Entity.HP
	mp := p.Entity.MP
	got.Player.HP = &hp
	got.Player.MP = &mp
	if _, err := o.playerRepo.Update(ctx, players.UpdateInput{Player: got.Player}); err != nil {
		return err
	}
	return nil
}

func participantAt(e *entities.Encounter, idx int) (*entities.Participant, error) {
	if idx < 0 || idx >= len(e.Participants) {
		return nil, errors.OutOfRangef("participant index %d out of range", idx)
	}
	return e.Participants[idx], nil
}

// currentIndex maps the turn counter onto the living participants in
// round-robin order. Returns -1 when everyone is down.
func currentIndex(e *entities.Encounter) int {
	living := make([]int, 0, len(e.Participants))
	for i, p := range e.Participants {
		if p.Entity.Alive() {
			living = append(living, i)
		}
	}
	if len(living) == 0 {
		return -1
	}
	return living[e.Turn%len(living)]
}
