package encounter

import (
	"github.com/The-Night7/bofuri-mj/internal/engine"
	"github.com/The-Night7/bofuri-mj/internal/entities"
)

// MonsterPick selects one compendium monster at a level for an
// encounter. Count spawns several copies, numbered for display.
type MonsterPick struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
	Count int    `json:"count,omitempty"`
}

// StartInput defines the request for starting an encounter
type StartInput struct {
	PlayerNames []string
	Monsters    []MonsterPick
}

// StartOutput defines the response for starting an encounter
type StartOutput struct {
	Encounter *entities.Encounter
	// CurrentIndex is the participant whose turn it is
	CurrentIndex int
}

// GetInput defines the request for fetching an encounter
type GetInput struct {
	EncounterID string
}

// GetOutput defines the response for fetching an encounter
type GetOutput struct {
	Encounter    *entities.Encounter
	CurrentIndex int
	Round        int
}

// AttackInput defines the request for resolving one exchange.
// Nil rolls are rolled by the service (1d100) for tables that play
// without physical dice.
type AttackInput struct {
	EncounterID string
	Attacker    int
	Defender    int
	RollA       *float64
	RollB       *float64
	Kind        engine.AttackKind
	ArmorPierce bool
}

// AttackOutput defines the response for resolving one exchange
type AttackOutput struct {
	Outcome   *engine.Outcome
	Record    entities.ActionRecord
	Encounter *entities.Encounter
}

// NextTurnInput defines the request for advancing the turn
type NextTurnInput struct {
	EncounterID string
}

// NextTurnOutput defines the response for advancing the turn
type NextTurnOutput struct {
	CurrentIndex int
	Participant  *entities.Participant
	Round        int
}

// EndInput defines the request for ending an encounter
type EndInput struct {
	EncounterID string
}

// EndOutput defines the response for ending an encounter
type EndOutput struct{}

// GetSettingsInput defines the request for reading the rule tunables
type GetSettingsInput struct{}

// GetSettingsOutput defines the response for reading the rule tunables
type GetSettingsOutput struct {
	Settings *entities.Settings
}

// UpdateSettingsInput defines the request for replacing the rule
// tunables
type UpdateSettingsInput struct {
	Settings *entities.Settings
}

// UpdateSettingsOutput defines the response for replacing the rule
// tunables
type UpdateSettingsOutput struct {
	Settings *entities.Settings
}
