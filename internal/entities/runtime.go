package entities

import "time"

// EntityKind tags a runtime entity with its origin.
type EntityKind string

// Runtime entity kinds.
const (
	KindPlayer EntityKind = "player"
	KindMob    EntityKind = "mob"
	KindBoss   EntityKind = "boss"
)

// RuntimeEntity is the combat-ready projection of either a player or a
// monster at a specific level. It is ephemeral: monsters are never
// persisted in this shape, and player HP/MP changes are written back to
// the roster after resolution. The combat resolver exclusively owns the
// two entities passed to it for the duration of one exchange; callers
// must not resolve against the same entity concurrently.
type RuntimeEntity struct {
	Name  string     `json:"name"`
	Kind  EntityKind `json:"kind"`
	Level int        `json:"level"`

	HPMax float64 `json:"hp_max"`
	MPMax float64 `json:"mp_max"`
	HP    float64 `json:"hp"`
	MP    float64 `json:"mp"`

	STR float64 `json:"str"`
	AGI float64 `json:"agi"`
	INT float64 `json:"int"`
	DEX float64 `json:"dex"`
	VIT float64 `json:"vit"`

	// Descriptive fields carried along for display only.
	Tier string `json:"tier,omitempty"`
	Zone string `json:"zone,omitempty"`
}

// Alive reports whether the entity still has hit points.
func (e *RuntimeEntity) Alive() bool {
	return e.HP > 0
}

// RuntimeFromPlayer projects a player sheet into a combat-ready entity.
func RuntimeFromPlayer(p *Player) *RuntimeEntity {
	p.EnsureCurrent()
	return &RuntimeEntity{
		Name:  p.Name,
		Kind:  KindPlayer,
		Level: p.Level,
		HPMax: p.HPMax,
		MPMax: p.MPMax,
		HP:    *p.HP,
		MP:    *p.MP,
		STR:   p.STR,
		AGI:   p.AGI,
		INT:   p.INT,
		DEX:   p.DEX,
		VIT:   p.VIT,
	}
}

// RuntimeFromVariant projects a monster stat snapshot into a combat-ready
// entity at full health.
func RuntimeFromVariant(m *Monster, v *Variant) *RuntimeEntity {
	kind := KindMob
	if m.Rarity == RarityBoss {
		kind = KindBoss
	}
	return &RuntimeEntity{
		Name:  m.Name,
		Kind:  kind,
		Level: v.Level,
		HPMax: v.HPMax,
		MPMax: v.MPMax,
		HP:    v.HPMax,
		MP:    v.MPMax,
		STR:   v.STR,
		AGI:   v.AGI,
		INT:   v.INT,
		DEX:   v.DEX,
		VIT:   v.VIT,
		Tier:  m.Tier,
		Zone:  m.Zone,
	}
}

// Participant sides within an encounter.
const (
	SidePlayer = "player"
	SideMob    = "mob"
)

// Participant wraps one runtime entity inside an encounter. PlayerName
// links back to the roster sheet for HP write-back; it is empty for
// monsters.
type Participant struct {
	Side       string         `json:"side"`
	Entity     *RuntimeEntity `json:"entity"`
	PlayerName string         `json:"player_name,omitempty"`
}

// ActionRecord is one resolved exchange in an encounter's log.
type ActionRecord struct {
	Attacker string    `json:"attacker"`
	Defender string    `json:"defender"`
	RollA    float64   `json:"roll_a"`
	RollB    float64   `json:"roll_b"`
	Hit      bool      `json:"hit"`
	Damage   float64   `json:"damage"`
	Counter  float64   `json:"counter"`
	Effects  []string  `json:"effects,omitempty"`
	At       time.Time `json:"at"`
}

// Encounter holds the participants, turn counter, and action log of one
// running fight. The round number is derived from the turn counter and
// the number of living participants rather than stored.
type Encounter struct {
	ID           string         `json:"id"`
	Participants []*Participant `json:"participants"`
	Turn         int            `json:"turn"`
	Log          []ActionRecord `json:"log,omitempty"`
}

// Clone returns a deep copy of the encounter.
func (e *Encounter) Clone() *Encounter {
	if e == nil {
		return nil
	}
	out := *e
	out.Participants = make([]*Participant, len(e.Participants))
	for i, p := range e.Participants {
		cp := *p
		if p.Entity != nil {
			entity := *p.Entity
			cp.Entity = &entity
		}
		out.Participants[i] = &cp
	}
	out.Log = make([]ActionRecord, len(e.Log))
	for i, rec := range e.Log {
		rec.Effects = append([]string(nil), rec.Effects...)
		out.Log[i] = rec
	}
	return &out
}

// Round derives the one-based round number from the turn counter.
func (e *Encounter) Round() int {
	alive := 0
	for _, p := range e.Participants {
		if p.Entity.Alive() {
			alive++
		}
	}
	if alive == 0 {
		return 1
	}
	return e.Turn/alive + 1
}
