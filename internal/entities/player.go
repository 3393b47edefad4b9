package entities

import "time"

// Player is a persistent character sheet. Current HP/MP are pointers so
// a freshly created or imported sheet can omit them; they are lazily
// defaulted to the maxima on first access.
type Player struct {
	Name  string `json:"name"`
	Level int    `json:"level"`

	HPMax float64 `json:"hp_max"`
	MPMax float64 `json:"mp_max"`

	STR float64 `json:"str"`
	AGI float64 `json:"agi"`
	INT float64 `json:"int"`
	DEX float64 `json:"dex"`
	VIT float64 `json:"vit"`

	HP *float64 `json:"hp,omitempty"`
	MP *float64 `json:"mp,omitempty"`

	CreatedAt time.Time `json:"created_at,omitzero"`
	UpdatedAt time.Time `json:"updated_at,omitzero"`
}

// EnsureCurrent fills in current HP/MP from the maxima when unset.
func (p *Player) EnsureCurrent() {
	if p.HP == nil {
		hp := p.HPMax
		p.HP = &hp
	}
	if p.MP == nil {
		mp := p.MPMax
		p.MP = &mp
	}
}

// Reset restores current HP/MP to the maxima.
func (p *Player) Reset() {
	hp, mp := p.HPMax, p.MPMax
	p.HP = &hp
	p.MP = &mp
}

// Clone returns a deep copy of the player.
func (p *Player) Clone() *Player {
	if p == nil {
		return nil
	}
	out := *p
	if p.HP != nil {
		hp := *p.HP
		out.HP = &hp
	}
	if p.MP != nil {
		mp := *p.MP
		out.MP = &mp
	}
	return &out
}
