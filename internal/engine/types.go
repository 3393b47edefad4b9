// Package engine carries the two rule computations of the system:
// deriving a monster stat snapshot at an arbitrary level from the
// authored variants, and resolving one attacker/defender roll exchange.
package engine

// AttackKind selects which attacker attribute feeds the damage formula.
type AttackKind string

// Attack kinds.
const (
	AttackMelee  AttackKind = "melee"
	AttackMagic  AttackKind = "magic"
	AttackRanged AttackKind = "ranged"
)

// DefaultVITDivisor scales the defender's VIT into the mitigation term.
const DefaultVITDivisor = 100.0

// Options tunes one combat exchange. The zero value means a melee
// attack, no armor pierce, and the default VIT divisor.
type Options struct {
	Kind        AttackKind
	ArmorPierce bool
	VITDivisor  float64
}

// Outcome describes one resolved exchange. Damage is set on a hit,
// Counter on a successful riposte; the effect lines are advisory text
// for the encounter log and carry no rule weight.
type Outcome struct {
	Hit     bool     `json:"hit"`
	RollA   float64  `json:"roll_a"`
	RollB   float64  `json:"roll_b"`
	Damage  float64  `json:"damage,omitempty"`
	Counter float64  `json:"counter,omitempty"`
	Effects []string `json:"effects,omitempty"`
}
