package engine

import (
	"fmt"
	"math"

	"github.com/The-Night7/bofuri-mj/internal/entities"
	"github.com/The-Night7/bofuri-mj/internal/errors"
)

// Resolve plays out a single attack exchange between two entities given
// their opposed rolls. The rule, fully deterministic over the inputs:
//
//	rollA > rollB (strict): attacker hits for
//	    max(0, (rollA−rollB) + attackStat − VIT_B/divisor)
//	    (armor pierce removes the VIT term)
//	rollA <= rollB: defender holds; the attacker takes
//	    (rollB−rollA) + VIT_B/divisor − attackStat
//	    when that is positive, nothing otherwise.
//
// Ties always favor the defender. HP is floored at zero, never
// negative. Only the two entities' HP fields are mutated; no victory
// state is declared here — the caller checks HP itself. The caller is
// also responsible for rejecting attacker == defender and for
// serializing exchanges that touch the same entity.
func Resolve(attacker, defender *entities.RuntimeEntity, rollA, rollB float64, opts Options) (*Outcome, error) {
	if attacker == nil || defender == nil {
		return nil, errors.InvalidArgument("attacker and defender are required")
	}
	divisor := opts.VITDivisor
	if divisor <= 0 {
		divisor = DefaultVITDivisor
	}

	attackStat := attackStatFor(attacker, opts.Kind)
	vitTerm := defender.VIT / divisor

	out := &Outcome{RollA: rollA, RollB: rollB}

	if rollA > rollB {
		out.Hit = true
		dmg := (rollA - rollB) + attackStat
		if !opts.ArmorPierce {
			dmg -= vitTerm
		}
		dmg = math.Max(0, dmg)
		defender.HP = math.Max(0, defender.HP-dmg)
		out.Damage = dmg
		out.Effects = append(out.Effects,
			fmt.Sprintf("%s hits %s for %.2f damage.", attacker.Name, defender.Name, dmg),
			fmt.Sprintf("HP %s: %.2f/%.2f", defender.Name, defender.HP, defender.HPMax),
		)
		return out, nil
	}

	counter := (rollB - rollA) + vitTerm - attackStat
	if counter > 0 {
		attacker.HP = math.Max(0, attacker.HP-counter)
		out.Counter = counter
		out.Effects = append(out.Effects,
			fmt.Sprintf("%s holds and counters: %s takes %.2f damage.", defender.Name, attacker.Name, counter),
			fmt.Sprintf("HP %s: %.2f/%.2f", attacker.Name, attacker.HP, attacker.HPMax),
		)
		return out, nil
	}

	out.Effects = append(out.Effects,
		fmt.Sprintf("%s holds. No damage returned.", defender.Name))
	return out, nil
}

func attackStatFor(e *entities.RuntimeEntity, kind AttackKind) float64 {
	switch kind {
	case AttackMagic:
		return e.INT
	case AttackRanged:
		return e.DEX
	default:
		return e.STR
	}
}
