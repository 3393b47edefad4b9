package engine

import (
	"math"
	"strconv"

	"github.com/The-Night7/bofuri-mj/internal/entities"
	"github.com/The-Night7/bofuri-mj/internal/markdown"
)

// ResolveVariant derives the monster's stat snapshot at the requested
// level:
//
//   - exact known level, or a level outside the authored range: the
//     stored boundary variant, unchanged (clamped, no rounding drift)
//   - a level between two authored variants: linear interpolation of
//     every numeric field, rounded to the nearest integer except the
//     base attack; the Extra map comes from the closer bound (ties
//     favor the lower bound)
//   - no variants but stat-bearing ability lines: a synthesized
//     baseline scaled by level over the level inferred from the
//     monster's level range (a deliberately approximate fallback)
//
// A nil result means "no data". Callers must surface that and never
// substitute a zero-stat entity into live combat. Results are always
// copies; the compendium itself is never mutated.
func ResolveVariant(m *entities.Monster, level int) *entities.Variant {
	if m == nil {
		return nil
	}
	if len(m.Variants) == 0 {
		return scaledBaseline(m, level)
	}

	levels := m.Levels()
	if level <= levels[0] {
		return m.Variants[levels[0]].Clone()
	}
	if level >= levels[len(levels)-1] {
		return m.Variants[levels[len(levels)-1]].Clone()
	}
	if v, ok := m.Variants[level]; ok {
		return v.Clone()
	}

	// Tightest bracketing pair.
	var l0, l1 int
	for _, l := range levels {
		if l < level {
			l0 = l
		}
		if l > level {
			l1 = l
			break
		}
	}

	v0, v1 := m.Variants[l0], m.Variants[l1]
	t := float64(level-l0) / float64(l1-l0)

	out := &entities.Variant{
		Level: level,
		HPMax: lerpRound(v0.HPMax, v1.HPMax, t),
		MPMax: lerpRound(v0.MPMax, v1.MPMax, t),
		STR:   lerpRound(v0.STR, v1.STR, t),
		AGI:   lerpRound(v0.AGI, v1.AGI, t),
		INT:   lerpRound(v0.INT, v1.INT, t),
		DEX:   lerpRound(v0.DEX, v1.DEX, t),
		VIT:   lerpRound(v0.VIT, v1.VIT, t),
	}
	out.BaseAttack = lerpBaseAttack(v0.BaseAttack, v1.BaseAttack, t)

	closer := v0
	if t > 0.5 {
		closer = v1
	}
	if closer.Extra != nil {
		out.Extra = closer.Clone().Extra
	}
	return out
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func lerpRound(a, b, t float64) float64 {
	return math.Round(lerp(a, b, t))
}

// lerpBaseAttack interpolates the numeric readings of the two authored
// base-attack strings, unrounded. When either side has no usable
// numeral the closer bound's verbatim text is kept, matching the Extra
// rule.
func lerpBaseAttack(a, b string, t float64) string {
	if a == "" && b == "" {
		return ""
	}
	na, okA := markdown.ParseNumber(a)
	nb, okB := markdown.ParseNumber(b)
	if okA && okB {
		return strconv.FormatFloat(lerp(na, nb, t), 'f', -1, 64)
	}
	if t > 0.5 {
		return b
	}
	return a
}

// scaledBaseline is the fallback for monsters whose stats live only in
// free-text ability lines.
func scaledBaseline(m *entities.Monster, level int) *entities.Variant {
	base := markdown.BaselineFromAbilities(m.Abilities)
	if base == nil {
		return nil
	}

	inferred := 1.0
	if lo, hi, ok := markdown.ParseLevelRange(m.LevelRange); ok {
		inferred = float64(lo+hi) / 2
	}
	if inferred <= 0 {
		inferred = 1
	}
	factor := float64(level) / inferred

	out := &entities.Variant{
		Level: level,
		HPMax: math.Round(base.HPMax * factor),
		MPMax: math.Round(base.MPMax * factor),
		STR:   math.Round(base.STR * factor),
		AGI:   math.Round(base.AGI * factor),
		INT:   math.Round(base.INT * factor),
		DEX:   math.Round(base.DEX * factor),
		VIT:   math.Round(base.VIT * factor),
	}
	if base.BaseAttack != "" {
		if n, ok := markdown.ParseNumber(base.BaseAttack); ok {
			out.BaseAttack = strconv.FormatFloat(n*factor, 'f', -1, 64)
		} else {
			out.BaseAttack = base.BaseAttack
		}
	}
	return out
}
