package markdown

import (
	"regexp"
	"strings"

	"github.com/The-Night7/bofuri-mj/internal/entities"
)

var reLevelRange = regexp.MustCompile(`([0-9]+)\s*(?:[-–]\s*([0-9]+))?`)

// ParseLevelRange reads an authored level range like "3-5" or "12".
// For a dashed range it returns both bounds; for a sole integer both
// bounds equal it. ok is false when no integer is present.
func ParseLevelRange(s string) (lo, hi int, ok bool) {
	m := reLevelRange.FindStringSubmatch(StripEmphasis(s))
	if m == nil {
		return 0, 0, false
	}
	n, valid := ParseNumber(m[1])
	if !valid {
		return 0, 0, false
	}
	lo = int(n)
	hi = lo
	if m[2] != "" {
		if n2, valid2 := ParseNumber(m[2]); valid2 {
			hi = int(n2)
		}
	}
	return lo, hi, true
}

// BaselineFromAbilities builds a stat snapshot from stats embedded in
// free-text ability lines ("HP: 15/15", "STR: 4", "Attaque de base: 5").
// Lines that encode no stat are ignored. Returns nil when the lines
// carry no stats at all. Level is left zero for the caller to assign.
func BaselineFromAbilities(lines []string) *entities.Variant {
	v := &entities.Variant{}
	found := false
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if m := reAbilityStat.FindStringSubmatch(line); m != nil {
			if n, ok := ParseNumber(m[2]); ok {
				if strings.EqualFold(m[1], "HP") {
					v.HPMax = n
				} else {
					v.MPMax = n
				}
				found = true
			}
			continue
		}
		if m := reAbilityAttr.FindStringSubmatch(line); m != nil {
			if n, ok := ParseNumber(m[2]); ok {
				switch strings.ToUpper(m[1]) {
				case "STR":
					v.STR = n
				case "AGI":
					v.AGI = n
				case "INT":
					v.INT = n
				case "DEX":
					v.DEX = n
				case "VIT":
					v.VIT = n
				}
				found = true
			}
			continue
		}
		if m := reAbilityBaseAtk.FindStringSubmatch(line); m != nil {
			v.BaseAttack = strings.TrimSpace(m[1])
			found = true
		}
	}
	if !found {
		return nil
	}
	return v
}
