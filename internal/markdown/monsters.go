package markdown

import (
	"fmt"
	"strings"

	"github.com/The-Night7/bofuri-mj/internal/entities"
)

// Stat blocks that never saw an explicit "Niveau N" header get a
// synthetic level from a per-monster counter starting here. Keeping the
// synthetic range far above authored levels keeps label-only phases
// distinct without colliding with real data, and resetting the counter
// per monster keeps parsing idempotent.
const syntheticLevelBase = 10000

// variantAccum accumulates one stat block until the next flush point.
type variantAccum struct {
	level     int
	hasLevel  bool
	label     string
	hpMax     *float64
	mpMax     *float64
	stats     map[string]float64
	baseAtk   string
	extra     map[string]entities.ExtraValue
	abilities []string
}

func (a *variantAccum) empty() bool {
	return !a.hasLevel && a.label == "" && a.hpMax == nil && a.mpMax == nil &&
		len(a.stats) == 0 && a.baseAtk == "" && len(a.extra) == 0 && len(a.abilities) == 0
}

type monsterParser struct {
	monsters map[string]*entities.Monster

	tier string

	monster *entities.Monster
	key     string

	accum          variantAccum
	syntheticCount int
	inAbilities    bool
}

// ParseMonsters extracts every monster record from a bestiary document.
// The input is the full markdown text; file handling belongs to the
// caller. Parsing the same text twice yields identical results.
func ParseMonsters(text string) map[string]*entities.Monster {
	p := &monsterParser{monsters: make(map[string]*entities.Monster)}
	for _, raw := range strings.Split(text, "\n") {
		p.consume(Classify(strings.TrimRight(raw, "\r\n")))
	}
	p.flushMonster()
	return p.monsters
}

func (p *monsterParser) consume(line Line) {
	// The abilities section runs until a blank line, a non-bullet
	// line, or any new header.
	switch line.Class {
	case LineKeyValue, LineBullet, LineHPMP, LineStat, LineBaseAttack, LineDrop, LineZone:
	default:
		p.inAbilities = false
	}

	switch line.Class {
	case LineTierHeader:
		p.tier = fmt.Sprintf("Palier %d", line.Tier)

	case LineMonsterHeader:
		p.flushMonster()
		m := &entities.Monster{
			Name:       line.Name,
			Tier:       p.tier,
			LevelRange: line.LevelRange,
			Variants:   make(map[int]*entities.Variant),
		}
		if line.Crown {
			m.Rarity = entities.RarityBoss
		}
		p.monster = m
		p.key = UniqueKey(m.Name, p.monsters)

	case LineSeparator:
		p.flushMonster()

	case LineLevelHeader:
		if p.monster == nil {
			return
		}
		p.flushVariant()
		p.accum.level = line.Level
		p.accum.hasLevel = true

	case LinePhaseLabel:
		if p.monster == nil {
			return
		}
		p.flushVariant()
		p.accum.label = line.Label

	case LineAbilitiesHeader:
		if p.monster == nil {
			return
		}
		p.inAbilities = true

	case LineHPMP:
		if p.monster == nil {
			return
		}
		// "cur/max" keeps the max; a bare number is the max.
		v := line.Value
		if idx := strings.Index(v, "/"); idx >= 0 {
			v = v[idx+1:]
		}
		if n, ok := ParseNumber(v); ok {
			if line.Key == "HP" {
				p.accum.hpMax = &n
			} else {
				p.accum.mpMax = &n
			}
		}

	case LineStat:
		if p.monster == nil {
			return
		}
		if n, ok := ParseNumber(line.Value); ok {
			if p.accum.stats == nil {
				p.accum.stats = make(map[string]float64)
			}
			p.accum.stats[line.Key] = n
		}

	case LineBaseAttack:
		if p.monster == nil {
			return
		}
		p.accum.baseAtk = line.Value

	case LineDrop:
		if p.monster == nil {
			return
		}
		// First occurrence wins.
		if parts := SplitDropList(line.Value); len(parts) > 0 && p.monster.Drops == nil {
			p.monster.Drops = parts
		}

	case LineZone:
		if p.monster == nil {
			return
		}
		if line.Value != "" && p.monster.Zone == "" {
			p.monster.Zone = line.Value
		}

	case LineKeyValue:
		if p.monster == nil {
			return
		}
		if p.inAbilities {
			p.accum.abilities = append(p.accum.abilities, line.Key+": "+line.Value)
			return
		}
		if p.accum.extra == nil {
			p.accum.extra = make(map[string]entities.ExtraValue)
		}
		p.accum.extra[line.Key] = entities.TextValue(line.Value)

	case LineBullet:
		if p.monster == nil || !p.inAbilities {
			return
		}
		p.accum.abilities = append(p.accum.abilities, line.Text)
	}
}

// liftAbilityStats recognizes stat lines that were authored inside the
// abilities section ("HP: 15/15", "STR: 4", "Drop: …") and moves them
// into the accumulator or monster, keeping only genuine ability text.
func (p *monsterParser) liftAbilityStats() {
	kept := p.accum.abilities[:0]
	for _, ability := range p.accum.abilities {
		if m := reAbilityStat.FindStringSubmatch(ability); m != nil {
			if n, ok := ParseNumber(m[2]); ok {
				if strings.EqualFold(m[1], "HP") && p.accum.hpMax == nil {
					p.accum.hpMax = &n
					continue
				}
				if strings.EqualFold(m[1], "MP") && p.accum.mpMax == nil {
					p.accum.mpMax = &n
					continue
				}
			}
		}
		if m := reAbilityAttr.FindStringSubmatch(ability); m != nil {
			if n, ok := ParseNumber(m[2]); ok {
				if p.accum.stats == nil {
					p.accum.stats = make(map[string]float64)
				}
				p.accum.stats[strings.ToUpper(m[1])] = n
				continue
			}
		}
		if m := reAbilityBaseAtk.FindStringSubmatch(ability); m != nil && p.accum.baseAtk == "" {
			p.accum.baseAtk = strings.TrimSpace(m[1])
			continue
		}
		if m := reAbilityDrop.FindStringSubmatch(ability); m != nil && p.monster.Drops == nil {
			if parts := SplitDropList(m[1]); len(parts) > 0 {
				p.monster.Drops = parts
				continue
			}
		}
		if m := reAbilityZone.FindStringSubmatch(ability); m != nil && p.monster.Zone == "" {
			p.monster.Zone = strings.TrimSpace(m[1])
			continue
		}
		kept = append(kept, ability)
	}
	p.accum.abilities = kept
}

func (p *monsterParser) flushVariant() {
	if p.monster == nil {
		return
	}
	defer func() { p.accum = variantAccum{} }()

	p.liftAbilityStats()
	if p.accum.empty() {
		return
	}

	level := p.accum.level
	if !p.accum.hasLevel {
		p.syntheticCount++
		level = syntheticLevelBase + p.syntheticCount
	}

	v := &entities.Variant{Level: level, BaseAttack: p.accum.baseAtk}
	if p.accum.hpMax != nil {
		v.HPMax = *p.accum.hpMax
	}
	if p.accum.mpMax != nil {
		v.MPMax = *p.accum.mpMax
	}
	v.STR = p.accum.stats["STR"]
	v.AGI = p.accum.stats["AGI"]
	v.INT = p.accum.stats["INT"]
	v.DEX = p.accum.stats["DEX"]
	v.VIT = p.accum.stats["VIT"]

	if p.accum.label != "" || len(p.accum.extra) > 0 || len(p.accum.abilities) > 0 {
		v.Extra = make(map[string]entities.ExtraValue)
		if p.accum.label != "" {
			v.Extra[entities.ExtraKeyLabel] = entities.TextValue(p.accum.label)
		}
		for k, ev := range p.accum.extra {
			v.Extra[k] = ev
		}
		if len(p.accum.abilities) > 0 {
			v.Extra[entities.ExtraKeyAbilities] = entities.ListValue(p.accum.abilities)
			p.monster.Abilities = append(p.monster.Abilities, p.accum.abilities...)
		}
	}

	// All-zero snapshots with no extra content are parsing noise.
	if v.IsEmpty() {
		return
	}
	p.monster.Variants[level] = v
}

func (p *monsterParser) flushMonster() {
	if p.monster == nil {
		return
	}
	p.flushVariant()
	p.monsters[p.key] = p.monster
	p.monster = nil
	p.key = ""
	p.syntheticCount = 0
	p.inAbilities = false
}
