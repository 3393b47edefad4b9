package entities

import "sort"

// Rarity tags assigned by the bestiary parser.
const (
	RarityBoss = "boss"
)

// Monster is one bestiary entry: descriptive metadata plus a map from
// level to the authored stat snapshot at that level. Names are unique
// within a compendium; colliding names are suffixed " (2)", " (3)", …
// at insert time so no entry is ever silently overwritten.
type Monster struct {
	Name       string   `json:"name"`
	Tier       string   `json:"tier,omitempty"`
	LevelRange string   `json:"level_range,omitempty"`
	Rarity     string   `json:"rarity,omitempty"`
	Zone       string   `json:"zone,omitempty"`
	Drops      []string `json:"drops,omitempty"`

	// Abilities keeps the free-text ability lines that did not encode
	// stats. Some authored entries store their whole stat block in
	// here; the interpolator falls back to these lines when Variants
	// is empty.
	Abilities []string `json:"abilities,omitempty"`

	Variants map[int]*Variant `json:"variants"`
}

// Levels returns the known variant levels in ascending order.
func (m *Monster) Levels() []int {
	levels := make([]int, 0, len(m.Variants))
	for lvl := range m.Variants {
		levels = append(levels, lvl)
	}
	sort.Ints(levels)
	return levels
}

// Clone returns a deep copy of the monster.
func (m *Monster) Clone() *Monster {
	if m == nil {
		return nil
	}
	out := *m
	out.Drops = append([]string(nil), m.Drops...)
	out.Abilities = append([]string(nil), m.Abilities...)
	out.Variants = make(map[int]*Variant, len(m.Variants))
	for lvl, v := range m.Variants {
		out.Variants[lvl] = v.Clone()
	}
	return &out
}
