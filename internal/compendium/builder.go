// Package compendium assembles the monster and skill reference data
// from authored markdown documents. It performs no file I/O; callers
// hand in document contents and keep file discovery to themselves.
package compendium

import (
	"log/slog"
	"sort"

	"github.com/The-Night7/bofuri-mj/internal/engine"
	"github.com/The-Night7/bofuri-mj/internal/entities"
	"github.com/The-Night7/bofuri-mj/internal/errors"
	"github.com/The-Night7/bofuri-mj/internal/markdown"
)

// BuildInput carries the document contents for one import pass.
// SkillDocs is ordered; earlier documents win name collisions, later
// duplicates get suffixed keys so no authored skill is ever lost.
// Empty document strings are skipped, not errors, so a missing tier
// file costs nothing.
type BuildInput struct {
	MonsterDoc string
	SkillDocs  []string

	// Densify precomputes every intermediate integer level between
	// sparse authored variants, trading storage for O(1) lookups.
	// The default is on-demand interpolation at query time.
	Densify bool
}

// BuildOutput carries the assembled compendium.
type BuildOutput struct {
	Compendium *entities.Compendium
}

// Build parses the monster document and each skill document, merging
// the results into one compendium.
func Build(input *BuildInput) (*BuildOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	c := entities.NewCompendium()
	c.Monsters = markdown.ParseMonsters(input.MonsterDoc)

	for _, doc := range input.SkillDocs {
		if doc == "" {
			continue
		}
		for _, s := range sortedSkills(markdown.ParseSkills(doc)) {
			c.Skills[markdown.UniqueKey(s.Name, c.Skills)] = s
		}
	}

	if input.Densify {
		for name, m := range c.Monsters {
			added := densify(m)
			if added > 0 {
				slog.Debug("densified monster variants",
					"monster", name,
					"added_levels", added)
			}
		}
	}

	slog.Info("compendium built",
		"monsters", len(c.Monsters),
		"skills", len(c.Skills))

	return &BuildOutput{Compendium: c}, nil
}

// sortedSkills orders a parsed skill map by name so that collision
// suffixes are assigned deterministically across merges.
func sortedSkills(skills map[string]*entities.Skill) []*entities.Skill {
	keys := make([]string, 0, len(skills))
	for k := range skills {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]*entities.Skill, len(keys))
	for i, k := range keys {
		out[i] = skills[k]
	}
	return out
}

// densify fills every integer level between consecutive authored
// variants via interpolation, carrying the lower variant's Extra
// forward. Synthetic phase levels are left alone.
func densify(m *entities.Monster) int {
	levels := m.Levels()
	// Interpolate against the authored knots only, then insert, so a
	// filled level never feeds the next one's bracketing.
	filled := make(map[int]*entities.Variant)
	for i := 0; i+1 < len(levels); i++ {
		l0, l1 := levels[i], levels[i+1]
		if l1 >= 10000 {
			break
		}
		lower := m.Variants[l0]
		for lvl := l0 + 1; lvl < l1; lvl++ {
			v := engine.ResolveVariant(m, lvl)
			if v == nil {
				continue
			}
			v.Extra = lower.Clone().Extra
			filled[lvl] = v
		}
	}
	for lvl, v := range filled {
		m.Variants[lvl] = v
	}
	return len(filled)
}
