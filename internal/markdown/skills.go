package markdown

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/The-Night7/bofuri-mj/internal/entities"
)

var (
	reCostKey        = regexp.MustCompile(`(?i)^Co[ûu]t(\s*(MP|PM))?$|^Cost$`)
	reIncantationKey = regexp.MustCompile(`(?i)^Incantation$`)
)

type skillParser struct {
	skills map[string]*entities.Skill

	tier     string
	category string

	name        string
	description string
	cost        string
	condition   string
	extra       map[string]string
}

// ParseSkills extracts every skill record from a skills document.
// Category headings ("## 🔮 Skills Magiques") group the skills that
// follow; deeper headings name individual skills. Cost spellings vary
// across documents ("Coût MP", "Coût PM", "Cost") and are all accepted.
func ParseSkills(text string) map[string]*entities.Skill {
	p := &skillParser{skills: make(map[string]*entities.Skill)}
	for _, raw := range strings.Split(text, "\n") {
		p.consume(Classify(strings.TrimRight(raw, "\r\n")))
	}
	p.flush()
	return p.skills
}

func (p *skillParser) consume(line Line) {
	switch line.Class {
	case LineTierHeader:
		p.tier = fmt.Sprintf("Palier %d", line.Tier)

	case LineHeading, LineMonsterHeader:
		// Bestiary-style emphasized headings can appear in mixed
		// documents; treat them like any heading here.
		heading := line.Heading
		if line.Class == LineMonsterHeader {
			heading = line.Name
		}
		if line.Depth <= 2 {
			p.flush()
			p.category = heading
			return
		}
		p.flush()
		p.name = heading

	case LineSeparator:
		p.flush()

	case LineHPMP, LineStat, LineBaseAttack, LineDrop, LineZone, LineKeyValue:
		if p.name == "" {
			return
		}
		key := line.Key
		value := line.Value
		switch {
		case strings.EqualFold(key, "Description"):
			if p.description == "" {
				p.description = value
			}
		case reCostKey.MatchString(key):
			if p.cost == "" {
				p.cost = value
			}
		case strings.EqualFold(key, "Condition"):
			if p.condition == "" {
				p.condition = value
			}
		case reIncantationKey.MatchString(key):
			p.setExtra("incantation", value)
		default:
			p.setExtra(strings.ToLower(key), value)
		}
	}
}

func (p *skillParser) setExtra(key, value string) {
	if p.extra == nil {
		p.extra = make(map[string]string)
	}
	p.extra[key] = value
}

func (p *skillParser) flush() {
	if p.name != "" {
		s := &entities.Skill{
			Name:        p.name,
			Category:    p.category,
			Description: p.description,
			Cost:        p.cost,
			Condition:   p.condition,
			Tier:        p.tier,
			Extra:       p.extra,
		}
		p.skills[UniqueKey(p.name, p.skills)] = s
	}
	p.name = ""
	p.description = ""
	p.cost = ""
	p.condition = ""
	p.extra = nil
}
