package markdown

import (
	"regexp"
	"strconv"
	"strings"
)

// LineClass tags one markdown line with the single construct it
// matches. Classification is pure pattern matching; what a tag means
// for the record under construction is decided by the parser state
// machines in monsters.go and skills.go.
type LineClass int

// Line classes, tested in this priority order.
const (
	LineOther LineClass = iota
	LineBlank
	LineSeparator
	LineTierHeader
	LineMonsterHeader
	LineHeading
	LineLevelHeader
	LinePhaseLabel
	LineHPMP
	LineStat
	LineBaseAttack
	LineDrop
	LineZone
	LineAbilitiesHeader
	LineKeyValue
	LineBullet
)

// Line is one classified input line with the captures relevant to its
// class. Unused fields are zero.
type Line struct {
	Class LineClass
	Raw   string

	Depth      int    // LineHeading, LineMonsterHeader
	Heading    string // LineHeading: stripped heading text
	Name       string // LineMonsterHeader: emphasized name, stripped
	LevelRange string // LineMonsterHeader: parenthesized range, if any
	Crown      bool   // LineMonsterHeader: crowned entries are bosses

	Tier  int    // LineTierHeader
	Level int    // LineLevelHeader
	Label string // LinePhaseLabel

	Key   string // LineHPMP, LineStat, LineKeyValue: stripped key
	Value string // bullet line value, emphasis stripped
	Text  string // LineBullet: bullet body
}

var (
	reTierHeader = regexp.MustCompile(`(?i)^\s*#{1,4}.*PALIER\s*([0-9]+)\b`)
	reBadSection = regexp.MustCompile(`(?i)(PALIER\s*[0-9]+|BOSS|DONJON|STATISTIQUES|L[EÉ]GENDE|SYMBOL(?:ES)?|TYPES\s+DE\s+ZONES)`)

	// A monster header requires an emphasized name so plain section
	// titles stay ordinary headings.
	reMonsterHeader = regexp.MustCompile(`^\s*(#{2,4})\s*(?:[^\w*]*\s*)?\*\*(.+?)\*\*\s*(?:\(([^)]+)\))?\s*(👑)?\s*(?:\*.*\*)?\s*$`)
	reHeading       = regexp.MustCompile(`^\s*(#{1,6})\s+(.+?)\s*$`)

	reLevelHeader = regexp.MustCompile(`(?i)^\s*\*\*\s*Niveau\s*([0-9]+)\s*(?:\([^)]*\))?\s*:\s*\*\*\s*$`)
	rePhaseLabel  = regexp.MustCompile(`(?i)^\s*\*\*\s*((?:Phase|Version)\s*[^:]+)\s*:\s*\*\*\s*$`)

	reBulletKV       = regexp.MustCompile(`^\s*-\s*\*\*(.+?)\s*:\s*\*\*\s*(.+?)\s*$`)
	reAbilitiesHead  = regexp.MustCompile(`(?i)^\s*-\s*\*\*Comp[eé]tences\s*:\s*\*\*\s*$`)
	rePlainBullet    = regexp.MustCompile(`^\s*-\s+(.+?)\s*$`)
	reSeparator      = regexp.MustCompile(`^\s*-{3,}\s*$`)
	reStatKey        = regexp.MustCompile(`(?i)^(STR|AGI|INT|DEX|VIT)$`)
	reBaseAttackKey  = regexp.MustCompile(`(?i)^Attaque\s+de\s+base$`)
	reAbilityStat    = regexp.MustCompile(`^(?i:(HP|MP))\s*:\s*([0-9]+)(?:/[0-9]+)?`)
	reAbilityAttr    = regexp.MustCompile(`^(?i:(STR|AGI|INT|DEX|VIT))\s*:\s*([0-9]+(?:[.,][0-9]+)?)`)
	reAbilityBaseAtk = regexp.MustCompile(`(?i)^Attaque\s+de\s+base\s*:\s*(.+)$`)
	reAbilityDrop    = regexp.MustCompile(`(?i)^Drop\s*:\s*(.+)$`)
	reAbilityZone    = regexp.MustCompile(`(?i)^Zone\s*:\s*(.+)$`)

	reDropSplit = regexp.MustCompile(`[,;/]`)
)

// Classify tags a single line. It never errors; anything that matches
// no known construct is LineOther.
func Classify(raw string) Line {
	line := Line{Class: LineOther, Raw: raw}

	if strings.TrimSpace(raw) == "" {
		line.Class = LineBlank
		return line
	}
	if reSeparator.MatchString(raw) {
		line.Class = LineSeparator
		return line
	}
	if m := reTierHeader.FindStringSubmatch(raw); m != nil {
		line.Class = LineTierHeader
		line.Tier, _ = strconv.Atoi(m[1])
		return line
	}
	if m := reMonsterHeader.FindStringSubmatch(raw); m != nil && !reBadSection.MatchString(raw) {
		line.Class = LineMonsterHeader
		line.Depth = len(m[1])
		line.Name = StripEmphasis(m[2])
		line.LevelRange = StripEmphasis(m[3])
		line.Crown = m[4] != ""
		return line
	}
	if m := reHeading.FindStringSubmatch(raw); m != nil {
		line.Class = LineHeading
		line.Depth = len(m[1])
		line.Heading = StripEmphasis(m[2])
		return line
	}
	if m := reLevelHeader.FindStringSubmatch(raw); m != nil {
		line.Class = LineLevelHeader
		line.Level, _ = strconv.Atoi(m[1])
		return line
	}
	if m := rePhaseLabel.FindStringSubmatch(raw); m != nil {
		line.Class = LinePhaseLabel
		line.Label = StripEmphasis(m[1])
		return line
	}
	if reAbilitiesHead.MatchString(raw) {
		line.Class = LineAbilitiesHeader
		return line
	}
	if m := reBulletKV.FindStringSubmatch(raw); m != nil {
		key := StripEmphasis(m[1])
		line.Key = key
		line.Value = StripEmphasis(m[2])
		switch {
		case strings.EqualFold(key, "HP"), strings.EqualFold(key, "MP"):
			line.Class = LineHPMP
			line.Key = strings.ToUpper(key)
		case reStatKey.MatchString(key):
			line.Class = LineStat
			line.Key = strings.ToUpper(key)
		case reBaseAttackKey.MatchString(key):
			line.Class = LineBaseAttack
		case strings.EqualFold(key, "Drop"):
			line.Class = LineDrop
		case strings.EqualFold(key, "Zone"):
			line.Class = LineZone
		default:
			line.Class = LineKeyValue
		}
		return line
	}
	if m := rePlainBullet.FindStringSubmatch(raw); m != nil {
		line.Class = LineBullet
		line.Text = StripEmphasis(m[1])
		return line
	}
	return line
}

// SplitDropList splits an authored drop value on comma, semicolon and
// slash, dropping empty parts.
func SplitDropList(value string) []string {
	parts := reDropSplit.Split(value, -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
