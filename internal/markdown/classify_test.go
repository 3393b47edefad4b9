package markdown_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/The-Night7/bofuri-mj/internal/markdown"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  markdown.LineClass
		check func(t *testing.T, line markdown.Line)
	}{
		{
			name:  "blank",
			input: "   ",
			want:  markdown.LineBlank,
		},
		{
			name:  "separator",
			input: "---",
			want:  markdown.LineSeparator,
		},
		{
			name:  "tier header",
			input: "# 🐗 BESTIAIRE PALIER 2",
			want:  markdown.LineTierHeader,
			check: func(t *testing.T, line markdown.Line) {
				assert.Equal(t, 2, line.Tier)
			},
		},
		{
			name:  "monster header with range",
			input: "## 🐰 **Lapin Cornu** (1-5)",
			want:  markdown.LineMonsterHeader,
			check: func(t *testing.T, line markdown.Line) {
				assert.Equal(t, "Lapin Cornu", line.Name)
				assert.Equal(t, "1-5", line.LevelRange)
				assert.Equal(t, 2, line.Depth)
				assert.False(t, line.Crown)
			},
		},
		{
			name:  "crowned boss header",
			input: "### **Reine Lapine** (10) 👑",
			want:  markdown.LineMonsterHeader,
			check: func(t *testing.T, line markdown.Line) {
				assert.Equal(t, "Reine Lapine", line.Name)
				assert.True(t, line.Crown)
			},
		},
		{
			name:  "section banner is not a monster",
			input: "## **BOSS DE DONJON**",
			want:  markdown.LineHeading,
		},
		{
			name:  "plain heading",
			input: "## Skills Magiques",
			want:  markdown.LineHeading,
			check: func(t *testing.T, line markdown.Line) {
				assert.Equal(t, "Skills Magiques", line.Heading)
				assert.Equal(t, 2, line.Depth)
			},
		},
		{
			name:  "level header",
			input: "**Niveau 5 :**",
			want:  markdown.LineLevelHeader,
			check: func(t *testing.T, line markdown.Line) {
				assert.Equal(t, 5, line.Level)
			},
		},
		{
			name:  "level header with note",
			input: "**Niveau 10 (évolué) :**",
			want:  markdown.LineLevelHeader,
			check: func(t *testing.T, line markdown.Line) {
				assert.Equal(t, 10, line.Level)
			},
		},
		{
			name:  "phase label",
			input: "**Phase 2 :**",
			want:  markdown.LinePhaseLabel,
			check: func(t *testing.T, line markdown.Line) {
				assert.Equal(t, "Phase 2", line.Label)
			},
		},
		{
			name:  "hp bullet",
			input: "- **HP :** 30",
			want:  markdown.LineHPMP,
			check: func(t *testing.T, line markdown.Line) {
				assert.Equal(t, "HP", line.Key)
				assert.Equal(t, "30", line.Value)
			},
		},
		{
			name:  "stat bullet lowercase",
			input: "- **str :** 9",
			want:  markdown.LineStat,
			check: func(t *testing.T, line markdown.Line) {
				assert.Equal(t, "STR", line.Key)
			},
		},
		{
			name:  "base attack bullet",
			input: "- **Attaque de base :** 1d6",
			want:  markdown.LineBaseAttack,
			check: func(t *testing.T, line markdown.Line) {
				assert.Equal(t, "1d6", line.Value)
			},
		},
		{
			name:  "drop bullet",
			input: "- **Drop :** Corne, Fourrure",
			want:  markdown.LineDrop,
		},
		{
			name:  "zone bullet",
			input: "- **Zone :** Plaine des débuts",
			want:  markdown.LineZone,
		},
		{
			name:  "abilities header",
			input: "- **Compétences :**",
			want:  markdown.LineAbilitiesHeader,
		},
		{
			name:  "generic key value",
			input: "- **Comportement :** Agressif la nuit",
			want:  markdown.LineKeyValue,
			check: func(t *testing.T, line markdown.Line) {
				assert.Equal(t, "Comportement", line.Key)
				assert.Equal(t, "Agressif la nuit", line.Value)
			},
		},
		{
			name:  "plain bullet",
			input: "- Charge cornue",
			want:  markdown.LineBullet,
			check: func(t *testing.T, line markdown.Line) {
				assert.Equal(t, "Charge cornue", line.Text)
			},
		},
		{
			name:  "prose",
			input: "Un monstre commun des plaines.",
			want:  markdown.LineOther,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := markdown.Classify(tt.input)
			assert.Equal(t, tt.want, line.Class)
			if tt.check != nil {
				tt.check(t, line)
			}
		})
	}
}

func TestSplitDropList(t *testing.T) {
	assert.Equal(t,
		[]string{"Corne", "Fourrure", "Patte"},
		markdown.SplitDropList("Corne, Fourrure; Patte"))
	assert.Equal(t,
		[]string{"Peau de loup"},
		markdown.SplitDropList("Peau de loup"))
	assert.Empty(t, markdown.SplitDropList(" , ; "))
}
