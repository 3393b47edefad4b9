package compendium_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/The-Night7/bofuri-mj/internal/compendium"
	"github.com/The-Night7/bofuri-mj/internal/errors"
	"github.com/The-Night7/bofuri-mj/internal/testutils"
)

func TestBuild(t *testing.T) {
	out, err := compendium.Build(&compendium.BuildInput{
		MonsterDoc: testutils.BestiaryDoc,
		SkillDocs:  []string{testutils.SkillsDoc},
	})
	require.NoError(t, err)

	c := out.Compendium
	assert.Len(t, c.Monsters, 3)
	assert.Len(t, c.Skills, 3)
	assert.Contains(t, c.Monsters, "Lapin Cornu")
	assert.Contains(t, c.Skills, "Boule de Feu")
}

func TestBuildNilInput(t *testing.T) {
	_, err := compendium.Build(nil)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestBuildSkipsEmptySkillDocs(t *testing.T) {
	out, err := compendium.Build(&compendium.BuildInput{
		MonsterDoc: testutils.BestiaryDoc,
		SkillDocs:  []string{"", testutils.SkillsDoc, ""},
	})
	require.NoError(t, err)
	assert.Len(t, out.Compendium.Skills, 3)
}

func TestBuildSuffixesSkillCollisionsAcrossDocs(t *testing.T) {
	doc := `### **Boule de Feu**
- **Description :** Variante du second document.
`
	out, err := compendium.Build(&compendium.BuildInput{
		MonsterDoc: "",
		SkillDocs:  []string{testutils.SkillsDoc, doc},
	})
	require.NoError(t, err)

	c := out.Compendium
	require.Contains(t, c.Skills, "Boule de Feu")
	require.Contains(t, c.Skills, "Boule de Feu (2)")
	assert.Equal(t, "Projette une boule de feu sur une cible.",
		c.Skills["Boule de Feu"].Description)
	assert.Equal(t, "Variante du second document.",
		c.Skills["Boule de Feu (2)"].Description)
}

func TestBuildDensify(t *testing.T) {
	out, err := compendium.Build(&compendium.BuildInput{
		MonsterDoc: testutils.BestiaryDoc,
		Densify:    true,
	})
	require.NoError(t, err)

	lapin := out.Compendium.Monsters["Lapin Cornu"]
	require.NotNil(t, lapin)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, lapin.Levels())

	v3 := lapin.Variants[3]
	require.NotNil(t, v3)
	assert.Equal(t, 20.0, v3.HPMax)
	assert.Equal(t, 6.0, v3.STR)

	// Synthetic phase levels are never densified.
	reine := out.Compendium.Monsters["Reine Lapine"]
	require.NotNil(t, reine)
	assert.Equal(t, []int{10001, 10002}, reine.Levels())
}
