package markdown_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/The-Night7/bofuri-mj/internal/entities"
	"github.com/The-Night7/bofuri-mj/internal/markdown"
	"github.com/The-Night7/bofuri-mj/internal/testutils"
)

type ParseMonstersTestSuite struct {
	suite.Suite
	monsters map[string]*entities.Monster
}

func (s *ParseMonstersTestSuite) SetupTest() {
	s.monsters = markdown.ParseMonsters(testutils.BestiaryDoc)
}

func (s *ParseMonstersTestSuite) TestAllMonstersFound() {
	s.Len(s.monsters, 3)
	s.Contains(s.monsters, "Lapin Cornu")
	s.Contains(s.monsters, "Loup Sylvestre")
	s.Contains(s.monsters, "Reine Lapine")
}

func (s *ParseMonstersTestSuite) TestHeaderFields() {
	lapin := s.monsters["Lapin Cornu"]
	s.Equal("Palier 1", lapin.Tier)
	s.Equal("1-5", lapin.LevelRange)
	s.Empty(lapin.Rarity)

	reine := s.monsters["Reine Lapine"]
	s.Equal(entities.RarityBoss, reine.Rarity)
	s.Equal("10", reine.LevelRange)
}

func (s *ParseMonstersTestSuite) TestLeveledVariants() {
	lapin := s.monsters["Lapin Cornu"]
	s.Equal([]int{1, 5}, lapin.Levels())

	v1 := lapin.Variants[1]
	s.Require().NotNil(v1)
	s.Equal(10.0, v1.HPMax)
	s.Equal(0.0, v1.MPMax)
	s.Equal(3.0, v1.STR)
	s.Equal(4.0, v1.AGI)
	s.Equal(1.0, v1.INT)
	s.Equal(2.0, v1.DEX)
	s.Equal(2.0, v1.VIT)
	s.Equal("1d4", v1.BaseAttack)

	v5 := lapin.Variants[5]
	s.Require().NotNil(v5)
	s.Equal(30.0, v5.HPMax)
	s.Equal(9.0, v5.STR)
	s.Equal("1d6", v5.BaseAttack)
}

func (s *ParseMonstersTestSuite) TestFirstDropAndZoneWin() {
	lapin := s.monsters["Lapin Cornu"]
	s.Equal([]string{"Corne de lapin", "Fourrure"}, lapin.Drops)
	s.Equal("Plaine des débuts", lapin.Zone)

	loup := s.monsters["Loup Sylvestre"]
	s.Equal("Forêt de l'ouest", loup.Zone)
	s.Nil(loup.Drops)
}

func (s *ParseMonstersTestSuite) TestPhaseVariantsGetSyntheticLevels() {
	reine := s.monsters["Reine Lapine"]
	s.Equal([]int{10001, 10002}, reine.Levels())

	p1 := reine.Variants[10001]
	s.Require().NotNil(p1)
	s.Equal(200.0, p1.HPMax)
	s.Equal(40.0, p1.MPMax)
	s.Equal(20.0, p1.STR)
	s.Equal(entities.TextValue("Phase 1"), p1.Extra[entities.ExtraKeyLabel])
	s.Equal(entities.ListValue([]string{"Charge cornue", "Appel de la garenne"}),
		p1.Extra[entities.ExtraKeyAbilities])

	p2 := reine.Variants[10002]
	s.Require().NotNil(p2)
	s.Equal(120.0, p2.HPMax)
	s.Equal(26.0, p2.STR)
	s.Equal(entities.TextValue("Phase 2"), p2.Extra[entities.ExtraKeyLabel])

	s.Equal([]string{"Charge cornue", "Appel de la garenne", "Frénésie"}, reine.Abilities)
}

func (s *ParseMonstersTestSuite) TestParsingIsIdempotent() {
	again := markdown.ParseMonsters(testutils.BestiaryDoc)
	s.Equal(s.monsters, again)
}

func TestParseMonstersTestSuite(t *testing.T) {
	suite.Run(t, new(ParseMonstersTestSuite))
}

func TestParseMonstersDuplicateNames(t *testing.T) {
	doc := `## **Slime** (1)

**Niveau 1 :**
- **HP :** 5

---

## **Slime** (2)

**Niveau 2 :**
- **HP :** 8
`
	monsters := markdown.ParseMonsters(doc)
	if len(monsters) != 2 {
		t.Fatalf("expected 2 monsters, got %d", len(monsters))
	}
	if _, ok := monsters["Slime"]; !ok {
		t.Error("expected first Slime under its own name")
	}
	if _, ok := monsters["Slime (2)"]; !ok {
		t.Error("expected second Slime under a suffixed key")
	}
}

func TestParseMonstersDropsEmptyVariants(t *testing.T) {
	doc := `## **Fantôme** (3)

**Niveau 3 :**
- **HP :** 12

**Niveau 4 :**
`
	monsters := markdown.ParseMonsters(doc)
	ghost := monsters["Fantôme"]
	if ghost == nil {
		t.Fatal("monster not parsed")
	}
	if len(ghost.Variants) != 1 {
		t.Fatalf("expected the stat-less level to be dropped, got %v", ghost.Levels())
	}
}

func TestParseMonstersStatsInsideAbilities(t *testing.T) {
	doc := `## **Golem** (6)

**Niveau 6 :**
- **Compétences :**
- HP : 80/80
- STR : 14
- Attaque de base : 2d6
- Poing de pierre
`
	monsters := markdown.ParseMonsters(doc)
	golem := monsters["Golem"]
	if golem == nil {
		t.Fatal("monster not parsed")
	}
	v := golem.Variants[6]
	if v == nil {
		t.Fatalf("expected level 6 variant, got %v", golem.Levels())
	}
	if v.HPMax != 80 || v.STR != 14 || v.BaseAttack != "2d6" {
		t.Errorf("stats not lifted from abilities: %+v", v)
	}
	if len(golem.Abilities) != 1 || golem.Abilities[0] != "Poing de pierre" {
		t.Errorf("expected only genuine ability text kept, got %v", golem.Abilities)
	}
}
