package library

import "github.com/The-Night7/bofuri-mj/internal/entities"

// ImportInput defines the request for importing a compendium from
// markdown document contents
type ImportInput struct {
	MonsterDoc string
	SkillDocs  []string
	Densify    bool
}

// ImportOutput defines the response for importing a compendium
type ImportOutput struct {
	MonsterCount int
	SkillCount   int
}

// GetCompendiumInput defines the request for fetching the snapshot
type GetCompendiumInput struct{}

// GetCompendiumOutput defines the response for fetching the snapshot
type GetCompendiumOutput struct {
	Compendium *entities.Compendium
}

// GetMonsterInput defines the request for fetching one monster
type GetMonsterInput struct {
	Name string
}

// GetMonsterOutput defines the response for fetching one monster
type GetMonsterOutput struct {
	Monster *entities.Monster
}

// GetSkillInput defines the request for fetching one skill
type GetSkillInput struct {
	Name string
}

// GetSkillOutput defines the response for fetching one skill
type GetSkillOutput struct {
	Skill *entities.Skill
}

// ResolveMonsterInput defines the request for deriving a monster's
// stats at a level
type ResolveMonsterInput struct {
	Name  string
	Level int
}

// ResolveMonsterOutput defines the response for deriving a monster's
// stats at a level
type ResolveMonsterOutput struct {
	Monster *entities.Monster
	Variant *entities.Variant
}
