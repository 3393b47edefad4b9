package entities

// Compendium is the combined monster and skill reference data produced
// by one import pass. It is built once, persisted as a snapshot, and
// treated as read-only during combat.
type Compendium struct {
	Monsters map[string]*Monster `json:"monsters"`
	Skills   map[string]*Skill   `json:"skills"`
}

// NewCompendium returns an empty compendium with initialized maps.
func NewCompendium() *Compendium {
	return &Compendium{
		Monsters: make(map[string]*Monster),
		Skills:   make(map[string]*Skill),
	}
}
