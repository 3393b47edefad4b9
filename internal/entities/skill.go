package entities

// Skill is one compendium skill entry. Cost is kept as free text since
// the source documents author it inconsistently ("10 MP", "X", "passif").
type Skill struct {
	Name        string `json:"name"`
	Category    string `json:"category,omitempty"`
	Description string `json:"description,omitempty"`
	Cost        string `json:"cost,omitempty"`
	Condition   string `json:"condition,omitempty"`
	Tier        string `json:"tier,omitempty"`

	// Extra collects labeled lines beyond the known fields, such as
	// incantations.
	Extra map[string]string `json:"extra,omitempty"`
}

// Clone returns a deep copy of the skill.
func (s *Skill) Clone() *Skill {
	if s == nil {
		return nil
	}
	out := *s
	if s.Extra != nil {
		out.Extra = make(map[string]string, len(s.Extra))
		for k, v := range s.Extra {
			out.Extra[k] = v
		}
	}
	return &out
}
