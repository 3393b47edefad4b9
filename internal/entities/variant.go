// Package entities defines the domain records shared across the service:
// compendium monsters and skills, the player roster, and the runtime
// projections used during combat.
package entities

import "encoding/json"

// ExtraValue holds one unrecognized attribute captured from authored
// markdown. A value is either a single line of text or a list of lines
// (abilities); exactly one of the two is set.
type ExtraValue struct {
	Text string
	List []string
}

// TextValue wraps a single string as an ExtraValue.
func TextValue(s string) ExtraValue {
	return ExtraValue{Text: s}
}

// ListValue wraps a string list as an ExtraValue.
func ListValue(items []string) ExtraValue {
	return ExtraValue{List: items}
}

// MarshalJSON encodes the value as a plain string or a string array.
func (v ExtraValue) MarshalJSON() ([]byte, error) {
	if v.List != nil {
		return json.Marshal(v.List)
	}
	return json.Marshal(v.Text)
}

// UnmarshalJSON accepts either a string or a string array.
func (v *ExtraValue) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		v.Text = s
		v.List = nil
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	v.Text = ""
	v.List = list
	return nil
}

// Well-known Extra keys populated by the markdown parser.
const (
	ExtraKeyLabel     = "label"
	ExtraKeyAbilities = "abilities"
)

// Variant is the full stat snapshot of a monster at one specific level.
// HPMax and MPMax default to zero when the source text carries no value.
type Variant struct {
	Level      int     `json:"level"`
	HPMax      float64 `json:"hp_max"`
	MPMax      float64 `json:"mp_max"`
	STR        float64 `json:"str"`
	AGI        float64 `json:"agi"`
	INT        float64 `json:"int"`
	DEX        float64 `json:"dex"`
	VIT        float64 `json:"vit"`
	BaseAttack string  `json:"base_attack,omitempty"`

	// Extra collects attribute lines the parser does not recognize,
	// keyed by their authored label. Never reflected onto the struct.
	Extra map[string]ExtraValue `json:"extra,omitempty"`
}

// IsEmpty reports whether the variant carries no data beyond defaults.
// Empty variants are parsing noise and are discarded during cleanup.
func (v *Variant) IsEmpty() bool {
	return v.HPMax == 0 && v.MPMax == 0 &&
		v.STR == 0 && v.AGI == 0 && v.INT == 0 && v.DEX == 0 && v.VIT == 0 &&
		v.BaseAttack == "" && len(v.Extra) == 0
}

// Clone returns a deep copy of the variant.
func (v *Variant) Clone() *Variant {
	if v == nil {
		return nil
	}
	out := *v
	if v.Extra != nil {
		out.Extra = make(map[string]ExtraValue, len(v.Extra))
		for k, ev := range v.Extra {
			if ev.List != nil {
				ev.List = append([]string(nil), ev.List...)
			}
			out.Extra[k] = ev
		}
	}
	return &out
}
