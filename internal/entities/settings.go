package entities

// Settings are the table-wide rule tunables the game master can adjust
// between exchanges without restarting the service.
type Settings struct {
	// VITDivisor scales a defender's VIT into the damage mitigation
	// term. Zero falls back to the engine default.
	VITDivisor float64 `json:"vit_divisor"`
}

// Clone returns a copy of the settings.
func (s *Settings) Clone() *Settings {
	if s == nil {
		return nil
	}
	out := *s
	return &out
}
