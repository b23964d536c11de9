package domain

import "time"

// Effect description length bounds, enforced on create and update
const (
	EffectDescriptionMinLen = 1
	EffectDescriptionMaxLen = 250
)

// Enchantment represents a catalog enchantment definition.
// The effect description is the only mutable field.
type Enchantment struct {
	ID                int       `json:"enchantment_id"`
	Name              string    `json:"name"`
	EffectDescription string    `json:"effect_description"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// ValidEffectDescription reports whether a description is within bounds
func ValidEffectDescription(desc string) bool {
	return len(desc) >= EffectDescriptionMinLen && len(desc) <= EffectDescriptionMaxLen
}
