package model

// PotionType enumerates the potion effects a player can carry.
type PotionType int

const (
	PotionNone PotionType = iota
	PotionSpeed
	PotionLight
	PotionSwim
	PotionEnergy
	PotionRegen
	PotionHealth
	PotionTime
	PotionLava
	PotionShield
	PotionHaste
	PotionEscape
)

var potionNames = map[PotionType]string{
	PotionNone:   "None",
	PotionSpeed:  "Speed",
	PotionLight:  "Light",
	PotionSwim:   "Swim",
	PotionEnergy: "Energy",
	PotionRegen:  "Regen",
	PotionHealth: "Health",
	PotionTime:   "Time",
	PotionLava:   "Lava",
	PotionShield: "Shield",
	PotionHaste:  "Haste",
	PotionEscape: "Escape",
}

var potionTypesByName = func() map[string]PotionType {
	m := make(map[string]PotionType, len(potionNames))
	for t, name := range potionNames {
		m[name] = t
	}
	return m
}()

var potionDefaultDurations = map[PotionType]int32{
	PotionNone:   0,
	PotionSpeed:  70,
	PotionLight:  100,
	PotionSwim:   80,
	PotionEnergy: 140,
	PotionRegen:  30,
	PotionHealth: 0,
	PotionTime:   30,
	PotionLava:   120,
	PotionShield: 90,
	PotionHaste:  80,
	PotionEscape: 0,
}

// Potion is a potion effect with its remaining duration in seconds.
type Potion struct {
	Type     PotionType
	Duration int32
}

// NewPotion builds a Potion with the type's canonical default duration.
func NewPotion(t PotionType) Potion {
	return Potion{Type: t, Duration: PotionDuration(t)}
}

// PotionDuration returns the canonical default duration for a potion type.
func PotionDuration(t PotionType) int32 {
	return potionDefaultDurations[t]
}

// PotionName returns the catalog display name for a potion type.
func PotionName(t PotionType) string {
	name, ok := potionNames[t]
	if !ok {
		return "None"
	}
	return name
}

// PotionTypeByName resolves a catalog display name back to a PotionType.
func PotionTypeByName(name string) PotionType {
	return potionTypesByName[name]
}
