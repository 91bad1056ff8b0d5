package model

// Mission is a catalog entry. The catalog is fixed for the life of the
// process; rotation would swap the whole table, never single entries.
type Mission struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Difficulty string `json:"difficulty"`
	EnergyCost int    `json:"energy_cost"`
	RewardXP   int    `json:"reward_xp"`
	RewardAura int    `json:"reward_aura"`
	Favored    string `json:"favored"`
}

// MissionCatalog returns the current rotation.
func MissionCatalog() []Mission {
	return []Mission{
		{
			ID:         "001",
			Name:       "The Lost Forge",
			Difficulty: "EASY",
			EnergyCost: 10,
			RewardXP:   25,
			RewardAura: 2,
			Favored:    "Forge Legion / Orc Warrior",
		},
		{
			ID:         "002",
			Name:       "Circle Interference Node",
			Difficulty: "MEDIUM",
			EnergyCost: 18,
			RewardXP:   60,
			RewardAura: 5,
			Favored:    "Circle of Mist / Human Wizard",
		},
		{
			ID:         "003",
			Name:       "Veil Breach Containment",
			Difficulty: "HARD",
			EnergyCost: 25,
			RewardXP:   120,
			RewardAura: 11,
			Favored:    "Echoes of the Veil / Necromancer",
		},
	}
}
