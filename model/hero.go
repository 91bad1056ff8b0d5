package model

// DynamicState is the live progression half of a hero. It is mutated in
// place by the game service and persisted inside the player document.
type DynamicState struct {
	XPTotal           int               `json:"xp_total"`
	AuraLevel         int               `json:"aura_level"`
	EnergyCurrent     int               `json:"energy_current"`
	EnergyMax         int               `json:"energy_max"`
	State             string            `json:"state"`
	CurrentGuild      string            `json:"current_guild"`
	LastUpdate        string            `json:"last_update"`
	LastEnergyRefresh string            `json:"last_energy_refresh"`
	MissionHistory    map[string]string `json:"mission_history"`
	PowerCurrent      int               `json:"power_current"`
	XPLevel           int               `json:"xp_level"`
	LastMission       string            `json:"last_mission"`
}

type Hero struct {
	TokenID      string       `json:"token_id"`
	Name         string       `json:"name"`
	RaceClass    string       `json:"race_class"`
	Guild        string       `json:"guild"`
	ImageURL     string       `json:"image_url"`
	DynamicState DynamicState `json:"dynamic_state"`
}

// GuildName resolves the guild a hero's mission rewards are attributed to.
func (h *Hero) GuildName() string {
	if h.Guild != "" {
		return h.Guild
	}
	if h.DynamicState.CurrentGuild != "" {
		return h.DynamicState.CurrentGuild
	}
	return "Unknown Guild"
}

type PlayerTotals struct {
	HeroesCount          int `json:"heroes_count"`
	XPTotalAll           int `json:"xp_total_all"`
	AuraTotalAll         int `json:"aura_total_all"`
	EnergyTotalAvailable int `json:"energy_total_available"`
}

type Player struct {
	Wallet string       `json:"wallet"`
	Heroes []Hero       `json:"heroes"`
	Totals PlayerTotals `json:"totals"`
}

// FindHero returns the hero with the given token id, or nil.
func (p *Player) FindHero(tokenID string) *Hero {
	for i := range p.Heroes {
		if p.Heroes[i].TokenID == tokenID {
			return &p.Heroes[i]
		}
	}
	return nil
}
