package dto

import "encoding/json"

type SpendXPRequest struct {
	Wallet        string `json:"wallet" validate:"required"`
	HeroID        string `json:"hero_id" validate:"required"`
	EnergyRequest int    `json:"energy_request" validate:"required,min=1"`
}

func (r SpendXPRequest) Validate() error {
	return GetValidator().Struct(r)
}

type SpendXPResponse struct {
	HeroID        string `json:"hero_id"`
	EnergyCurrent int    `json:"energy_current"`
	XPTotal       int    `json:"xp_total"`
}

type ExecuteMissionRequest struct {
	Wallet    string `json:"wallet" validate:"required"`
	HeroID    string `json:"hero_id" validate:"required"`
	MissionID string `json:"mission_id" validate:"required"`
}

func (r ExecuteMissionRequest) Validate() error {
	return GetValidator().Struct(r)
}

type ExecuteMissionResponse struct {
	HeroID        string `json:"hero_id"`
	MissionID     string `json:"mission_id"`
	MissionName   string `json:"mission_name"`
	EnergySpent   int    `json:"energy_spent"`
	XPGained      int    `json:"xp_gained"`
	AuraGained    int    `json:"aura_gained"`
	HeroEnergyNow int    `json:"hero_energy_now"`
	HeroXPNow     int    `json:"hero_xp_now"`
	HeroAuraNow   int    `json:"hero_aura_now"`
}

type GuildRankEntry struct {
	Name        string `json:"name"`
	XPTotal     int    `json:"xp_total"`
	AuraTotal   int    `json:"aura_total"`
	SuccessRate string `json:"success_rate"`
}

type StatsResponse struct {
	TotalCharacters    int              `json:"total_characters"`
	ActiveGuilds       int              `json:"active_guilds"`
	MissionsCompleted  int              `json:"missions_completed"`
	MissionsFailed     int              `json:"missions_failed"`
	TotalExpCollected  int              `json:"total_exp_collected"`
	TotalAuraCollected int              `json:"total_aura_collected"`
	GuildRanking       []GuildRankEntry `json:"guild_ranking"`
	PlayerLeaderboard  json.RawMessage  `json:"player_leaderboard"`
}
