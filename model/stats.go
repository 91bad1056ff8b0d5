package model

import (
	"encoding/json"

	"github.com/emberholm-legacy/ember_api/shared"
)

// GuildRank holds a guild's accumulated mission rewards. Successes and
// failures are schema placeholders: no code path increments them while
// every validated mission attempt resolves as a success.
type GuildRank struct {
	XP        int `json:"xp"`
	Aura      int `json:"aura"`
	Successes int `json:"successes"`
	Failures  int `json:"failures"`
}

// GlobalStats is the singleton stats document. All counters are
// monotonically non-decreasing. PlayerLeaderboard is populated externally
// and carried through untouched.
type GlobalStats struct {
	TotalCharacters    int                   `json:"total_characters"`
	ActiveGuilds       int                   `json:"active_guilds"`
	MissionsCompleted  int                   `json:"missions_completed"`
	MissionsFailed     int                   `json:"missions_failed"`
	TotalExpCollected  int                   `json:"total_exp_collected"`
	TotalAuraCollected int                   `json:"total_aura_collected"`
	GuildRanking       map[string]*GuildRank `json:"guild_ranking"`
	PlayerLeaderboard  json.RawMessage       `json:"player_leaderboard"`
}

func DefaultGlobalStats() *GlobalStats {
	return &GlobalStats{
		TotalCharacters:   shared.DefaultTotalCharacters,
		ActiveGuilds:      shared.DefaultActiveGuilds,
		GuildRanking:      map[string]*GuildRank{},
		PlayerLeaderboard: json.RawMessage("[]"),
	}
}

// EnsureRank returns the ranking entry for a guild, creating a zeroed one
// if the guild has never been attributed a reward.
func (s *GlobalStats) EnsureRank(guildName string) *GuildRank {
	if s.GuildRanking == nil {
		s.GuildRanking = map[string]*GuildRank{}
	}
	rank, ok := s.GuildRanking[guildName]
	if !ok {
		rank = &GuildRank{}
		s.GuildRanking[guildName] = rank
	}
	return rank
}
