// services/game.go
package services

import (
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/alphabatem/common/context"
	"github.com/emberholm-legacy/ember_api/dto"
	"github.com/emberholm-legacy/ember_api/model"
	"github.com/emberholm-legacy/ember_api/shared"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// GameService owns the progression/economy rules: passive drip, energy
// regeneration, the two economy operations and guild reward attribution.
// Documents are read-whole/write-whole with no storage-level locking, so
// every operation serializes its load-mutate-save sequence behind mu.
type GameService struct {
	context.DefaultService

	sqlSvc *SqliteService
	clock  shared.Clock

	mu       sync.Mutex
	missions map[string]model.Mission
}

const GAME_SVC = "game_svc"

func (svc GameService) Id() string {
	return GAME_SVC
}

func (svc *GameService) Configure(ctx *context.Context) error {
	if svc.clock == nil {
		svc.clock = shared.RealClock{}
	}
	return svc.DefaultService.Configure(ctx)
}

func (svc *GameService) Start() error {
	svc.sqlSvc = svc.Service(SQLITE_SVC).(*SqliteService)

	svc.missions = make(map[string]model.Mission)
	for _, m := range model.MissionCatalog() {
		svc.missions[m.ID] = m
	}

	return nil
}

// SetClock swaps the time source; used by tests.
func (svc *GameService) SetClock(clock shared.Clock) {
	svc.clock = clock
}

func (svc *GameService) Missions() []model.Mission {
	return model.MissionCatalog()
}

func (svc *GameService) GetGuilds() ([]model.Guild, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	return svc.sqlSvc.GetGuilds()
}

func (svc *GameService) GetStats() (*dto.StatsResponse, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	stats, err := svc.sqlSvc.GetStats()
	if err != nil {
		return nil, err
	}

	ranking := make([]dto.GuildRankEntry, 0, len(stats.GuildRanking))
	for name, rank := range stats.GuildRanking {
		ranking = append(ranking, dto.GuildRankEntry{
			Name:        name,
			XPTotal:     rank.XP,
			AuraTotal:   rank.Aura,
			SuccessRate: fmt.Sprintf("%d%%", rank.Successes),
		})
	}

	return &dto.StatsResponse{
		TotalCharacters:    stats.TotalCharacters,
		ActiveGuilds:       stats.ActiveGuilds,
		MissionsCompleted:  stats.MissionsCompleted,
		MissionsFailed:     stats.MissionsFailed,
		TotalExpCollected:  stats.TotalExpCollected,
		TotalAuraCollected: stats.TotalAuraCollected,
		GuildRanking:       ranking,
		PlayerLeaderboard:  stats.PlayerLeaderboard,
	}, nil
}

// GetPlayer returns the player for a wallet, creating it on first
// reference and folding in any passive gains owed up to now.
func (svc *GameService) GetPlayer(wallet string) (*model.Player, error) {
	if wallet == "" {
		return nil, shared.NewBadRequestError(nil, "Wallet is required")
	}

	svc.mu.Lock()
	defer svc.mu.Unlock()

	stats, err := svc.sqlSvc.GetStats()
	if err != nil {
		return nil, err
	}

	player, err := svc.ensurePlayer(wallet)
	if err != nil {
		return nil, err
	}

	svc.applyPassiveAndRegen(player, stats)

	if err := svc.persist(player, stats); err != nil {
		return nil, err
	}
	return player, nil
}

// SpendXPForEnergy trades surplus experience for an early energy top-up at
// a fixed rate. Energy past energy_max is discarded; the xp is still spent.
func (svc *GameService) SpendXPForEnergy(req dto.SpendXPRequest) (*dto.SpendXPResponse, error) {
	if req.Wallet == "" || req.HeroID == "" || req.EnergyRequest <= 0 {
		return nil, shared.NewBadRequestError(nil, "invalid input")
	}

	svc.mu.Lock()
	defer svc.mu.Unlock()

	stats, err := svc.sqlSvc.GetStats()
	if err != nil {
		return nil, err
	}

	player, err := svc.ensurePlayer(req.Wallet)
	if err != nil {
		return nil, err
	}

	svc.applyPassiveAndRegen(player, stats)

	hero := player.FindHero(req.HeroID)
	if hero == nil {
		if err := svc.persist(player, stats); err != nil {
			return nil, err
		}
		return nil, shared.NewNotFoundError(nil, "hero not found")
	}

	ds := &hero.DynamicState
	xpCost := req.EnergyRequest * shared.XPCostPerEnergy
	if ds.XPTotal < xpCost {
		if err := svc.persist(player, stats); err != nil {
			return nil, err
		}
		return nil, shared.NewBadRequestError(nil, "not enough xp")
	}

	ds.XPTotal -= xpCost
	ds.EnergyCurrent = min(ds.EnergyMax, ds.EnergyCurrent+req.EnergyRequest)
	ds.LastUpdate = shared.FormatISO(svc.clock.Now())

	xpSpentTotal.Add(float64(xpCost))

	// Second pass folds the change into totals/stats consistently.
	svc.applyPassiveAndRegen(player, stats)

	if err := svc.persist(player, stats); err != nil {
		return nil, err
	}

	return &dto.SpendXPResponse{
		HeroID:        req.HeroID,
		EnergyCurrent: ds.EnergyCurrent,
		XPTotal:       ds.XPTotal,
	}, nil
}

// ExecuteMission runs a catalog mission for a hero: energy check, per-hero
// cooldown check, then deterministic success.
func (svc *GameService) ExecuteMission(req dto.ExecuteMissionRequest) (*dto.ExecuteMissionResponse, error) {
	if req.Wallet == "" || req.HeroID == "" || req.MissionID == "" {
		return nil, shared.NewBadRequestError(nil, "invalid input")
	}

	svc.mu.Lock()
	defer svc.mu.Unlock()

	stats, err := svc.sqlSvc.GetStats()
	if err != nil {
		return nil, err
	}

	player, err := svc.ensurePlayer(req.Wallet)
	if err != nil {
		return nil, err
	}

	svc.applyPassiveAndRegen(player, stats)

	// Passive gains owed up to now stick even when the mission is rejected.
	persistAndFail := func(appErr error) (*dto.ExecuteMissionResponse, error) {
		if err := svc.persist(player, stats); err != nil {
			return nil, err
		}
		return nil, appErr
	}

	mission, ok := svc.missions[req.MissionID]
	if !ok {
		return persistAndFail(shared.NewNotFoundError(nil, "mission not found"))
	}

	hero := player.FindHero(req.HeroID)
	if hero == nil {
		return persistAndFail(shared.NewNotFoundError(nil, "hero not found"))
	}

	ds := &hero.DynamicState
	now := svc.clock.Now()

	if ds.EnergyCurrent < mission.EnergyCost {
		return persistAndFail(shared.NewBadRequestError(nil, "not enough energy"))
	}

	if lastRun, ok := ds.MissionHistory[mission.ID]; ok && lastRun != "" {
		if !shared.Elapsed(lastRun, now, shared.MissionRotationHours) {
			return persistAndFail(shared.NewTooManyRequestsError(nil, "mission on cooldown"))
		}
	}

	// Every validated attempt resolves as a success.
	ds.XPTotal += mission.RewardXP
	ds.AuraLevel += mission.RewardAura
	ds.EnergyCurrent = max(0, ds.EnergyCurrent-mission.EnergyCost)
	ds.LastUpdate = shared.FormatISO(now)
	ds.LastMission = mission.Name
	if ds.MissionHistory == nil {
		ds.MissionHistory = map[string]string{}
	}
	ds.MissionHistory[mission.ID] = shared.FormatISO(now)

	stats.MissionsCompleted++
	stats.TotalExpCollected += mission.RewardXP
	stats.TotalAuraCollected += mission.RewardAura

	if err := svc.updateGuildStats(hero.GuildName(), mission.RewardXP, mission.RewardAura, stats); err != nil {
		return nil, err
	}

	svc.applyPassiveAndRegen(player, stats)

	if err := svc.persist(player, stats); err != nil {
		return nil, err
	}

	svc.recordMissionLog(req.Wallet, hero.TokenID, mission, now)
	missionsExecutedTotal.WithLabelValues(mission.ID, mission.Difficulty).Inc()

	return &dto.ExecuteMissionResponse{
		HeroID:        req.HeroID,
		MissionID:     mission.ID,
		MissionName:   mission.Name,
		EnergySpent:   mission.EnergyCost,
		XPGained:      mission.RewardXP,
		AuraGained:    mission.RewardAura,
		HeroEnergyNow: ds.EnergyCurrent,
		HeroXPNow:     ds.XPTotal,
		HeroAuraNow:   ds.AuraLevel,
	}, nil
}

// applyPassiveAndRegen applies the recurring rules to every hero of a
// player, then recomputes the player's totals. Global counters accumulate
// exactly the amounts granted in this call.
//
// The drip is a threshold trigger, not a linear accrual: any number of
// missed 24h windows still grants a single reward per call.
func (svc *GameService) applyPassiveAndRegen(player *model.Player, stats *model.GlobalStats) {
	now := svc.clock.Now()

	walletXP := 0
	walletAura := 0
	walletEnergy := 0

	grantedXP := 0
	grantedAura := 0

	for i := range player.Heroes {
		ds := &player.Heroes[i].DynamicState

		if ds.EnergyMax <= 0 {
			ds.EnergyMax = shared.DefaultEnergyMax
		}

		if shared.Elapsed(ds.LastUpdate, now, shared.PassiveDripThresholdHours) {
			ds.XPTotal += shared.PassiveXPPerDay
			ds.AuraLevel += shared.PassiveAuraPerDay

			grantedXP += shared.PassiveXPPerDay
			grantedAura += shared.PassiveAuraPerDay

			ds.LastUpdate = shared.FormatISO(now)
			passiveDripGrantsTotal.Inc()
		}

		if shared.Elapsed(ds.LastEnergyRefresh, now, shared.EnergyFullRefreshHours) {
			ds.EnergyCurrent = ds.EnergyMax
			ds.LastEnergyRefresh = shared.FormatISO(now)
			energyRefreshesTotal.Inc()
		}

		walletXP += ds.XPTotal
		walletAura += ds.AuraLevel
		walletEnergy += ds.EnergyCurrent
	}

	stats.TotalExpCollected += grantedXP
	stats.TotalAuraCollected += grantedAura

	player.Totals = model.PlayerTotals{
		HeroesCount:          len(player.Heroes),
		XPTotalAll:           walletXP,
		AuraTotalAll:         walletAura,
		EnergyTotalAvailable: walletEnergy,
	}
}

// updateGuildStats folds a mission reward into the global ranking and the
// roster document. The roster is persisted whole whether or not any entry
// matched.
func (svc *GameService) updateGuildStats(guildName string, xpGain, auraGain int, stats *model.GlobalStats) error {
	if guildName == "" {
		return nil
	}

	rank := stats.EnsureRank(guildName)
	rank.XP += xpGain
	rank.Aura += auraGain

	guilds, err := svc.sqlSvc.GetGuilds()
	if err != nil {
		return err
	}

	for i := range guilds {
		if !strings.EqualFold(guilds[i].Name, guildName) {
			continue
		}
		if guilds[i].Members < 1 {
			guilds[i].Members = 1
		}
		guilds[i].AvgXP = round2(guilds[i].AvgXP + float64(xpGain))
		guilds[i].AvgAura = round2(guilds[i].AvgAura + float64(auraGain))
	}

	return svc.sqlSvc.SaveGuilds(guilds)
}

// ensurePlayer loads the player for a wallet, creating and persisting a
// demo roster on first reference.
func (svc *GameService) ensurePlayer(wallet string) (*model.Player, error) {
	player, found, err := svc.sqlSvc.GetPlayer(wallet)
	if err != nil {
		return nil, err
	}
	if found {
		return player, nil
	}

	now := shared.FormatISO(svc.clock.Now())
	player = &model.Player{
		Wallet: wallet,
		Heroes: []model.Hero{
			{
				TokenID:   "00001",
				Name:      "Entaal, Bearer of Acordry of the Broken Choose",
				RaceClass: "Gith Druid",
				Guild:     "Circle of Mist",
				ImageURL:  "/img/00001.png",
				DynamicState: model.DynamicState{
					XPTotal:           120,
					AuraLevel:         14,
					EnergyCurrent:     80,
					EnergyMax:         shared.DefaultEnergyMax,
					State:             "READY",
					CurrentGuild:      "Circle of Mist",
					LastUpdate:        now,
					LastEnergyRefresh: now,
					MissionHistory:    map[string]string{},
					PowerCurrent:      12,
					XPLevel:           1,
					LastMission:       "The Lost Forge",
				},
			},
			{
				TokenID:   "00002",
				Name:      "Brax-Ironjaw",
				RaceClass: "Orc Warrior",
				Guild:     "Forge Legion",
				ImageURL:  "/img/00002.png",
				DynamicState: model.DynamicState{
					XPTotal:           210,
					AuraLevel:         7,
					EnergyCurrent:     45,
					EnergyMax:         shared.DefaultEnergyMax,
					State:             "READY",
					CurrentGuild:      "Forge Legion",
					LastUpdate:        now,
					LastEnergyRefresh: now,
					MissionHistory:    map[string]string{},
					PowerCurrent:      18,
					XPLevel:           2,
					LastMission:       "Veil Breach Containment",
				},
			},
		},
		Totals: model.PlayerTotals{
			HeroesCount:          2,
			XPTotalAll:           330,
			AuraTotalAll:         21,
			EnergyTotalAvailable: 125,
		},
	}

	if err := svc.sqlSvc.SavePlayer(player); err != nil {
		return nil, err
	}

	log.WithField("wallet", wallet).Info("Seeded new player with demo heroes")
	return player, nil
}

func (svc *GameService) persist(player *model.Player, stats *model.GlobalStats) error {
	if err := svc.sqlSvc.SavePlayer(player); err != nil {
		return err
	}
	return svc.sqlSvc.SaveStats(stats)
}

func (svc *GameService) recordMissionLog(wallet, tokenID string, mission model.Mission, now time.Time) {
	id, err := uuid.NewV7()
	if err != nil {
		log.Printf("Failed to generate mission log id: %v", err)
		return
	}

	entry := &model.MissionLog{
		ID:          id.String(),
		Wallet:      wallet,
		TokenID:     tokenID,
		MissionID:   mission.ID,
		MissionName: mission.Name,
		EnergySpent: mission.EnergyCost,
		XPGained:    mission.RewardXP,
		AuraGained:  mission.RewardAura,
		CreatedAt:   now,
	}
	if err := svc.sqlSvc.CreateMissionLog(entry); err != nil {
		log.Printf("Failed to record mission log: %v", err)
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
