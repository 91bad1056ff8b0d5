package services

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/emberholm-legacy/ember_api/dto"
	"github.com/emberholm-legacy/ember_api/model"
	"github.com/emberholm-legacy/ember_api/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestGameService(t *testing.T) (*GameService, *shared.FakeClock) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "game_test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.PlayerDocument{},
		&model.StatsDocument{},
		&model.GuildDocument{},
		&model.HeroMetadataDocument{},
		&model.MissionLog{},
	))

	clock := shared.NewFakeClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))

	svc := &GameService{
		sqlSvc:   &SqliteService{db: db},
		clock:    clock,
		missions: map[string]model.Mission{},
	}
	for _, m := range model.MissionCatalog() {
		svc.missions[m.ID] = m
	}
	return svc, clock
}

// testHero builds a hero with fresh timestamps so passive rules stay quiet
// until the test advances the clock.
func testHero(clock shared.Clock, tokenID, guild string, xp, aura, energy int) model.Hero {
	now := shared.FormatISO(clock.Now())
	return model.Hero{
		TokenID: tokenID,
		Name:    "Hero " + tokenID,
		Guild:   guild,
		DynamicState: model.DynamicState{
			XPTotal:           xp,
			AuraLevel:         aura,
			EnergyCurrent:     energy,
			EnergyMax:         shared.DefaultEnergyMax,
			State:             "READY",
			CurrentGuild:      guild,
			LastUpdate:        now,
			LastEnergyRefresh: now,
			MissionHistory:    map[string]string{},
		},
	}
}

func savePlayer(t *testing.T, svc *GameService, wallet string, heroes ...model.Hero) {
	t.Helper()
	require.NoError(t, svc.sqlSvc.SavePlayer(&model.Player{Wallet: wallet, Heroes: heroes}))
}

func reloadHero(t *testing.T, svc *GameService, wallet, tokenID string) *model.Hero {
	t.Helper()
	player, found, err := svc.sqlSvc.GetPlayer(wallet)
	require.NoError(t, err)
	require.True(t, found)
	hero := player.FindHero(tokenID)
	require.NotNil(t, hero)
	return hero
}

func TestGetPlayerSeedsDemoRoster(t *testing.T) {
	svc, _ := newTestGameService(t)

	player, err := svc.GetPlayer("0xabc")
	require.NoError(t, err)

	require.Len(t, player.Heroes, 2)
	assert.Equal(t, "00001", player.Heroes[0].TokenID)
	assert.Equal(t, "00002", player.Heroes[1].TokenID)

	assert.Equal(t, 2, player.Totals.HeroesCount)
	assert.Equal(t, 330, player.Totals.XPTotalAll)
	assert.Equal(t, 21, player.Totals.AuraTotalAll)
	assert.Equal(t, 125, player.Totals.EnergyTotalAvailable)
}

func TestGetPlayerRequiresWallet(t *testing.T) {
	svc, _ := newTestGameService(t)

	_, err := svc.GetPlayer("")
	appErr, ok := shared.GetAppError(err)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.StatusCode)
}

func TestPassiveDripGrantsOncePerWindow(t *testing.T) {
	svc, clock := newTestGameService(t)

	_, err := svc.GetPlayer("0xdrip")
	require.NoError(t, err)

	// Within the window nothing accrues, no matter how often we look.
	clock.Advance(23 * time.Hour)
	player, err := svc.GetPlayer("0xdrip")
	require.NoError(t, err)
	assert.Equal(t, 120, player.Heroes[0].DynamicState.XPTotal)
	assert.Equal(t, 14, player.Heroes[0].DynamicState.AuraLevel)

	clock.Advance(2 * time.Hour)
	player, err = svc.GetPlayer("0xdrip")
	require.NoError(t, err)
	assert.Equal(t, 125, player.Heroes[0].DynamicState.XPTotal)
	assert.Equal(t, 15, player.Heroes[0].DynamicState.AuraLevel)
	assert.Equal(t, 215, player.Heroes[1].DynamicState.XPTotal)

	// Immediately after a grant the window restarts.
	player, err = svc.GetPlayer("0xdrip")
	require.NoError(t, err)
	assert.Equal(t, 125, player.Heroes[0].DynamicState.XPTotal)
}

func TestPassiveDripIsThresholdNotAccrual(t *testing.T) {
	svc, clock := newTestGameService(t)

	_, err := svc.GetPlayer("0xidle")
	require.NoError(t, err)

	// Ten missed days still grant a single day's reward.
	clock.Advance(240 * time.Hour)
	player, err := svc.GetPlayer("0xidle")
	require.NoError(t, err)
	assert.Equal(t, 125, player.Heroes[0].DynamicState.XPTotal)
	assert.Equal(t, 15, player.Heroes[0].DynamicState.AuraLevel)
}

func TestEnergyRefreshIsFullResetNotAdditive(t *testing.T) {
	svc, clock := newTestGameService(t)

	savePlayer(t, svc, "0xtired", testHero(clock, "10001", "Forge Legion", 50, 3, 10))

	clock.Advance(49 * time.Hour)
	player, err := svc.GetPlayer("0xtired")
	require.NoError(t, err)
	assert.Equal(t, shared.DefaultEnergyMax, player.Heroes[0].DynamicState.EnergyCurrent)
}

func TestMissingTimestampsTriggerBothRules(t *testing.T) {
	svc, clock := newTestGameService(t)

	hero := testHero(clock, "10002", "Forge Legion", 40, 2, 15)
	hero.DynamicState.LastUpdate = ""
	hero.DynamicState.LastEnergyRefresh = "not-a-timestamp"
	savePlayer(t, svc, "0xblank", hero)

	player, err := svc.GetPlayer("0xblank")
	require.NoError(t, err)

	ds := player.Heroes[0].DynamicState
	assert.Equal(t, 45, ds.XPTotal)
	assert.Equal(t, 3, ds.AuraLevel)
	assert.Equal(t, shared.DefaultEnergyMax, ds.EnergyCurrent)
	assert.NotEmpty(t, ds.LastUpdate)
	assert.NotEmpty(t, ds.LastEnergyRefresh)
}

func TestSpendXPForEnergy(t *testing.T) {
	svc, clock := newTestGameService(t)

	savePlayer(t, svc, "0xspend", testHero(clock, "10003", "Forge Legion", 100, 5, 50))

	resp, err := svc.SpendXPForEnergy(dto.SpendXPRequest{
		Wallet:        "0xspend",
		HeroID:        "10003",
		EnergyRequest: 5,
	})
	require.NoError(t, err)

	assert.Equal(t, 55, resp.EnergyCurrent)
	assert.Equal(t, 75, resp.XPTotal)

	hero := reloadHero(t, svc, "0xspend", "10003")
	assert.Equal(t, 55, hero.DynamicState.EnergyCurrent)
	assert.Equal(t, 75, hero.DynamicState.XPTotal)
}

func TestSpendXPForEnergyInsufficientXP(t *testing.T) {
	svc, clock := newTestGameService(t)

	savePlayer(t, svc, "0xpoor", testHero(clock, "10004", "Forge Legion", 100, 5, 50))

	_, err := svc.SpendXPForEnergy(dto.SpendXPRequest{
		Wallet:        "0xpoor",
		HeroID:        "10004",
		EnergyRequest: 60,
	})
	appErr, ok := shared.GetAppError(err)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.StatusCode)
	assert.Equal(t, "not enough xp", appErr.Message)

	hero := reloadHero(t, svc, "0xpoor", "10004")
	assert.Equal(t, 100, hero.DynamicState.XPTotal)
	assert.Equal(t, 50, hero.DynamicState.EnergyCurrent)
}

func TestSpendXPForEnergyDiscardsOverCap(t *testing.T) {
	svc, clock := newTestGameService(t)

	savePlayer(t, svc, "0xfull", testHero(clock, "10005", "Forge Legion", 100, 5, 98))

	resp, err := svc.SpendXPForEnergy(dto.SpendXPRequest{
		Wallet:        "0xfull",
		HeroID:        "10005",
		EnergyRequest: 5,
	})
	require.NoError(t, err)

	// The xp is spent in full even though 3 of the 5 energy hit the cap.
	assert.Equal(t, shared.DefaultEnergyMax, resp.EnergyCurrent)
	assert.Equal(t, 75, resp.XPTotal)
}

func TestSpendXPForEnergyUnknownHero(t *testing.T) {
	svc, clock := newTestGameService(t)

	savePlayer(t, svc, "0xnobody", testHero(clock, "10006", "Forge Legion", 100, 5, 50))

	_, err := svc.SpendXPForEnergy(dto.SpendXPRequest{
		Wallet:        "0xnobody",
		HeroID:        "99999",
		EnergyRequest: 1,
	})
	appErr, ok := shared.GetAppError(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.StatusCode)
}

func TestExecuteMission(t *testing.T) {
	svc, clock := newTestGameService(t)

	savePlayer(t, svc, "0xrunner", testHero(clock, "10007", "Forge Legion", 0, 0, 30))

	resp, err := svc.ExecuteMission(dto.ExecuteMissionRequest{
		Wallet:    "0xrunner",
		HeroID:    "10007",
		MissionID: "001",
	})
	require.NoError(t, err)

	assert.Equal(t, "The Lost Forge", resp.MissionName)
	assert.Equal(t, 10, resp.EnergySpent)
	assert.Equal(t, 25, resp.XPGained)
	assert.Equal(t, 2, resp.AuraGained)
	assert.Equal(t, 20, resp.HeroEnergyNow)
	assert.Equal(t, 25, resp.HeroXPNow)
	assert.Equal(t, 2, resp.HeroAuraNow)

	hero := reloadHero(t, svc, "0xrunner", "10007")
	assert.Equal(t, shared.FormatISO(clock.Now()), hero.DynamicState.MissionHistory["001"])
	assert.Equal(t, "The Lost Forge", hero.DynamicState.LastMission)

	stats, err := svc.sqlSvc.GetStats()
	require.NoError(t, err)
	assert.Equal(t, 1, stats.MissionsCompleted)
	assert.Equal(t, 25, stats.TotalExpCollected)
	assert.Equal(t, 2, stats.TotalAuraCollected)
	require.NotNil(t, stats.GuildRanking["Forge Legion"])
	assert.Equal(t, 25, stats.GuildRanking["Forge Legion"].XP)

	var logs []model.MissionLog
	require.NoError(t, svc.sqlSvc.Db().Find(&logs).Error)
	require.Len(t, logs, 1)
	assert.Equal(t, "0xrunner", logs[0].Wallet)
	assert.Equal(t, "001", logs[0].MissionID)
	assert.Equal(t, 25, logs[0].XPGained)
}

func TestExecuteMissionCooldown(t *testing.T) {
	svc, clock := newTestGameService(t)

	savePlayer(t, svc, "0xeager", testHero(clock, "10008", "Forge Legion", 0, 0, 100))

	req := dto.ExecuteMissionRequest{Wallet: "0xeager", HeroID: "10008", MissionID: "001"}

	_, err := svc.ExecuteMission(req)
	require.NoError(t, err)

	_, err = svc.ExecuteMission(req)
	appErr, ok := shared.GetAppError(err)
	require.True(t, ok)
	assert.Equal(t, 429, appErr.StatusCode)
	assert.Equal(t, "mission on cooldown", appErr.Message)

	clock.Advance(71 * time.Hour)
	_, err = svc.ExecuteMission(req)
	appErr, ok = shared.GetAppError(err)
	require.True(t, ok)
	assert.Equal(t, 429, appErr.StatusCode)

	clock.Advance(2 * time.Hour)
	resp, err := svc.ExecuteMission(req)
	require.NoError(t, err)
	assert.Equal(t, "001", resp.MissionID)
}

func TestExecuteMissionNotEnoughEnergy(t *testing.T) {
	svc, clock := newTestGameService(t)

	savePlayer(t, svc, "0xdrained", testHero(clock, "10009", "Forge Legion", 0, 0, 5))

	_, err := svc.ExecuteMission(dto.ExecuteMissionRequest{
		Wallet:    "0xdrained",
		HeroID:    "10009",
		MissionID: "001",
	})
	appErr, ok := shared.GetAppError(err)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.StatusCode)
	assert.Equal(t, "not enough energy", appErr.Message)

	hero := reloadHero(t, svc, "0xdrained", "10009")
	assert.Equal(t, 5, hero.DynamicState.EnergyCurrent)
	assert.Empty(t, hero.DynamicState.MissionHistory)
}

func TestExecuteMissionUnknownMission(t *testing.T) {
	svc, clock := newTestGameService(t)

	savePlayer(t, svc, "0xlost", testHero(clock, "10010", "Forge Legion", 0, 0, 100))

	_, err := svc.ExecuteMission(dto.ExecuteMissionRequest{
		Wallet:    "0xlost",
		HeroID:    "10010",
		MissionID: "999",
	})
	appErr, ok := shared.GetAppError(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.StatusCode)
	assert.Equal(t, "mission not found", appErr.Message)
}

func TestExecuteMissionRejectionKeepsPassiveGains(t *testing.T) {
	svc, clock := newTestGameService(t)

	savePlayer(t, svc, "0xlate", testHero(clock, "10011", "Forge Legion", 40, 2, 5))

	clock.Advance(25 * time.Hour)
	_, err := svc.ExecuteMission(dto.ExecuteMissionRequest{
		Wallet:    "0xlate",
		HeroID:    "10011",
		MissionID: "001",
	})
	require.Error(t, err)

	// The drip earned before the rejection sticks.
	hero := reloadHero(t, svc, "0xlate", "10011")
	assert.Equal(t, 45, hero.DynamicState.XPTotal)
	assert.Equal(t, 3, hero.DynamicState.AuraLevel)
}

func TestGuildAggregationMatchesRosterCaseInsensitively(t *testing.T) {
	svc, clock := newTestGameService(t)

	require.NoError(t, svc.sqlSvc.SaveGuilds([]model.Guild{
		{Name: "forge legion", Members: 3},
		{Name: "Circle of Mist", Members: 2},
	}))

	savePlayer(t, svc, "0xguild", testHero(clock, "10012", "Forge Legion", 0, 0, 100))

	run := func(missionID string) {
		_, err := svc.ExecuteMission(dto.ExecuteMissionRequest{
			Wallet:    "0xguild",
			HeroID:    "10012",
			MissionID: missionID,
		})
		require.NoError(t, err)
	}
	run("001")
	run("002")

	stats, err := svc.sqlSvc.GetStats()
	require.NoError(t, err)
	require.NotNil(t, stats.GuildRanking["Forge Legion"])
	assert.Equal(t, 85, stats.GuildRanking["Forge Legion"].XP)
	assert.Equal(t, 7, stats.GuildRanking["Forge Legion"].Aura)

	guilds, err := svc.sqlSvc.GetGuilds()
	require.NoError(t, err)
	require.Len(t, guilds, 2)
	assert.Equal(t, 85.0, guilds[0].AvgXP)
	assert.Equal(t, 7.0, guilds[0].AvgAura)
	assert.Equal(t, 0.0, guilds[1].AvgXP)
}

func TestGetStatsFlattensRanking(t *testing.T) {
	svc, clock := newTestGameService(t)

	savePlayer(t, svc, "0xstats", testHero(clock, "10013", "Forge Legion", 0, 0, 100))

	_, err := svc.ExecuteMission(dto.ExecuteMissionRequest{
		Wallet:    "0xstats",
		HeroID:    "10013",
		MissionID: "001",
	})
	require.NoError(t, err)

	resp, err := svc.GetStats()
	require.NoError(t, err)

	assert.Equal(t, shared.DefaultTotalCharacters, resp.TotalCharacters)
	assert.Equal(t, shared.DefaultActiveGuilds, resp.ActiveGuilds)
	assert.Equal(t, 1, resp.MissionsCompleted)
	require.Len(t, resp.GuildRanking, 1)
	assert.Equal(t, "Forge Legion", resp.GuildRanking[0].Name)
	assert.Equal(t, 25, resp.GuildRanking[0].XPTotal)
	assert.JSONEq(t, "[]", string(resp.PlayerLeaderboard))
}

func TestMissionCatalogInvariants(t *testing.T) {
	svc, _ := newTestGameService(t)

	missions := svc.Missions()
	require.Len(t, missions, 3)
	for _, m := range missions {
		assert.NotEmpty(t, m.ID)
		assert.Greater(t, m.EnergyCost, 0)
		assert.Greater(t, m.RewardXP, 0)
	}
}
