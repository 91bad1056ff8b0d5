package services

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/emberholm-legacy/ember_api/model"
	"github.com/emberholm-legacy/ember_api/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestMetadataService(t *testing.T) (*MetadataService, *shared.FakeClock) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "metadata_test.db")), &gorm.Config{
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

	return &MetadataService{
		sqlSvc: &SqliteService{db: db},
		clock:  clock,
	}, clock
}

func traitValue(t *testing.T, traits []model.Trait, traitType string) interface{} {
	t.Helper()
	for _, trait := range traits {
		if trait.TraitType == traitType {
			return trait.Value
		}
	}
	t.Fatalf("trait %q not found", traitType)
	return nil
}

func TestGetTokenMetadataNotFound(t *testing.T) {
	svc, _ := newTestMetadataService(t)

	_, err := svc.GetTokenMetadata("40404")
	appErr, ok := shared.GetAppError(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.StatusCode)
	assert.Equal(t, "token metadata not found", appErr.Message)
}

func TestGetTokenMetadataOwnedHero(t *testing.T) {
	svc, clock := newTestMetadataService(t)

	require.NoError(t, svc.sqlSvc.SaveHeroMetadata("20001", &model.HeroMetadata{
		Name:        "Saria Duskwind",
		Description: "A ranger of the mist groves.",
		Image:       "https://assets.emberholm.io/heroes/20001.png",
		FixedProfile: &model.FixedProfile{
			TokenID:       "20001",
			Race:          "Elf",
			Class:         "Ranger",
			Rarity:        "Rare",
			Age:           140,
			StartingGuild: "Circle of Mist",
			Str:           10,
			Dex:           16,
			Con:           11,
			Int:           12,
			Wis:           14,
			Cha:           9,
		},
	}))

	now := shared.FormatISO(clock.Now())
	require.NoError(t, svc.sqlSvc.SavePlayer(&model.Player{
		Wallet: "0xowner",
		Heroes: []model.Hero{{
			TokenID: "20001",
			Name:    "Saria Duskwind",
			Guild:   "Circle of Mist",
			DynamicState: model.DynamicState{
				XPTotal:           260,
				AuraLevel:         9,
				EnergyCurrent:     40,
				EnergyMax:         shared.DefaultEnergyMax,
				CurrentGuild:      "Hollow Pact",
				LastUpdate:        now,
				LastEnergyRefresh: now,
				PowerCurrent:      15,
				XPLevel:           3,
				LastMission:       "Circle Interference Node",
			},
		}},
	}))

	resp, err := svc.GetTokenMetadata("20001")
	require.NoError(t, err)

	assert.Equal(t, "Saria Duskwind", resp.Name)
	assert.Equal(t, "A ranger of the mist groves.", resp.Description)
	require.Len(t, resp.Attributes, 19)

	assert.Equal(t, "20001", traitValue(t, resp.Attributes, "Token ID"))
	assert.Equal(t, "Elf", traitValue(t, resp.Attributes, "Race"))
	assert.Equal(t, "Ranger", traitValue(t, resp.Attributes, "Class"))

	// The live guild wins over the starting guild.
	assert.Equal(t, "Hollow Pact", traitValue(t, resp.Attributes, "Guild"))

	assert.Equal(t, 260, traitValue(t, resp.Attributes, "XP Total"))
	assert.Equal(t, 3, traitValue(t, resp.Attributes, "Level"))
	assert.Equal(t, 9, traitValue(t, resp.Attributes, "Aura"))
	assert.Equal(t, "40 / 100", traitValue(t, resp.Attributes, "Energy"))
	assert.Equal(t, 15, traitValue(t, resp.Attributes, "Power"))
	assert.Equal(t, "Circle Interference Node", traitValue(t, resp.Attributes, "Last Mission"))
	assert.Equal(t, now, traitValue(t, resp.Attributes, "Last Update"))
}

func TestGetTokenMetadataUnownedBaseline(t *testing.T) {
	svc, _ := newTestMetadataService(t)

	require.NoError(t, svc.sqlSvc.SaveHeroMetadata("20002", &model.HeroMetadata{
		FixedProfile: &model.FixedProfile{
			Race:          "Dwarf",
			Class:         "Smith",
			StartingGuild: "Forge Legion",
		},
	}))

	resp, err := svc.GetTokenMetadata("20002")
	require.NoError(t, err)

	assert.Equal(t, "Emissary #20002", resp.Name)
	assert.Equal(t, "Emissary of Emberholm.", resp.Description)

	assert.Equal(t, "Unassigned", traitValue(t, resp.Attributes, "Guild"))
	assert.Equal(t, 0, traitValue(t, resp.Attributes, "XP Total"))
	assert.Equal(t, 1, traitValue(t, resp.Attributes, "Level"))
	assert.Equal(t, "100 / 100", traitValue(t, resp.Attributes, "Energy"))
	assert.Equal(t, "None", traitValue(t, resp.Attributes, "Last Mission"))
}

func TestGetTokenMetadataAttributesBackfill(t *testing.T) {
	svc, _ := newTestMetadataService(t)

	require.NoError(t, svc.sqlSvc.SaveHeroMetadata("20003", &model.HeroMetadata{
		Attributes: []model.Trait{
			{TraitType: "race", Value: "Human"},
			{TraitType: "CLASS", Value: "Necromancer"},
			{TraitType: "Guild", Value: "Echoes of the Veil"},
		},
	}))

	resp, err := svc.GetTokenMetadata("20003")
	require.NoError(t, err)

	assert.Equal(t, "Human", traitValue(t, resp.Attributes, "Race"))
	assert.Equal(t, "Necromancer", traitValue(t, resp.Attributes, "Class"))
	assert.Equal(t, "Rarity", resp.Attributes[3].TraitType)
	assert.Equal(t, "Unknown", resp.Attributes[3].Value)

	// The token is unowned, so the live placeholder guild wins.
	assert.Equal(t, "Unassigned", traitValue(t, resp.Attributes, "Guild"))
}

func TestGetTokenMetadataPadsShortTokenIDs(t *testing.T) {
	svc, _ := newTestMetadataService(t)

	require.NoError(t, svc.sqlSvc.SaveHeroMetadata("7", &model.HeroMetadata{
		FixedProfile: &model.FixedProfile{Race: "Gnome"},
	}))

	resp, err := svc.GetTokenMetadata("7")
	require.NoError(t, err)

	assert.Equal(t, "Emissary #00007", resp.Name)
	assert.Equal(t, "00007", traitValue(t, resp.Attributes, "Token ID"))
}
