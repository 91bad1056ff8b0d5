// services/metadata.go
package services

import (
	"context"
	"fmt"

	appContext "github.com/alphabatem/common/context"
	"github.com/emberholm-legacy/ember_api/dto"
	"github.com/emberholm-legacy/ember_api/model"
	"github.com/emberholm-legacy/ember_api/shared"
	log "github.com/sirupsen/logrus"
)

// MetadataService composes the marketplace-facing tokenURI payload: the
// static metadata record merged with the hero's live progression state.
type MetadataService struct {
	appContext.DefaultService

	sqlSvc   *SqliteService
	redisSvc *RedisService
	clock    shared.Clock
}

const METADATA_SVC = "metadata_svc"

func (svc MetadataService) Id() string {
	return METADATA_SVC
}

func (svc *MetadataService) Configure(ctx *appContext.Context) error {
	if svc.clock == nil {
		svc.clock = shared.RealClock{}
	}
	return svc.DefaultService.Configure(ctx)
}

func (svc *MetadataService) Start() error {
	svc.sqlSvc = svc.Service(SQLITE_SVC).(*SqliteService)
	svc.redisSvc, _ = svc.Service(REDIS_SVC).(*RedisService)
	return nil
}

func (svc *MetadataService) SetClock(clock shared.Clock) {
	svc.clock = clock
}

// dynamicSnapshot is the live half of the metadata merge.
type dynamicSnapshot struct {
	CurrentGuild  string
	XPTotal       int
	XPLevel       int
	AuraLevel     int
	EnergyCurrent int
	EnergyMax     int
	PowerCurrent  int
	LastUpdate    string
	LastMission   string
}

// GetTokenMetadata returns the merged metadata object for a token id, or
// NotFound when no static record exists.
func (svc *MetadataService) GetTokenMetadata(tokenID string) (*dto.TokenMetadataResponse, error) {
	cacheKey := "metadata:" + model.PadTokenID(tokenID)
	if cached := svc.cacheGet(cacheKey); cached != nil {
		return cached, nil
	}

	meta, found, err := svc.sqlSvc.GetHeroMetadata(tokenID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, shared.NewNotFoundError(nil, "token metadata not found")
	}

	base := meta.Normalize(tokenID)

	dyn, err := svc.findDynamicState(tokenID)
	if err != nil {
		return nil, err
	}

	currentGuild := dyn.CurrentGuild
	if currentGuild == "" {
		currentGuild = base.StartingGuild
	}
	energyStr := fmt.Sprintf("%d / %d", dyn.EnergyCurrent, dyn.EnergyMax)

	resp := &dto.TokenMetadataResponse{
		Name:        base.Name,
		Description: base.Description,
		Image:       base.Image,
		Attributes: []model.Trait{
			{TraitType: "Token ID", Value: base.TokenID},
			{TraitType: "Race", Value: base.Race},
			{TraitType: "Class", Value: base.Class},
			{TraitType: "Rarity", Value: base.Rarity},
			{TraitType: "Guild", Value: currentGuild},
			{TraitType: "Age", Value: base.Age},
			{TraitType: "STR", Value: base.Str},
			{TraitType: "DEX", Value: base.Dex},
			{TraitType: "CON", Value: base.Con},
			{TraitType: "INT", Value: base.Int},
			{TraitType: "WIS", Value: base.Wis},
			{TraitType: "CHA", Value: base.Cha},
			{TraitType: "XP Total", Value: dyn.XPTotal},
			{TraitType: "Level", Value: dyn.XPLevel},
			{TraitType: "Aura", Value: dyn.AuraLevel},
			{TraitType: "Energy", Value: energyStr},
			{TraitType: "Power", Value: dyn.PowerCurrent},
			{TraitType: "Last Mission", Value: dyn.LastMission},
			{TraitType: "Last Update", Value: dyn.LastUpdate},
		},
	}

	svc.cacheSet(cacheKey, resp)
	return resp, nil
}

// findDynamicState scans player documents for the hero owning the token.
// An unowned token reports a fresh-hero baseline.
func (svc *MetadataService) findDynamicState(tokenID string) (*dynamicSnapshot, error) {
	padded := model.PadTokenID(tokenID)

	players, err := svc.sqlSvc.AllPlayers()
	if err != nil {
		return nil, err
	}

	for i := range players {
		hero := players[i].FindHero(padded)
		if hero == nil {
			continue
		}

		ds := hero.DynamicState
		snapshot := &dynamicSnapshot{
			CurrentGuild:  ds.CurrentGuild,
			XPTotal:       ds.XPTotal,
			XPLevel:       ds.XPLevel,
			AuraLevel:     ds.AuraLevel,
			EnergyCurrent: ds.EnergyCurrent,
			EnergyMax:     ds.EnergyMax,
			PowerCurrent:  ds.PowerCurrent,
			LastUpdate:    ds.LastUpdate,
			LastMission:   ds.LastMission,
		}
		if snapshot.CurrentGuild == "" {
			snapshot.CurrentGuild = hero.Guild
		}
		if snapshot.CurrentGuild == "" {
			snapshot.CurrentGuild = "Unknown"
		}
		if snapshot.XPLevel == 0 {
			snapshot.XPLevel = 1
		}
		if snapshot.EnergyMax == 0 {
			snapshot.EnergyMax = shared.DefaultEnergyMax
		}
		if snapshot.LastMission == "" {
			snapshot.LastMission = "None"
		}
		if snapshot.LastUpdate == "" {
			snapshot.LastUpdate = shared.FormatISO(svc.clock.Now())
		}
		return snapshot, nil
	}

	return &dynamicSnapshot{
		CurrentGuild:  "Unassigned",
		XPTotal:       0,
		XPLevel:       1,
		AuraLevel:     0,
		EnergyCurrent: shared.DefaultEnergyMax,
		EnergyMax:     shared.DefaultEnergyMax,
		PowerCurrent:  0,
		LastUpdate:    shared.FormatISO(svc.clock.Now()),
		LastMission:   "None",
	}, nil
}

func (svc *MetadataService) cacheGet(key string) *dto.TokenMetadataResponse {
	if svc.redisSvc == nil {
		return nil
	}

	raw, err := svc.redisSvc.Get(context.Background(), key)
	if err != nil || raw == "" {
		return nil
	}

	var resp dto.TokenMetadataResponse
	if err := shared.UnmarshalDocument([]byte(raw), &resp); err != nil {
		log.Printf("Failed to decode cached metadata %s: %v", key, err)
		return nil
	}
	return &resp
}

func (svc *MetadataService) cacheSet(key string, resp *dto.TokenMetadataResponse) {
	if svc.redisSvc == nil {
		return
	}

	if err := svc.redisSvc.Set(context.Background(), key, resp, shared.MetadataCacheTTL); err != nil {
		log.Printf("Failed to cache metadata %s: %v", key, err)
	}
}
