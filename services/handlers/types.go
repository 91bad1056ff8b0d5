package handlers

import (
	"github.com/emberholm-legacy/ember_api/dto"
	"github.com/emberholm-legacy/ember_api/model"
)

type GameServiceInterface interface {
	Missions() []model.Mission
	GetGuilds() ([]model.Guild, error)
	GetStats() (*dto.StatsResponse, error)
	GetPlayer(wallet string) (*model.Player, error)
	SpendXPForEnergy(req dto.SpendXPRequest) (*dto.SpendXPResponse, error)
	ExecuteMission(req dto.ExecuteMissionRequest) (*dto.ExecuteMissionResponse, error)
}

type MetadataServiceInterface interface {
	GetTokenMetadata(tokenID string) (*dto.TokenMetadataResponse, error)
}
