// services/store.go
package services

import (
	"errors"
	"time"

	"github.com/emberholm-legacy/ember_api/model"
	"github.com/emberholm-legacy/ember_api/shared"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Document accessors. Every collection is stored read-whole/write-whole as
// a pretty-printed JSON blob; a missing or malformed document loads as its
// default so the system self-heals on first use.

const statsDocumentID = 1
const guildDocumentID = 1

func (ds *SqliteService) GetPlayer(wallet string) (*model.Player, bool, error) {
	var row model.PlayerDocument
	err := ds.db.First(&row, "wallet = ?", wallet).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, ds.HandleError(err)
	}

	var player model.Player
	if err := shared.UnmarshalDocument(row.Document, &player); err != nil {
		log.WithField("wallet", wallet).Warnf("Malformed player document, treating as absent: %v", err)
		return nil, false, nil
	}
	return &player, true, nil
}

func (ds *SqliteService) SavePlayer(player *model.Player) error {
	doc, err := shared.MarshalDocument(player)
	if err != nil {
		return err
	}

	row := model.PlayerDocument{
		Wallet:    player.Wallet,
		Document:  doc,
		UpdatedAt: time.Now(),
	}
	return ds.HandleError(ds.db.Save(&row).Error)
}

// AllPlayers loads every player document; used by the metadata composer to
// locate a token's owner.
func (ds *SqliteService) AllPlayers() ([]model.Player, error) {
	var rows []model.PlayerDocument
	if err := ds.db.Find(&rows).Error; err != nil {
		return nil, ds.HandleError(err)
	}

	players := make([]model.Player, 0, len(rows))
	for _, row := range rows {
		var player model.Player
		if err := shared.UnmarshalDocument(row.Document, &player); err != nil {
			log.WithField("wallet", row.Wallet).Warnf("Skipping malformed player document: %v", err)
			continue
		}
		players = append(players, player)
	}
	return players, nil
}

func (ds *SqliteService) GetStats() (*model.GlobalStats, error) {
	var row model.StatsDocument
	err := ds.db.First(&row, "id = ?", statsDocumentID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.DefaultGlobalStats(), nil
	}
	if err != nil {
		return nil, ds.HandleError(err)
	}

	stats := model.DefaultGlobalStats()
	if err := shared.UnmarshalDocument(row.Document, stats); err != nil {
		log.Warnf("Malformed stats document, using defaults: %v", err)
		return model.DefaultGlobalStats(), nil
	}
	if stats.GuildRanking == nil {
		stats.GuildRanking = map[string]*model.GuildRank{}
	}
	return stats, nil
}

func (ds *SqliteService) SaveStats(stats *model.GlobalStats) error {
	doc, err := shared.MarshalDocument(stats)
	if err != nil {
		return err
	}

	row := model.StatsDocument{
		ID:        statsDocumentID,
		Document:  doc,
		UpdatedAt: time.Now(),
	}
	return ds.HandleError(ds.db.Save(&row).Error)
}

func (ds *SqliteService) GetGuilds() ([]model.Guild, error) {
	var row model.GuildDocument
	err := ds.db.First(&row, "id = ?", guildDocumentID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return []model.Guild{}, nil
	}
	if err != nil {
		return nil, ds.HandleError(err)
	}

	var guilds []model.Guild
	if err := shared.UnmarshalDocument(row.Document, &guilds); err != nil {
		log.Warnf("Malformed guild document, treating as empty: %v", err)
		return []model.Guild{}, nil
	}
	return guilds, nil
}

func (ds *SqliteService) SaveGuilds(guilds []model.Guild) error {
	doc, err := shared.MarshalDocument(guilds)
	if err != nil {
		return err
	}

	row := model.GuildDocument{
		ID:        guildDocumentID,
		Document:  doc,
		UpdatedAt: time.Now(),
	}
	return ds.HandleError(ds.db.Save(&row).Error)
}

func (ds *SqliteService) GetHeroMetadata(tokenID string) (*model.HeroMetadata, bool, error) {
	var row model.HeroMetadataDocument
	err := ds.db.First(&row, "token_id = ?", model.PadTokenID(tokenID)).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, ds.HandleError(err)
	}

	var meta model.HeroMetadata
	if err := shared.UnmarshalDocument(row.Document, &meta); err != nil {
		log.WithField("token_id", tokenID).Warnf("Malformed metadata document, treating as absent: %v", err)
		return nil, false, nil
	}
	return &meta, true, nil
}

func (ds *SqliteService) SaveHeroMetadata(tokenID string, meta *model.HeroMetadata) error {
	doc, err := shared.MarshalDocument(meta)
	if err != nil {
		return err
	}

	row := model.HeroMetadataDocument{
		TokenID:   model.PadTokenID(tokenID),
		Document:  doc,
		UpdatedAt: time.Now(),
	}
	return ds.HandleError(ds.db.Save(&row).Error)
}

func (ds *SqliteService) CreateMissionLog(entry *model.MissionLog) error {
	return ds.HandleError(ds.db.Create(entry).Error)
}
