package seeders

import (
	"log"

	"github.com/emberholm-legacy/ember_api/model"
	"gorm.io/gorm"
)

type MainSeeder struct {
	db *gorm.DB
}

func NewMainSeeder(db *gorm.DB) *MainSeeder {
	return &MainSeeder{db: db}
}

// SeedAll runs every seeder in dependency order.
func (ms *MainSeeder) SeedAll() error {
	log.Println("Starting database seeding...")

	if err := ms.migrate(); err != nil {
		return err
	}

	guildSeeder := NewGuildSeeder(ms.db)
	if err := guildSeeder.Seed(); err != nil {
		return err
	}

	metadataSeeder := NewMetadataSeeder(ms.db)
	if err := metadataSeeder.Seed(); err != nil {
		return err
	}

	log.Println("Database seeding completed successfully!")
	return nil
}

func (ms *MainSeeder) SeedGuildsOnly() error {
	if err := ms.migrate(); err != nil {
		return err
	}
	return NewGuildSeeder(ms.db).Seed()
}

func (ms *MainSeeder) SeedMetadataOnly() error {
	if err := ms.migrate(); err != nil {
		return err
	}
	return NewMetadataSeeder(ms.db).Seed()
}

func (ms *MainSeeder) migrate() error {
	return ms.db.AutoMigrate(
		&model.PlayerDocument{},
		&model.StatsDocument{},
		&model.GuildDocument{},
		&model.HeroMetadataDocument{},
		&model.MissionLog{},
	)
}
