package seeders

import (
	"errors"
	"log"
	"time"

	"github.com/emberholm-legacy/ember_api/model"
	"github.com/emberholm-legacy/ember_api/shared"
	"gorm.io/gorm"
)

type GuildSeeder struct {
	db *gorm.DB
}

func NewGuildSeeder(db *gorm.DB) *GuildSeeder {
	return &GuildSeeder{db: db}
}

// Seed writes the guild roster document if no roster exists yet. An
// existing roster is never overwritten so live aggregation totals survive
// re-running the seeder.
func (gs *GuildSeeder) Seed() error {
	log.Println("Seeding guild roster...")

	var existing model.GuildDocument
	err := gs.db.Where("id = ?", 1).First(&existing).Error
	if err == nil {
		log.Println("Guild roster already exists, skipping")
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	guilds := []model.Guild{
		{
			Name:        "Forge Legion",
			Description: "Smith-warriors who temper steel and spirit in the ember pits.",
			Members:     1,
		},
		{
			Name:        "Circle of Mist",
			Description: "Wardens of the veiled groves and keepers of old druidic rites.",
			Members:     1,
		},
		{
			Name:        "Echoes of the Veil",
			Description: "Necromancers who listen at the thin places between worlds.",
			Members:     1,
		},
		{
			Name:        "Ashen Covenant",
			Description: "Pilgrims sworn to the cinder shrines of fallen Emberholm.",
			Members:     1,
		},
		{
			Name:        "Wardens of the Ember",
			Description: "The last standing watch over the city's burning heart.",
			Members:     1,
		},
		{
			Name:        "Hollow Pact",
			Description: "Oathbound scavengers trading in relics and whispered debts.",
			Members:     1,
		},
	}

	blob, err := shared.MarshalDocument(guilds)
	if err != nil {
		return err
	}

	doc := model.GuildDocument{
		ID:        1,
		Document:  blob,
		UpdatedAt: time.Now().UTC(),
	}
	if err := gs.db.Create(&doc).Error; err != nil {
		return err
	}

	log.Printf("Created guild roster with %d guilds", len(guilds))
	return nil
}
