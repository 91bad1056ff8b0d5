package seeders

import (
	"errors"
	"log"
	"time"

	"github.com/emberholm-legacy/ember_api/model"
	"github.com/emberholm-legacy/ember_api/shared"
	"gorm.io/gorm"
)

type MetadataSeeder struct {
	db *gorm.DB
}

func NewMetadataSeeder(db *gorm.DB) *MetadataSeeder {
	return &MetadataSeeder{db: db}
}

// Seed creates the demo hero metadata records. Existing records are left
// untouched so re-running never clobbers edited profiles.
func (ms *MetadataSeeder) Seed() error {
	log.Println("Seeding hero metadata records...")

	records := demoHeroRecords()

	created := 0
	for tokenID, record := range records {
		var existing model.HeroMetadataDocument
		err := ms.db.Where("token_id = ?", tokenID).First(&existing).Error
		if err == nil {
			log.Printf("Metadata for token %s already exists, skipping", tokenID)
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		blob, err := shared.MarshalDocument(record)
		if err != nil {
			return err
		}

		doc := model.HeroMetadataDocument{
			TokenID:   tokenID,
			Document:  blob,
			UpdatedAt: time.Now().UTC(),
		}
		if err := ms.db.Create(&doc).Error; err != nil {
			return err
		}

		log.Printf("Created metadata record for token %s (%s)", tokenID, record.Name)
		created++
	}

	log.Printf("Hero metadata seeding done: %d created, %d skipped", created, len(records)-created)
	return nil
}

func demoHeroRecords() map[string]model.HeroMetadata {
	return map[string]model.HeroMetadata{
		"00001": {
			Name:        "Entaal, Bearer of Acordry of the Broken Choose",
			Description: "A gith druid sworn to the Circle of Mist, keeper of the broken accord.",
			Image:       "https://assets.emberholm.io/heroes/00001.png",
			FixedProfile: &model.FixedProfile{
				TokenID:       "00001",
				Race:          "Gith",
				Class:         "Druid",
				Rarity:        "Rare",
				Age:           212,
				StartingGuild: "Circle of Mist",
				Str:           9,
				Dex:           14,
				Con:           11,
				Int:           12,
				Wis:           17,
				Cha:           10,
			},
		},
		"00002": {
			Name:        "Brax-Ironjaw",
			Description: "An orc warrior of the Forge Legion, tempered in the ember pits.",
			Image:       "https://assets.emberholm.io/heroes/00002.png",
			FixedProfile: &model.FixedProfile{
				TokenID:       "00002",
				Race:          "Orc",
				Class:         "Warrior",
				Rarity:        "Uncommon",
				Age:           34,
				StartingGuild: "Forge Legion",
				Str:           18,
				Dex:           10,
				Con:           16,
				Int:           8,
				Wis:           9,
				Cha:           11,
			},
		},
		"00003": {
			Name:        "Veshka the Hollow",
			Description: "A necromancer who treats with the Echoes of the Veil.",
			Image:       "https://assets.emberholm.io/heroes/00003.png",
			Attributes: []model.Trait{
				{TraitType: "Race", Value: "Human"},
				{TraitType: "Class", Value: "Necromancer"},
				{TraitType: "Rarity", Value: "Epic"},
				{TraitType: "Guild", Value: "Echoes of the Veil"},
				{TraitType: "Age", Value: 61},
			},
		},
	}
}
