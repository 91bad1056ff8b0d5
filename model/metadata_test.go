package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPadTokenID(t *testing.T) {
	assert.Equal(t, "00007", PadTokenID("7"))
	assert.Equal(t, "00042", PadTokenID("42"))
	assert.Equal(t, "12345", PadTokenID("12345"))
	assert.Equal(t, "123456", PadTokenID("123456"))
}

func TestNormalizeFixedProfileWins(t *testing.T) {
	meta := &HeroMetadata{
		Name: "Korrin",
		FixedProfile: &FixedProfile{
			Race:          "Orc",
			Class:         "Warrior",
			Rarity:        "Common",
			Age:           30,
			StartingGuild: "Forge Legion",
			Str:           18,
		},
		Attributes: []Trait{
			{TraitType: "Race", Value: "Elf"},
			{TraitType: "Rarity", Value: "Legendary"},
		},
	}

	base := meta.Normalize("5")

	assert.Equal(t, "00005", base.TokenID)
	assert.Equal(t, "Korrin", base.Name)
	assert.Equal(t, "Orc", base.Race)
	assert.Equal(t, "Common", base.Rarity)
	assert.Equal(t, 30, base.Age)
	assert.Equal(t, 18, base.Str)
}

func TestNormalizeAttributesBackfill(t *testing.T) {
	meta := &HeroMetadata{
		Attributes: []Trait{
			{TraitType: "race", Value: "Human"},
			{TraitType: "CLASS", Value: "Necromancer"},
			{TraitType: "Guild", Value: "Echoes of the Veil"},
			{TraitType: "Age", Value: 61},
		},
	}

	base := meta.Normalize("00003")

	assert.Equal(t, "Human", base.Race)
	assert.Equal(t, "Necromancer", base.Class)
	assert.Equal(t, "Echoes of the Veil", base.StartingGuild)
	assert.Equal(t, 61, base.Age)
	assert.Equal(t, "Unknown", base.Rarity)
}

func TestNormalizeDefaults(t *testing.T) {
	meta := &HeroMetadata{}

	base := meta.Normalize("9")

	assert.Equal(t, "Emissary #00009", base.Name)
	assert.Equal(t, "Emissary of Emberholm.", base.Description)
	assert.Equal(t, "Unknown", base.Race)
	assert.Equal(t, "Unknown", base.StartingGuild)
	assert.Equal(t, 0, base.Age)
}
