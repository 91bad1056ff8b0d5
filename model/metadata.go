package model

import (
	"fmt"
	"strings"
)

// Trait is one OpenSea-style attribute entry.
type Trait struct {
	TraitType string      `json:"trait_type"`
	Value     interface{} `json:"value"`
}

// FixedProfile is the structured half of a hero's static metadata record.
type FixedProfile struct {
	TokenID       string `json:"token_id,omitempty"`
	Race          string `json:"race,omitempty"`
	Class         string `json:"class,omitempty"`
	Rarity        string `json:"rarity,omitempty"`
	Age           int    `json:"age,omitempty"`
	StartingGuild string `json:"starting_guild,omitempty"`
	Str           int    `json:"str,omitempty"`
	Dex           int    `json:"dex,omitempty"`
	Con           int    `json:"con,omitempty"`
	Int           int    `json:"int,omitempty"`
	Wis           int    `json:"wis,omitempty"`
	Cha           int    `json:"cha,omitempty"`
}

// HeroMetadata is a hero's static metadata record as persisted, before
// normalization.
type HeroMetadata struct {
	Name         string        `json:"name,omitempty"`
	Description  string        `json:"description,omitempty"`
	Image        string        `json:"image,omitempty"`
	FixedProfile *FixedProfile `json:"fixed_profile,omitempty"`
	Attributes   []Trait       `json:"attributes,omitempty"`
}

// BaseMetadata is the normalized static profile used to compose marketplace
// metadata.
type BaseMetadata struct {
	TokenID       string
	Name          string
	Description   string
	Image         string
	Race          string
	Class         string
	Rarity        string
	Age           interface{}
	StartingGuild string
	Str           int
	Dex           int
	Con           int
	Int           int
	Wis           int
	Cha           int
}

// PadTokenID zero-pads a token id to the 5-digit form used by metadata
// records and player documents.
func PadTokenID(tokenID string) string {
	if len(tokenID) >= 5 {
		return tokenID
	}
	return fmt.Sprintf("%05s", tokenID)
}

// Normalize flattens a raw metadata record: fixed_profile wins, attributes
// backfill anything still unset, then defaults apply.
func (m *HeroMetadata) Normalize(tokenID string) *BaseMetadata {
	padded := PadTokenID(tokenID)

	base := &BaseMetadata{
		TokenID:       padded,
		Name:          m.Name,
		Description:   m.Description,
		Image:         m.Image,
		Race:          "Unknown",
		Class:         "Unknown",
		Rarity:        "Unknown",
		Age:           0,
		StartingGuild: "Unknown",
	}
	if base.Name == "" {
		base.Name = fmt.Sprintf("Emissary #%s", padded)
	}
	if base.Description == "" {
		base.Description = "Emissary of Emberholm."
	}

	if fixed := m.FixedProfile; fixed != nil {
		if fixed.TokenID != "" {
			base.TokenID = fixed.TokenID
		}
		if fixed.Race != "" {
			base.Race = fixed.Race
		}
		if fixed.Class != "" {
			base.Class = fixed.Class
		}
		if fixed.Rarity != "" {
			base.Rarity = fixed.Rarity
		}
		if fixed.Age != 0 {
			base.Age = fixed.Age
		}
		if fixed.StartingGuild != "" {
			base.StartingGuild = fixed.StartingGuild
		}
		base.Str = fixed.Str
		base.Dex = fixed.Dex
		base.Con = fixed.Con
		base.Int = fixed.Int
		base.Wis = fixed.Wis
		base.Cha = fixed.Cha
	}

	for _, trait := range m.Attributes {
		switch strings.ToLower(trait.TraitType) {
		case "race":
			if base.Race == "Unknown" {
				base.Race = fmt.Sprint(trait.Value)
			}
		case "class":
			if base.Class == "Unknown" {
				base.Class = fmt.Sprint(trait.Value)
			}
		case "rarity":
			if base.Rarity == "Unknown" {
				base.Rarity = fmt.Sprint(trait.Value)
			}
		case "guild":
			if base.StartingGuild == "Unknown" {
				base.StartingGuild = fmt.Sprint(trait.Value)
			}
		case "age":
			if age, ok := base.Age.(int); ok && age == 0 {
				base.Age = trait.Value
			}
		}
	}

	return base
}
