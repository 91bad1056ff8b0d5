package dto

import "github.com/emberholm-legacy/ember_api/model"

// TokenMetadataResponse is the tokenURI payload marketplaces consume.
type TokenMetadataResponse struct {
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Image       string        `json:"image"`
	Attributes  []model.Trait `json:"attributes"`
}
