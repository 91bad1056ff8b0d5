package model

import (
	"encoding/json"
	"time"
)

// Document rows: one JSON blob per logical document, read and written
// whole. The blob layout is what external tooling sees, so the columns
// stay schema-free.

type PlayerDocument struct {
	Wallet    string          `json:"wallet" gorm:"primaryKey"`
	Document  json.RawMessage `json:"document" gorm:"not null"`
	UpdatedAt time.Time       `json:"updated_at" gorm:"not null"`
}

// StatsDocument holds the GlobalStats singleton; exactly one row exists.
type StatsDocument struct {
	ID        uint            `json:"id" gorm:"primaryKey"`
	Document  json.RawMessage `json:"document" gorm:"not null"`
	UpdatedAt time.Time       `json:"updated_at" gorm:"not null"`
}

// GuildDocument holds the full guild roster list; exactly one row exists.
type GuildDocument struct {
	ID        uint            `json:"id" gorm:"primaryKey"`
	Document  json.RawMessage `json:"document" gorm:"not null"`
	UpdatedAt time.Time       `json:"updated_at" gorm:"not null"`
}

// HeroMetadataDocument is one static metadata record per token id.
type HeroMetadataDocument struct {
	TokenID   string          `json:"token_id" gorm:"primaryKey"`
	Document  json.RawMessage `json:"document" gorm:"not null"`
	UpdatedAt time.Time       `json:"updated_at" gorm:"not null"`
}

// MissionLog is an audit row written for every successful mission run.
type MissionLog struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	Wallet      string    `json:"wallet" gorm:"not null;index"`
	TokenID     string    `json:"token_id" gorm:"not null;index"`
	MissionID   string    `json:"mission_id" gorm:"not null"`
	MissionName string    `json:"mission_name" gorm:"not null"`
	EnergySpent int       `json:"energy_spent" gorm:"not null"`
	XPGained    int       `json:"xp_gained" gorm:"not null"`
	AuraGained  int       `json:"aura_gained" gorm:"not null"`
	CreatedAt   time.Time `json:"created_at" gorm:"not null"`
}
