package shared

import "time"

const (
	// Passive drip granted at most once per elapsed 24h window per hero.
	PassiveXPPerDay   = 5
	PassiveAuraPerDay = 1

	PassiveDripThresholdHours = 24

	// Natural energy refresh: full reset, not a partial top-up.
	EnergyFullRefreshHours = 48

	// XP cost of recovering 1 point of energy early.
	XPCostPerEnergy = 5

	// Per-hero, per-mission cooldown window.
	MissionRotationHours = 72

	DefaultEnergyMax = 100
)

const (
	DefaultTotalCharacters = 35000
	DefaultActiveGuilds    = 6
)

const MetadataCacheTTL = 30 * time.Second
