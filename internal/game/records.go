package game

import "gorm.io/gorm"

// BattleReport is the persisted summary of one simulated battle. The full
// transcript is stored as a JSON blob and omitted from list responses.
type BattleReport struct {
	gorm.Model
	PlayerLead   string `json:"player_lead"`
	OpponentLead string `json:"opponent_lead"`
	Outcome      string `json:"outcome"`
	Turns        int    `json:"turns"`
	Transcript   []byte `json:"-" gorm:"column:transcript;type:blob"`
}

// TableName keeps the persisted table named battle_reports.
func (BattleReport) TableName() string { return "battle_reports" }

// LookupCache stores raw species/move database responses keyed by lookup
// kind ("species", "move") and the canonical resource slug, so repeated
// simulations don't hit the external API for the same names.
type LookupCache struct {
	gorm.Model
	Kind     string `json:"kind" gorm:"uniqueIndex:idx_lookup_cache_kind_key"`
	Key      string `json:"key" gorm:"uniqueIndex:idx_lookup_cache_kind_key"`
	Response []byte `json:"-" gorm:"column:response;type:blob"`
}

// TableName keeps the persisted table named lookup_cache.
func (LookupCache) TableName() string { return "lookup_cache" }
