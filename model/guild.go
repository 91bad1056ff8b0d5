package model

// Guild is one roster entry. AvgXP and AvgAura keep their historical names
// but are running sums of attributed rewards, never divided by member or
// mission count.
type Guild struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Members     int     `json:"members"`
	AvgXP       float64 `json:"avg_xp"`
	AvgAura     float64 `json:"avg_aura"`
}
