package models

// EligibilityResult scores a profile against one service's plain-English
// eligibility statements. Recomputed fresh on every query, never stored.
type EligibilityResult struct {
	Eligible            bool     `json:"eligible"`
	Confidence          float64  `json:"confidence"` // 0..1
	MetRequirements     []string `json:"metRequirements"`
	MissingRequirements []string `json:"missingRequirements"`
	NeedsMoreInfo       []string `json:"needsMoreInfo"`
	Recommendation      string   `json:"recommendation"`
}
