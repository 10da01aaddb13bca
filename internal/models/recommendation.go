package models

// Recommendation is one ranked suggestion shown on the dashboard.
type Recommendation struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Priority    int    `json:"priority"` // 1 (highest) to 5
	Reason      string `json:"reason,omitempty"`
}
