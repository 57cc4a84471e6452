package entity

// MaxRecentActivity bounds the activity feed in the offline deployment.
const MaxRecentActivity = 5

// Snapshot contains everything the dashboard displays for one user.
// The authoritative copy lives in the backend; this struct is replaced
// wholesale on every successful fetch.
type Snapshot struct {
	CheckingBalance   float64        `json:"checking_balance"`
	SavingsBalance    float64        `json:"savings_balance"`
	InvestmentBalance float64        `json:"investment_balance"`
	RecentActivity    []ActivityItem `json:"recent_activity"`
	MonthlyBudget     float64        `json:"monthly_budget"`
	Goals             []Goal         `json:"goals"`
}

// PrependActivity adds an item at the front of the feed, keeping at
// most MaxRecentActivity entries.
func (s *Snapshot) PrependActivity(item ActivityItem) {
	s.RecentActivity = append([]ActivityItem{item}, s.RecentActivity...)
	if len(s.RecentActivity) > MaxRecentActivity {
		s.RecentActivity = s.RecentActivity[:MaxRecentActivity]
	}
}
