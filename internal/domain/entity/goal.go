package entity

// Goal is a savings goal owned by the logged-in user. The ID is
// server-assigned; in the offline deployment goals are addressed by
// their position in the snapshot instead.
type Goal struct {
	ID      int     `json:"id"`
	Name    string  `json:"name"`
	Current float64 `json:"current"`
	Target  float64 `json:"target"`
}

// GoalInput is the body for creating or editing a goal.
type GoalInput struct {
	Name    string  `json:"name"`
	Target  float64 `json:"target"`
	Current float64 `json:"current"`
}

// Progress returns the completion ratio clamped to [0, 1].
func (g Goal) Progress() float64 {
	if g.Target <= 0 {
		return 0
	}
	ratio := g.Current / g.Target
	if ratio > 1 {
		return 1
	}
	if ratio < 0 {
		return 0
	}
	return ratio
}
