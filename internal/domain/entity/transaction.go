package entity

const (
	AccountChecking    = "checking"
	AccountSavings     = "savings"
	AccountInvestments = "investments"
)

// TransactionRequest is the body sent to the transaction endpoint.
// GoalID is only present when the user tied a savings deposit to a goal.
type TransactionRequest struct {
	Type    string  `json:"type"`
	Account string  `json:"account"`
	Amount  float64 `json:"amount"`
	Note    string  `json:"note,omitempty"`
	GoalID  *int    `json:"goal_id,omitempty"`
}

// ValidAccount reports whether the account name is one the backend knows.
func ValidAccount(account string) bool {
	switch account {
	case AccountChecking, AccountSavings, AccountInvestments:
		return true
	}
	return false
}
