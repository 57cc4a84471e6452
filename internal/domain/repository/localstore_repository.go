package repository

// LocalStoreRepository is the flat key-value store that replaces the
// browser's localStorage. It is injected into every component that needs
// persistence so tests can substitute an in-memory implementation.
type LocalStoreRepository interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Remove(key string) error
}

// Keys persisted in the local store.
const (
	KeyAccessToken  = "accessToken"
	KeyRefreshToken = "refreshToken"
	KeyTheme        = "theme"

	// Offline deployment only.
	KeyCheckingBalance   = "checkingBalance"
	KeySavingsBalance    = "savingsBalance"
	KeyInvestmentBalance = "investmentBalance"
	KeyRecentActivity    = "recentActivity"
	KeyMonthlyBudget     = "monthlyBudget"
	KeyGoals             = "goals"
)
