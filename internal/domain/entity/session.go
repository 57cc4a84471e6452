package entity

// Session holds the bearer tokens issued by the FinTeach backend.
// Both tokens are opaque strings; the client never inspects them.
type Session struct {
	AccessToken  string `json:"access"`
	RefreshToken string `json:"refresh"`
}
