package entity

// UserProfile is the minimal profile returned by the user endpoint.
type UserProfile struct {
	Username string `json:"username"`
}
