package auth

// TokenRequest exchanges a known identity key for a short-lived API token.
type TokenRequest struct {
	IdentityKey string `json:"identity_key"`
}
