package credential

import "time"

// expiryWindow refreshes credentials slightly before they actually expire.
const expiryWindow = 30 * time.Second

// Credentials is a resolved set of access credentials.
type Credentials struct {
	// AccessKeyID is the access key id.
	AccessKeyID string
	// SecretAccessKey is the secret access key.
	SecretAccessKey string
	// SessionToken is the optional session token.
	SessionToken string
	// Expiry is when the credentials stop being valid. Zero means they
	// never expire.
	Expiry time.Time
}

// Expired reports whether the credentials are expired or inside the refresh
// window.
func (c *Credentials) Expired() bool {
	if c.Expiry.IsZero() {
		return false
	}
	return time.Now().After(c.Expiry.Add(-expiryWindow))
}
