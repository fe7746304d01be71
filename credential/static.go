package credential

import "context"

// StaticProvider serves a fixed set of credentials.
type StaticProvider struct {
	// Credentials is the fixed value served on every resolution.
	Credentials Credentials
}

// NewStaticProvider creates a provider serving the given keys.
func NewStaticProvider(accessKeyID, secretAccessKey, sessionToken string) *StaticProvider {
	return &StaticProvider{Credentials: Credentials{
		AccessKeyID:     accessKeyID,
		SecretAccessKey: secretAccessKey,
		SessionToken:    sessionToken,
	}}
}

// Resolve returns the fixed credentials.
func (p *StaticProvider) Resolve(_ context.Context) (*Credentials, error) {
	if p.Credentials.AccessKeyID == "" || p.Credentials.SecretAccessKey == "" {
		return nil, NewError("static credentials are incomplete")
	}
	creds := p.Credentials
	return &creds, nil
}
