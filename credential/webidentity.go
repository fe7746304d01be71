package credential

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// WebIdentityProvider resolves a web identity token from a file, carrying the
// token's expiry so a CachedProvider re-reads it before it lapses. The token
// is served as the session token; the exchange for signing keys happens at
// the service layer.
type WebIdentityProvider struct {
	// TokenFile is the token file location. Defaults to
	// AWS_WEB_IDENTITY_TOKEN_FILE.
	TokenFile string
	// RoleARN is the role to assume during the exchange. Defaults to
	// AWS_ROLE_ARN.
	RoleARN string
}

// Resolve reads and inspects the web identity token.
func (p *WebIdentityProvider) Resolve(_ context.Context) (*Credentials, error) {
	path := p.TokenFile
	if path == "" {
		path = os.Getenv("AWS_WEB_IDENTITY_TOKEN_FILE")
	}
	if path == "" {
		return nil, NewError("no web identity token file configured")
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, WrapError("read web identity token "+path, err)
	}
	token := strings.TrimSpace(string(raw))
	if token == "" {
		return nil, NewError("web identity token file " + path + " is empty")
	}

	expiry, err := tokenExpiry(token)
	if err != nil {
		return nil, WrapError("inspect web identity token", err)
	}

	return &Credentials{
		SessionToken: token,
		Expiry:       expiry,
	}, nil
}

// tokenExpiry reads the exp claim without verifying the signature; the
// issuer verifies it during the exchange.
func tokenExpiry(token string) (time.Time, error) {
	claims := &jwt.RegisteredClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return time.Time{}, err
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, nil
	}
	return claims.ExpiresAt.Time, nil
}
