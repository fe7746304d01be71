package credential

import (
	"context"
	"os"

	"github.com/joho/godotenv"
)

// EnvProvider resolves credentials from environment variables:
// AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY, and optionally AWS_SESSION_TOKEN.
type EnvProvider struct {
	// DotenvFile, if set, is loaded into the environment before reading
	// the variables. Variables already present in the environment win.
	DotenvFile string
}

// Resolve reads credentials from the environment.
func (p *EnvProvider) Resolve(_ context.Context) (*Credentials, error) {
	if p.DotenvFile != "" {
		if err := godotenv.Load(p.DotenvFile); err != nil {
			return nil, WrapError("load env file "+p.DotenvFile, err)
		}
	}

	accessKey := os.Getenv("AWS_ACCESS_KEY_ID")
	if accessKey == "" {
		return nil, NewError("AWS_ACCESS_KEY_ID not set in environment")
	}
	secretKey := os.Getenv("AWS_SECRET_ACCESS_KEY")
	if secretKey == "" {
		return nil, NewError("AWS_SECRET_ACCESS_KEY not set in environment")
	}

	return &Credentials{
		AccessKeyID:     accessKey,
		SecretAccessKey: secretKey,
		SessionToken:    os.Getenv("AWS_SESSION_TOKEN"),
	}, nil
}
