package credential

import (
	"context"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// ProfileProvider resolves credentials from the shared credentials file
// (~/.aws/credentials by default), an ini file with one section per profile.
type ProfileProvider struct {
	// Path is the credentials file location. Defaults to
	// AWS_SHARED_CREDENTIALS_FILE, then ~/.aws/credentials.
	Path string
	// Profile is the section to read. Defaults to AWS_PROFILE, then
	// "default".
	Profile string
}

// Resolve reads the profile section from the credentials file.
func (p *ProfileProvider) Resolve(_ context.Context) (*Credentials, error) {
	path := p.Path
	if path == "" {
		path = os.Getenv("AWS_SHARED_CREDENTIALS_FILE")
	}
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, WrapError("locate home directory", err)
		}
		path = filepath.Join(home, ".aws", "credentials")
	}

	profile := p.Profile
	if profile == "" {
		profile = os.Getenv("AWS_PROFILE")
	}
	if profile == "" {
		profile = "default"
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("ini")
	if err := v.ReadInConfig(); err != nil {
		return nil, WrapError("read credentials file "+path, err)
	}

	accessKey := v.GetString(profile + ".aws_access_key_id")
	secretKey := v.GetString(profile + ".aws_secret_access_key")
	if accessKey == "" || secretKey == "" {
		return nil, NewError("profile " + profile + " not found or incomplete in " + path)
	}

	return &Credentials{
		AccessKeyID:     accessKey,
		SecretAccessKey: secretKey,
		SessionToken:    v.GetString(profile + ".aws_session_token"),
	}, nil
}
