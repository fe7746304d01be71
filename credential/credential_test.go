package credential

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestStaticProvider(t *testing.T) {
	p := NewStaticProvider("AKID", "SECRET", "TOKEN")
	creds, err := p.Resolve(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if creds.AccessKeyID != "AKID" || creds.SecretAccessKey != "SECRET" || creds.SessionToken != "TOKEN" {
		t.Errorf("unexpected credentials: %+v", creds)
	}
	if creds.Expired() {
		t.Error("static credentials never expire")
	}
}

func TestStaticProvider_Incomplete(t *testing.T) {
	p := NewStaticProvider("AKID", "", "")
	if _, err := p.Resolve(context.Background()); err == nil {
		t.Error("expected error for missing secret key")
	}
}

func TestEnvProvider(t *testing.T) {
	t.Setenv("AWS_ACCESS_KEY_ID", "env-akid")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "env-secret")
	t.Setenv("AWS_SESSION_TOKEN", "env-token")

	creds, err := (&EnvProvider{}).Resolve(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if creds.AccessKeyID != "env-akid" || creds.SessionToken != "env-token" {
		t.Errorf("unexpected credentials: %+v", creds)
	}
}

func TestEnvProvider_Missing(t *testing.T) {
	t.Setenv("AWS_ACCESS_KEY_ID", "")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "")

	_, err := (&EnvProvider{}).Resolve(context.Background())
	if err == nil {
		t.Fatal("expected error with empty environment")
	}
	if !IsCredentialError(err) {
		t.Errorf("expected *Error, got %T", err)
	}
}

func TestEnvProvider_Dotenv(t *testing.T) {
	t.Setenv("AWS_ACCESS_KEY_ID", "")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "")
	// t.Setenv with empty still leaves the vars set; unset them so the
	// dotenv values are picked up.
	os.Unsetenv("AWS_ACCESS_KEY_ID")
	os.Unsetenv("AWS_SECRET_ACCESS_KEY")

	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	content := "AWS_ACCESS_KEY_ID=dotenv-akid\nAWS_SECRET_ACCESS_KEY=dotenv-secret\n"
	if err := os.WriteFile(envFile, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	creds, err := (&EnvProvider{DotenvFile: envFile}).Resolve(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if creds.AccessKeyID != "dotenv-akid" {
		t.Errorf("expected dotenv value, got %q", creds.AccessKeyID)
	}
}

func TestProfileProvider(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "credentials")
	content := `[default]
aws_access_key_id = default-akid
aws_secret_access_key = default-secret

[staging]
aws_access_key_id = staging-akid
aws_secret_access_key = staging-secret
aws_session_token = staging-token
`
	if err := os.WriteFile(file, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	creds, err := (&ProfileProvider{Path: file}).Resolve(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if creds.AccessKeyID != "default-akid" {
		t.Errorf("expected default profile, got %q", creds.AccessKeyID)
	}

	creds, err = (&ProfileProvider{Path: file, Profile: "staging"}).Resolve(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if creds.AccessKeyID != "staging-akid" || creds.SessionToken != "staging-token" {
		t.Errorf("unexpected staging credentials: %+v", creds)
	}
}

func TestProfileProvider_MissingProfile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "credentials")
	if err := os.WriteFile(file, []byte("[default]\naws_access_key_id = a\naws_secret_access_key = b\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := (&ProfileProvider{Path: file, Profile: "nope"}).Resolve(context.Background())
	if err == nil {
		t.Fatal("expected error for unknown profile")
	}
	if !strings.Contains(err.Error(), "nope") {
		t.Errorf("error should name the profile, got %q", err.Error())
	}
}

func TestProfileProvider_MissingFile(t *testing.T) {
	_, err := (&ProfileProvider{Path: "/does/not/exist"}).Resolve(context.Background())
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !IsCredentialError(err) {
		t.Errorf("expected *Error, got %T", err)
	}
}

func TestChainProvider_FirstSuccessWins(t *testing.T) {
	chain := NewChainProvider(
		&StaticProvider{}, // incomplete, fails
		NewStaticProvider("chain-akid", "chain-secret", ""),
		NewStaticProvider("unreached", "unreached", ""),
	)
	creds, err := chain.Resolve(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if creds.AccessKeyID != "chain-akid" {
		t.Errorf("expected second provider to win, got %q", creds.AccessKeyID)
	}
}

func TestChainProvider_AggregatesFailures(t *testing.T) {
	t.Setenv("AWS_ACCESS_KEY_ID", "")
	os.Unsetenv("AWS_ACCESS_KEY_ID")

	chain := NewChainProvider(
		&StaticProvider{},
		&EnvProvider{},
	)
	_, err := chain.Resolve(context.Background())
	if err == nil {
		t.Fatal("expected chain failure")
	}
	msg := err.Error()
	if !strings.Contains(msg, "static credentials") || !strings.Contains(msg, "AWS_ACCESS_KEY_ID") {
		t.Errorf("aggregate should carry every provider's message, got %q", msg)
	}
}

func TestChainProvider_Empty(t *testing.T) {
	if _, err := NewChainProvider().Resolve(context.Background()); err == nil {
		t.Error("expected error for empty chain")
	}
}

// countingProvider serves fresh credentials and counts resolutions.
type countingProvider struct {
	calls  int
	expiry time.Time
}

func (p *countingProvider) Resolve(context.Context) (*Credentials, error) {
	p.calls++
	return &Credentials{AccessKeyID: "a", SecretAccessKey: "b", Expiry: p.expiry}, nil
}

func TestCachedProvider_ServesUntilExpiry(t *testing.T) {
	inner := &countingProvider{expiry: time.Now().Add(time.Hour)}
	cached := NewCachedProvider(inner)

	for i := 0; i < 3; i++ {
		if _, err := cached.Resolve(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if inner.calls != 1 {
		t.Errorf("expected a single resolution, got %d", inner.calls)
	}
}

func TestCachedProvider_RefreshesExpired(t *testing.T) {
	inner := &countingProvider{expiry: time.Now().Add(-time.Minute)}
	cached := NewCachedProvider(inner)

	_, _ = cached.Resolve(context.Background())
	_, _ = cached.Resolve(context.Background())
	if inner.calls != 2 {
		t.Errorf("expired credentials should be re-resolved, got %d calls", inner.calls)
	}
}

func TestWebIdentityProvider(t *testing.T) {
	expiry := time.Now().Add(time.Hour).Truncate(time.Second)
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "tester",
		ExpiresAt: jwt.NewNumericDate(expiry),
	}).SignedString([]byte("test-key"))
	if err != nil {
		t.Fatal(err)
	}

	dir := t.TempDir()
	file := filepath.Join(dir, "token")
	if err := os.WriteFile(file, []byte(token+"\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	creds, err := (&WebIdentityProvider{TokenFile: file}).Resolve(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if creds.SessionToken != token {
		t.Error("token should be carried as the session token")
	}
	if !creds.Expiry.Equal(expiry) {
		t.Errorf("expected expiry %v from the exp claim, got %v", expiry, creds.Expiry)
	}
}

func TestWebIdentityProvider_EmptyFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "token")
	if err := os.WriteFile(file, []byte("  \n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := (&WebIdentityProvider{TokenFile: file}).Resolve(context.Background()); err == nil {
		t.Error("expected error for empty token file")
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := os.ErrNotExist
	err := WrapError("read file", cause)
	if err.Error() != "read file" {
		t.Errorf("unexpected message %q", err.Error())
	}
	if err.Unwrap() != cause {
		t.Error("expected cause to be reachable")
	}
}
