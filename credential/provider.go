package credential

import (
	"context"
	"strings"
	"sync"

	"github.com/hhatto/rusoto/logger"
)

// Provider resolves credentials. Implementations return a *Error on failure.
type Provider interface {
	Resolve(ctx context.Context) (*Credentials, error)
}

// ChainProvider tries each provider in order and returns the first success.
type ChainProvider struct {
	providers []Provider
	log       *logger.Logger
}

// NewChainProvider creates a chain over the given providers.
func NewChainProvider(providers ...Provider) *ChainProvider {
	return &ChainProvider{providers: providers, log: logger.Nop()}
}

// WithLogger attaches a logger reporting which provider served the chain.
func (p *ChainProvider) WithLogger(log *logger.Logger) *ChainProvider {
	p.log = log.WithComponent("credential")
	return p
}

// Resolve tries each provider in order. If all fail, the returned error
// aggregates every provider's message.
func (p *ChainProvider) Resolve(ctx context.Context) (*Credentials, error) {
	if len(p.providers) == 0 {
		return nil, NewError("no credential providers in chain")
	}

	var messages []string
	for _, provider := range p.providers {
		creds, err := provider.Resolve(ctx)
		if err == nil {
			p.log.Debug("credentials resolved", logger.Fields(
				logger.FieldProvider, providerName(provider),
			))
			return creds, nil
		}
		messages = append(messages, err.Error())
	}
	return nil, NewError("no provider yielded credentials: " + strings.Join(messages, "; "))
}

// CachedProvider memoizes a provider's credentials until they expire.
// Safe for concurrent use.
type CachedProvider struct {
	provider Provider

	mu    sync.Mutex
	creds *Credentials
}

// NewCachedProvider wraps a provider with expiry-aware caching.
func NewCachedProvider(provider Provider) *CachedProvider {
	return &CachedProvider{provider: provider}
}

// Resolve returns cached credentials while they remain valid, refreshing
// from the wrapped provider otherwise.
func (p *CachedProvider) Resolve(ctx context.Context) (*Credentials, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.creds != nil && !p.creds.Expired() {
		return p.creds, nil
	}

	creds, err := p.provider.Resolve(ctx)
	if err != nil {
		return nil, err
	}
	p.creds = creds
	return creds, nil
}

func providerName(p Provider) string {
	switch p.(type) {
	case *StaticProvider:
		return "static"
	case *EnvProvider:
		return "env"
	case *ProfileProvider:
		return "profile"
	case *WebIdentityProvider:
		return "web_identity"
	case *CachedProvider:
		return "cached"
	case *ChainProvider:
		return "chain"
	default:
		return "custom"
	}
}

// DefaultChain returns the standard resolution order: environment variables,
// then the shared credentials file.
func DefaultChain() *ChainProvider {
	return NewChainProvider(
		&EnvProvider{},
		&ProfileProvider{},
	)
}
