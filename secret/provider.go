package secret

import (
	"context"
	"fmt"
	"os"
)

// Provider resolves secrets by reference string.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Hygiene: implementations must not log secret values.
// - Close releases any backend connections; no-op implementations
//   return nil.
type Provider interface {
	Name() string
	Resolve(ctx context.Context, ref string) (string, error)
	Close() error
}

// EnvProvider resolves refs as environment variable names, so
// "secretref:env:JWT_SIGNING_KEY" yields the value of JWT_SIGNING_KEY.
type EnvProvider struct{}

// Name returns "env".
func (EnvProvider) Name() string { return "env" }

// Resolve looks up ref in the environment. An unset variable is an
// error; an empty value is returned as is and left to the resolver's
// strict mode.
func (EnvProvider) Resolve(_ context.Context, ref string) (string, error) {
	v, ok := os.LookupEnv(ref)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrMissingEnv, ref)
	}
	return v, nil
}

// Close implements Provider. It is a no-op.
func (EnvProvider) Close() error { return nil }

// StaticProvider serves secrets from a fixed in-memory map. Intended
// for tests and local development, not production key storage.
type StaticProvider struct {
	name   string
	values map[string]string
}

// NewStaticProvider creates a provider named name serving the given
// values.
func NewStaticProvider(name string, values map[string]string) *StaticProvider {
	vals := make(map[string]string, len(values))
	for k, v := range values {
		vals[k] = v
	}
	return &StaticProvider{name: name, values: vals}
}

// Name returns the provider name.
func (p *StaticProvider) Name() string { return p.name }

// Resolve returns the value stored under ref.
func (p *StaticProvider) Resolve(_ context.Context, ref string) (string, error) {
	v, ok := p.values[ref]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownRef, ref)
	}
	return v, nil
}

// Close implements Provider. It is a no-op.
func (p *StaticProvider) Close() error { return nil }

var (
	_ Provider = EnvProvider{}
	_ Provider = (*StaticProvider)(nil)
)
