package secrets

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotFound is returned when no provider holds the named secret.
var ErrNotFound = errors.New("secret not found")

// Provider resolves a named credential.
type Provider interface {
	Lookup(ctx context.Context, name string) (string, error)
}

// Env reads secrets from environment variables.
type Env struct{}

func (Env) Lookup(_ context.Context, name string) (string, error) {
	value, ok := os.LookupEnv(name)
	if !ok || strings.TrimSpace(value) == "" {
		return "", fmt.Errorf("%w: env %s", ErrNotFound, name)
	}
	return strings.TrimSpace(value), nil
}

// Dir reads secrets from files named after the secret, the layout Docker and
// Kubernetes use for mounted secrets.
type Dir struct {
	Path string
}

func (d Dir) Lookup(_ context.Context, name string) (string, error) {
	if d.Path == "" || name == "" || strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	data, err := os.ReadFile(filepath.Join(d.Path, name))
	if errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("%w: %s in %s", ErrNotFound, name, d.Path)
	}
	if err != nil {
		return "", fmt.Errorf("read secret %s: %w", name, err)
	}

	value := strings.TrimSpace(string(data))
	if value == "" {
		return "", fmt.Errorf("%w: %s is empty", ErrNotFound, name)
	}
	return value, nil
}

// Chain asks each provider in order and returns the first hit.
type Chain []Provider

func (c Chain) Lookup(ctx context.Context, name string) (string, error) {
	for _, p := range c {
		value, err := p.Lookup(ctx, name)
		if err == nil {
			return value, nil
		}
		if !errors.Is(err, ErrNotFound) {
			return "", err
		}
	}
	return "", fmt.Errorf("%w: %s", ErrNotFound, name)
}

// New returns the default chain: environment first, then dir when set.
func New(dir string) Provider {
	chain := Chain{Env{}}
	if dir != "" {
		chain = append(chain, Dir{Path: dir})
	}
	return chain
}
