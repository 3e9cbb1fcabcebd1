// Package providers contains the adapters over the external text-generation
// backends. Each adapter is stateless beyond its lazily-shared API client,
// accepts a fully-formed prompt and returns raw text. Retry and fallback
// belong to the orchestrator, not here.
package providers

import (
	"context"
	"errors"
)

// ErrUnavailable is returned by an adapter whose credential is not
// configured. The orchestrator skips such providers silently.
var ErrUnavailable = errors.New("provider credential not configured")

// Provider is the uniform generation capability every backend adapter
// implements
type Provider interface {
	// Name returns the provider identifier used in logs and audit records
	Name() string

	// Available reports whether the provider has a configured credential
	Available() bool

	// GenerateText sends a prompt and returns the raw text response
	GenerateText(ctx context.Context, prompt string) (string, error)

	// DescribeImage returns a text description of the referenced image
	DescribeImage(ctx context.Context, imageURL, prompt string) (string, error)

	// Close releases resources held by the provider's client
	Close() error
}
