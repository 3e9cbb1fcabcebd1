// Package generation orchestrates blog content generation across the
// configured providers, with caching, rate limiting and provider fallback.
package generation

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"time"

	"golang.org/x/time/rate"

	"github.com/servicepost/content-engine/internal/database"
	"github.com/servicepost/content-engine/internal/service/content"
	"github.com/servicepost/content-engine/internal/service/generation/prompts"
	"github.com/servicepost/content-engine/internal/service/generation/providers"
)

// Common errors
var (
	// ErrNoProviders is returned when not a single provider has a
	// configured credential. This is the one case where generation must
	// fail loudly instead of degrading.
	ErrNoProviders = errors.New("no generation providers configured")

	// ErrAllProvidersFailed wraps the per-provider errors after the whole
	// fallback chain is exhausted
	ErrAllProvidersFailed = errors.New("all generation providers failed")
)

// Logger interface for service logging
type Logger interface {
	Debug(msg string, keysAndValues ...interface{})
	Info(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
}

// DefaultLogger provides a basic implementation of the Logger interface
type DefaultLogger struct{}

func (l *DefaultLogger) Debug(msg string, keysAndValues ...interface{}) {
	log.Printf("[DEBUG] %s %v", msg, keysAndValues)
}

func (l *DefaultLogger) Info(msg string, keysAndValues ...interface{}) {
	log.Printf("[INFO] %s %v", msg, keysAndValues)
}

func (l *DefaultLogger) Error(msg string, keysAndValues ...interface{}) {
	log.Printf("[ERROR] %s %v", msg, keysAndValues)
}

// Result is a generated document plus generation metadata
type Result struct {
	Output         *content.GenerationOutput `json:"output"`
	ProviderUsed   string                    `json:"provider_used"`
	CachedResult   bool                      `json:"cached_result"`
	ProcessingTime time.Duration             `json:"processing_time,omitempty"`
}

// Generator runs the generation pipeline. Providers are tried strictly
// sequentially in registry order; a later provider is only invoked after
// the previous one failed or was unavailable, so no quota is spent on
// results that would be discarded.
type Generator struct {
	providers []providers.Provider
	prompts   *prompts.Builder
	limiter   *rate.Limiter
	cache     *database.RedisClient
	cacheTTL  time.Duration
	logger    Logger
}

// Options configures a Generator
type Options struct {
	// Providers in fallback priority order
	Providers []providers.Provider
	RateLimit rate.Limit
	RateBurst int
	// Cache is optional; nil disables response caching
	Cache    *database.RedisClient
	CacheTTL time.Duration
	Logger   Logger
}

// NewGenerator creates a Generator from explicit options. The provider
// registry is injected rather than discovered, so there is no hidden
// process-global state.
func NewGenerator(opts Options) *Generator {
	if opts.RateLimit == 0 {
		opts.RateLimit = rate.Limit(10)
	}
	if opts.RateBurst == 0 {
		opts.RateBurst = 1
	}
	if opts.CacheTTL == 0 {
		opts.CacheTTL = 24 * time.Hour
	}
	if opts.Logger == nil {
		opts.Logger = &DefaultLogger{}
	}

	return &Generator{
		providers: opts.Providers,
		prompts:   prompts.NewBuilder(),
		limiter:   rate.NewLimiter(opts.RateLimit, opts.RateBurst),
		cache:     opts.Cache,
		cacheTTL:  opts.CacheTTL,
		logger:    opts.Logger,
	}
}

// GenerateBlogContent turns a GenerationInput into a scored document. Each
// configured provider gets exactly one attempt; transport and parse
// failures both advance the chain. An identical input served within the
// cache TTL is returned from cache without any provider call.
func (g *Generator) GenerateBlogContent(ctx context.Context, in *content.GenerationInput) (*Result, error) {
	startTime := time.Now()
	prompt := g.prompts.BlogPrompt(in)

	cacheKey := "gen:blog:" + promptDigest(prompt)
	if cached := g.fromCache(cacheKey); cached != nil {
		cached.CachedResult = true
		cached.ProcessingTime = time.Since(startTime)
		g.logger.Debug("cache hit for blog generation", "service", in.ServiceName, "city", in.City)
		return cached, nil
	}

	var out *content.GenerationOutput
	var used string
	err := g.tryEachProvider(ctx, "generate_blog", func(p providers.Provider) error {
		raw, err := p.GenerateText(ctx, prompt)
		if err != nil {
			return err
		}
		doc, err := content.ParseDocument(raw)
		if err != nil {
			return err
		}
		out = doc
		used = p.Name()
		return nil
	})
	if err != nil {
		return nil, err
	}

	out.SEOScore, out.SEOChecklist = content.CalculateSEOScore(out, in)

	result := &Result{
		Output:         out,
		ProviderUsed:   used,
		ProcessingTime: time.Since(startTime),
	}
	g.toCache(cacheKey, result)

	g.logger.Info("generated blog content",
		"provider", used,
		"sections", len(out.Content),
		"seo_score", out.SEOScore,
		"time", result.ProcessingTime)

	return result, nil
}

// RegenerateSection produces a replacement for one section of an existing
// document. The returned section's type always equals the requested type,
// whatever the provider sent back. Regeneration is never served from cache.
func (g *Generator) RegenerateSection(ctx context.Context, in *content.GenerationInput, sectionType string, existing []content.ContentSection) (*content.ContentSection, string, error) {
	prompt := g.prompts.SectionPrompt(in, sectionType, existing)

	var section *content.ContentSection
	var used string
	err := g.tryEachProvider(ctx, "regenerate_section", func(p providers.Provider) error {
		raw, err := p.GenerateText(ctx, prompt)
		if err != nil {
			return err
		}
		parsed, err := content.ParseSection(raw)
		if err != nil {
			return err
		}
		section = parsed
		used = p.Name()
		return nil
	})
	if err != nil {
		return nil, "", err
	}

	section.Type = sectionType
	g.logger.Info("regenerated section", "provider", used, "type", sectionType)
	return section, used, nil
}

// DescribeJobImage returns a caption for a job photo, using the same
// fallback chain as text generation
func (g *Generator) DescribeJobImage(ctx context.Context, imageURL string) (string, string, error) {
	prompt := g.prompts.ImagePrompt()

	var description, used string
	err := g.tryEachProvider(ctx, "describe_image", func(p providers.Provider) error {
		text, err := p.DescribeImage(ctx, imageURL, prompt)
		if err != nil {
			return err
		}
		description = text
		used = p.Name()
		return nil
	})
	if err != nil {
		return "", "", err
	}
	return description, used, nil
}

// Close releases all provider clients
func (g *Generator) Close() error {
	var errs []error
	for _, p := range g.providers {
		if err := p.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// tryEachProvider runs one attempt per available provider, in priority
// order, stopping at the first success. Unavailable providers are skipped
// without logging an error. A failure of the last provider in the chain --
// parse failures included -- is what the caller sees as the terminal error.
func (g *Generator) tryEachProvider(ctx context.Context, operation string, attempt func(p providers.Provider) error) error {
	available := 0
	var attemptErrs []error

	for _, p := range g.providers {
		if !p.Available() {
			g.logger.Debug("skipping unconfigured provider", "provider", p.Name(), "operation", operation)
			continue
		}
		available++

		if err := g.limiter.Wait(ctx); err != nil {
			return err
		}

		if err := attempt(p); err != nil {
			g.logger.Error("provider attempt failed",
				"provider", p.Name(),
				"operation", operation,
				"error", err)
			attemptErrs = append(attemptErrs, fmt.Errorf("%s: %w", p.Name(), err))
			continue
		}
		return nil
	}

	if available == 0 {
		return ErrNoProviders
	}
	return fmt.Errorf("%w: %w", ErrAllProvidersFailed, errors.Join(attemptErrs...))
}

func (g *Generator) fromCache(key string) *Result {
	if g.cache == nil {
		return nil
	}
	var result Result
	if err := g.cache.Get(key, &result); err != nil {
		return nil
	}
	return &result
}

func (g *Generator) toCache(key string, result *Result) {
	if g.cache == nil {
		return
	}
	if err := g.cache.Set(key, result, g.cacheTTL); err != nil {
		g.logger.Error("failed to cache generation result", "error", err, "key", key)
	}
}

func promptDigest(prompt string) string {
	sum := sha256.Sum256([]byte(prompt))
	return hex.EncodeToString(sum[:])
}
