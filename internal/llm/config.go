// Package llm provides centralized LLM configuration and client abstractions.
// This package enables easy switching between model tiers and future multi-provider support.
package llm

import "time"

// ModelTier represents the complexity/capability level of a model
type ModelTier string

const (
	// TierLite is for simple tasks: classification, extraction, basic summarization
	TierLite ModelTier = "lite"
	// TierStandard is for moderate reasoning: resume parsing, structured output
	TierStandard ModelTier = "standard"
	// TierAdvanced is for complex reasoning: rubric-based scoring
	TierAdvanced ModelTier = "advanced"
)

// DefaultTimeout bounds a single generation call. Callers treat expiry as an
// ordinary failure mode that triggers fallback, not a fatal error.
const DefaultTimeout = 60 * time.Second

// Config holds the model configuration for the application
type Config struct {
	Models          map[ModelTier]string
	Temperature     float32
	MaxOutputTokens int32
	Timeout         time.Duration
}

// DefaultConfig returns the default Gemini configuration. Temperature is low
// for consistent structured output.
func DefaultConfig() *Config {
	return &Config{
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
			TierAdvanced: "gemini-2.5-pro",
		},
		Temperature:     0.1,
		MaxOutputTokens: 8192,
		Timeout:         DefaultTimeout,
	}
}

// GetModel returns the model name for a given tier
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	// Fallback chain: try standard, then lite
	if model, ok := c.Models[TierStandard]; ok {
		return model
	}
	if model, ok := c.Models[TierLite]; ok {
		return model
	}
	return "" // No model configured
}

// WithModel returns a new Config with a specific model for a tier
func (c *Config) WithModel(tier ModelTier, model string) *Config {
	newConfig := &Config{
		Models:          make(map[ModelTier]string),
		Temperature:     c.Temperature,
		MaxOutputTokens: c.MaxOutputTokens,
		Timeout:         c.Timeout,
	}
	for k, v := range c.Models {
		newConfig.Models[k] = v
	}
	newConfig.Models[tier] = model
	return newConfig
}
