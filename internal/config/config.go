// Package config loads application configuration from a TOML file
// with environment variable overrides for secrets.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/preppal-labs/preppal/internal/core/domain"
)

// Default configuration values.
const (
	DefaultListenAddr             = ":8000"
	DefaultChunkSize              = 300
	DefaultTopK                   = 5
	DefaultShutdownTimeoutSeconds = 10
)

// Environment variables that override file-based API keys.
const (
	EnvGeminiAPIKey = "PREPPAL_GEMINI_API_KEY"
	EnvOpenAIAPIKey = "PREPPAL_OPENAI_API_KEY"
)

// Config holds all application configuration.
type Config struct {
	// Server holds HTTP server settings.
	Server ServerConfig `toml:"server"`

	// Library holds document ingestion settings.
	Library LibraryConfig `toml:"library"`

	// Retrieval holds search settings.
	Retrieval RetrievalConfig `toml:"retrieval"`

	// Embedding holds embedding provider settings.
	Embedding ProviderConfig `toml:"embedding"`

	// LLM holds LLM provider settings.
	LLM ProviderConfig `toml:"llm"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// ListenAddr is the address the HTTP server binds to.
	ListenAddr string `toml:"listen_addr"`

	// ShutdownTimeoutSeconds bounds graceful shutdown on SIGINT/SIGTERM.
	ShutdownTimeoutSeconds int `toml:"shutdown_timeout_seconds"`
}

// ShutdownTimeout returns the graceful shutdown bound as a duration.
func (s ServerConfig) ShutdownTimeout() time.Duration {
	return time.Duration(s.ShutdownTimeoutSeconds) * time.Second
}

// LibraryConfig holds document ingestion settings.
type LibraryConfig struct {
	// ChunkSize is the number of words per chunk.
	ChunkSize int `toml:"chunk_size"`
}

// RetrievalConfig holds search settings.
type RetrievalConfig struct {
	// TopK is the default number of results returned per query.
	TopK int `toml:"top_k"`
}

// ProviderConfig holds settings for one AI provider slot.
type ProviderConfig struct {
	// Provider is the provider name ("gemini" or "openai"). Empty disables the slot.
	Provider string `toml:"provider"`

	// Model is the model name. Empty uses the provider default.
	Model string `toml:"model"`

	// BaseURL overrides the provider API endpoint.
	BaseURL string `toml:"base_url"`

	// APIKey is the provider API key. Environment variables take precedence.
	APIKey string `toml:"api_key"`

	// Dimensions overrides the embedding vector size (embedding slot only).
	Dimensions int `toml:"dimensions"`
}

// Default returns a configuration with sensible defaults and no AI
// providers configured.
func Default() Config {
	return Config{
		Server: ServerConfig{
			ListenAddr:             DefaultListenAddr,
			ShutdownTimeoutSeconds: DefaultShutdownTimeoutSeconds,
		},
		Library: LibraryConfig{
			ChunkSize: DefaultChunkSize,
		},
		Retrieval: RetrievalConfig{
			TopK: DefaultTopK,
		},
	}
}

// Load reads configuration from a TOML file, applies defaults for unset
// fields, then applies environment variable overrides. A missing file is
// not an error; defaults plus environment are used.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		} else if err := toml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.applyDefaults()
	cfg.applyEnv()

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// applyDefaults fills zero-valued fields that must not stay zero.
func (c *Config) applyDefaults() {
	if c.Server.ListenAddr == "" {
		c.Server.ListenAddr = DefaultListenAddr
	}
	if c.Server.ShutdownTimeoutSeconds <= 0 {
		c.Server.ShutdownTimeoutSeconds = DefaultShutdownTimeoutSeconds
	}
	if c.Library.ChunkSize <= 0 {
		c.Library.ChunkSize = DefaultChunkSize
	}
	if c.Retrieval.TopK <= 0 {
		c.Retrieval.TopK = DefaultTopK
	}
}

// applyEnv overrides API keys from the environment. When a key arrives via
// environment and no provider is named, the matching provider is assumed.
func (c *Config) applyEnv() {
	if key := os.Getenv(EnvGeminiAPIKey); key != "" {
		if c.Embedding.Provider == "" || c.Embedding.Provider == string(domain.AIProviderGemini) {
			c.Embedding.Provider = string(domain.AIProviderGemini)
			c.Embedding.APIKey = key
		}
		if c.LLM.Provider == "" || c.LLM.Provider == string(domain.AIProviderGemini) {
			c.LLM.Provider = string(domain.AIProviderGemini)
			c.LLM.APIKey = key
		}
	}
	if key := os.Getenv(EnvOpenAIAPIKey); key != "" {
		if c.Embedding.Provider == string(domain.AIProviderOpenAI) {
			c.Embedding.APIKey = key
		}
		if c.LLM.Provider == string(domain.AIProviderOpenAI) {
			c.LLM.APIKey = key
		}
	}
}

// validate rejects provider names that are set but not recognised.
func (c *Config) validate() error {
	for _, p := range []string{c.Embedding.Provider, c.LLM.Provider} {
		if p != "" && !domain.AIProvider(p).IsValid() {
			return fmt.Errorf("unknown AI provider %q", p)
		}
	}
	return nil
}

// EmbeddingSettings converts the embedding slot to domain settings.
func (c *Config) EmbeddingSettings() domain.EmbeddingSettings {
	return domain.EmbeddingSettings{
		Provider:   domain.AIProvider(c.Embedding.Provider),
		Model:      c.Embedding.Model,
		BaseURL:    c.Embedding.BaseURL,
		APIKey:     c.Embedding.APIKey,
		Dimensions: c.Embedding.Dimensions,
	}
}

// LLMSettings converts the LLM slot to domain settings.
func (c *Config) LLMSettings() domain.LLMSettings {
	return domain.LLMSettings{
		Provider: domain.AIProvider(c.LLM.Provider),
		Model:    c.LLM.Model,
		BaseURL:  c.LLM.BaseURL,
		APIKey:   c.LLM.APIKey,
	}
}
