package config

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

const (
	defaultEnvFile         = ".env"
	defaultPort            = "8080"
	defaultReadTimeout     = 15 * time.Second
	defaultWriteTimeout    = 30 * time.Second
	defaultIdleTimeout     = 120 * time.Second
	defaultBaseURL         = "https://www.occlusadental.com"
	defaultStoreBackend    = BackendHTTP
	defaultStoreProjectID  = "occlusa7d"
	defaultStoreDataset    = "production"
	defaultStoreAPIVersion = "2024-01-01"
	defaultStoreTimeout    = 5 * time.Second
	defaultContentDir      = "content"
	defaultCacheBackend    = CacheNone
	defaultCacheTTL        = time.Minute
	defaultRedisAddr       = "localhost:6379"
	defaultImageBaseURL    = "https://cdn.sanity.io/images"
)

// Store backends understood by the content layer.
const (
	BackendHTTP      = "http"
	BackendFirestore = "firestore"
	BackendFile      = "file"
	BackendMemory    = "memory"
)

// Cache backends for store query results.
const (
	CacheNone   = "none"
	CacheMemory = "memory"
	CacheRedis  = "redis"
)

// Config captures all runtime configuration organised by concern.
type Config struct {
	Server    ServerConfig
	Site      SiteConfig
	Store     StoreConfig
	Firestore FirestoreConfig
	Cache     CacheConfig
	Images    ImageConfig
}

// ServerConfig configures HTTP server parameters.
type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// SiteConfig holds public site settings used when building absolute URLs.
type SiteConfig struct {
	BaseURL string
}

// StoreConfig selects and parameterises the document store.
type StoreConfig struct {
	Backend    string
	ProjectID  string
	Dataset    string
	APIVersion string
	Token      string
	UseCDN     bool
	Timeout    time.Duration
	ContentDir string
}

// FirestoreConfig stores database parameters for the firestore backend.
type FirestoreConfig struct {
	ProjectID    string
	EmulatorHost string
}

// CacheConfig controls query result caching.
type CacheConfig struct {
	Backend       string
	TTL           time.Duration
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

// ImageConfig controls image URL generation.
type ImageConfig struct {
	BaseURL string
}

// ValidationError is returned when required configuration fields are missing or invalid.
type ValidationError struct {
	fields []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation failed: missing or invalid fields [%s]", strings.Join(e.fields, ", "))
}

// Fields returns a copy of the missing/invalid field list.
func (e *ValidationError) Fields() []string {
	out := make([]string, len(e.fields))
	copy(out, e.fields)
	return out
}

// Option customises Load behaviour.
type Option func(*loaderOptions)

type loaderOptions struct {
	envFile      string
	envMap       map[string]string
	useSystemEnv bool
}

// WithEnvFile overrides the .env file path used for local overrides.
func WithEnvFile(path string) Option {
	return func(o *loaderOptions) {
		o.envFile = path
	}
}

// WithEnvMap injects an explicit key/value map for environment lookups. Values in the map
// take precedence over system environment variables.
func WithEnvMap(values map[string]string) Option {
	return func(o *loaderOptions) {
		o.envMap = values
	}
}

// WithoutSystemEnv disables reading from os.Getenv, relying only on provided maps and .env files.
func WithoutSystemEnv() Option {
	return func(o *loaderOptions) {
		o.useSystemEnv = false
	}
}

// Load assembles the application configuration by combining defaults, .env overrides
// and environment variables.
func Load(_ context.Context, opts ...Option) (Config, error) {
	options := loaderOptions{
		envFile:      defaultEnvFile,
		useSystemEnv: true,
	}
	for _, opt := range opts {
		opt(&options)
	}

	dotEnvValues, err := loadDotEnv(options.envFile)
	if err != nil {
		return Config{}, err
	}

	lookup := func(key string) (string, bool) {
		if options.envMap != nil {
			if value, ok := options.envMap[key]; ok {
				return value, true
			}
		}
		if options.useSystemEnv {
			if value, ok := os.LookupEnv(key); ok {
				return value, true
			}
		}
		if dotEnvValues != nil {
			if value, ok := dotEnvValues[key]; ok {
				return value, true
			}
		}
		return "", false
	}

	cfg := Config{
		Server: ServerConfig{
			Port:         stringWithDefault(lookup, "SITE_SERVER_PORT", defaultPort),
			ReadTimeout:  durationWithDefault(lookup, "SITE_SERVER_READ_TIMEOUT", defaultReadTimeout),
			WriteTimeout: durationWithDefault(lookup, "SITE_SERVER_WRITE_TIMEOUT", defaultWriteTimeout),
			IdleTimeout:  durationWithDefault(lookup, "SITE_SERVER_IDLE_TIMEOUT", defaultIdleTimeout),
		},
		Site: SiteConfig{
			BaseURL: strings.TrimRight(stringWithDefault(lookup, "SITE_BASE_URL", defaultBaseURL), "/"),
		},
		Store: StoreConfig{
			Backend:    strings.ToLower(stringWithDefault(lookup, "SITE_STORE_BACKEND", defaultStoreBackend)),
			ProjectID:  stringWithDefault(lookup, "SITE_STORE_PROJECT_ID", defaultStoreProjectID),
			Dataset:    stringWithDefault(lookup, "SITE_STORE_DATASET", defaultStoreDataset),
			APIVersion: stringWithDefault(lookup, "SITE_STORE_API_VERSION", defaultStoreAPIVersion),
			Token:      stringWithDefault(lookup, "SITE_STORE_TOKEN", ""),
			UseCDN:     boolWithDefault(lookup, "SITE_STORE_USE_CDN", true),
			Timeout:    durationWithDefault(lookup, "SITE_STORE_TIMEOUT", defaultStoreTimeout),
			ContentDir: stringWithDefault(lookup, "SITE_STORE_CONTENT_DIR", defaultContentDir),
		},
		Firestore: FirestoreConfig{
			ProjectID:    stringWithDefault(lookup, "SITE_FIRESTORE_PROJECT_ID", ""),
			EmulatorHost: stringWithDefault(lookup, "SITE_FIRESTORE_EMULATOR_HOST", ""),
		},
		Cache: CacheConfig{
			Backend:       strings.ToLower(stringWithDefault(lookup, "SITE_CACHE_BACKEND", defaultCacheBackend)),
			TTL:           durationWithDefault(lookup, "SITE_CACHE_TTL", defaultCacheTTL),
			RedisAddr:     stringWithDefault(lookup, "SITE_REDIS_ADDR", defaultRedisAddr),
			RedisPassword: stringWithDefault(lookup, "SITE_REDIS_PASSWORD", ""),
			RedisDB:       intWithDefault(lookup, "SITE_REDIS_DB", 0),
		},
		Images: ImageConfig{
			BaseURL: strings.TrimRight(stringWithDefault(lookup, "SITE_IMAGE_BASE_URL", defaultImageBaseURL), "/"),
		},
	}

	// Firestore project defaults to the store project when unspecified.
	if cfg.Firestore.ProjectID == "" {
		cfg.Firestore.ProjectID = cfg.Store.ProjectID
	}

	if err := validateConfig(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func validateConfig(cfg Config) error {
	var missing []string

	if strings.TrimSpace(cfg.Server.Port) == "" {
		missing = append(missing, "Server.Port")
	}
	if cfg.Server.ReadTimeout <= 0 {
		missing = append(missing, "Server.ReadTimeout")
	}
	if cfg.Server.WriteTimeout <= 0 {
		missing = append(missing, "Server.WriteTimeout")
	}
	switch cfg.Store.Backend {
	case BackendHTTP:
		if strings.TrimSpace(cfg.Store.ProjectID) == "" {
			missing = append(missing, "Store.ProjectID")
		}
		if strings.TrimSpace(cfg.Store.Dataset) == "" {
			missing = append(missing, "Store.Dataset")
		}
	case BackendFirestore:
		if strings.TrimSpace(cfg.Firestore.ProjectID) == "" {
			missing = append(missing, "Firestore.ProjectID")
		}
	case BackendFile:
		if strings.TrimSpace(cfg.Store.ContentDir) == "" {
			missing = append(missing, "Store.ContentDir")
		}
	case BackendMemory:
	default:
		missing = append(missing, "Store.Backend")
	}
	if cfg.Store.Timeout <= 0 {
		missing = append(missing, "Store.Timeout")
	}
	switch cfg.Cache.Backend {
	case CacheNone:
	case CacheMemory:
		if cfg.Cache.TTL <= 0 {
			missing = append(missing, "Cache.TTL")
		}
	case CacheRedis:
		if cfg.Cache.TTL <= 0 {
			missing = append(missing, "Cache.TTL")
		}
		if strings.TrimSpace(cfg.Cache.RedisAddr) == "" {
			missing = append(missing, "Cache.RedisAddr")
		}
	default:
		missing = append(missing, "Cache.Backend")
	}

	if len(missing) > 0 {
		return &ValidationError{fields: missing}
	}
	return nil
}

func loadDotEnv(path string) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		absPath = path
	}

	file, err := os.Open(absPath)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: unable to read %s: %w", absPath, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	values := make(map[string]string)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "export ") {
			line = strings.TrimSpace(strings.TrimPrefix(line, "export "))
		}
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		if key == "" {
			continue
		}
		values[key] = strings.Trim(strings.TrimSpace(parts[1]), "\"'")
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("config: failed parsing %s: %w", absPath, err)
	}
	return values, nil
}

func stringWithDefault(lookup func(string) (string, bool), key, fallback string) string {
	if value, ok := lookup(key); ok && strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return fallback
}

func durationWithDefault(lookup func(string) (string, bool), key string, fallback time.Duration) time.Duration {
	if value, ok := lookup(key); ok && value != "" {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return fallback
}

func intWithDefault(lookup func(string) (string, bool), key string, fallback int) int {
	if value, ok := lookup(key); ok && value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func boolWithDefault(lookup func(string) (string, bool), key string, fallback bool) bool {
	if value, ok := lookup(key); ok && value != "" {
		switch strings.ToLower(value) {
		case "true", "1", "yes", "on":
			return true
		case "false", "0", "no", "off":
			return false
		}
	}
	return fallback
}
