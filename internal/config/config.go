package config

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultEnvFile      = ".env"
	defaultPort         = "8080"
	defaultTemplatesDir = "templates"
	defaultPublicDir    = "public"
	defaultLocalesDir   = "locales"
	defaultEnvironment  = "local"
	defaultLogLevel     = "info"
	defaultReadTimeout  = 15 * time.Second
	defaultWriteTimeout = 15 * time.Second
	defaultIdleTimeout  = 60 * time.Second
	defaultPrefMaxAge   = 365 * 24 * time.Hour
)

// Config captures all runtime configuration organised by concern.
type Config struct {
	Server      ServerConfig
	Paths       PathsConfig
	Prefs       PrefsConfig
	Environment string
	Dev         bool
	LogLevel    string
	BaseURL     string
}

// ServerConfig configures HTTP server parameters.
type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// Addr is the listen address derived from Port.
func (s ServerConfig) Addr() string { return ":" + s.Port }

// PathsConfig locates templates, static assets and locale files.
type PathsConfig struct {
	Templates string
	Public    string
	Locales   string
}

// PrefsConfig controls the preference cookies.
type PrefsConfig struct {
	MaxAge time.Duration
}

// Prod reports whether the site runs in production.
func (c Config) Prod() bool { return c.Environment == "prod" }

// ValidationError lists configuration keys with unusable values.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "config: invalid " + strings.Join(e.Problems, "; ")
}

// Option customises Load.
type Option func(*loaderOptions)

type loaderOptions struct {
	envFile      string
	envMap       map[string]string
	useSystemEnv bool
}

// WithEnvFile reads additional values from path. A missing file is ignored.
func WithEnvFile(path string) Option {
	return func(o *loaderOptions) { o.envFile = path }
}

// WithEnvMap supplies values that take precedence over every other source.
func WithEnvMap(values map[string]string) Option {
	return func(o *loaderOptions) { o.envMap = values }
}

// WithoutSystemEnv ignores the process environment.
func WithoutSystemEnv() Option {
	return func(o *loaderOptions) { o.useSystemEnv = false }
}

// Load resolves configuration from the env map, the process environment and
// the .env file, in that order of precedence.
func Load(opts ...Option) (Config, error) {
	options := loaderOptions{envFile: defaultEnvFile, useSystemEnv: true}
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

	v := &validator{lookup: lookup}
	// Port resolution: prefer PORTFOLIO_WEB_PORT, then Cloud Run's PORT.
	port := v.string("PORTFOLIO_WEB_PORT", "")
	if port == "" {
		port = v.string("PORT", defaultPort)
	}
	if _, err := strconv.Atoi(port); err != nil {
		v.problems = append(v.problems, "PORTFOLIO_WEB_PORT: "+strconv.Quote(port))
	}

	cfg := Config{
		Server: ServerConfig{
			Port:         port,
			ReadTimeout:  v.duration("PORTFOLIO_WEB_READ_TIMEOUT", defaultReadTimeout),
			WriteTimeout: v.duration("PORTFOLIO_WEB_WRITE_TIMEOUT", defaultWriteTimeout),
			IdleTimeout:  v.duration("PORTFOLIO_WEB_IDLE_TIMEOUT", defaultIdleTimeout),
		},
		Paths: PathsConfig{
			Templates: v.string("PORTFOLIO_WEB_TEMPLATES_DIR", defaultTemplatesDir),
			Public:    v.string("PORTFOLIO_WEB_PUBLIC_DIR", defaultPublicDir),
			Locales:   v.string("PORTFOLIO_WEB_LOCALES_DIR", defaultLocalesDir),
		},
		Prefs: PrefsConfig{
			MaxAge: v.duration("PORTFOLIO_WEB_PREF_MAX_AGE", defaultPrefMaxAge),
		},
		Environment: strings.ToLower(v.string("PORTFOLIO_WEB_ENV", defaultEnvironment)),
		// Dev mode: prefer PORTFOLIO_WEB_DEV, fallback to DEV
		Dev:      v.string("PORTFOLIO_WEB_DEV", "") != "" || v.string("DEV", "") != "",
		LogLevel: strings.ToLower(v.string("PORTFOLIO_WEB_LOG_LEVEL", defaultLogLevel)),
		BaseURL:  strings.TrimRight(v.string("PORTFOLIO_WEB_BASE_URL", ""), "/"),
	}
	if len(v.problems) > 0 {
		return Config{}, &ValidationError{Problems: v.problems}
	}
	return cfg, nil
}

type validator struct {
	lookup   func(string) (string, bool)
	problems []string
}

func (v *validator) string(key, fallback string) string {
	if value, ok := v.lookup(key); ok && strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return fallback
}

func (v *validator) duration(key string, fallback time.Duration) time.Duration {
	raw := v.string(key, "")
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		v.problems = append(v.problems, key+": "+strconv.Quote(raw))
		return fallback
	}
	return d
}

func loadDotEnv(path string) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: open env file: %w", err)
	}
	defer f.Close()

	values := map[string]string{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimPrefix(line, "export ")
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		value = strings.TrimSpace(value)
		if unq, err := strconv.Unquote(value); err == nil {
			value = unq
		}
		values[strings.TrimSpace(key)] = value
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("config: read env file: %w", err)
	}
	return values, nil
}
