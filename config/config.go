package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
)

// Storage backends.
const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int      `json:"port" yaml:"port"`
		MaxRequestBodySize string   `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		AllowedOrigins     []string `json:"allowedOrigins" yaml:"allowedOrigins"`

		Timeouts struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	Redis *RedisConfig `json:"redis" yaml:"redis"`

	Storage *StorageConfig `json:"storage" yaml:"storage"`

	SecretKey struct {
		Access  string `json:"access" yaml:"access"`
		Refresh string `json:"refresh" yaml:"refresh"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	PasswordStrength *PasswordStrengthConfig `json:"passwordStrength" yaml:"passwordStrength"`

	Cookies *CookieConfig `json:"cookies" yaml:"cookies"`

	CSRF *CSRFConfig `json:"csrf" yaml:"csrf"`

	RateLimit *RateLimitConfig `json:"rateLimit" yaml:"rateLimit"`

	Audit *AuditConfig `json:"audit" yaml:"audit"`
}

// RedisConfig defines the shared Redis used by the rate limiter and the revocation list
type RedisConfig struct {
	Addr     string `json:"addr" yaml:"addr"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`
}

// StorageConfig selects the backend of each store: memory or postgres
type StorageConfig struct {
	Principals string `json:"principals" yaml:"principals"`
	Audit      string `json:"audit" yaml:"audit"`
	// Revocation is memory or redis
	Revocation string `json:"revocation" yaml:"revocation"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	Issuer          string        `json:"issuer" yaml:"issuer"`
	AccessTokenTTL  time.Duration `json:"accessTokenTTL" yaml:"accessTokenTTL"`
	RefreshTokenTTL time.Duration `json:"refreshTokenTTL" yaml:"refreshTokenTTL"`
	Argon2          Argon2Config  `json:"argon2" yaml:"argon2"`
	Lockout         LockoutConfig `json:"lockout" yaml:"lockout"`
}

// LockoutConfig locks an account after repeated failed logins from any source
type LockoutConfig struct {
	Threshold int           `json:"threshold" yaml:"threshold"`
	Window    time.Duration `json:"window" yaml:"window"`
}

// Argon2Config defines argon2id cost parameters
type Argon2Config struct {
	MemoryKiB  uint32 `json:"memoryKiB" yaml:"memoryKiB"`
	Iterations uint32 `json:"iterations" yaml:"iterations"`
	Threads    uint8  `json:"threads" yaml:"threads"`
	KeyLength  uint32 `json:"keyLength" yaml:"keyLength"`
	SaltLength uint32 `json:"saltLength" yaml:"saltLength"`
}

// PasswordStrengthConfig defines password strength requirements
type PasswordStrengthConfig struct {
	MinLength        int      `json:"minLength" yaml:"minLength"`
	RequireUppercase bool     `json:"requireUppercase" yaml:"requireUppercase"`
	RequireLowercase bool     `json:"requireLowercase" yaml:"requireLowercase"`
	RequireNumbers   bool     `json:"requireNumbers" yaml:"requireNumbers"`
	RequireSpecial   bool     `json:"requireSpecial" yaml:"requireSpecial"`
	MaxLength        int      `json:"maxLength" yaml:"maxLength"`
	ForbiddenWords   []string `json:"forbiddenWords" yaml:"forbiddenWords"`
}

// CookieConfig defines session cookie attributes
type CookieConfig struct {
	Secure      bool   `json:"secure" yaml:"secure"`
	Domain      string `json:"domain" yaml:"domain"`
	AccessName  string `json:"accessName" yaml:"accessName"`
	RefreshName string `json:"refreshName" yaml:"refreshName"`
	RefreshPath string `json:"refreshPath" yaml:"refreshPath"`
}

// CSRFConfig defines the double-submit token settings
type CSRFConfig struct {
	CookieName     string        `json:"cookieName" yaml:"cookieName"`
	HeaderName     string        `json:"headerName" yaml:"headerName"`
	TTL            time.Duration `json:"ttl" yaml:"ttl"`
	ExemptPrefixes []string      `json:"exemptPrefixes" yaml:"exemptPrefixes"`
}

// RateLimitConfig defines the fixed-window limiter
type RateLimitConfig struct {
	// Backend is memory or redis
	Backend       string           `json:"backend" yaml:"backend"`
	SweepInterval time.Duration    `json:"sweepInterval" yaml:"sweepInterval"`
	Routes        []RouteLimitRule `json:"routes" yaml:"routes"`
}

// RouteLimitRule is one entry of the route registry. A pattern ending in "*" is a prefix.
type RouteLimitRule struct {
	Pattern     string        `json:"pattern" yaml:"pattern"`
	Window      time.Duration `json:"window" yaml:"window"`
	MaxRequests int           `json:"maxRequests" yaml:"maxRequests"`
	Message     string        `json:"message" yaml:"message"`
}

// AuditConfig defines security event retention and escalation
type AuditConfig struct {
	WriteTimeout        time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
	Retention           time.Duration `json:"retention" yaml:"retention"`
	PurgeInterval       time.Duration `json:"purgeInterval" yaml:"purgeInterval"`
	SuspiciousThreshold int           `json:"suspiciousThreshold" yaml:"suspiciousThreshold"`
	SuspiciousWindow    time.Duration `json:"suspiciousWindow" yaml:"suspiciousWindow"`
	AllowedDetailKeys   []string      `json:"allowedDetailKeys" yaml:"allowedDetailKeys"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
