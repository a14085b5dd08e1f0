package config

import (
	"strings"
	"time"
)

// DefaultRouteLimits is the registry used when none is configured.
var DefaultRouteLimits = []RouteLimitRule{
	{Pattern: "/auth/login", Window: 15 * time.Minute, MaxRequests: 5, Message: "too many login attempts, please try again later"},
	{Pattern: "/auth/signup", Window: time.Hour, MaxRequests: 3, Message: "too many signup attempts, please try again later"},
	{Pattern: "/api/*", Window: 15 * time.Minute, MaxRequests: 100, Message: "too many requests, please try again later"},
}

// ApplyDefaults fills every unset section so a partial config file still yields a working service.
func (c *Config) ApplyDefaults() {
	if strings.TrimSpace(c.HTTP.MaxRequestBodySize) == "" {
		c.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if c.Storage == nil {
		c.Storage = &StorageConfig{}
	}
	c.Storage.Principals = orDefault(c.Storage.Principals, BackendMemory)
	c.Storage.Audit = orDefault(c.Storage.Audit, BackendMemory)
	c.Storage.Revocation = orDefault(c.Storage.Revocation, BackendMemory)

	if c.Auth == nil {
		c.Auth = &AuthConfig{}
	}
	c.Auth.Issuer = orDefault(c.Auth.Issuer, "gatekeeper")
	if c.Auth.AccessTokenTTL <= 0 {
		c.Auth.AccessTokenTTL = 15 * time.Minute
	}
	if c.Auth.RefreshTokenTTL <= 0 {
		c.Auth.RefreshTokenTTL = 7 * 24 * time.Hour
	}
	if c.Auth.Lockout.Threshold <= 0 {
		c.Auth.Lockout.Threshold = 10
	}
	if c.Auth.Lockout.Window <= 0 {
		c.Auth.Lockout.Window = 30 * time.Minute
	}
	a := &c.Auth.Argon2
	if a.MemoryKiB == 0 {
		a.MemoryKiB = 64 * 1024
	}
	if a.Iterations == 0 {
		a.Iterations = 3
	}
	if a.Threads == 0 {
		a.Threads = 2
	}
	if a.KeyLength == 0 {
		a.KeyLength = 32
	}
	if a.SaltLength == 0 {
		a.SaltLength = 16
	}

	if c.PasswordStrength == nil {
		c.PasswordStrength = &PasswordStrengthConfig{
			MinLength:        8,
			MaxLength:        128,
			RequireUppercase: true,
			RequireLowercase: true,
			RequireNumbers:   true,
		}
	}

	if c.Cookies == nil {
		c.Cookies = &CookieConfig{Secure: true}
	}
	c.Cookies.AccessName = orDefault(c.Cookies.AccessName, "access_token")
	c.Cookies.RefreshName = orDefault(c.Cookies.RefreshName, "refresh_token")
	c.Cookies.RefreshPath = orDefault(c.Cookies.RefreshPath, "/auth")

	if c.CSRF == nil {
		c.CSRF = &CSRFConfig{}
	}
	c.CSRF.CookieName = orDefault(c.CSRF.CookieName, "csrf_token")
	c.CSRF.HeaderName = orDefault(c.CSRF.HeaderName, "X-CSRF-Token")
	if c.CSRF.TTL <= 0 {
		c.CSRF.TTL = 24 * time.Hour
	}

	if c.RateLimit == nil {
		c.RateLimit = &RateLimitConfig{}
	}
	c.RateLimit.Backend = orDefault(c.RateLimit.Backend, BackendMemory)
	if c.RateLimit.SweepInterval <= 0 {
		c.RateLimit.SweepInterval = time.Hour
	}
	if len(c.RateLimit.Routes) == 0 {
		c.RateLimit.Routes = append([]RouteLimitRule(nil), DefaultRouteLimits...)
	}

	if c.Audit == nil {
		c.Audit = &AuditConfig{}
	}
	if c.Audit.WriteTimeout <= 0 {
		c.Audit.WriteTimeout = 250 * time.Millisecond
	}
	if c.Audit.Retention <= 0 {
		c.Audit.Retention = 90 * 24 * time.Hour
	}
	if c.Audit.PurgeInterval <= 0 {
		c.Audit.PurgeInterval = 24 * time.Hour
	}
	if c.Audit.SuspiciousThreshold <= 0 {
		c.Audit.SuspiciousThreshold = 5
	}
	if c.Audit.SuspiciousWindow <= 0 {
		c.Audit.SuspiciousWindow = 15 * time.Minute
	}
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}

	return v
}
