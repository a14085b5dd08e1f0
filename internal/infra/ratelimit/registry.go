package ratelimit

import (
	"sort"
	"strings"

	"gatekeeper/config"
	"gatekeeper/internal/domain/entity"
	"gatekeeper/internal/errors"
)

// Registry maps request paths to their limit. Exact patterns win over prefixes;
// among prefixes the longest one wins.
type Registry struct {
	exact    map[string]entity.RouteLimit
	prefixes []entity.RouteLimit
}

// NewRegistry builds the registry from configured rules.
func NewRegistry(rules []config.RouteLimitRule) (*Registry, error) {
	r := &Registry{exact: make(map[string]entity.RouteLimit)}

	for _, rule := range rules {
		if !strings.HasPrefix(rule.Pattern, "/") {
			return nil, errors.Errorf("rate limit pattern %q must start with /", rule.Pattern)
		}
		if rule.Window <= 0 || rule.MaxRequests <= 0 {
			return nil, errors.Errorf("rate limit for %q needs a positive window and maxRequests", rule.Pattern)
		}

		limit := entity.RouteLimit{
			Pattern:     rule.Pattern,
			Window:      rule.Window,
			MaxRequests: rule.MaxRequests,
			Message:     rule.Message,
		}
		if limit.IsPrefix() {
			r.prefixes = append(r.prefixes, limit)

			continue
		}
		if _, dup := r.exact[limit.Pattern]; dup {
			return nil, errors.Errorf("duplicate rate limit pattern %q", limit.Pattern)
		}
		r.exact[limit.Pattern] = limit
	}

	sort.SliceStable(r.prefixes, func(i, j int) bool {
		return len(r.prefixes[i].Pattern) > len(r.prefixes[j].Pattern)
	})

	return r, nil
}

// NewRegistryFromConfig is the fx constructor.
func NewRegistryFromConfig(cfg *config.Config) (*Registry, error) {
	rules := config.DefaultRouteLimits
	if cfg.RateLimit != nil && len(cfg.RateLimit.Routes) > 0 {
		rules = cfg.RateLimit.Routes
	}

	return NewRegistry(rules)
}

// Match returns the limit governing path.
func (r *Registry) Match(path string) (entity.RouteLimit, bool) {
	if limit, ok := r.exact[path]; ok {
		return limit, true
	}

	for _, limit := range r.prefixes {
		if strings.HasPrefix(path, strings.TrimSuffix(limit.Pattern, "*")) {
			return limit, true
		}
	}

	return entity.RouteLimit{}, false
}
