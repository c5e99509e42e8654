package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	if err := c.Interaction.validate(); err != nil {
		return fmt.Errorf("interaction: %w", err)
	}

	if c.Interaction.UsesRedisDedup() && c.Redis.Addr == "" {
		return fmt.Errorf("redis.addr is required when interaction.view_dedup_backend is redis")
	}

	if c.RateLimit.Enabled && c.RateLimit.WritesPerMinute <= 0 {
		return fmt.Errorf("rate_limit.writes_per_minute must be > 0 (got %d)", c.RateLimit.WritesPerMinute)
	}
	if c.RateLimit.Enabled && c.RateLimit.CleanupInterval <= 0 {
		return fmt.Errorf("rate_limit.cleanup_interval must be > 0 (got %v)", c.RateLimit.CleanupInterval)
	}

	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("metrics.path must start with / (got %q)", c.Metrics.Path)
	}

	return nil
}

func (c *InteractionConfig) validate() error {
	if c.ViewDedupWindow <= 0 {
		return fmt.Errorf("view_dedup_window must be > 0 (got %v)", c.ViewDedupWindow)
	}

	switch c.ViewDedupBackend {
	case DedupBackendPostgres, DedupBackendRedis:
	default:
		return fmt.Errorf("view_dedup_backend must be %q or %q (got %q)",
			DedupBackendPostgres, DedupBackendRedis, c.ViewDedupBackend)
	}

	u, err := url.Parse(c.ShareBaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("share_base_url must be an absolute URL (got %q)", c.ShareBaseURL)
	}

	if c.MaxCommentLength <= 0 {
		return fmt.Errorf("max_comment_length must be > 0 (got %d)", c.MaxCommentLength)
	}
	if c.RepliesPageSize <= 0 {
		return fmt.Errorf("replies_page_size must be > 0 (got %d)", c.RepliesPageSize)
	}
	if c.SummaryConcurrency <= 0 {
		return fmt.Errorf("summary_concurrency must be > 0 (got %d)", c.SummaryConcurrency)
	}
	if c.RetentionDays <= 0 {
		return fmt.Errorf("retention_days must be > 0 (got %d)", c.RetentionDays)
	}

	return nil
}
