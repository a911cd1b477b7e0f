package module

import (
	"time"

	"reposcout/internal/platform/config"
)

// Options controls search behavior and GitHub client settings
type Options struct {
	DefaultLimit      int
	MaxLimit          int
	ReadmeConcurrency int

	// GitHub client
	Token     string
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
	MaxPages  int
	Overscan  int
}

// FromConfig reads SEARCH_* and GITHUB_* values from process config/env
func FromConfig(cfg config.Conf) Options {
	sc := cfg.Prefix("SEARCH_")
	gc := cfg.Prefix("GITHUB_")
	return Options{
		DefaultLimit:      sc.MayInt("DEFAULT_LIMIT", 5),
		MaxLimit:          sc.MayInt("MAX_LIMIT", 100),
		ReadmeConcurrency: sc.MayInt("README_CONCURRENCY", 4),
		Token:             gc.MayString("TOKEN", ""),
		BaseURL:           gc.MayString("BASE_URL", ""),
		UserAgent:         gc.MayString("UA", ""),
		Timeout:           gc.MayDuration("TIMEOUT", 10*time.Second),
		MaxPages:          gc.MayInt("MAX_PAGES", 3),
		Overscan:          gc.MayInt("OVERSCAN", 2),
	}
}
