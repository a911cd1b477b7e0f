package module

import (
	"reposcout/internal/platform/config"
)

// Options controls stats behavior
type Options struct {
	TopDomains int
}

// FromConfig reads STATS_* values from process config/env
func FromConfig(cfg config.Conf) Options {
	sc := cfg.Prefix("STATS_")
	return Options{
		TopDomains: sc.MayInt("TOP_DOMAINS", 10),
	}
}
