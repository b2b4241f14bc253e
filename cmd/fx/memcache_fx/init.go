package memcache_fx

import (
	"go.uber.org/fx"
	mem "planventure/pkg/memcache"
)

var Module = fx.Provide(provideRateLimiterStore)

func provideRateLimiterStore() mem.RateLimiterStore {
	return mem.NewHitCounters()
}
