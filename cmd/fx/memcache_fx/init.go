package memcache_fx

import (
	"go.uber.org/fx"
	mem "placeholder/pkg/memcache"
)

var Module = fx.Provide(provideCredentialCache)

func provideCredentialCache() mem.CredentialCache {
	return mem.NewCredentialKeys()
}
