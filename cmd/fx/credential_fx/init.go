package credential_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"placeholder/internal/config"
	"placeholder/internal/repositories"
	"placeholder/internal/services"
	mem "placeholder/pkg/memcache"
	"placeholder/pkg/middleware"
	"placeholder/pkg/utils"
)

var Module = fx.Provide(
	provideCredentialRepo, provideTokenSigner, provideCredentialService, provideIdentityResolver)

func provideCredentialRepo(db *gorm.DB) repositories.CredentialRepositoryInterface {
	return repositories.NewCredentialRepository(db)
}

func provideTokenSigner(cfg *config.Config) *utils.TokenSigner {
	return utils.NewTokenSigner(cfg.JWTSecret)
}

func provideCredentialService(
	cfg *config.Config,
	accountRepo repositories.AccountRepository,
	credentialRepo repositories.CredentialRepositoryInterface,
	signer *utils.TokenSigner,
	cache mem.CredentialCache,
) services.CredentialServiceInterface {
	return services.NewCredentialService(accountRepo, credentialRepo, signer, cache, cfg.CredentialCacheTTL)
}

func provideIdentityResolver(credentialService services.CredentialServiceInterface) middleware.IdentityResolver {
	return credentialService
}
