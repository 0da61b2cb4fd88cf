package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"placeholder/internal/repositories"
	"placeholder/internal/services"
)

var Module = fx.Provide(
	provideAccountService, provideAccountComposer, provideAccountRepo)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideAccountComposer(accountRepo repositories.AccountRepository) *services.AccountComposer {
	return services.NewAccountComposer(accountRepo)
}

func provideAccountService(accountRepo repositories.AccountRepository, composer *services.AccountComposer) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, composer)
}
