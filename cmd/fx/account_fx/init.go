package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"pixsoft/internal/repositories"
	"pixsoft/internal/services"
	mem "pixsoft/pkg/memcache"
)

var Module = fx.Provide(
	provideAccountService, provideAccountRepo)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideAccountService(accountRepo repositories.AccountRepository, memcache mem.ResetTokenStore, mailService services.IMailService) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, memcache, mailService)
}
