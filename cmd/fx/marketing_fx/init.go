package marketing_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"pixsoft/internal/repositories"
	"pixsoft/internal/services"
)

var Module = fx.Provide(
	provideMarketingService, provideMarketingRepo)

func provideMarketingRepo(db *gorm.DB) repositories.IMarketingRepository {
	return repositories.NewMarketingRepository(db)
}

func provideMarketingService(
	marketingRepo repositories.IMarketingRepository,
	accountRepo repositories.AccountRepository,
	mailService services.IMailService,
) services.MarketingServiceInterface {
	return services.NewMarketingService(marketingRepo, accountRepo, mailService)
}
