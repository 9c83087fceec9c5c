package shipping_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"pixsoft/internal/repositories"
	"pixsoft/internal/services"
)

var Module = fx.Provide(
	provideShippingService, provideShippingRepo)

func provideShippingRepo(db *gorm.DB) repositories.IShippingRepository {
	return repositories.NewShippingRepository(db)
}

func provideShippingService(
	shippingRepo repositories.IShippingRepository,
	contractRepo repositories.IRentalContractRepository,
) services.ShippingServiceInterface {
	return services.NewShippingService(shippingRepo, contractRepo)
}
