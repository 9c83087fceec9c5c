package orders_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"pixsoft/internal/repositories"
	"pixsoft/internal/services"
)

var Module = fx.Provide(
	provideCartService, provideOrderService, provideCartRepo, provideOrderRepo)

func provideCartRepo(db *gorm.DB) repositories.ICartRepository {
	return repositories.NewCartRepository(db)
}

func provideOrderRepo(db *gorm.DB) repositories.IOrderRepository {
	return repositories.NewOrderRepository(db)
}

func provideCartService(
	cartRepo repositories.ICartRepository,
	saleRepo repositories.ISaleProductRepository,
	rentalRepo repositories.IRentalProductRepository,
) services.CartServiceInterface {
	return services.NewCartService(cartRepo, saleRepo, rentalRepo)
}

func provideOrderService(
	orderRepo repositories.IOrderRepository,
	cartRepo repositories.ICartRepository,
	saleRepo repositories.ISaleProductRepository,
	rentalRepo repositories.IRentalProductRepository,
) services.OrderServiceInterface {
	return services.NewOrderService(orderRepo, cartRepo, saleRepo, rentalRepo)
}
