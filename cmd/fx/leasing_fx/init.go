package leasing_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"pixsoft/internal/repositories"
	"pixsoft/internal/services"
)

var Module = fx.Provide(
	provideLeasingService, provideRentalProductRepo, provideContractRepo)

func provideRentalProductRepo(db *gorm.DB) repositories.IRentalProductRepository {
	return repositories.NewRentalProductRepository(db)
}

func provideContractRepo(db *gorm.DB) repositories.IRentalContractRepository {
	return repositories.NewRentalContractRepository(db)
}

func provideLeasingService(rentalRepo repositories.IRentalProductRepository, contractRepo repositories.IRentalContractRepository) services.LeasingServiceInterface {
	return services.NewLeasingService(rentalRepo, contractRepo)
}
