package catalog_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"pixsoft/internal/repositories"
	"pixsoft/internal/services"
)

var Module = fx.Provide(
	provideCatalogService, provideSaleProductRepo, provideSaleCategoryRepo)

func provideSaleProductRepo(db *gorm.DB) repositories.ISaleProductRepository {
	return repositories.NewSaleProductRepository(db)
}

func provideSaleCategoryRepo(db *gorm.DB) repositories.ISaleCategoryRepository {
	return repositories.NewSaleCategoryRepository(db)
}

func provideCatalogService(productRepo repositories.ISaleProductRepository, categoryRepo repositories.ISaleCategoryRepository) services.CatalogServiceInterface {
	return services.NewCatalogService(productRepo, categoryRepo)
}
