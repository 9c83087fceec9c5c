package billing_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"pixsoft/internal/repositories"
	"pixsoft/internal/services"
)

var Module = fx.Provide(
	provideBillingService, provideInvoiceRepo)

func provideInvoiceRepo(db *gorm.DB) repositories.IInvoiceRepository {
	return repositories.NewInvoiceRepository(db)
}

func provideBillingService(
	invoiceRepo repositories.IInvoiceRepository,
	orderRepo repositories.IOrderRepository,
	contractRepo repositories.IRentalContractRepository,
) services.BillingServiceInterface {
	return services.NewBillingService(invoiceRepo, orderRepo, contractRepo)
}
