package controllers_fx

import (
	"go.uber.org/fx"
	"pixsoft/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewProductsController),
	fx.Provide(controllers.NewLeasingController),
	fx.Provide(controllers.NewCartController),
	fx.Provide(controllers.NewOrdersController),
	fx.Provide(controllers.NewBillingController),
	fx.Provide(controllers.NewShippingController),
	fx.Provide(controllers.NewMarketingController))
