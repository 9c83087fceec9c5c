package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"pixsoft/cmd/fx/account_fx"
	"pixsoft/cmd/fx/billing_fx"
	"pixsoft/cmd/fx/catalog_fx"
	"pixsoft/cmd/fx/controllers_fx"
	"pixsoft/cmd/fx/db_fx"
	"pixsoft/cmd/fx/leasing_fx"
	"pixsoft/cmd/fx/mail_fx"
	"pixsoft/cmd/fx/marketing_fx"
	"pixsoft/cmd/fx/memcache_fx"
	"pixsoft/cmd/fx/orders_fx"
	"pixsoft/cmd/fx/shipping_fx"
	"pixsoft/internal/api/controllers"
	"pixsoft/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	app := fx.New(
		db_fx.Module,
		memcache_fx.Module,
		mail_fx.Module,
		account_fx.Module,
		catalog_fx.Module,
		leasing_fx.Module,
		orders_fx.Module,
		billing_fx.Module,
		shipping_fx.Module,
		marketing_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	productsController *controllers.ProductsController,
	leasingController *controllers.LeasingController,
	cartController *controllers.CartController,
	ordersController *controllers.OrdersController,
	billingController *controllers.BillingController,
	shippingController *controllers.ShippingController,
	marketingController *controllers.MarketingController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r,
		accountController,
		productsController,
		leasingController,
		cartController,
		ordersController,
		billingController,
		shippingController,
		marketingController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	productsController *controllers.ProductsController,
	leasingController *controllers.LeasingController,
	cartController *controllers.CartController,
	ordersController *controllers.OrdersController,
	billingController *controllers.BillingController,
	shippingController *controllers.ShippingController,
	marketingController *controllers.MarketingController) {

	auth := middleware.JWTAuthMiddleware()
	admin := middleware.RoleMiddleware("admin")

	accounts := r.Group("/accounts")
	accounts.POST("/register", accountController.Register)
	accounts.POST("/login", accountController.Login)
	accounts.POST("/forgot-password", accountController.ForgotPassword)
	accounts.POST("/reset-password", accountController.ResetPassword)
	accounts.GET("/me", auth, accountController.Me)
	accounts.PUT("/me/profile", auth, accountController.UpdateProfile)

	categories := r.Group("/categories")
	categories.GET("", productsController.ListCategories)
	categories.POST("", auth, admin, productsController.CreateCategory)

	products := r.Group("/products")
	products.GET("", productsController.ListProducts)
	products.GET("/:id", productsController.GetProduct)
	products.POST("", auth, admin, productsController.CreateProduct)
	products.PUT("/:id", auth, admin, productsController.UpdateProduct)
	products.DELETE("/:id", auth, admin, productsController.DeleteProduct)
	products.POST("/:id/purchase", auth, productsController.Purchase)

	leasing := r.Group("/leasing")
	leasing.GET("/categories", leasingController.ListCategories)
	leasing.POST("/categories", auth, admin, leasingController.CreateCategory)
	leasing.GET("/products", leasingController.ListProducts)
	leasing.GET("/products/:id", leasingController.GetProduct)
	leasing.GET("/products/:id/plans", leasingController.ListPlans)
	leasing.POST("/products", auth, admin, leasingController.CreateProduct)
	leasing.POST("/plans", auth, admin, leasingController.CreatePlan)
	leasing.POST("/quote", leasingController.Quote)
	leasing.POST("/contracts", auth, leasingController.CreateContract)
	leasing.GET("/contracts", auth, leasingController.ListContracts)
	leasing.GET("/contracts/:id", auth, leasingController.GetContract)
	leasing.PUT("/contracts/:id/status", auth, admin, leasingController.UpdateContractStatus)
	leasing.POST("/contracts/:id/sign", auth, leasingController.SignContract)

	cart := r.Group("/cart", auth)
	cart.GET("", cartController.GetCart)
	cart.POST("/items", cartController.AddItem)
	cart.PUT("/items/:id", cartController.UpdateItem)
	cart.DELETE("/items/:id", cartController.RemoveItem)

	orders := r.Group("/orders", auth)
	orders.POST("", ordersController.Checkout)
	orders.GET("", ordersController.ListOrders)
	orders.GET("/:id", ordersController.GetOrder)

	billing := r.Group("/billing", auth)
	billing.POST("/invoices", billingController.IssueInvoice)
	billing.GET("/invoices", billingController.ListInvoices)
	billing.GET("/invoices/:id", billingController.GetInvoice)
	billing.POST("/invoices/:id/payments", billingController.RecordPayment)

	shipping := r.Group("/shipping")
	shipping.GET("/methods", shippingController.ListMethods)
	shipping.GET("/track/:trackingNumber", shippingController.TrackShipment)
	shipping.POST("/methods", auth, admin, shippingController.CreateMethod)
	shipping.PUT("/methods/:id", auth, admin, shippingController.UpdateMethod)
	shipping.DELETE("/methods/:id", auth, admin, shippingController.DeleteMethod)
	shipping.POST("/shipments", auth, admin, shippingController.CreateShipment)
	shipping.GET("/contracts/:id/shipments", auth, shippingController.ListByContract)
	shipping.PUT("/track/:trackingNumber/status", auth, admin, shippingController.UpdateStatus)

	marketing := r.Group("/marketing")
	marketing.GET("/promotions", marketingController.ListPromotions)
	marketing.GET("/banners", marketingController.ListActiveBanners)
	marketing.GET("/coupons/:code/validate", marketingController.ValidateCoupon)
	marketing.POST("/coupons/:code/redeem", auth, marketingController.RedeemCoupon)
	marketing.POST("/promotions", auth, admin, marketingController.CreatePromotion)
	marketing.POST("/coupons", auth, admin, marketingController.CreateCoupon)
	marketing.POST("/campaigns", auth, admin, marketingController.CreateCampaign)
	marketing.POST("/campaigns/:id/send", auth, admin, marketingController.SendCampaign)
	marketing.POST("/banners", auth, admin, marketingController.CreateBanner)
}
