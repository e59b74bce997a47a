package routes

import (
	"bakehouse/handlers"
	"bakehouse/middleware"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups the handlers wired in main.
type HandlerBundle struct {
	Availability *handlers.AvailabilityHandler
	Orders       *handlers.OrderHandler
	Admin        *handlers.AdminHandler
	Products     *handlers.ProductHandler
	Auth         *handlers.AuthHandler
	Storage      *handlers.StorageHandler
}

// RegisterRoutes registers all endpoints on the router.
func RegisterRoutes(r *gin.Engine, b *HandlerBundle) {
	api := r.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", b.Auth.Register)
		auth.POST("/signin", b.Auth.SignIn)
		auth.POST("/signout", middleware.AuthMiddleware(), b.Auth.SignOut)
		auth.PUT("/fcm-token", middleware.AuthMiddleware(), b.Auth.UpdateFCMToken)
	}

	availability := api.Group("/availability")
	{
		availability.GET("/slots", b.Availability.GetTimeSlots)
		availability.GET("/check", b.Availability.CheckDateTime)
		availability.GET("/calendar", b.Availability.GetCalendar)
	}

	products := api.Group("/products")
	{
		products.GET("", b.Products.ListProducts)
		products.GET("/:productID", b.Products.GetProduct)
	}

	orders := api.Group("/orders", middleware.AuthMiddleware())
	{
		orders.POST("", b.Orders.CreateOrder)
		orders.GET("", b.Orders.ListMyOrders)
		orders.GET("/:orderID", b.Orders.GetOrder)
		orders.POST("/:orderID/cancel", b.Orders.CancelOrder)
	}

	storage := api.Group("/storage", middleware.AuthMiddleware())
	{
		storage.POST("/designs", b.Storage.UploadDesign)
	}

	admin := api.Group("/admin", middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.GET("/orders", b.Admin.ListOrders)
		admin.POST("/orders/:orderID/approve", b.Admin.ApproveOrder)
		admin.POST("/orders/:orderID/deliver", b.Admin.DeliverOrder)
		admin.POST("/orders/:orderID/paid", b.Admin.MarkOrderPaid)

		admin.GET("/blocks", b.Admin.ListBlocks)
		admin.POST("/blocks", b.Admin.CreateBlock)
		admin.DELETE("/blocks/:blockID", b.Admin.DeleteBlock)

		admin.POST("/products", b.Products.CreateProduct)
		admin.PUT("/products/:productID", b.Products.UpdateProduct)
		admin.DELETE("/products/:productID", b.Products.DeleteProduct)
		admin.POST("/storage/products", b.Storage.UploadProductImage)
	}
}
