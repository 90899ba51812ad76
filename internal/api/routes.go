package api

import (
	"github.com/labstack/echo/v4"

	"ecommerce-backend/internal/entity"
)

type Handlers struct {
	Admin    *AdminHandler
	Customer *CustomerHandler
	Provider *ProviderHandler
}

// RegisterRoutes wires the three role-scoped route families under /api/v1.
// Register and login are public; everything else sits behind the JWT
// middleware plus the role gate for its family.
func RegisterRoutes(e *echo.Echo, h Handlers, secret []byte) {
	v1 := e.Group("/api/v1")
	jwt := JWTMiddleware(secret)

	admin := v1.Group("/admin")
	admin.POST("/auth/register", h.Admin.Register)
	admin.POST("/auth/login", h.Admin.Login)

	adminOnly := admin.Group("", jwt, RequireRole(entity.RoleAdmin))
	adminOnly.GET("/auth/profile", h.Admin.GetProfile)
	adminOnly.PUT("/auth/profile", h.Admin.UpdateProfile)
	adminOnly.GET("/dashboard/users", h.Admin.ListUsers)
	adminOnly.POST("/dashboard/users", h.Admin.CreateUser)
	adminOnly.GET("/dashboard/users/:user_id", h.Admin.GetUser)
	adminOnly.PUT("/dashboard/users/:user_id", h.Admin.UpdateUser)
	adminOnly.DELETE("/dashboard/users/:user_id", h.Admin.DeleteUser)
	adminOnly.GET("/dashboard/orders", h.Admin.ListOrders)
	adminOnly.POST("/dashboard/orders", h.Admin.CreateOrder)
	adminOnly.GET("/dashboard/orders/:order_id", h.Admin.GetOrder)
	adminOnly.PUT("/dashboard/orders/:order_id", h.Admin.UpdateOrder)
	adminOnly.DELETE("/dashboard/orders/:order_id", h.Admin.DeleteOrder)

	customer := v1.Group("/customer")
	customer.POST("/auth/register", h.Customer.Register)
	customer.POST("/auth/login", h.Customer.Login)

	customerOnly := customer.Group("", jwt, RequireRole(entity.RoleCustomer))
	customerOnly.GET("/auth/profile", h.Customer.GetProfile)
	customerOnly.PUT("/auth/profile", h.Customer.UpdateProfile)
	customerOnly.POST("/order", h.Customer.PlaceOrder)
	customerOnly.GET("/wishlist", h.Customer.GetWishlist)
	customerOnly.POST("/wishlist", h.Customer.AddToWishlist)
	customerOnly.DELETE("/wishlist", h.Customer.RemoveFromWishlist)
	customerOnly.GET("/invoice/:order_id", h.Customer.DownloadInvoice)

	provider := v1.Group("/service_provider")
	provider.POST("/auth/register", h.Provider.Register)
	provider.POST("/auth/login", h.Provider.Login)

	providerOnly := provider.Group("", jwt, RequireRole(entity.RoleProvider))
	providerOnly.GET("/auth/profile", h.Provider.GetProfile)
	providerOnly.PUT("/auth/profile", h.Provider.UpdateProfile)
	providerOnly.GET("/orders", h.Provider.ListOrders)
	providerOnly.PUT("/orders/:order_id/status", h.Provider.UpdateOrderStatus)
	providerOnly.GET("/notifications", h.Provider.ListNotifications)
	providerOnly.POST("/notifications", h.Provider.CreateNotification)
	providerOnly.POST("/products", h.Provider.AddProduct)
	providerOnly.GET("/products", h.Provider.ListProducts)
	providerOnly.PUT("/products/:product_id", h.Provider.UpdateProduct)
	providerOnly.DELETE("/products/:product_id", h.Provider.DeleteProduct)
}
