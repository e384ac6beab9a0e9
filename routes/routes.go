package routes

import (
	"github.com/gin-gonic/gin"
	cartControllers "github.com/melochey/storefront-api/controllers/cart"
	productControllers "github.com/melochey/storefront-api/controllers/product"
	"github.com/melochey/storefront-api/middleware"
	"github.com/melochey/storefront-api/notify"
	"github.com/melochey/storefront-api/store"
)

// SetupRoutes is the single entry-point that wires the storefront
// endpoints onto the engine.
func SetupRoutes(r *gin.Engine, catalog *store.Catalog, sessions *store.Sessions, notifier notify.Notifier) {
	// ──────────────── Browse Catalog ────────────────
	r.GET("/products", productControllers.GetProducts(catalog))
	r.GET("/products/:id", productControllers.GetProductByID(catalog))
	r.GET("/products/export/excel", productControllers.ExportProductsToExcel(catalog))
	r.GET("/categories", productControllers.GetAllCategories(catalog))

	// ──────────────── Shopping Cart ────────────────
	cartGroup := r.Group("/cart")
	cartGroup.Use(middleware.CartSession(sessions))
	{
		cartGroup.GET("", cartControllers.GetCart())                                // GET /cart
		cartGroup.POST("", cartControllers.AddCartItem(catalog, notifier))          // POST /cart
		cartGroup.PUT("/:product_id", cartControllers.UpdateCartItemQuantity())     // PUT /cart/:product_id
		cartGroup.DELETE("/:product_id", cartControllers.DeleteCartItem())          // DELETE /cart/:product_id
		cartGroup.DELETE("", cartControllers.ClearCart())                           // DELETE /cart
		cartGroup.POST("/promo", cartControllers.ApplyPromoCode(notifier))          // POST /cart/promo
		cartGroup.GET("/export/excel", cartControllers.ExportCartToExcel(notifier)) // GET /cart/export/excel
		cartGroup.POST("/checkout", cartControllers.PlaceOrder(notifier))           // POST /cart/checkout
	}
}
