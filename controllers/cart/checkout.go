package cartcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/melochey/storefront-api/middleware"
	"github.com/melochey/storefront-api/notify"
	"github.com/melochey/storefront-api/store"
)

// POST /cart/checkout
//
// Placing an order only emits the order-placed notification; the cart is
// deliberately left intact and the client decides whether to clear it.
func PlaceOrder(notifier notify.Notifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := middleware.GetSession(c)
		sess.Lock()
		defer sess.Unlock()

		if sess.Cart.Len() == 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "Cart is empty"})
			return
		}

		snapshot := store.Price(sess.Cart, sess.Promo.Active())
		notifier.OrderPlaced(snapshot)

		c.JSON(http.StatusOK, gin.H{
			"message": "Order placed",
			"pricing": snapshot,
		})
	}
}
