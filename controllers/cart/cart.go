package cartcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/melochey/storefront-api/middleware"
	"github.com/melochey/storefront-api/notify"
	"github.com/melochey/storefront-api/store"
)

type AddItemInput struct {
	ProductID int `json:"product_id" binding:"required"`
}

type QuantityInput struct {
	Delta int `json:"delta" binding:"required"`
}

// cartView is the JSON shape every cart endpoint responds with, so the
// client always sees items and totals from the same moment.
func cartView(sess *store.Session) gin.H {
	return gin.H{
		"items":      sess.Cart.Items(),
		"item_count": sess.Cart.ItemCount(),
		"promo_code": sess.Promo.ActiveCode(),
		"pricing":    store.Price(sess.Cart, sess.Promo.Active()),
	}
}

// GET /cart
func GetCart() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := middleware.GetSession(c)
		sess.Lock()
		defer sess.Unlock()

		c.JSON(http.StatusOK, cartView(sess))
	}
}

// POST /cart
func AddCartItem(catalog *store.Catalog, notifier notify.Notifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product, ok := catalog.Product(input.ProductID)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product does not exist"})
			return
		}

		sess := middleware.GetSession(c)
		sess.Lock()
		defer sess.Unlock()

		sess.Cart.Add(product)
		notifier.ItemAdded(product)

		c.JSON(http.StatusCreated, cartView(sess))
	}
}

// PUT /cart/:product_id
func UpdateCartItemQuantity() gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, ok := productIDParam(c)
		if !ok {
			return
		}

		var input QuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		sess := middleware.GetSession(c)
		sess.Lock()
		defer sess.Unlock()

		// Unknown ids are silently ignored so a double-click on a line
		// that was already removed stays harmless.
		sess.Cart.UpdateQuantity(productID, input.Delta)

		c.JSON(http.StatusOK, cartView(sess))
	}
}

// DELETE /cart/:product_id
func DeleteCartItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, ok := productIDParam(c)
		if !ok {
			return
		}

		sess := middleware.GetSession(c)
		sess.Lock()
		defer sess.Unlock()

		sess.Cart.Remove(productID)

		c.JSON(http.StatusOK, cartView(sess))
	}
}

// DELETE /cart
func ClearCart() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := middleware.GetSession(c)
		sess.Lock()
		defer sess.Unlock()

		sess.Cart.Clear()
		sess.Promo.Reset()

		c.JSON(http.StatusOK, cartView(sess))
	}
}
