package cartcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/melochey/storefront-api/middleware"
	"github.com/melochey/storefront-api/notify"
	"github.com/melochey/storefront-api/store"
)

type PromoInput struct {
	Code string `json:"code" binding:"required"`
}

// POST /cart/promo
func ApplyPromoCode(notifier notify.Notifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input PromoInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		sess := middleware.GetSession(c)
		sess.Lock()
		defer sess.Unlock()

		percent, err := sess.Promo.Apply(input.Code)
		if err != nil {
			if errors.Is(err, store.ErrInvalidPromoCode) {
				notifier.PromoRejected(input.Code)
				c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid promo code"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to apply promo code"})
			return
		}

		notifier.PromoApplied(sess.Promo.ActiveCode(), percent)
		c.JSON(http.StatusOK, cartView(sess))
	}
}
