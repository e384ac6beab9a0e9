package cartcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/melochey/storefront-api/export"
	"github.com/melochey/storefront-api/middleware"
	"github.com/melochey/storefront-api/notify"
	"github.com/melochey/storefront-api/store"
)

// GET /cart/export/excel
func ExportCartToExcel(notifier notify.Notifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := middleware.GetSession(c)
		sess.Lock()
		defer sess.Unlock()

		items := sess.Cart.Items()
		snapshot := store.Price(sess.Cart, sess.Promo.Active())

		rows, err := export.CartRows(items, snapshot)
		if err != nil {
			if errors.Is(err, export.ErrEmptyCartExport) {
				notifier.CartEmptyOnExport()
				c.JSON(http.StatusConflict, gin.H{"error": "Cart is empty"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build cart export"})
			return
		}

		// Set response headers for download
		c.Header("Content-Disposition", "attachment; filename=order.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := export.WriteXLSX(c.Writer, "Order", rows); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
