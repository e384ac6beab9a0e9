package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/melochey/storefront-api/export"
	"github.com/melochey/storefront-api/store"
)

// GET /products/export/excel
func ExportProductsToExcel(catalog *store.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		rows := export.CatalogRows(catalog)

		// Set response headers for download
		c.Header("Content-Disposition", "attachment; filename=catalog.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := export.WriteXLSX(c.Writer, "Products", rows); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
