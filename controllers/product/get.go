package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/melochey/storefront-api/models"
	"github.com/melochey/storefront-api/store"
)

// GET /products?search=&category=
func GetProducts(catalog *store.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		search := c.Query("search")
		category := c.DefaultQuery("category", models.CategoryAll)

		products := catalog.Filter(search, category)
		c.JSON(http.StatusOK, products)
	}
}

// GetProductByID returns a single product.
// URL param: /products/:id
func GetProductByID(catalog *store.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		product, ok := catalog.Product(id)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// GetAllCategories returns the fixed category list, "all" tab included.
func GetAllCategories(catalog *store.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, catalog.Categories())
	}
}
