package cartcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// productIDParam parses the :product_id URL param, writing the error
// response itself on failure.
func productIDParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("product_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return 0, false
	}
	return id, true
}
