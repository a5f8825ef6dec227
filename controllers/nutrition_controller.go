package controllers

import (
	"net/http"

	"github.com/mikespe/calcalc2.0/services"

	"github.com/gin-gonic/gin"
)

// NutritionSearch proxies the USDA FoodData Central API. ?q= runs a text
// search, ?fdcId= fetches detail for one food.
func NutritionSearch(c *gin.Context) {
	query := c.Query("q")
	fdcID := c.Query("fdcId")

	if query == "" && fdcID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": `Query parameter "q" or "fdcId" is required`})
		return
	}

	svc := services.NewNutritionService()

	var (
		raw []byte
		err error
	)
	if fdcID != "" {
		raw, err = svc.FoodDetail(fdcID)
	} else {
		raw, err = svc.SearchFoods(query)
	}
	if err != nil {
		internalError(c, err, "Failed to fetch nutrition data")
		return
	}

	c.Data(http.StatusOK, "application/json", raw)
}
