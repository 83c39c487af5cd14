package http

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

func (h *Handler) createMeal(c *gin.Context) {
	var body struct {
		Name       string  `json:"name"`
		Cuisine    string  `json:"cuisine"`
		Price      float64 `json:"price"`
		Difficulty string  `json:"difficulty"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	meal, err := h.services.Meals.CreateMeal(body.Name, body.Cuisine, body.Price, body.Difficulty)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(201, meal)
}

func (h *Handler) deleteMeal(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid meal id"})
		return
	}

	if err := h.services.Meals.DeleteMeal(id); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(200, gin.H{"status": "meal deleted"})
}

func (h *Handler) getMealByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid meal id"})
		return
	}

	meal, err := h.services.Meals.GetMealByID(id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(200, meal)
}

func (h *Handler) getMealByName(c *gin.Context) {
	meal, err := h.services.Meals.GetMealByName(c.Param("name"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(200, meal)
}

func (h *Handler) initMeals(c *gin.Context) {
	if err := h.services.Meals.WipeAll(); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(200, gin.H{"status": "meals wiped"})
}

func (h *Handler) leaderboard(c *gin.Context) {
	entries, err := h.services.Meals.Leaderboard(c.Query("sort"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(200, gin.H{"leaderboard": entries})
}

func (h *Handler) leaderboardExcel(c *gin.Context) {
	report, err := h.services.Meals.ExcelReport(c.Query("sort"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "leaderboard.xlsx"))
	c.Data(200, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", report)
}

func (h *Handler) leaderboardSync(c *gin.Context) {
	url, err := h.services.Meals.SyncLeaderboard()
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(200, gin.H{"url": url})
}
