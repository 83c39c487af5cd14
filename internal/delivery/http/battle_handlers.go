package http

import (
	"github.com/gin-gonic/gin"
)

func (h *Handler) prepCombatant(c *gin.Context) {
	var body struct {
		Meal string `json:"meal"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	meal, err := h.services.Meals.GetMealByName(body.Meal)
	if err != nil {
		abortWithError(c, err)
		return
	}

	if err := h.services.Battles.PrepCombatant(meal); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(200, gin.H{"combatants": h.services.Battles.Combatants()})
}

func (h *Handler) getCombatants(c *gin.Context) {
	c.JSON(200, gin.H{"combatants": h.services.Battles.Combatants()})
}

func (h *Handler) clearCombatants(c *gin.Context) {
	h.services.Battles.ClearCombatants()
	c.JSON(200, gin.H{"status": "combatants cleared"})
}

func (h *Handler) battle(c *gin.Context) {
	winner, err := h.services.Battles.Battle()
	if err != nil {
		abortWithError(c, err)
		return
	}
	h.logger.Info("battle finished", "winner", winner)
	c.JSON(200, gin.H{"winner": winner})
}
