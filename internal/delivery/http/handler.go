package http

import (
	"errors"

	"mealmax/internal/application"
	"mealmax/internal/models"
	"mealmax/internal/repository"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	services *application.Service
	logger   application.Logger
}

func NewHandler(services *application.Service, logger application.Logger) *Handler {
	return &Handler{
		services: services,
		logger:   logger,
	}
}

func (h *Handler) InitRoutes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	api := r.Group("/api")
	{
		api.GET("/health", h.health)

		api.POST("/create-meal", h.createMeal)
		api.DELETE("/delete-meal/:id", h.deleteMeal)
		api.GET("/get-meal-by-id/:id", h.getMealByID)
		api.GET("/get-meal-by-name/:name", h.getMealByName)
		api.POST("/init-meals", h.initMeals)

		api.POST("/prep-combatant", h.prepCombatant)
		api.GET("/get-combatants", h.getCombatants)
		api.POST("/clear-combatants", h.clearCombatants)
		api.POST("/battle", h.battle)

		api.GET("/leaderboard", h.leaderboard)
		api.GET("/leaderboard/excel", h.leaderboardExcel)
		api.POST("/leaderboard/sync", h.leaderboardSync)
	}

	return r
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(200, gin.H{"status": "healthy"})
}

// errorStatus maps service errors onto HTTP status codes: missing or
// deleted meals are 404, validation and arena-state problems are 400,
// anything else is a 500.
func errorStatus(err error) int {
	var ve models.ValidationError
	switch {
	case errors.Is(err, repository.ErrMealNotFound),
		errors.Is(err, repository.ErrMealDeleted):
		return 404
	case errors.Is(err, repository.ErrMealExists),
		errors.Is(err, application.ErrCombatantsFull),
		errors.Is(err, application.ErrInsufficientCombatants),
		errors.As(err, &ve):
		return 400
	default:
		return 500
	}
}

func abortWithError(c *gin.Context, err error) {
	c.JSON(errorStatus(err), gin.H{"error": err.Error()})
}
