package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/franciscosanchezn/gin-meals-api/internal/models"
	"github.com/franciscosanchezn/gin-meals-api/internal/repository"
	"github.com/franciscosanchezn/gin-meals-api/internal/services"
	"github.com/gin-gonic/gin"
)

// MealController handles HTTP requests related to meals
type MealController interface {
	// GetAllMeals retrieves all meals keyed by ID
	GetAllMeals(c *gin.Context)
	// GetMeal retrieves a meal by its ID or name
	GetMeal(c *gin.Context)
	// CreateMeal creates a new meal from three dish IDs
	CreateMeal(c *gin.Context)
	// UpdateMeal replaces the name and dishes of a meal
	UpdateMeal(c *gin.Context)
	// DeleteMeal deletes a meal by its ID or name
	DeleteMeal(c *gin.Context)
	// DeleteAllMeals rejects bulk deletion
	DeleteAllMeals(c *gin.Context)
}

type mealController struct {
	service services.CatalogService
}

// NewMealController creates a new instance of MealController
func NewMealController(service services.CatalogService) MealController {
	return &mealController{service: service}
}

// GetAllMeals godoc
// @Summary Get all meals
// @Description Get every meal in the catalog as an object keyed by meal ID
// @Tags meals
// @Produce json
// @Success 200 {object} map[string]models.Meal
// @Router /meals [get]
func (c *mealController) GetAllMeals(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.service.ListMeals())
}

// GetMeal godoc
// @Summary Get meal by ID or name
// @Description Get a single meal. Numeric keys are treated as IDs, anything else as a name.
// @Tags meals
// @Produce json
// @Param key path string true "Meal ID or name"
// @Success 200 {object} models.Meal
// @Failure 404 {integer} integer "-5"
// @Router /meals/{key} [get]
func (c *mealController) GetMeal(ctx *gin.Context) {
	var (
		meal models.Meal
		err  error
	)
	if id, name, byID := pathKey(ctx); byID {
		meal, err = c.service.GetMealByID(id)
	} else {
		meal, err = c.service.GetMealByName(name)
	}
	if err != nil {
		respondError(ctx, http.StatusNotFound, err)
		return
	}
	ctx.JSON(http.StatusOK, meal)
}

// CreateMeal godoc
// @Summary Create a new meal
// @Description Create a meal from an appetizer, a main and a dessert. Totals are summed from the dishes.
// @Tags meals
// @Accept json
// @Produce json
// @Param meal body models.MealRequest true "Meal name and dish IDs"
// @Success 201 {integer} integer "ID of the new meal"
// @Failure 415 {integer} integer "0"
// @Failure 422 {integer} integer "-1, -2 or -6"
// @Router /meals [post]
func (c *mealController) CreateMeal(ctx *gin.Context) {
	if !requireJSON(ctx) {
		return
	}
	var req models.MealRequest
	if !bindBody(ctx, &req) {
		return
	}

	id, err := c.service.CreateMeal(req.Name, *req.Appetizer, *req.Main, *req.Dessert)
	if err != nil {
		respondError(ctx, http.StatusUnprocessableEntity, err)
		return
	}
	ctx.JSON(http.StatusCreated, id)
}

// UpdateMeal godoc
// @Summary Update a meal
// @Description Rename a meal and replace its dishes. Totals are recomputed from the new dishes.
// @Tags meals
// @Accept json
// @Produce json
// @Param id path int true "Meal ID"
// @Param meal body models.MealRequest true "Meal name and dish IDs"
// @Success 200 {integer} integer "ID of the updated meal"
// @Failure 404 {integer} integer "-5"
// @Failure 415 {integer} integer "0"
// @Failure 422 {integer} integer "-1, -2 or -6"
// @Router /meals/{id} [put]
func (c *mealController) UpdateMeal(ctx *gin.Context) {
	if !requireJSON(ctx) {
		return
	}
	var req models.MealRequest
	if !bindBody(ctx, &req) {
		return
	}

	mealID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, models.CodeNotFound)
		return
	}

	id, err := c.service.UpdateMeal(mealID, req.Name, *req.Appetizer, *req.Main, *req.Dessert)
	if err != nil {
		status := http.StatusUnprocessableEntity
		if errors.Is(err, repository.ErrNotFound) {
			status = http.StatusNotFound
		}
		respondError(ctx, status, err)
		return
	}
	ctx.JSON(http.StatusOK, id)
}

// DeleteMeal godoc
// @Summary Delete a meal
// @Description Delete a meal by its ID or name
// @Tags meals
// @Produce json
// @Param key path string true "Meal ID or name"
// @Success 200 {integer} integer "ID of the deleted meal"
// @Failure 404 {integer} integer "-5"
// @Router /meals/{key} [delete]
func (c *mealController) DeleteMeal(ctx *gin.Context) {
	var (
		id  int
		err error
	)
	if key, name, byID := pathKey(ctx); byID {
		id, err = c.service.DeleteMealByID(key)
	} else {
		id, err = c.service.DeleteMealByName(name)
	}
	if err != nil {
		respondError(ctx, http.StatusNotFound, err)
		return
	}
	ctx.JSON(http.StatusOK, id)
}

// DeleteAllMeals godoc
// @Summary Delete all meals
// @Description Bulk deletion is not supported
// @Tags meals
// @Produce json
// @Failure 405 {string} string "Not implemented"
// @Router /meals [delete]
func (c *mealController) DeleteAllMeals(ctx *gin.Context) {
	notImplementedBulk(ctx)
}
