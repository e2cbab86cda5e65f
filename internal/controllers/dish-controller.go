package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/gin-meals-api/internal/models"
	"github.com/franciscosanchezn/gin-meals-api/internal/services"
	"github.com/gin-gonic/gin"
)

// DishController handles HTTP requests related to dishes
type DishController interface {
	// GetAllDishes retrieves all dishes keyed by ID
	GetAllDishes(c *gin.Context)
	// GetDish retrieves a dish by its ID or name
	GetDish(c *gin.Context)
	// CreateDish creates a new dish from its name
	CreateDish(c *gin.Context)
	// DeleteDish deletes a dish by its ID or name
	DeleteDish(c *gin.Context)
	// DeleteAllDishes rejects bulk deletion
	DeleteAllDishes(c *gin.Context)
}

type dishController struct {
	service services.CatalogService
}

// NewDishController creates a new instance of DishController
func NewDishController(service services.CatalogService) DishController {
	return &dishController{service: service}
}

// GetAllDishes godoc
// @Summary Get all dishes
// @Description Get every dish in the catalog as an object keyed by dish ID
// @Tags dishes
// @Produce json
// @Success 200 {object} map[string]models.Dish
// @Router /dishes [get]
func (c *dishController) GetAllDishes(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.service.ListDishes())
}

// GetDish godoc
// @Summary Get dish by ID or name
// @Description Get a single dish. Numeric keys are treated as IDs, anything else as a name.
// @Tags dishes
// @Produce json
// @Param key path string true "Dish ID or name"
// @Success 200 {object} models.Dish
// @Failure 404 {integer} integer "-5"
// @Router /dishes/{key} [get]
func (c *dishController) GetDish(ctx *gin.Context) {
	var (
		dish models.Dish
		err  error
	)
	if id, name, byID := pathKey(ctx); byID {
		dish, err = c.service.GetDishByID(id)
	} else {
		dish, err = c.service.GetDishByName(name)
	}
	if err != nil {
		respondError(ctx, http.StatusNotFound, err)
		return
	}
	ctx.JSON(http.StatusOK, dish)
}

// CreateDish godoc
// @Summary Create a new dish
// @Description Look up the nutrition values of the given name and store a new dish
// @Tags dishes
// @Accept json
// @Produce json
// @Param dish body models.DishRequest true "Dish name"
// @Success 201 {integer} integer "ID of the new dish"
// @Failure 415 {integer} integer "0"
// @Failure 422 {integer} integer "-1, -2, -3 or -4"
// @Router /dishes [post]
func (c *dishController) CreateDish(ctx *gin.Context) {
	if !requireJSON(ctx) {
		return
	}
	var req models.DishRequest
	if !bindBody(ctx, &req) {
		return
	}

	id, err := c.service.CreateDish(ctx.Request.Context(), req.Name)
	if err != nil {
		respondError(ctx, http.StatusUnprocessableEntity, err)
		return
	}
	ctx.JSON(http.StatusCreated, id)
}

// DeleteDish godoc
// @Summary Delete a dish
// @Description Delete a dish by its ID or name. Meals that used it keep their totals.
// @Tags dishes
// @Produce json
// @Param key path string true "Dish ID or name"
// @Success 200 {integer} integer "ID of the deleted dish"
// @Failure 404 {integer} integer "-5"
// @Router /dishes/{key} [delete]
func (c *dishController) DeleteDish(ctx *gin.Context) {
	var (
		id  int
		err error
	)
	if key, name, byID := pathKey(ctx); byID {
		id, err = c.service.DeleteDishByID(key)
	} else {
		id, err = c.service.DeleteDishByName(name)
	}
	if err != nil {
		respondError(ctx, http.StatusNotFound, err)
		return
	}
	ctx.JSON(http.StatusOK, id)
}

// DeleteAllDishes godoc
// @Summary Delete all dishes
// @Description Bulk deletion is not supported
// @Tags dishes
// @Produce json
// @Failure 405 {string} string "Not implemented"
// @Router /dishes [delete]
func (c *dishController) DeleteAllDishes(ctx *gin.Context) {
	notImplementedBulk(ctx)
}
