package controllers

import (
	"github.com/franciscosanchezn/gin-meals-api/internal/services"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the dish and meal endpoints on router
func RegisterRoutes(router gin.IRouter, service services.CatalogService) {
	dishController := NewDishController(service)
	mealController := NewMealController(service)

	dishes := router.Group("/dishes")
	{
		dishes.GET("", dishController.GetAllDishes)
		dishes.POST("", dishController.CreateDish)
		dishes.DELETE("", dishController.DeleteAllDishes)
		dishes.GET("/:key", dishController.GetDish)
		dishes.DELETE("/:key", dishController.DeleteDish)
	}

	meals := router.Group("/meals")
	{
		meals.GET("", mealController.GetAllMeals)
		meals.POST("", mealController.CreateMeal)
		meals.DELETE("", mealController.DeleteAllMeals)
		meals.GET("/:key", mealController.GetMeal)
		meals.DELETE("/:key", mealController.DeleteMeal)
		meals.PUT("/:id", mealController.UpdateMeal)
	}
}
