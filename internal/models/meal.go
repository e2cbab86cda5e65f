package models

// Meal represents a composition of three dishes.
// Cal, Sodium and Sugar are summed from the referenced dishes when the meal is
// created or updated and are not recomputed afterwards.
type Meal struct {
	ID        int     `json:"ID"`
	Name      string  `json:"name"`
	Appetizer int     `json:"appetizer"`
	Main      int     `json:"main"`
	Dessert   int     `json:"dessert"`
	Cal       float64 `json:"cal"`
	Sodium    float64 `json:"sodium"`
	Sugar     float64 `json:"sugar"`
}

// NewMeal builds a Meal snapshot from its three resolved dishes
func NewMeal(id int, name string, appetizer, main, dessert Dish) Meal {
	return Meal{
		ID:        id,
		Name:      name,
		Appetizer: appetizer.ID,
		Main:      main.ID,
		Dessert:   dessert.ID,
		Cal:       appetizer.Cal + main.Cal + dessert.Cal,
		Sodium:    appetizer.Sodium + main.Sodium + dessert.Sodium,
		Sugar:     appetizer.Sugar + main.Sugar + dessert.Sugar,
	}
}

// MealRequest is the payload accepted when creating or updating a meal
type MealRequest struct {
	Name      string `json:"name" binding:"required"`
	Appetizer *int   `json:"appetizer" binding:"required"`
	Main      *int   `json:"main" binding:"required"`
	Dessert   *int   `json:"dessert" binding:"required"`
}

// DishRequest is the payload accepted when creating a dish
type DishRequest struct {
	Name string `json:"name" binding:"required"`
}
