package models

// Dish represents a named food with the nutrition values captured when it was created
type Dish struct {
	ID     int     `json:"ID"`
	Name   string  `json:"name"`
	Cal    float64 `json:"cal"`
	Size   float64 `json:"size"`
	Sodium float64 `json:"sodium"`
	Sugar  float64 `json:"sugar"`
}

// NewDish builds a Dish from the aggregated totals returned by the nutrition lookup
func NewDish(id int, name string, totals NutritionTotals) Dish {
	return Dish{
		ID:     id,
		Name:   name,
		Cal:    totals.Calories,
		Size:   totals.ServingSizeG,
		Sodium: totals.SodiumMg,
		Sugar:  totals.SugarG,
	}
}
