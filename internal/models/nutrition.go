package models

import (
	"time"
)

// NutritionTotals holds nutrition values summed over every entry the upstream
// service returned for a food name
type NutritionTotals struct {
	Name                string  `json:"name"`
	Calories            float64 `json:"calories"`
	ServingSizeG        float64 `json:"serving_size_g"`
	FatTotalG           float64 `json:"fat_total_g"`
	FatSaturatedG       float64 `json:"fat_saturated_g"`
	ProteinG            float64 `json:"protein_g"`
	SodiumMg            float64 `json:"sodium_mg"`
	PotassiumMg         float64 `json:"potassium_mg"`
	CholesterolMg       float64 `json:"cholesterol_mg"`
	CarbohydratesTotalG float64 `json:"carbohydrates_total_g"`
	FiberG              float64 `json:"fiber_g"`
	SugarG              float64 `json:"sugar_g"`
	// Entries is the number of upstream entries that were summed
	Entries int `json:"-"`
}

// Add accumulates other into t. The name of t is kept.
func (t *NutritionTotals) Add(other NutritionTotals) {
	t.Calories += other.Calories
	t.ServingSizeG += other.ServingSizeG
	t.FatTotalG += other.FatTotalG
	t.FatSaturatedG += other.FatSaturatedG
	t.ProteinG += other.ProteinG
	t.SodiumMg += other.SodiumMg
	t.PotassiumMg += other.PotassiumMg
	t.CholesterolMg += other.CholesterolMg
	t.CarbohydratesTotalG += other.CarbohydratesTotalG
	t.FiberG += other.FiberG
	t.SugarG += other.SugarG
	t.Entries++
}

// NutritionRecord is a cached upstream lookup
type NutritionRecord struct {
	Name                string `gorm:"primaryKey"`
	Calories            float64
	ServingSizeG        float64
	FatTotalG           float64
	FatSaturatedG       float64
	ProteinG            float64
	SodiumMg            float64
	PotassiumMg         float64
	CholesterolMg       float64
	CarbohydratesTotalG float64
	FiberG              float64
	SugarG              float64
	Entries             int
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func (NutritionRecord) TableName() string {
	return "nutrition_records"
}

// NewNutritionRecord converts lookup totals to their cached form
func NewNutritionRecord(t NutritionTotals) NutritionRecord {
	return NutritionRecord{
		Name:                t.Name,
		Calories:            t.Calories,
		ServingSizeG:        t.ServingSizeG,
		FatTotalG:           t.FatTotalG,
		FatSaturatedG:       t.FatSaturatedG,
		ProteinG:            t.ProteinG,
		SodiumMg:            t.SodiumMg,
		PotassiumMg:         t.PotassiumMg,
		CholesterolMg:       t.CholesterolMg,
		CarbohydratesTotalG: t.CarbohydratesTotalG,
		FiberG:              t.FiberG,
		SugarG:              t.SugarG,
		Entries:             t.Entries,
	}
}

// Totals converts a cached record back to lookup totals
func (r NutritionRecord) Totals() NutritionTotals {
	return NutritionTotals{
		Name:                r.Name,
		Calories:            r.Calories,
		ServingSizeG:        r.ServingSizeG,
		FatTotalG:           r.FatTotalG,
		FatSaturatedG:       r.FatSaturatedG,
		ProteinG:            r.ProteinG,
		SodiumMg:            r.SodiumMg,
		PotassiumMg:         r.PotassiumMg,
		CholesterolMg:       r.CholesterolMg,
		CarbohydratesTotalG: r.CarbohydratesTotalG,
		FiberG:              r.FiberG,
		SugarG:              r.SugarG,
		Entries:             r.Entries,
	}
}
