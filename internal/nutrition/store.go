package nutrition

import (
	"context"
	"errors"

	"github.com/franciscosanchezn/gin-meals-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStore is a Store backed by a gorm database
type GormStore struct {
	db *gorm.DB
}

var _ Store = (*GormStore)(nil)

// NewGormStore creates a store on db and migrates its table
func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&models.NutritionRecord{}); err != nil {
		return nil, err
	}
	return &GormStore{db: db}, nil
}

func (s *GormStore) Get(ctx context.Context, name string) (models.NutritionTotals, bool, error) {
	var record models.NutritionRecord
	err := s.db.WithContext(ctx).Where("name = ?", name).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.NutritionTotals{}, false, nil
	}
	if err != nil {
		return models.NutritionTotals{}, false, err
	}
	return record.Totals(), true, nil
}

func (s *GormStore) Put(ctx context.Context, totals models.NutritionTotals) error {
	record := models.NewNutritionRecord(totals)
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(&record).Error
}

// Count returns the number of cached lookups
func (s *GormStore) Count(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.NutritionRecord{}).Count(&count).Error
	return count, err
}
