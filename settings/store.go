package settings

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"restaurant-pos/models"
)

// Load reads all stored overrides and resolves them against the defaults
func Load(ctx context.Context, db *gorm.DB) (Values, error) {
	var stored []models.Setting
	if err := db.WithContext(ctx).Order("key").Find(&stored).Error; err != nil {
		return nil, fmt.Errorf("list settings: %w", err)
	}
	return Resolve(stored), nil
}

// Save upserts every pair in one transaction
func Save(ctx context.Context, db *gorm.DB, pairs []models.Setting) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, p := range pairs {
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "key"}},
				DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
			}).Create(&p).Error
			if err != nil {
				return fmt.Errorf("save setting %s: %w", p.Key, err)
			}
		}
		return nil
	})
}

// Reset drops every stored override
func Reset(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).Where("1 = 1").Delete(&models.Setting{}).Error; err != nil {
		return fmt.Errorf("reset settings: %w", err)
	}
	return nil
}
