package database

import (
	"errors"

	"gorm.io/gorm"

	"gemvault_backend/internal/models"
)

// Migrate выполняет автомиграцию схемы и сидирует справочники
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Role{},
		&models.User{},
		&models.CutterProfile{},
		&models.DealerProfile{},
		&models.AppraiserProfile{},
		&models.PortfolioItem{},
		&models.GemstoneFamily{},
		&models.CuttingSkill{},
		&models.CutterSkill{},
	); err != nil {
		return err
	}

	if err := seedRoles(db); err != nil {
		return err
	}
	return seedCuttingSkills(db)
}

func seedRoles(db *gorm.DB) error {
	for _, role := range models.AllRoles {
		var existing models.Role
		err := db.First(&existing, "name = ?", string(role)).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := db.Create(&models.Role{Name: string(role)}).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedCuttingSkills(db *gorm.DB) error {
	skills := []string{
		"Faceting",
		"Cabochon Cutting",
		"Carving",
		"Fantasy Cutting",
		"Inlay Work",
		"Polishing",
		"Repair and Recutting",
	}

	for _, name := range skills {
		var existing models.CuttingSkill
		err := db.First(&existing, "name = ?", name).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := db.Create(&models.CuttingSkill{Name: name}).Error; err != nil {
			return err
		}
	}
	return nil
}
