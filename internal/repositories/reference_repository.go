package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"gemvault_backend/internal/models"
)

type GemstoneFamilyUpdateInput struct {
	Name            *string
	Category        *string
	MineralGroup    *string
	ChemicalFormula *string
	HardnessMin     *float64
	HardnessMax     *float64
	RarityLevel     *string
	ValueCategory   *string
	Description     *string
}

type ReferenceRepository interface {
	ListFamilies() ([]models.GemstoneFamily, error)
	FindFamilyByID(id uint) (*models.GemstoneFamily, error)
	FindFamilyByName(name string) (*models.GemstoneFamily, error)
	CreateFamily(family *models.GemstoneFamily) error
	UpdateFamily(id uint, input GemstoneFamilyUpdateInput) (int64, error)
	DeleteFamily(id uint) (int64, error)

	ListSkills() ([]models.CuttingSkill, error)
}

type ReferenceRepositoryImpl struct {
	db *gorm.DB
}

func NewReferenceRepository(db *gorm.DB) ReferenceRepository {
	return &ReferenceRepositoryImpl{db: db}
}

func (r *ReferenceRepositoryImpl) ListFamilies() ([]models.GemstoneFamily, error) {
	var families []models.GemstoneFamily
	err := r.db.Order("name").Find(&families).Error
	if err != nil {
		return nil, err
	}
	return families, nil
}

func (r *ReferenceRepositoryImpl) FindFamilyByID(id uint) (*models.GemstoneFamily, error) {
	var family models.GemstoneFamily
	err := r.db.First(&family, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &family, nil
}

func (r *ReferenceRepositoryImpl) FindFamilyByName(name string) (*models.GemstoneFamily, error) {
	var family models.GemstoneFamily
	err := r.db.First(&family, "name = ?", name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &family, nil
}

func (r *ReferenceRepositoryImpl) CreateFamily(family *models.GemstoneFamily) error {
	return r.db.Create(family).Error
}

func (r *ReferenceRepositoryImpl) UpdateFamily(id uint, input GemstoneFamilyUpdateInput) (int64, error) {
	updates := map[string]interface{}{
		"updated_at": time.Now(),
	}

	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Category != nil {
		updates["category"] = *input.Category
	}
	if input.MineralGroup != nil {
		updates["mineral_group"] = *input.MineralGroup
	}
	if input.ChemicalFormula != nil {
		updates["chemical_formula"] = *input.ChemicalFormula
	}
	if input.HardnessMin != nil {
		updates["hardness_min"] = *input.HardnessMin
	}
	if input.HardnessMax != nil {
		updates["hardness_max"] = *input.HardnessMax
	}
	if input.RarityLevel != nil {
		updates["rarity_level"] = *input.RarityLevel
	}
	if input.ValueCategory != nil {
		updates["value_category"] = *input.ValueCategory
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}

	result := r.db.Model(&models.GemstoneFamily{}).Where("id = ?", id).Updates(updates)
	return result.RowsAffected, result.Error
}

func (r *ReferenceRepositoryImpl) DeleteFamily(id uint) (int64, error) {
	result := r.db.Delete(&models.GemstoneFamily{}, id)
	return result.RowsAffected, result.Error
}

func (r *ReferenceRepositoryImpl) ListSkills() ([]models.CuttingSkill, error) {
	var skills []models.CuttingSkill
	err := r.db.Order("id").Find(&skills).Error
	if err != nil {
		return nil, err
	}
	return skills, nil
}
