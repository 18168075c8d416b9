package repositories

import (
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"gemvault_backend/internal/models"
)

type PortfolioItemUpdateInput struct {
	Title        *string
	Description  *string
	GemstoneType *string
	CutType      *string
	ImageURLs    *[]string
}

type PortfolioRepository interface {
	Create(item *models.PortfolioItem) error
	FindByID(id uint) (*models.PortfolioItem, error)
	ListByCutterProfile(cutterProfileID uint) ([]models.PortfolioItem, error)

	// Update и Delete ограничены профилем владельца прямо в WHERE:
	// 0 затронутых строк означает "нет такой работы у этого огранщика",
	// без различия между "не существует" и "чужая".
	Update(id, cutterProfileID uint, input PortfolioItemUpdateInput) (int64, error)
	Delete(id, cutterProfileID uint) (int64, error)
}

type PortfolioRepositoryImpl struct {
	db *gorm.DB
}

func NewPortfolioRepository(db *gorm.DB) PortfolioRepository {
	return &PortfolioRepositoryImpl{db: db}
}

func (r *PortfolioRepositoryImpl) Create(item *models.PortfolioItem) error {
	return r.db.Create(item).Error
}

func (r *PortfolioRepositoryImpl) FindByID(id uint) (*models.PortfolioItem, error) {
	var item models.PortfolioItem
	err := r.db.First(&item, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *PortfolioRepositoryImpl) ListByCutterProfile(cutterProfileID uint) ([]models.PortfolioItem, error) {
	var items []models.PortfolioItem
	err := r.db.Where("cutter_profile_id = ?", cutterProfileID).
		Order("created_at DESC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *PortfolioRepositoryImpl) Update(id, cutterProfileID uint, input PortfolioItemUpdateInput) (int64, error) {
	updates := map[string]interface{}{
		"updated_at": time.Now(),
	}

	if input.Title != nil {
		updates["title"] = *input.Title
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.GemstoneType != nil {
		updates["gemstone_type"] = *input.GemstoneType
	}
	if input.CutType != nil {
		updates["cut_type"] = *input.CutType
	}
	if input.ImageURLs != nil {
		updates["image_urls"] = datatypes.NewJSONSlice(*input.ImageURLs)
	}

	result := r.db.Model(&models.PortfolioItem{}).
		Where("id = ? AND cutter_profile_id = ?", id, cutterProfileID).
		Updates(updates)
	return result.RowsAffected, result.Error
}

func (r *PortfolioRepositoryImpl) Delete(id, cutterProfileID uint) (int64, error) {
	result := r.db.Where("id = ? AND cutter_profile_id = ?", id, cutterProfileID).
		Delete(&models.PortfolioItem{})
	return result.RowsAffected, result.Error
}
