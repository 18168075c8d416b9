package models

import "gorm.io/datatypes"

// PortfolioItem - работа в портфолио огранщика.
// Принадлежность проверяется по CutterProfileID во всех запросах.
type PortfolioItem struct {
	BaseModel
	CutterProfileID uint                        `gorm:"not null;index" json:"cutter_profile_id"`
	Title           string                      `gorm:"size:255;not null" json:"title"`
	Description     *string                     `gorm:"type:text" json:"description"`
	GemstoneType    string                      `gorm:"size:100;not null" json:"gemstone_type"`
	CutType         string                      `gorm:"size:100;not null" json:"cut_type"`
	ImageURLs       datatypes.JSONSlice[string] `json:"image_urls"`
}

func (PortfolioItem) TableName() string {
	return "cutter_portfolio_items"
}
