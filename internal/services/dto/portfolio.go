package dto

// Работа в портфолио всегда несет хотя бы одно изображение
type CreatePortfolioItemRequest struct {
	Title        string   `json:"title" binding:"required,max=255"`
	Description  *string  `json:"description"`
	GemstoneType string   `json:"gemstone_type" binding:"required,max=100"`
	CutType      string   `json:"cut_type" binding:"required,max=100"`
	ImageURLs    []string `json:"image_urls" binding:"required,min=1"`
}

type UpdatePortfolioItemRequest struct {
	Title        *string   `json:"title" binding:"omitempty,max=255"`
	Description  *string   `json:"description"`
	GemstoneType *string   `json:"gemstone_type" binding:"omitempty,max=100"`
	CutType      *string   `json:"cut_type" binding:"omitempty,max=100"`
	ImageURLs    *[]string `json:"image_urls" binding:"omitempty,min=1"`
}
