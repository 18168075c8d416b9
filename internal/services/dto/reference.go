package dto

type CreateGemstoneFamilyRequest struct {
	Name            string   `json:"name" binding:"required,max=100"`
	Category        *string  `json:"category"`
	MineralGroup    *string  `json:"mineral_group"`
	ChemicalFormula *string  `json:"chemical_formula"`
	HardnessMin     *float64 `json:"hardness_min" binding:"omitempty,gte=0,lte=10"`
	HardnessMax     *float64 `json:"hardness_max" binding:"omitempty,gte=0,lte=10"`
	RarityLevel     *string  `json:"rarity_level"`
	ValueCategory   *string  `json:"value_category"`
	Description     *string  `json:"description"`
}

type UpdateGemstoneFamilyRequest struct {
	Name            *string  `json:"name" binding:"omitempty,max=100"`
	Category        *string  `json:"category"`
	MineralGroup    *string  `json:"mineral_group"`
	ChemicalFormula *string  `json:"chemical_formula"`
	HardnessMin     *float64 `json:"hardness_min" binding:"omitempty,gte=0,lte=10"`
	HardnessMax     *float64 `json:"hardness_max" binding:"omitempty,gte=0,lte=10"`
	RarityLevel     *string  `json:"rarity_level"`
	ValueCategory   *string  `json:"value_category"`
	Description     *string  `json:"description"`
}
