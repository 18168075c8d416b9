package models

// GemstoneFamily - справочник семейств камней (корунд, берилл и т.д.)
type GemstoneFamily struct {
	BaseModel
	Name            string   `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Category        *string  `gorm:"size:100" json:"category"`
	MineralGroup    *string  `gorm:"size:100" json:"mineral_group"`
	ChemicalFormula *string  `gorm:"size:255" json:"chemical_formula"`
	HardnessMin     *float64 `json:"hardness_min"`
	HardnessMax     *float64 `json:"hardness_max"`
	RarityLevel     *string  `gorm:"size:50" json:"rarity_level"`
	ValueCategory   *string  `gorm:"size:50" json:"value_category"`
	Description     *string  `gorm:"type:text" json:"description"`
}

func (GemstoneFamily) TableName() string {
	return "gemstone_families"
}

// CuttingSkill - справочник навыков огранки. Сидируется при миграции.
type CuttingSkill struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Description *string `gorm:"type:text" json:"description"`
}

func (CuttingSkill) TableName() string {
	return "cutting_skills"
}

// CutterSkill - связь огранщик-навык с уровнем владения
type CutterSkill struct {
	BaseModel
	CutterProfileID  uint         `gorm:"not null;index:idx_cutter_skill,unique" json:"cutter_profile_id"`
	SkillID          uint         `gorm:"not null;index:idx_cutter_skill,unique" json:"skill_id"`
	ProficiencyLevel string       `gorm:"size:20;default:'Beginner'" json:"proficiency_level"`
	Skill            CuttingSkill `gorm:"foreignKey:SkillID" json:"skill"`
}

func (CutterSkill) TableName() string {
	return "cutter_skills"
}
