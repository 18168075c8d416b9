package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"gemvault_backend/internal/appErrors"
	"gemvault_backend/internal/logger"
	"gemvault_backend/internal/models"
	"gemvault_backend/internal/repositories"
	"gemvault_backend/internal/services/dto"
)

type ReferenceService interface {
	ListFamilies(ctx context.Context) ([]models.GemstoneFamily, error)
	GetFamily(ctx context.Context, id uint) (*models.GemstoneFamily, error)
	CreateFamily(ctx context.Context, req dto.CreateGemstoneFamilyRequest) (*models.GemstoneFamily, error)
	UpdateFamily(ctx context.Context, id uint, req dto.UpdateGemstoneFamilyRequest) (*models.GemstoneFamily, error)
	DeleteFamily(ctx context.Context, id uint) error

	ListSkills(ctx context.Context) ([]models.CuttingSkill, error)
}

type ReferenceServiceImpl struct {
	referenceRepo repositories.ReferenceRepository
}

func NewReferenceService(referenceRepo repositories.ReferenceRepository) ReferenceService {
	return &ReferenceServiceImpl{referenceRepo: referenceRepo}
}

func (s *ReferenceServiceImpl) ListFamilies(ctx context.Context) ([]models.GemstoneFamily, error) {
	families, err := s.referenceRepo.ListFamilies()
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	return families, nil
}

func (s *ReferenceServiceImpl) GetFamily(ctx context.Context, id uint) (*models.GemstoneFamily, error) {
	family, err := s.referenceRepo.FindFamilyByID(id)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	if family == nil {
		return nil, appErrors.ErrFamilyNotFound
	}
	return family, nil
}

func (s *ReferenceServiceImpl) CreateFamily(ctx context.Context, req dto.CreateGemstoneFamilyRequest) (*models.GemstoneFamily, error) {
	existing, err := s.referenceRepo.FindFamilyByName(req.Name)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	if existing != nil {
		return nil, appErrors.ErrFamilyAlreadyExists
	}

	family := &models.GemstoneFamily{
		Name:            req.Name,
		Category:        req.Category,
		MineralGroup:    req.MineralGroup,
		ChemicalFormula: req.ChemicalFormula,
		HardnessMin:     req.HardnessMin,
		HardnessMax:     req.HardnessMax,
		RarityLevel:     req.RarityLevel,
		ValueCategory:   req.ValueCategory,
		Description:     req.Description,
	}

	if err := s.referenceRepo.CreateFamily(family); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, appErrors.ErrFamilyAlreadyExists
		}
		return nil, appErrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "Gemstone family created", "family_id", family.ID, "name", family.Name)
	return family, nil
}

func (s *ReferenceServiceImpl) UpdateFamily(ctx context.Context, id uint, req dto.UpdateGemstoneFamilyRequest) (*models.GemstoneFamily, error) {
	if req.Name != nil {
		existing, err := s.referenceRepo.FindFamilyByName(*req.Name)
		if err != nil {
			return nil, appErrors.InternalError(err)
		}
		if existing != nil && existing.ID != id {
			return nil, appErrors.ErrFamilyAlreadyExists
		}
	}

	input := repositories.GemstoneFamilyUpdateInput{
		Name:            req.Name,
		Category:        req.Category,
		MineralGroup:    req.MineralGroup,
		ChemicalFormula: req.ChemicalFormula,
		HardnessMin:     req.HardnessMin,
		HardnessMax:     req.HardnessMax,
		RarityLevel:     req.RarityLevel,
		ValueCategory:   req.ValueCategory,
		Description:     req.Description,
	}

	rows, err := s.referenceRepo.UpdateFamily(id, input)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, appErrors.ErrFamilyAlreadyExists
		}
		return nil, appErrors.InternalError(err)
	}
	if rows == 0 {
		return nil, appErrors.ErrFamilyNotFound
	}

	return s.referenceRepo.FindFamilyByID(id)
}

func (s *ReferenceServiceImpl) DeleteFamily(ctx context.Context, id uint) error {
	rows, err := s.referenceRepo.DeleteFamily(id)
	if err != nil {
		return appErrors.InternalError(err)
	}
	if rows == 0 {
		return appErrors.ErrFamilyNotFound
	}

	logger.CtxInfo(ctx, "Gemstone family deleted", "family_id", id)
	return nil
}

func (s *ReferenceServiceImpl) ListSkills(ctx context.Context) ([]models.CuttingSkill, error) {
	skills, err := s.referenceRepo.ListSkills()
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	return skills, nil
}
