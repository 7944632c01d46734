package service

import (
	"errors"
	"lms_backend/internal/model"
	"lms_backend/internal/repository"
	"lms_backend/internal/util"

	"gorm.io/gorm"
)

type RubricService struct {
	RubricRepo *repository.RubricRepository
}

func NewRubricService(rubricRepo *repository.RubricRepository) *RubricService {
	return &RubricService{RubricRepo: rubricRepo}
}

type RubricUpdate struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	MaxScore    *int    `json:"maxScore"`
}

type CriterionUpdate struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	MaxPoints   *int    `json:"maxPoints"`
	OrderNumber *int    `json:"orderNumber"`
}

func (s *RubricService) Create(rubric *model.Rubric) error {
	return s.RubricRepo.Create(rubric)
}

func (s *RubricService) GetByID(id uint) (*model.Rubric, error) {
	rubric, err := s.RubricRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrRubricNotFound
		}
		return nil, err
	}
	return rubric, nil
}

func (s *RubricService) ListAll() ([]model.Rubric, error) {
	return s.RubricRepo.FindAll()
}

func (s *RubricService) Update(id uint, patch RubricUpdate) (*model.Rubric, error) {
	rubric, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		rubric.Name = *patch.Name
	}
	if patch.Description != nil {
		rubric.Description = *patch.Description
	}
	if patch.MaxScore != nil {
		rubric.MaxScore = *patch.MaxScore
	}

	if err := s.RubricRepo.Update(rubric); err != nil {
		return nil, err
	}
	return rubric, nil
}

func (s *RubricService) Delete(id uint) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	return s.RubricRepo.DeleteCascade(id)
}

func (s *RubricService) AddCriterion(rubricID uint, c *model.RubricCriterion) error {
	if _, err := s.GetByID(rubricID); err != nil {
		return err
	}
	c.RubricID = rubricID
	return s.RubricRepo.AddCriterion(c)
}

func (s *RubricService) UpdateCriterion(id uint, patch CriterionUpdate) (*model.RubricCriterion, error) {
	c, err := s.RubricRepo.FindCriterionByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCriterionNotFound
		}
		return nil, err
	}

	if patch.Name != nil {
		c.Name = *patch.Name
	}
	if patch.Description != nil {
		c.Description = *patch.Description
	}
	if patch.MaxPoints != nil {
		c.MaxPoints = *patch.MaxPoints
	}
	if patch.OrderNumber != nil {
		c.OrderNumber = *patch.OrderNumber
	}

	if err := s.RubricRepo.UpdateCriterion(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *RubricService) DeleteCriterion(id uint) error {
	if _, err := s.RubricRepo.FindCriterionByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrCriterionNotFound
		}
		return err
	}
	return s.RubricRepo.DeleteCriterion(id)
}
