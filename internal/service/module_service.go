package service

import (
	"errors"
	"lms_backend/internal/model"
	"lms_backend/internal/repository"
	"lms_backend/internal/util"

	"gorm.io/gorm"
)

type ModuleService struct {
	ModuleRepo *repository.ModuleRepository
	CourseRepo *repository.CourseRepository
}

func NewModuleService(moduleRepo *repository.ModuleRepository, courseRepo *repository.CourseRepository) *ModuleService {
	return &ModuleService{
		ModuleRepo: moduleRepo,
		CourseRepo: courseRepo,
	}
}

type ModuleUpdate struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	OrderNumber *int    `json:"orderNumber"`
}

// Create validates the parent course. Order-number uniqueness within a
// course is the caller's responsibility.
func (s *ModuleService) Create(module *model.Module, courseID uint) error {
	if _, err := s.CourseRepo.FindByID(courseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrCourseNotFound
		}
		return err
	}

	module.CourseID = courseID
	return s.ModuleRepo.Create(module)
}

func (s *ModuleService) GetByID(id uint) (*model.Module, error) {
	module, err := s.ModuleRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrModuleNotFound
		}
		return nil, err
	}
	return module, nil
}

func (s *ModuleService) ListByCourse(courseID uint) ([]model.Module, error) {
	if _, err := s.CourseRepo.FindByID(courseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCourseNotFound
		}
		return nil, err
	}
	return s.ModuleRepo.FindByCourseOrdered(courseID)
}

func (s *ModuleService) Update(id uint, patch ModuleUpdate) (*model.Module, error) {
	module, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		module.Title = *patch.Title
	}
	if patch.Description != nil {
		module.Description = *patch.Description
	}
	if patch.OrderNumber != nil {
		module.OrderNumber = *patch.OrderNumber
	}

	if err := s.ModuleRepo.Update(module); err != nil {
		return nil, err
	}
	return module, nil
}

func (s *ModuleService) Delete(id uint) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	return s.ModuleRepo.Delete(id)
}
