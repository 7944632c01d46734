package service

import (
	"errors"
	"lms_backend/internal/model"
	"lms_backend/internal/repository"
	"lms_backend/internal/util"

	"gorm.io/gorm"
)

type PortfolioService struct {
	PortfolioRepo *repository.PortfolioRepository
	UserRepo      *repository.UserRepository
}

func NewPortfolioService(portfolioRepo *repository.PortfolioRepository, userRepo *repository.UserRepository) *PortfolioService {
	return &PortfolioService{
		PortfolioRepo: portfolioRepo,
		UserRepo:      userRepo,
	}
}

// GetOrCreate returns the student's portfolio, creating an empty one on
// first access.
func (s *PortfolioService) GetOrCreate(studentID uint) (*model.Portfolio, error) {
	if _, err := s.UserRepo.FindByID(studentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}

	portfolio, err := s.PortfolioRepo.FindByStudent(studentID)
	if err == nil {
		return portfolio, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	portfolio = &model.Portfolio{StudentID: studentID}
	if err := s.PortfolioRepo.Create(portfolio); err != nil {
		// Lost a race against a concurrent first access; re-read.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return s.PortfolioRepo.FindByStudent(studentID)
		}
		return nil, err
	}
	return portfolio, nil
}

func (s *PortfolioService) AddItem(studentID uint, item *model.PortfolioItem) (*model.PortfolioItem, error) {
	portfolio, err := s.GetOrCreate(studentID)
	if err != nil {
		return nil, err
	}

	item.PortfolioID = portfolio.ID
	if err := s.PortfolioRepo.AddItem(item); err != nil {
		return nil, err
	}
	return item, nil
}

// RemoveItem deletes an item, checking it belongs to the student's
// portfolio first.
func (s *PortfolioService) RemoveItem(studentID, itemID uint) error {
	portfolio, err := s.GetOrCreate(studentID)
	if err != nil {
		return err
	}

	item, err := s.PortfolioRepo.FindItemByID(itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrItemNotFound
		}
		return err
	}
	if item.PortfolioID != portfolio.ID {
		return util.ErrItemNotFound
	}

	return s.PortfolioRepo.DeleteItem(itemID)
}
