package repository

import (
	"lms_backend/internal/model"

	"gorm.io/gorm"
)

type PortfolioRepository struct {
	DB *gorm.DB
}

func NewPortfolioRepository(db *gorm.DB) *PortfolioRepository {
	return &PortfolioRepository{DB: db}
}

func (r *PortfolioRepository) Create(p *model.Portfolio) error {
	return r.DB.Create(p).Error
}

func (r *PortfolioRepository) FindByStudent(studentID uint) (*model.Portfolio, error) {
	var p model.Portfolio
	err := r.DB.Preload("Items").Where("student_id = ?", studentID).First(&p).Error
	return &p, err
}

func (r *PortfolioRepository) AddItem(item *model.PortfolioItem) error {
	return r.DB.Create(item).Error
}

func (r *PortfolioRepository) FindItemByID(id uint) (*model.PortfolioItem, error) {
	var item model.PortfolioItem
	err := r.DB.First(&item, id).Error
	return &item, err
}

func (r *PortfolioRepository) DeleteItem(id uint) error {
	return r.DB.Delete(&model.PortfolioItem{}, id).Error
}
