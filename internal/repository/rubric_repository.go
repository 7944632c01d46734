package repository

import (
	"lms_backend/internal/model"

	"gorm.io/gorm"
)

type RubricRepository struct {
	DB *gorm.DB
}

func NewRubricRepository(db *gorm.DB) *RubricRepository {
	return &RubricRepository{DB: db}
}

func (r *RubricRepository) Create(rubric *model.Rubric) error {
	return r.DB.Create(rubric).Error
}

func (r *RubricRepository) FindByID(id uint) (*model.Rubric, error) {
	var rubric model.Rubric
	err := r.DB.Preload("Criteria", func(db *gorm.DB) *gorm.DB {
		return db.Order("rubric_criteria.order_number ASC")
	}).First(&rubric, id).Error
	return &rubric, err
}

func (r *RubricRepository) FindAll() ([]model.Rubric, error) {
	var rubrics []model.Rubric
	err := r.DB.Order("id").Find(&rubrics).Error
	return rubrics, err
}

func (r *RubricRepository) Update(rubric *model.Rubric) error {
	return r.DB.Save(rubric).Error
}

func (r *RubricRepository) DeleteCascade(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("rubric_id = ?", id).Delete(&model.RubricCriterion{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Rubric{}, id).Error
	})
}

func (r *RubricRepository) AddCriterion(c *model.RubricCriterion) error {
	return r.DB.Create(c).Error
}

func (r *RubricRepository) FindCriterionByID(id uint) (*model.RubricCriterion, error) {
	var c model.RubricCriterion
	err := r.DB.First(&c, id).Error
	return &c, err
}

func (r *RubricRepository) UpdateCriterion(c *model.RubricCriterion) error {
	return r.DB.Save(c).Error
}

func (r *RubricRepository) DeleteCriterion(id uint) error {
	return r.DB.Delete(&model.RubricCriterion{}, id).Error
}
