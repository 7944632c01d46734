package repository

import (
	"lms_backend/internal/model"

	"gorm.io/gorm"
)

type ReflectionRepository struct {
	DB *gorm.DB
}

func NewReflectionRepository(db *gorm.DB) *ReflectionRepository {
	return &ReflectionRepository{DB: db}
}

func (r *ReflectionRepository) CreateAssignment(a *model.ReflectionAssignment) error {
	return r.DB.Create(a).Error
}

func (r *ReflectionRepository) FindAssignmentByID(id uint) (*model.ReflectionAssignment, error) {
	var a model.ReflectionAssignment
	err := r.DB.Preload("Module").First(&a, id).Error
	return &a, err
}

func (r *ReflectionRepository) FindAssignmentByModuleID(moduleID uint) (*model.ReflectionAssignment, error) {
	var a model.ReflectionAssignment
	err := r.DB.Where("module_id = ?", moduleID).First(&a).Error
	return &a, err
}

func (r *ReflectionRepository) UpdateAssignment(a *model.ReflectionAssignment) error {
	return r.DB.Save(a).Error
}

func (r *ReflectionRepository) DeleteAssignment(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("assignment_id = ?", id).Delete(&model.ReflectionSubmission{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.ReflectionAssignment{}, id).Error
	})
}

func (r *ReflectionRepository) CreateSubmission(s *model.ReflectionSubmission) error {
	return r.DB.Create(s).Error
}

func (r *ReflectionRepository) FindSubmissionByID(id uint) (*model.ReflectionSubmission, error) {
	var s model.ReflectionSubmission
	err := r.DB.Preload("Assignment").Preload("Student").First(&s, id).Error
	return &s, err
}

func (r *ReflectionRepository) FindSubmission(assignmentID, studentID uint) (*model.ReflectionSubmission, error) {
	var s model.ReflectionSubmission
	err := r.DB.Where("assignment_id = ? AND student_id = ?", assignmentID, studentID).First(&s).Error
	return &s, err
}

func (r *ReflectionRepository) FindSubmissionsByAssignment(assignmentID uint) ([]model.ReflectionSubmission, error) {
	var subs []model.ReflectionSubmission
	err := r.DB.Preload("Student").Where("assignment_id = ?", assignmentID).Order("id").Find(&subs).Error
	return subs, err
}

func (r *ReflectionRepository) UpdateSubmission(s *model.ReflectionSubmission) error {
	return r.DB.Save(s).Error
}
