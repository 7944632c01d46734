package repository

import (
	"lms_backend/internal/model"

	"gorm.io/gorm"
)

type EnrollmentRepository struct {
	DB *gorm.DB
}

func NewEnrollmentRepository(db *gorm.DB) *EnrollmentRepository {
	return &EnrollmentRepository{DB: db}
}

func (r *EnrollmentRepository) Create(enrollment *model.Enrollment) error {
	return r.DB.Create(enrollment).Error
}

func (r *EnrollmentRepository) FindByID(id uint) (*model.Enrollment, error) {
	var enrollment model.Enrollment
	err := r.DB.Preload("Course").Preload("Student").First(&enrollment, id).Error
	return &enrollment, err
}

func (r *EnrollmentRepository) FindByStudent(studentID uint) ([]model.Enrollment, error) {
	var enrollments []model.Enrollment
	err := r.DB.Preload("Course").Where("student_id = ?", studentID).Order("enrolled_at DESC").Find(&enrollments).Error
	return enrollments, err
}

func (r *EnrollmentRepository) FindByCourse(courseID uint) ([]model.Enrollment, error) {
	var enrollments []model.Enrollment
	err := r.DB.Preload("Student").Where("course_id = ?", courseID).Order("enrolled_at DESC").Find(&enrollments).Error
	return enrollments, err
}

func (r *EnrollmentRepository) Update(enrollment *model.Enrollment) error {
	return r.DB.Save(enrollment).Error
}
