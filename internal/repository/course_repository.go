package repository

import (
	"lms_backend/internal/model"

	"gorm.io/gorm"
)

type CourseRepository struct {
	DB *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{DB: db}
}

func (r *CourseRepository) Create(course *model.Course) error {
	return r.DB.Create(course).Error
}

func (r *CourseRepository) FindByID(id uint) (*model.Course, error) {
	var course model.Course
	err := r.DB.Preload("Teacher").First(&course, id).Error
	return &course, err
}

func (r *CourseRepository) FindAll() ([]model.Course, error) {
	var courses []model.Course
	err := r.DB.Preload("Teacher").Order("id").Find(&courses).Error
	return courses, err
}

func (r *CourseRepository) FindActive() ([]model.Course, error) {
	var courses []model.Course
	err := r.DB.Preload("Teacher").Where("active = ?", true).Order("id").Find(&courses).Error
	return courses, err
}

func (r *CourseRepository) FindByTeacher(teacherID uint) ([]model.Course, error) {
	var courses []model.Course
	err := r.DB.Where("teacher_id = ?", teacherID).Order("id").Find(&courses).Error
	return courses, err
}

func (r *CourseRepository) Update(course *model.Course) error {
	return r.DB.Save(course).Error
}

func (r *CourseRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Course{}, id).Error
}
