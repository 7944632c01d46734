package repository

import (
	"lms_backend/internal/model"

	"gorm.io/gorm"
)

type VideoLessonRepository struct {
	DB *gorm.DB
}

func NewVideoLessonRepository(db *gorm.DB) *VideoLessonRepository {
	return &VideoLessonRepository{DB: db}
}

func (r *VideoLessonRepository) Create(lesson *model.VideoLesson) error {
	return r.DB.Create(lesson).Error
}

func (r *VideoLessonRepository) FindByID(id uint) (*model.VideoLesson, error) {
	var lesson model.VideoLesson
	err := r.DB.Preload("Module").Preload("Module.Course").First(&lesson, id).Error
	return &lesson, err
}

func (r *VideoLessonRepository) FindByModuleID(moduleID uint) (*model.VideoLesson, error) {
	var lesson model.VideoLesson
	err := r.DB.Where("module_id = ?", moduleID).First(&lesson).Error
	return &lesson, err
}

func (r *VideoLessonRepository) FindAll() ([]model.VideoLesson, error) {
	var lessons []model.VideoLesson
	err := r.DB.Preload("Module").Preload("Module.Course").Order("id").Find(&lessons).Error
	return lessons, err
}

// FindByCourseOrdered returns all lessons of a course sorted by the order
// number of their modules.
func (r *VideoLessonRepository) FindByCourseOrdered(courseID uint) ([]model.VideoLesson, error) {
	var lessons []model.VideoLesson
	err := r.DB.
		Joins("JOIN modules ON modules.id = video_lessons.module_id").
		Where("modules.course_id = ?", courseID).
		Order("modules.order_number ASC").
		Preload("Module").Preload("Module.Course").
		Find(&lessons).Error
	return lessons, err
}

func (r *VideoLessonRepository) Update(lesson *model.VideoLesson) error {
	return r.DB.Save(lesson).Error
}

func (r *VideoLessonRepository) Delete(id uint) error {
	return r.DB.Delete(&model.VideoLesson{}, id).Error
}
