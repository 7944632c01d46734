package service

import (
	"errors"
	"lms_backend/internal/model"
	"lms_backend/internal/repository"
	"lms_backend/internal/util"

	"gorm.io/gorm"
)

type CourseService struct {
	CourseRepo *repository.CourseRepository
	UserRepo   *repository.UserRepository
}

func NewCourseService(courseRepo *repository.CourseRepository, userRepo *repository.UserRepository) *CourseService {
	return &CourseService{
		CourseRepo: courseRepo,
		UserRepo:   userRepo,
	}
}

type CourseUpdate struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	ImageURL    *string `json:"imageUrl"`
	Active      *bool   `json:"active"`
}

func (s *CourseService) Create(course *model.Course, teacherID uint) error {
	teacher, err := s.UserRepo.FindByID(teacherID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrUserNotFound
		}
		return err
	}
	if teacher.Role != model.RoleTeacher && teacher.Role != model.RoleAdmin {
		return util.ErrNotTeacher
	}

	course.TeacherID = teacher.ID
	return s.CourseRepo.Create(course)
}

func (s *CourseService) GetByID(id uint) (*model.Course, error) {
	course, err := s.CourseRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCourseNotFound
		}
		return nil, err
	}
	return course, nil
}

func (s *CourseService) ListAll() ([]model.Course, error) {
	return s.CourseRepo.FindAll()
}

func (s *CourseService) ListActive() ([]model.Course, error) {
	return s.CourseRepo.FindActive()
}

func (s *CourseService) ListByTeacher(teacherID uint) ([]model.Course, error) {
	return s.CourseRepo.FindByTeacher(teacherID)
}

func (s *CourseService) Update(id uint, patch CourseUpdate) (*model.Course, error) {
	course, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		course.Title = *patch.Title
	}
	if patch.Description != nil {
		course.Description = *patch.Description
	}
	if patch.ImageURL != nil {
		course.ImageURL = *patch.ImageURL
	}
	if patch.Active != nil {
		course.Active = *patch.Active
	}

	if err := s.CourseRepo.Update(course); err != nil {
		return nil, err
	}
	return course, nil
}

func (s *CourseService) Delete(id uint) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	return s.CourseRepo.Delete(id)
}
