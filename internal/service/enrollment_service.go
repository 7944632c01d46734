package service

import (
	"errors"
	"lms_backend/internal/model"
	"lms_backend/internal/repository"
	"lms_backend/internal/util"
	"time"

	"gorm.io/gorm"
)

type EnrollmentService struct {
	EnrollmentRepo *repository.EnrollmentRepository
	CourseRepo     *repository.CourseRepository
	UserRepo       *repository.UserRepository
}

func NewEnrollmentService(enrollmentRepo *repository.EnrollmentRepository, courseRepo *repository.CourseRepository, userRepo *repository.UserRepository) *EnrollmentService {
	return &EnrollmentService{
		EnrollmentRepo: enrollmentRepo,
		CourseRepo:     courseRepo,
		UserRepo:       userRepo,
	}
}

// Enroll creates an ACTIVE enrollment at progress 0. Duplicates are rejected
// by the (student, course) unique index rather than a lookup, so concurrent
// requests cannot both succeed.
func (s *EnrollmentService) Enroll(studentID, courseID uint) (*model.Enrollment, error) {
	if _, err := s.UserRepo.FindByID(studentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}
	if _, err := s.CourseRepo.FindByID(courseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCourseNotFound
		}
		return nil, err
	}

	enrollment := &model.Enrollment{
		StudentID:  studentID,
		CourseID:   courseID,
		Progress:   0,
		Status:     model.EnrollmentActive,
		EnrolledAt: time.Now(),
	}
	if err := s.EnrollmentRepo.Create(enrollment); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, util.ErrAlreadyEnrolled
		}
		return nil, err
	}
	return enrollment, nil
}

func (s *EnrollmentService) GetByID(id uint) (*model.Enrollment, error) {
	enrollment, err := s.EnrollmentRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrEnrollmentNotFound
		}
		return nil, err
	}
	return enrollment, nil
}

func (s *EnrollmentService) ListByStudent(studentID uint) ([]model.Enrollment, error) {
	return s.EnrollmentRepo.FindByStudent(studentID)
}

func (s *EnrollmentService) ListByCourse(courseID uint) ([]model.Enrollment, error) {
	return s.EnrollmentRepo.FindByCourse(courseID)
}

// UpdateProgress stores the reported progress. Reaching 100 flips the status
// to COMPLETED, dropped enrollments included; there is no transition back out
// of COMPLETED.
func (s *EnrollmentService) UpdateProgress(id uint, progress float64) (*model.Enrollment, error) {
	enrollment, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	enrollment.Progress = progress
	if progress >= 100.0 && enrollment.Status != model.EnrollmentCompleted {
		enrollment.Status = model.EnrollmentCompleted
		now := time.Now()
		enrollment.CompletedAt = &now
	}

	if err := s.EnrollmentRepo.Update(enrollment); err != nil {
		return nil, err
	}
	return enrollment, nil
}

func (s *EnrollmentService) Drop(id uint) (*model.Enrollment, error) {
	enrollment, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if enrollment.Status == model.EnrollmentActive {
		enrollment.Status = model.EnrollmentDropped
		if err := s.EnrollmentRepo.Update(enrollment); err != nil {
			return nil, err
		}
	}
	return enrollment, nil
}
