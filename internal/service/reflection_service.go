package service

import (
	"errors"
	"fmt"
	"lms_backend/internal/model"
	"lms_backend/internal/repository"
	"lms_backend/internal/util"
	"strings"
	"time"

	"gorm.io/gorm"
)

type ReflectionService struct {
	ReflectionRepo   *repository.ReflectionRepository
	ModuleRepo       *repository.ModuleRepository
	UserRepo         *repository.UserRepository
	NotificationRepo *repository.NotificationRepository
}

func NewReflectionService(reflectionRepo *repository.ReflectionRepository, moduleRepo *repository.ModuleRepository, userRepo *repository.UserRepository, notificationRepo *repository.NotificationRepository) *ReflectionService {
	return &ReflectionService{
		ReflectionRepo:   reflectionRepo,
		ModuleRepo:       moduleRepo,
		UserRepo:         userRepo,
		NotificationRepo: notificationRepo,
	}
}

type AssignmentUpdate struct {
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	Instructions *string `json:"instructions"`
	MinWords     *int    `json:"minWords"`
	MaxWords     *int    `json:"maxWords"`
}

func (s *ReflectionService) CreateAssignment(a *model.ReflectionAssignment) error {
	if _, err := s.ModuleRepo.FindByID(a.ModuleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrModuleNotFound
		}
		return err
	}

	if err := s.ReflectionRepo.CreateAssignment(a); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return util.ErrModuleHasAssignment
		}
		return err
	}
	return nil
}

func (s *ReflectionService) GetAssignment(id uint) (*model.ReflectionAssignment, error) {
	a, err := s.ReflectionRepo.FindAssignmentByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrAssignmentNotFound
		}
		return nil, err
	}
	return a, nil
}

func (s *ReflectionService) UpdateAssignment(id uint, patch AssignmentUpdate) (*model.ReflectionAssignment, error) {
	a, err := s.GetAssignment(id)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		a.Title = *patch.Title
	}
	if patch.Description != nil {
		a.Description = *patch.Description
	}
	if patch.Instructions != nil {
		a.Instructions = *patch.Instructions
	}
	if patch.MinWords != nil {
		a.MinWords = *patch.MinWords
	}
	if patch.MaxWords != nil {
		a.MaxWords = *patch.MaxWords
	}

	if err := s.ReflectionRepo.UpdateAssignment(a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *ReflectionService) DeleteAssignment(id uint) error {
	if _, err := s.GetAssignment(id); err != nil {
		return err
	}
	return s.ReflectionRepo.DeleteAssignment(id)
}

// SaveDraft creates or updates the single submission a student has per
// assignment. Only DRAFT submissions accept content changes.
func (s *ReflectionService) SaveDraft(assignmentID, studentID uint, content, attachmentURL string) (*model.ReflectionSubmission, error) {
	if _, err := s.GetAssignment(assignmentID); err != nil {
		return nil, err
	}
	if _, err := s.UserRepo.FindByID(studentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}

	sub, err := s.ReflectionRepo.FindSubmission(assignmentID, studentID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		sub = &model.ReflectionSubmission{
			AssignmentID: assignmentID,
			StudentID:    studentID,
			Status:       model.SubmissionDraft,
		}
		sub.Content = content
		sub.AttachmentURL = attachmentURL
		if err := s.ReflectionRepo.CreateSubmission(sub); err != nil {
			return nil, err
		}
		return sub, nil
	}

	if sub.Status != model.SubmissionDraft {
		return nil, util.ErrInvalidTransition
	}
	sub.Content = content
	sub.AttachmentURL = attachmentURL
	if err := s.ReflectionRepo.UpdateSubmission(sub); err != nil {
		return nil, err
	}
	return sub, nil
}

// Submit moves a draft to SUBMITTED after checking the assignment's word
// bounds. No backward transition exists.
func (s *ReflectionService) Submit(submissionID uint) (*model.ReflectionSubmission, error) {
	sub, err := s.GetSubmission(submissionID)
	if err != nil {
		return nil, err
	}
	if sub.Status != model.SubmissionDraft {
		return nil, util.ErrInvalidTransition
	}

	assignment, err := s.GetAssignment(sub.AssignmentID)
	if err != nil {
		return nil, err
	}
	words := len(strings.Fields(sub.Content))
	if (assignment.MinWords > 0 && words < assignment.MinWords) ||
		(assignment.MaxWords > 0 && words > assignment.MaxWords) {
		return nil, util.ErrWordCountOutOfRange
	}

	now := time.Now()
	sub.Status = model.SubmissionSubmitted
	sub.SubmittedAt = &now
	if err := s.ReflectionRepo.UpdateSubmission(sub); err != nil {
		return nil, err
	}
	return sub, nil
}

// Grade moves a SUBMITTED submission to GRADED and notifies the student.
func (s *ReflectionService) Grade(submissionID, graderID uint, score int, feedback string) (*model.ReflectionSubmission, error) {
	sub, err := s.GetSubmission(submissionID)
	if err != nil {
		return nil, err
	}
	if sub.Status != model.SubmissionSubmitted {
		return nil, util.ErrInvalidTransition
	}
	if _, err := s.UserRepo.FindByID(graderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}

	now := time.Now()
	sub.Status = model.SubmissionGraded
	sub.Score = &score
	sub.Feedback = feedback
	sub.GradedByID = &graderID
	sub.GradedAt = &now
	if err := s.ReflectionRepo.UpdateSubmission(sub); err != nil {
		return nil, err
	}

	s.NotificationRepo.Create(&model.Notification{
		UserID:      sub.StudentID,
		Title:       "Reflection graded",
		Message:     fmt.Sprintf("Your reflection submission was graded: %d", score),
		Type:        model.NotificationAssignmentGraded,
		RelatedLink: fmt.Sprintf("/reflections/submissions/%d", sub.ID),
	})

	return sub, nil
}

func (s *ReflectionService) GetSubmission(id uint) (*model.ReflectionSubmission, error) {
	sub, err := s.ReflectionRepo.FindSubmissionByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrSubmissionNotFound
		}
		return nil, err
	}
	return sub, nil
}

func (s *ReflectionService) ListSubmissions(assignmentID uint) ([]model.ReflectionSubmission, error) {
	if _, err := s.GetAssignment(assignmentID); err != nil {
		return nil, err
	}
	return s.ReflectionRepo.FindSubmissionsByAssignment(assignmentID)
}
