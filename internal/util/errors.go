package util

import "errors"

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrEmailRegistered      = errors.New("email already registered")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrNotTeacher           = errors.New("user is not a teacher")
	ErrCourseNotFound       = errors.New("course not found")
	ErrModuleNotFound       = errors.New("module not found")
	ErrLessonNotFound       = errors.New("lesson not found")
	ErrModuleHasLesson      = errors.New("module already has a lesson")
	ErrModuleHasQuiz        = errors.New("module already has a quiz")
	ErrModuleHasAssignment  = errors.New("module already has a reflection assignment")
	ErrQuizNotFound         = errors.New("quiz not found")
	ErrAttemptLimitExceeded = errors.New("quiz attempt limit exceeded")
	ErrEnrollmentNotFound   = errors.New("enrollment not found")
	ErrAlreadyEnrolled      = errors.New("student already enrolled in course")
	ErrAssignmentNotFound   = errors.New("reflection assignment not found")
	ErrSubmissionNotFound   = errors.New("submission not found")
	ErrInvalidTransition    = errors.New("invalid submission status transition")
	ErrWordCountOutOfRange  = errors.New("submission word count out of range")
	ErrForumNotFound        = errors.New("forum not found")
	ErrPostNotFound         = errors.New("forum post not found")
	ErrCertificateNotFound  = errors.New("certificate not found")
	ErrCertificateExists    = errors.New("certificate already issued for this course")
	ErrPortfolioNotFound    = errors.New("portfolio not found")
	ErrItemNotFound         = errors.New("portfolio item not found")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrRubricNotFound       = errors.New("rubric not found")
	ErrCriterionNotFound    = errors.New("rubric criterion not found")
	ErrInvalidPath          = errors.New("invalid file path")
	ErrInvalidFileType      = errors.New("invalid file type")
	ErrFileNotFound         = errors.New("file not found")
	ErrPermissionDenied     = errors.New("permission denied")
)
