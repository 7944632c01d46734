package repository

import (
	"lms_backend/internal/model"

	"gorm.io/gorm"
)

type QuizAttemptRepository struct {
	DB *gorm.DB
}

func NewQuizAttemptRepository(db *gorm.DB) *QuizAttemptRepository {
	return &QuizAttemptRepository{DB: db}
}

// Create persists the attempt with its answers; gorm writes the association
// rows within the surrounding transaction.
func (r *QuizAttemptRepository) Create(tx *gorm.DB, attempt *model.QuizAttempt) error {
	if tx == nil {
		tx = r.DB
	}
	return tx.Create(attempt).Error
}

func (r *QuizAttemptRepository) FindByID(id uint) (*model.QuizAttempt, error) {
	var attempt model.QuizAttempt
	err := r.DB.Preload("Answers").Preload("Answers.SelectedOptions").First(&attempt, id).Error
	return &attempt, err
}

func (r *QuizAttemptRepository) FindByQuizAndStudent(quizID, studentID uint) ([]model.QuizAttempt, error) {
	var attempts []model.QuizAttempt
	err := r.DB.Where("quiz_id = ? AND student_id = ?", quizID, studentID).
		Order("started_at DESC").
		Find(&attempts).Error
	return attempts, err
}

func (r *QuizAttemptRepository) CountByQuizAndStudent(quizID, studentID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.QuizAttempt{}).
		Where("quiz_id = ? AND student_id = ?", quizID, studentID).
		Count(&count).Error
	return count, err
}

// DeleteCascade removes an attempt with its answers.
func (r *QuizAttemptRepository) DeleteCascade(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("attempt_id = ?", id).Delete(&model.Answer{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.QuizAttempt{}, id).Error
	})
}
