package repository

import (
	"lms_backend/internal/model"

	"gorm.io/gorm"
)

type QuizRepository struct {
	DB *gorm.DB
}

func NewQuizRepository(db *gorm.DB) *QuizRepository {
	return &QuizRepository{DB: db}
}

func (r *QuizRepository) Create(quiz *model.Quiz) error {
	return r.DB.Create(quiz).Error
}

func (r *QuizRepository) FindByID(id uint) (*model.Quiz, error) {
	var quiz model.Quiz
	err := r.DB.Preload("Questions").Preload("Questions.Options").First(&quiz, id).Error
	return &quiz, err
}

func (r *QuizRepository) FindByModuleID(moduleID uint) (*model.Quiz, error) {
	var quiz model.Quiz
	err := r.DB.Preload("Questions").Preload("Questions.Options").
		Where("module_id = ?", moduleID).First(&quiz).Error
	return &quiz, err
}

func (r *QuizRepository) FindAll() ([]model.Quiz, error) {
	var quizzes []model.Quiz
	err := r.DB.Order("id").Find(&quizzes).Error
	return quizzes, err
}

func (r *QuizRepository) Update(quiz *model.Quiz) error {
	return r.DB.Save(quiz).Error
}

// DeleteCascade removes the quiz together with its questions and their
// options in one transaction. The storage engine is not relied on for
// cascading constraints.
func (r *QuizRepository) DeleteCascade(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var questionIDs []uint
		if err := tx.Model(&model.Question{}).Where("quiz_id = ?", id).Pluck("id", &questionIDs).Error; err != nil {
			return err
		}
		if len(questionIDs) > 0 {
			if err := tx.Where("question_id IN ?", questionIDs).Delete(&model.QuestionOption{}).Error; err != nil {
				return err
			}
			if err := tx.Where("quiz_id = ?", id).Delete(&model.Question{}).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&model.Quiz{}, id).Error
	})
}
