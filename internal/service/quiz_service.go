package service

import (
	"errors"
	"lms_backend/internal/model"
	"lms_backend/internal/repository"
	"lms_backend/internal/util"
	"time"

	"gorm.io/gorm"
)

type QuizService struct {
	QuizRepo    *repository.QuizRepository
	AttemptRepo *repository.QuizAttemptRepository
	ModuleRepo  *repository.ModuleRepository
	UserRepo    *repository.UserRepository
	DB          *gorm.DB
}

func NewQuizService(quizRepo *repository.QuizRepository, attemptRepo *repository.QuizAttemptRepository, moduleRepo *repository.ModuleRepository, userRepo *repository.UserRepository, db *gorm.DB) *QuizService {
	return &QuizService{
		QuizRepo:    quizRepo,
		AttemptRepo: attemptRepo,
		ModuleRepo:  moduleRepo,
		UserRepo:    userRepo,
		DB:          db,
	}
}

type QuizRequest struct {
	ModuleID     uint              `json:"moduleId"`
	Title        string            `json:"title"`
	Description  string            `json:"description"`
	TimeLimit    int               `json:"timeLimit"`
	MaxAttempts  *int              `json:"maxAttempts"`
	PassingScore *int              `json:"passingScore"`
	Questions    []QuestionRequest `json:"questions"`
}

type QuestionRequest struct {
	Text    string          `json:"text"`
	Points  int             `json:"points"`
	Options []OptionRequest `json:"options"`
}

type OptionRequest struct {
	Text    string `json:"text"`
	Correct bool   `json:"correct"`
}

// AnswerRequest is one answered question of a submission. For choice
// questions the selected option set decides correctness; for free-text
// questions the caller-provided flag is taken as-is.
type AnswerRequest struct {
	QuestionID        uint   `json:"questionId"`
	SelectedOptionIDs []uint `json:"selectedOptionIds"`
	TextAnswer        string `json:"textAnswer"`
	Correct           bool   `json:"correct"`
}

func (s *QuizService) Create(req QuizRequest) (*model.Quiz, error) {
	if _, err := s.ModuleRepo.FindByID(req.ModuleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrModuleNotFound
		}
		return nil, err
	}

	quiz := &model.Quiz{
		ModuleID:     req.ModuleID,
		Title:        req.Title,
		Description:  req.Description,
		TimeLimit:    req.TimeLimit,
		MaxAttempts:  2,
		PassingScore: 70,
	}
	if req.MaxAttempts != nil {
		quiz.MaxAttempts = *req.MaxAttempts
	}
	if req.PassingScore != nil {
		quiz.PassingScore = *req.PassingScore
	}
	for _, q := range req.Questions {
		points := q.Points
		if points <= 0 {
			points = 1
		}
		question := model.Question{Text: q.Text, Points: points}
		for _, o := range q.Options {
			question.Options = append(question.Options, model.QuestionOption{Text: o.Text, Correct: o.Correct})
		}
		quiz.Questions = append(quiz.Questions, question)
	}

	if err := s.QuizRepo.Create(quiz); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, util.ErrModuleHasQuiz
		}
		return nil, err
	}
	return s.GetByID(quiz.ID)
}

func (s *QuizService) GetByID(id uint) (*model.Quiz, error) {
	quiz, err := s.QuizRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuizNotFound
		}
		return nil, err
	}
	return quiz, nil
}

func (s *QuizService) ListAll() ([]model.Quiz, error) {
	return s.QuizRepo.FindAll()
}

func (s *QuizService) Delete(id uint) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	return s.QuizRepo.DeleteCascade(id)
}

// Submit grades one attempt and stores it with all answers atomically.
//
// Scoring: totalScore is the sum of points of correctly answered questions,
// maxScore the sum of points of all answered questions. An empty submission
// scores percentage 0 and does not pass. The attempt limit is enforced here;
// the count query and insert run in the same transaction.
func (s *QuizService) Submit(quizID, studentID uint, answers []AnswerRequest) (*model.QuizAttempt, error) {
	quiz, err := s.GetByID(quizID)
	if err != nil {
		return nil, err
	}
	if _, err := s.UserRepo.FindByID(studentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}

	questions := make(map[uint]*model.Question, len(quiz.Questions))
	for i := range quiz.Questions {
		questions[quiz.Questions[i].ID] = &quiz.Questions[i]
	}

	now := time.Now()
	attempt := &model.QuizAttempt{
		QuizID:      quiz.ID,
		StudentID:   studentID,
		StartedAt:   now,
		CompletedAt: &now,
	}

	totalScore := 0
	maxScore := 0
	for _, a := range answers {
		question, ok := questions[a.QuestionID]
		if !ok {
			continue
		}

		correct := gradeAnswer(question, a)
		pointsEarned := 0
		if correct {
			pointsEarned = question.Points
			totalScore += question.Points
		}
		maxScore += question.Points

		answer := model.Answer{
			QuestionID:   question.ID,
			TextAnswer:   a.TextAnswer,
			Correct:      correct,
			PointsEarned: pointsEarned,
		}
		for _, optID := range a.SelectedOptionIDs {
			for _, opt := range question.Options {
				if opt.ID == optID {
					answer.SelectedOptions = append(answer.SelectedOptions, opt)
					break
				}
			}
		}
		attempt.Answers = append(attempt.Answers, answer)
	}

	attempt.Score = totalScore
	if maxScore > 0 {
		attempt.Percentage = float64(totalScore) * 100.0 / float64(maxScore)
	}
	attempt.Passed = maxScore > 0 && attempt.Percentage >= float64(quiz.PassingScore)

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if quiz.MaxAttempts > 0 {
			var count int64
			if err := tx.Model(&model.QuizAttempt{}).
				Where("quiz_id = ? AND student_id = ?", quiz.ID, studentID).
				Count(&count).Error; err != nil {
				return err
			}
			if count >= int64(quiz.MaxAttempts) {
				return util.ErrAttemptLimitExceeded
			}
		}
		return s.AttemptRepo.Create(tx, attempt)
	})
	if err != nil {
		return nil, err
	}

	return attempt, nil
}

// gradeAnswer decides correctness: for choice questions the selected set must
// match the correct option set exactly; free-text answers keep the flag the
// grader supplied.
func gradeAnswer(question *model.Question, a AnswerRequest) bool {
	if len(question.Options) == 0 {
		return a.Correct
	}

	correctSet := make(map[uint]bool)
	for _, opt := range question.Options {
		if opt.Correct {
			correctSet[opt.ID] = true
		}
	}
	if len(a.SelectedOptionIDs) != len(correctSet) || len(correctSet) == 0 {
		return false
	}
	for _, id := range a.SelectedOptionIDs {
		if !correctSet[id] {
			return false
		}
	}
	return true
}

func (s *QuizService) GetStudentAttempts(quizID, studentID uint) ([]model.QuizAttempt, error) {
	if _, err := s.GetByID(quizID); err != nil {
		return nil, err
	}
	if _, err := s.UserRepo.FindByID(studentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}
	return s.AttemptRepo.FindByQuizAndStudent(quizID, studentID)
}
