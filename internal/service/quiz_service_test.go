package service

import (
	"testing"

	"lms_backend/internal/model"
	"lms_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestQuiz(t *testing.T, svc *QuizService, moduleID uint, maxAttempts int) *model.Quiz {
	t.Helper()
	quiz, err := svc.Create(QuizRequest{
		ModuleID:    moduleID,
		Title:       "Checkpoint",
		MaxAttempts: &maxAttempts,
		Questions: []QuestionRequest{
			{Text: "Q1", Points: 10, Options: []OptionRequest{
				{Text: "right", Correct: true},
				{Text: "wrong", Correct: false},
			}},
			{Text: "Q2", Points: 20, Options: []OptionRequest{
				{Text: "right", Correct: true},
				{Text: "wrong", Correct: false},
			}},
			{Text: "Q3", Points: 30, Options: []OptionRequest{
				{Text: "right", Correct: true},
				{Text: "wrong", Correct: false},
			}},
		},
	})
	require.NoError(t, err)
	return quiz
}

func correctOption(t *testing.T, q model.Question) uint {
	t.Helper()
	for _, o := range q.Options {
		if o.Correct {
			return o.ID
		}
	}
	t.Fatalf("question %d has no correct option", q.ID)
	return 0
}

func wrongOption(t *testing.T, q model.Question) uint {
	t.Helper()
	for _, o := range q.Options {
		if !o.Correct {
			return o.ID
		}
	}
	t.Fatalf("question %d has no wrong option", q.ID)
	return 0
}

func TestQuizSubmitScoring(t *testing.T) {
	db := newTestDB(t)
	svc := newQuizService(db)

	student := createTestUser(t, db, "student@example.com", model.RoleStudent)
	teacher := createTestUser(t, db, "teacher@example.com", model.RoleTeacher)
	course := createTestCourse(t, db, teacher.ID)
	module := createTestModule(t, db, course.ID, 1)
	quiz := createTestQuiz(t, svc, module.ID, 5)

	// Q1 (10) correct, Q2 (20) wrong, Q3 (30) correct.
	attempt, err := svc.Submit(quiz.ID, student.ID, []AnswerRequest{
		{QuestionID: quiz.Questions[0].ID, SelectedOptionIDs: []uint{correctOption(t, quiz.Questions[0])}},
		{QuestionID: quiz.Questions[1].ID, SelectedOptionIDs: []uint{wrongOption(t, quiz.Questions[1])}},
		{QuestionID: quiz.Questions[2].ID, SelectedOptionIDs: []uint{correctOption(t, quiz.Questions[2])}},
	})
	require.NoError(t, err)

	assert.Equal(t, 40, attempt.Score)
	assert.InDelta(t, 66.67, attempt.Percentage, 0.01)
	assert.False(t, attempt.Passed)
	assert.Len(t, attempt.Answers, 3)
	assert.NotNil(t, attempt.CompletedAt)
}

func TestQuizSubmitEmptyAnswers(t *testing.T) {
	db := newTestDB(t)
	svc := newQuizService(db)

	student := createTestUser(t, db, "student@example.com", model.RoleStudent)
	teacher := createTestUser(t, db, "teacher@example.com", model.RoleTeacher)
	course := createTestCourse(t, db, teacher.ID)
	module := createTestModule(t, db, course.ID, 1)
	quiz := createTestQuiz(t, svc, module.ID, 5)

	attempt, err := svc.Submit(quiz.ID, student.ID, nil)
	require.NoError(t, err)

	assert.Equal(t, 0, attempt.Score)
	assert.Zero(t, attempt.Percentage)
	assert.False(t, attempt.Passed)
	assert.Empty(t, attempt.Answers)
}

func TestQuizSubmitAttemptLimit(t *testing.T) {
	db := newTestDB(t)
	svc := newQuizService(db)

	student := createTestUser(t, db, "student@example.com", model.RoleStudent)
	teacher := createTestUser(t, db, "teacher@example.com", model.RoleTeacher)
	course := createTestCourse(t, db, teacher.ID)
	module := createTestModule(t, db, course.ID, 1)
	quiz := createTestQuiz(t, svc, module.ID, 2)

	_, err := svc.Submit(quiz.ID, student.ID, nil)
	require.NoError(t, err)
	_, err = svc.Submit(quiz.ID, student.ID, nil)
	require.NoError(t, err)

	_, err = svc.Submit(quiz.ID, student.ID, nil)
	assert.ErrorIs(t, err, util.ErrAttemptLimitExceeded)

	attempts, err := svc.GetStudentAttempts(quiz.ID, student.ID)
	require.NoError(t, err)
	assert.Len(t, attempts, 2)
}

func TestQuizSubmitPassing(t *testing.T) {
	db := newTestDB(t)
	svc := newQuizService(db)

	student := createTestUser(t, db, "student@example.com", model.RoleStudent)
	teacher := createTestUser(t, db, "teacher@example.com", model.RoleTeacher)
	course := createTestCourse(t, db, teacher.ID)
	module := createTestModule(t, db, course.ID, 1)
	quiz := createTestQuiz(t, svc, module.ID, 5)

	var answers []AnswerRequest
	for _, q := range quiz.Questions {
		answers = append(answers, AnswerRequest{
			QuestionID:        q.ID,
			SelectedOptionIDs: []uint{correctOption(t, q)},
		})
	}
	attempt, err := svc.Submit(quiz.ID, student.ID, answers)
	require.NoError(t, err)

	assert.Equal(t, 60, attempt.Score)
	assert.InDelta(t, 100.0, attempt.Percentage, 0.001)
	assert.True(t, attempt.Passed)
}

func TestQuizSubmitPartialSelectionIsWrong(t *testing.T) {
	db := newTestDB(t)
	svc := newQuizService(db)

	student := createTestUser(t, db, "student@example.com", model.RoleStudent)
	teacher := createTestUser(t, db, "teacher@example.com", model.RoleTeacher)
	course := createTestCourse(t, db, teacher.ID)
	module := createTestModule(t, db, course.ID, 1)

	// Multi-select question: both options correct, picking one is not enough.
	quiz, err := svc.Create(QuizRequest{
		ModuleID: module.ID,
		Title:    "Multi",
		Questions: []QuestionRequest{
			{Text: "pick all", Points: 10, Options: []OptionRequest{
				{Text: "a", Correct: true},
				{Text: "b", Correct: true},
				{Text: "c", Correct: false},
			}},
		},
	})
	require.NoError(t, err)

	q := quiz.Questions[0]
	attempt, err := svc.Submit(quiz.ID, student.ID, []AnswerRequest{
		{QuestionID: q.ID, SelectedOptionIDs: []uint{correctOption(t, q)}},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, attempt.Score)
}

func TestQuizCreateDefaultsAndConflicts(t *testing.T) {
	db := newTestDB(t)
	svc := newQuizService(db)

	teacher := createTestUser(t, db, "teacher@example.com", model.RoleTeacher)
	course := createTestCourse(t, db, teacher.ID)
	module := createTestModule(t, db, course.ID, 1)

	quiz, err := svc.Create(QuizRequest{ModuleID: module.ID, Title: "Defaults"})
	require.NoError(t, err)
	assert.Equal(t, 2, quiz.MaxAttempts)
	assert.Equal(t, 70, quiz.PassingScore)

	_, err = svc.Create(QuizRequest{ModuleID: module.ID, Title: "Second"})
	assert.ErrorIs(t, err, util.ErrModuleHasQuiz)

	_, err = svc.Create(QuizRequest{ModuleID: 9999, Title: "Orphan"})
	assert.ErrorIs(t, err, util.ErrModuleNotFound)
}

func TestQuizDeleteCascade(t *testing.T) {
	db := newTestDB(t)
	svc := newQuizService(db)

	teacher := createTestUser(t, db, "teacher@example.com", model.RoleTeacher)
	course := createTestCourse(t, db, teacher.ID)
	module := createTestModule(t, db, course.ID, 1)
	quiz := createTestQuiz(t, svc, module.ID, 5)

	require.NoError(t, svc.Delete(quiz.ID))

	var questions int64
	db.Model(&model.Question{}).Where("quiz_id = ?", quiz.ID).Count(&questions)
	assert.Zero(t, questions)

	_, err := svc.GetByID(quiz.ID)
	assert.ErrorIs(t, err, util.ErrQuizNotFound)
}
