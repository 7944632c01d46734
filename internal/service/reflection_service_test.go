package service

import (
	"strings"
	"testing"

	"lms_backend/internal/model"
	"lms_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func createTestAssignment(t *testing.T, svc *ReflectionService, db *gorm.DB, minWords, maxWords int) (*model.ReflectionAssignment, *model.User) {
	t.Helper()
	teacher := createTestUser(t, db, "teacher@example.com", model.RoleTeacher)
	student := createTestUser(t, db, "student@example.com", model.RoleStudent)
	course := createTestCourse(t, db, teacher.ID)
	module := createTestModule(t, db, course.ID, 1)

	assignment := &model.ReflectionAssignment{
		ModuleID: module.ID,
		Title:    "Weekly reflection",
		MinWords: minWords,
		MaxWords: maxWords,
	}
	require.NoError(t, svc.CreateAssignment(assignment))
	return assignment, student
}

func TestReflectionAssignmentConflicts(t *testing.T) {
	db := newTestDB(t)
	svc := newReflectionService(db)

	assignment, _ := createTestAssignment(t, svc, db, 0, 0)

	dup := &model.ReflectionAssignment{ModuleID: assignment.ModuleID, Title: "Another"}
	assert.ErrorIs(t, svc.CreateAssignment(dup), util.ErrModuleHasAssignment)

	orphan := &model.ReflectionAssignment{ModuleID: 9999, Title: "Orphan"}
	assert.ErrorIs(t, svc.CreateAssignment(orphan), util.ErrModuleNotFound)
}

func TestReflectionStatusMachine(t *testing.T) {
	db := newTestDB(t)
	svc := newReflectionService(db)

	assignment, student := createTestAssignment(t, svc, db, 0, 0)
	grader := createTestUser(t, db, "grader@example.com", model.RoleTeacher)

	sub, err := svc.SaveDraft(assignment.ID, student.ID, "first thoughts", "")
	require.NoError(t, err)
	assert.Equal(t, model.SubmissionDraft, sub.Status)

	// Drafts can be rewritten; the student still has exactly one submission.
	sub, err = svc.SaveDraft(assignment.ID, student.ID, "better thoughts", "")
	require.NoError(t, err)
	assert.Equal(t, "better thoughts", sub.Content)

	// Grading a draft is not allowed.
	_, err = svc.Grade(sub.ID, grader.ID, 80, "")
	assert.ErrorIs(t, err, util.ErrInvalidTransition)

	sub, err = svc.Submit(sub.ID)
	require.NoError(t, err)
	assert.Equal(t, model.SubmissionSubmitted, sub.Status)
	assert.NotNil(t, sub.SubmittedAt)

	// No edits and no double submit after submission.
	_, err = svc.SaveDraft(assignment.ID, student.ID, "too late", "")
	assert.ErrorIs(t, err, util.ErrInvalidTransition)
	_, err = svc.Submit(sub.ID)
	assert.ErrorIs(t, err, util.ErrInvalidTransition)

	sub, err = svc.Grade(sub.ID, grader.ID, 85, "solid work")
	require.NoError(t, err)
	assert.Equal(t, model.SubmissionGraded, sub.Status)
	require.NotNil(t, sub.Score)
	assert.Equal(t, 85, *sub.Score)
	require.NotNil(t, sub.GradedByID)
	assert.Equal(t, grader.ID, *sub.GradedByID)

	// Grading is final.
	_, err = svc.Grade(sub.ID, grader.ID, 90, "")
	assert.ErrorIs(t, err, util.ErrInvalidTransition)

	// The student got a grading notification.
	var notifications []model.Notification
	require.NoError(t, db.Where("user_id = ?", student.ID).Find(&notifications).Error)
	require.Len(t, notifications, 1)
	assert.Equal(t, model.NotificationAssignmentGraded, notifications[0].Type)
}

func TestReflectionWordBounds(t *testing.T) {
	db := newTestDB(t)
	svc := newReflectionService(db)

	assignment, student := createTestAssignment(t, svc, db, 3, 5)

	sub, err := svc.SaveDraft(assignment.ID, student.ID, "too short", "")
	require.NoError(t, err)
	_, err = svc.Submit(sub.ID)
	assert.ErrorIs(t, err, util.ErrWordCountOutOfRange)

	_, err = svc.SaveDraft(assignment.ID, student.ID, strings.Repeat("word ", 6), "")
	require.NoError(t, err)
	_, err = svc.Submit(sub.ID)
	assert.ErrorIs(t, err, util.ErrWordCountOutOfRange)

	_, err = svc.SaveDraft(assignment.ID, student.ID, "exactly four words here", "")
	require.NoError(t, err)
	sub, err = svc.Submit(sub.ID)
	require.NoError(t, err)
	assert.Equal(t, model.SubmissionSubmitted, sub.Status)
}

func TestReflectionDeleteAssignmentCascades(t *testing.T) {
	db := newTestDB(t)
	svc := newReflectionService(db)

	assignment, student := createTestAssignment(t, svc, db, 0, 0)

	sub, err := svc.SaveDraft(assignment.ID, student.ID, "content", "")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteAssignment(assignment.ID))

	_, err = svc.GetAssignment(assignment.ID)
	assert.ErrorIs(t, err, util.ErrAssignmentNotFound)
	_, err = svc.GetSubmission(sub.ID)
	assert.ErrorIs(t, err, util.ErrSubmissionNotFound)
}
