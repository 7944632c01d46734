package service

import (
	"testing"

	"lms_backend/internal/model"
	"lms_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnrollDefaults(t *testing.T) {
	db := newTestDB(t)
	svc := newEnrollmentService(db)

	teacher := createTestUser(t, db, "teacher@example.com", model.RoleTeacher)
	student := createTestUser(t, db, "student@example.com", model.RoleStudent)
	course := createTestCourse(t, db, teacher.ID)

	enrollment, err := svc.Enroll(student.ID, course.ID)
	require.NoError(t, err)

	assert.Equal(t, model.EnrollmentActive, enrollment.Status)
	assert.Zero(t, enrollment.Progress)
	assert.False(t, enrollment.EnrolledAt.IsZero())
	assert.Nil(t, enrollment.CompletedAt)
}

func TestEnrollDuplicate(t *testing.T) {
	db := newTestDB(t)
	svc := newEnrollmentService(db)

	teacher := createTestUser(t, db, "teacher@example.com", model.RoleTeacher)
	student := createTestUser(t, db, "student@example.com", model.RoleStudent)
	course := createTestCourse(t, db, teacher.ID)

	_, err := svc.Enroll(student.ID, course.ID)
	require.NoError(t, err)

	_, err = svc.Enroll(student.ID, course.ID)
	assert.ErrorIs(t, err, util.ErrAlreadyEnrolled)
}

func TestEnrollMissingReferences(t *testing.T) {
	db := newTestDB(t)
	svc := newEnrollmentService(db)

	teacher := createTestUser(t, db, "teacher@example.com", model.RoleTeacher)
	course := createTestCourse(t, db, teacher.ID)

	_, err := svc.Enroll(9999, course.ID)
	assert.ErrorIs(t, err, util.ErrUserNotFound)

	student := createTestUser(t, db, "student@example.com", model.RoleStudent)
	_, err = svc.Enroll(student.ID, 9999)
	assert.ErrorIs(t, err, util.ErrCourseNotFound)
}

func TestUpdateProgressCompletes(t *testing.T) {
	db := newTestDB(t)
	svc := newEnrollmentService(db)

	teacher := createTestUser(t, db, "teacher@example.com", model.RoleTeacher)
	student := createTestUser(t, db, "student@example.com", model.RoleStudent)
	course := createTestCourse(t, db, teacher.ID)

	enrollment, err := svc.Enroll(student.ID, course.ID)
	require.NoError(t, err)

	enrollment, err = svc.UpdateProgress(enrollment.ID, 55)
	require.NoError(t, err)
	assert.Equal(t, model.EnrollmentActive, enrollment.Status)
	assert.Nil(t, enrollment.CompletedAt)

	enrollment, err = svc.UpdateProgress(enrollment.ID, 100)
	require.NoError(t, err)
	assert.Equal(t, model.EnrollmentCompleted, enrollment.Status)
	assert.NotNil(t, enrollment.CompletedAt)

	// Further progress reports never reopen a completed enrollment.
	enrollment, err = svc.UpdateProgress(enrollment.ID, 40)
	require.NoError(t, err)
	assert.Equal(t, model.EnrollmentCompleted, enrollment.Status)
}

func TestUpdateProgressCompletesDroppedEnrollment(t *testing.T) {
	db := newTestDB(t)
	svc := newEnrollmentService(db)

	teacher := createTestUser(t, db, "teacher@example.com", model.RoleTeacher)
	student := createTestUser(t, db, "student@example.com", model.RoleStudent)
	course := createTestCourse(t, db, teacher.ID)

	enrollment, err := svc.Enroll(student.ID, course.ID)
	require.NoError(t, err)

	enrollment, err = svc.Drop(enrollment.ID)
	require.NoError(t, err)
	require.Equal(t, model.EnrollmentDropped, enrollment.Status)

	// Partial progress leaves a dropped enrollment dropped.
	enrollment, err = svc.UpdateProgress(enrollment.ID, 80)
	require.NoError(t, err)
	assert.Equal(t, model.EnrollmentDropped, enrollment.Status)
	assert.Nil(t, enrollment.CompletedAt)

	// Full progress completes it regardless of the drop.
	enrollment, err = svc.UpdateProgress(enrollment.ID, 100)
	require.NoError(t, err)
	assert.Equal(t, model.EnrollmentCompleted, enrollment.Status)
	assert.NotNil(t, enrollment.CompletedAt)
}

func TestDropEnrollment(t *testing.T) {
	db := newTestDB(t)
	svc := newEnrollmentService(db)

	teacher := createTestUser(t, db, "teacher@example.com", model.RoleTeacher)
	student := createTestUser(t, db, "student@example.com", model.RoleStudent)
	course := createTestCourse(t, db, teacher.ID)

	enrollment, err := svc.Enroll(student.ID, course.ID)
	require.NoError(t, err)

	enrollment, err = svc.Drop(enrollment.ID)
	require.NoError(t, err)
	assert.Equal(t, model.EnrollmentDropped, enrollment.Status)

	// Dropping twice is a no-op.
	enrollment, err = svc.Drop(enrollment.ID)
	require.NoError(t, err)
	assert.Equal(t, model.EnrollmentDropped, enrollment.Status)

	_, err = svc.Drop(9999)
	assert.ErrorIs(t, err, util.ErrEnrollmentNotFound)
}
