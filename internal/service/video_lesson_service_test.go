package service

import (
	"testing"

	"lms_backend/internal/config"
	"lms_backend/internal/model"
	"lms_backend/internal/repository"
	"lms_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newLessonService(t *testing.T, db *gorm.DB) *VideoLessonService {
	t.Helper()
	cfg := &config.Config{}
	cfg.Storage.UploadRoot = t.TempDir()
	return NewVideoLessonService(
		repository.NewVideoLessonRepository(db),
		repository.NewModuleRepository(db),
		cfg,
		db,
	)
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestLessonCreate(t *testing.T) {
	db := newTestDB(t)
	svc := newLessonService(t, db)

	teacher := createTestUser(t, db, "teacher@example.com", model.RoleTeacher)
	course := createTestCourse(t, db, teacher.ID)
	module := createTestModule(t, db, course.ID, 1)

	lesson, err := svc.Create(LessonRequest{
		ModuleID: module.ID,
		Title:    strPtr("Intro"),
		VideoURL: strPtr("https://example.com/intro.mp4"),
		Duration: intPtr(300),
	})
	require.NoError(t, err)

	assert.Equal(t, "Intro", lesson.Title)
	assert.Equal(t, model.VideoTypeURL, lesson.VideoType)
	assert.Equal(t, 300, lesson.Duration)
}

func TestLessonCreateConflicts(t *testing.T) {
	db := newTestDB(t)
	svc := newLessonService(t, db)

	teacher := createTestUser(t, db, "teacher@example.com", model.RoleTeacher)
	course := createTestCourse(t, db, teacher.ID)
	module := createTestModule(t, db, course.ID, 1)

	_, err := svc.Create(LessonRequest{ModuleID: module.ID, Title: strPtr("First")})
	require.NoError(t, err)

	_, err = svc.Create(LessonRequest{ModuleID: module.ID, Title: strPtr("Second")})
	assert.ErrorIs(t, err, util.ErrModuleHasLesson)

	_, err = svc.Create(LessonRequest{ModuleID: 9999, Title: strPtr("Orphan")})
	assert.ErrorIs(t, err, util.ErrModuleNotFound)
}

func TestLessonPartialUpdate(t *testing.T) {
	db := newTestDB(t)
	svc := newLessonService(t, db)

	teacher := createTestUser(t, db, "teacher@example.com", model.RoleTeacher)
	course := createTestCourse(t, db, teacher.ID)
	module := createTestModule(t, db, course.ID, 1)

	lesson, err := svc.Create(LessonRequest{
		ModuleID:    module.ID,
		Title:       strPtr("Original"),
		Description: strPtr("original description"),
		Duration:    intPtr(120),
	})
	require.NoError(t, err)

	updated, err := svc.Update(lesson.ID, LessonRequest{Title: strPtr("Renamed")})
	require.NoError(t, err)

	assert.Equal(t, "Renamed", updated.Title)
	assert.Equal(t, "original description", updated.Description)
	assert.Equal(t, 120, updated.Duration)
}

func TestLessonListByCourseOrder(t *testing.T) {
	db := newTestDB(t)
	svc := newLessonService(t, db)

	teacher := createTestUser(t, db, "teacher@example.com", model.RoleTeacher)
	course := createTestCourse(t, db, teacher.ID)
	m2 := createTestModule(t, db, course.ID, 2)
	m1 := createTestModule(t, db, course.ID, 1)

	_, err := svc.Create(LessonRequest{ModuleID: m2.ID, Title: strPtr("Second")})
	require.NoError(t, err)
	_, err = svc.Create(LessonRequest{ModuleID: m1.ID, Title: strPtr("First")})
	require.NoError(t, err)

	lessons, err := svc.ListByCourse(course.ID)
	require.NoError(t, err)
	require.Len(t, lessons, 2)
	assert.Equal(t, "First", lessons[0].Title)
	assert.Equal(t, "Second", lessons[1].Title)
}

func TestLessonDelete(t *testing.T) {
	db := newTestDB(t)
	svc := newLessonService(t, db)

	teacher := createTestUser(t, db, "teacher@example.com", model.RoleTeacher)
	course := createTestCourse(t, db, teacher.ID)
	module := createTestModule(t, db, course.ID, 1)

	lesson, err := svc.Create(LessonRequest{ModuleID: module.ID, Title: strPtr("Gone soon")})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(lesson.ID))
	_, err = svc.GetByID(lesson.ID)
	assert.ErrorIs(t, err, util.ErrLessonNotFound)

	assert.ErrorIs(t, svc.Delete(lesson.ID), util.ErrLessonNotFound)
}
