package service

import (
	"fmt"
	"testing"

	"lms_backend/internal/model"
	"lms_backend/internal/repository"
	"lms_backend/pkg/database"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory database per test. The shared-cache DSN
// keeps every pooled connection pointed at the same database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email string, role model.UserRole) *model.User {
	t.Helper()
	user := &model.User{
		Email:     email,
		FirstName: "Test",
		LastName:  "User",
		Password:  "irrelevant",
		Role:      role,
		Active:    true,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestCourse(t *testing.T, db *gorm.DB, teacherID uint) *model.Course {
	t.Helper()
	course := &model.Course{
		Title:     "Go Fundamentals",
		Active:    true,
		TeacherID: teacherID,
	}
	require.NoError(t, db.Create(course).Error)
	return course
}

func createTestModule(t *testing.T, db *gorm.DB, courseID uint, order int) *model.Module {
	t.Helper()
	module := &model.Module{
		CourseID:    courseID,
		Title:       fmt.Sprintf("Module %d", order),
		OrderNumber: order,
	}
	require.NoError(t, db.Create(module).Error)
	return module
}

func newQuizService(db *gorm.DB) *QuizService {
	return NewQuizService(
		repository.NewQuizRepository(db),
		repository.NewQuizAttemptRepository(db),
		repository.NewModuleRepository(db),
		repository.NewUserRepository(db),
		db,
	)
}

func newEnrollmentService(db *gorm.DB) *EnrollmentService {
	return NewEnrollmentService(
		repository.NewEnrollmentRepository(db),
		repository.NewCourseRepository(db),
		repository.NewUserRepository(db),
	)
}

func newCertificateService(db *gorm.DB) *CertificateService {
	return NewCertificateService(
		repository.NewCertificateRepository(db),
		repository.NewCourseRepository(db),
		repository.NewUserRepository(db),
		repository.NewPortfolioRepository(db),
		repository.NewNotificationRepository(db),
	)
}

func newReflectionService(db *gorm.DB) *ReflectionService {
	return NewReflectionService(
		repository.NewReflectionRepository(db),
		repository.NewModuleRepository(db),
		repository.NewUserRepository(db),
		repository.NewNotificationRepository(db),
	)
}

func newForumService(db *gorm.DB) *ForumService {
	return NewForumService(
		repository.NewForumRepository(db),
		repository.NewCourseRepository(db),
		repository.NewModuleRepository(db),
		repository.NewNotificationRepository(db),
		db,
	)
}
