package database

import (
	"fmt"
	"lms_backend/internal/config"
	"lms_backend/internal/model"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	// TranslateError lets services match duplicate-key failures via
	// gorm.ErrDuplicatedKey regardless of driver.
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Info),
		TranslateError: true,
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	Seed(db)

	return db, nil
}

// Migrate runs schema migration for every model. Shared with tests, which
// run it against an in-memory database.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Course{},
		&model.Module{},
		&model.VideoLesson{},
		&model.Quiz{},
		&model.Question{},
		&model.QuestionOption{},
		&model.QuizAttempt{},
		&model.Answer{},
		&model.Enrollment{},
		&model.ReflectionAssignment{},
		&model.ReflectionSubmission{},
		&model.Forum{},
		&model.ForumPost{},
		&model.Certificate{},
		&model.Portfolio{},
		&model.PortfolioItem{},
		&model.Notification{},
		&model.Rubric{},
		&model.RubricCriterion{},
	)
}

// Seed inserts a default admin account on an empty database.
func Seed(db *gorm.DB) {
	var count int64
	db.Model(&model.User{}).Where("role = ?", model.RoleAdmin).Count(&count)
	if count == 0 {
		hashed, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
		if err != nil {
			return
		}
		db.Create(&model.User{
			Email:     "admin@lms.local",
			FirstName: "System",
			LastName:  "Admin",
			Password:  string(hashed),
			Role:      model.RoleAdmin,
			Active:    true,
		})
	}
}
