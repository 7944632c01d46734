package model

import "time"

type EnrollmentStatus string

const (
	EnrollmentActive    EnrollmentStatus = "ACTIVE"
	EnrollmentCompleted EnrollmentStatus = "COMPLETED"
	EnrollmentDropped   EnrollmentStatus = "DROPPED"
)

// Enrollment links a student to a course and tracks progress. A student has
// at most one enrollment per course, enforced by the composite unique index.
// swagger:model Enrollment
type Enrollment struct {
	BaseModel
	StudentID   uint             `gorm:"not null;uniqueIndex:idx_enrollment_student_course" json:"studentId"`
	Student     *User            `gorm:"foreignKey:StudentID" json:"student,omitempty"`
	CourseID    uint             `gorm:"not null;uniqueIndex:idx_enrollment_student_course" json:"courseId"`
	Course      *Course          `gorm:"foreignKey:CourseID" json:"course,omitempty"`
	Progress    float64          `gorm:"default:0" json:"progress"`
	Status      EnrollmentStatus `gorm:"size:20;default:'ACTIVE'" json:"status"`
	EnrolledAt  time.Time        `json:"enrolledAt"`
	CompletedAt *time.Time       `json:"completedAt"`
}

func (Enrollment) TableName() string {
	return "enrollments"
}
