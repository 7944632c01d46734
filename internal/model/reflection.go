package model

import "time"

// swagger:model ReflectionAssignment
type ReflectionAssignment struct {
	BaseModel
	ModuleID     uint    `gorm:"uniqueIndex;not null" json:"moduleId"`
	Module       *Module `gorm:"foreignKey:ModuleID" json:"module,omitempty"`
	Title        string  `gorm:"size:200;not null" json:"title"`
	Description  string  `gorm:"type:text" json:"description"`
	Instructions string  `gorm:"type:text" json:"instructions"`
	MinWords     int     `json:"minWords"`
	MaxWords     int     `json:"maxWords"`
}

func (ReflectionAssignment) TableName() string {
	return "reflection_assignments"
}

type SubmissionStatus string

const (
	SubmissionDraft     SubmissionStatus = "DRAFT"
	SubmissionSubmitted SubmissionStatus = "SUBMITTED"
	SubmissionGraded    SubmissionStatus = "GRADED"
)

// swagger:model ReflectionSubmission
type ReflectionSubmission struct {
	BaseModel
	AssignmentID  uint                  `gorm:"not null;uniqueIndex:idx_submission_assignment_student" json:"assignmentId"`
	Assignment    *ReflectionAssignment `gorm:"foreignKey:AssignmentID" json:"assignment,omitempty"`
	StudentID     uint                  `gorm:"not null;uniqueIndex:idx_submission_assignment_student" json:"studentId"`
	Student       *User                 `gorm:"foreignKey:StudentID" json:"student,omitempty"`
	Content       string                `gorm:"type:text" json:"content"`
	AttachmentURL string                `gorm:"size:255" json:"attachmentUrl"`
	Status        SubmissionStatus      `gorm:"size:20;default:'DRAFT'" json:"status"`
	Score         *int                  `json:"score"`
	Feedback      string                `gorm:"type:text" json:"feedback"`
	GradedByID    *uint                 `json:"gradedById"`
	GradedBy      *User                 `gorm:"foreignKey:GradedByID" json:"gradedBy,omitempty"`
	SubmittedAt   *time.Time            `json:"submittedAt"`
	GradedAt      *time.Time            `json:"gradedAt"`
}

func (ReflectionSubmission) TableName() string {
	return "reflection_submissions"
}
