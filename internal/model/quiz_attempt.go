package model

import "time"

// QuizAttempt is one graded submission of a quiz by a student.
// swagger:model QuizAttempt
type QuizAttempt struct {
	BaseModel
	QuizID      uint       `gorm:"index;not null" json:"quizId"`
	Quiz        *Quiz      `gorm:"foreignKey:QuizID" json:"quiz,omitempty"`
	StudentID   uint       `gorm:"index;not null" json:"studentId"`
	Student     *User      `gorm:"foreignKey:StudentID" json:"student,omitempty"`
	Score       int        `json:"score"`
	Percentage  float64    `json:"percentage"`
	Passed      bool       `json:"passed"`
	StartedAt   time.Time  `json:"startedAt"`
	CompletedAt *time.Time `json:"completedAt"`
	Answers     []Answer   `gorm:"foreignKey:AttemptID" json:"answers,omitempty"`
}

func (QuizAttempt) TableName() string {
	return "quiz_attempts"
}

// swagger:model Answer
type Answer struct {
	BaseModel
	AttemptID       uint             `gorm:"index;not null" json:"attemptId"`
	QuestionID      uint             `gorm:"index;not null" json:"questionId"`
	Question        *Question        `gorm:"foreignKey:QuestionID" json:"question,omitempty"`
	TextAnswer      string           `gorm:"type:text" json:"textAnswer"`
	Correct         bool             `json:"correct"`
	PointsEarned    int              `json:"pointsEarned"`
	SelectedOptions []QuestionOption `gorm:"many2many:answer_selected_options" json:"selectedOptions,omitempty"`
}

func (Answer) TableName() string {
	return "answers"
}
