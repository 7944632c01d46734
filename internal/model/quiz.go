package model

// swagger:model Quiz
type Quiz struct {
	BaseModel
	ModuleID     uint       `gorm:"uniqueIndex;not null" json:"moduleId"`
	Module       *Module    `gorm:"foreignKey:ModuleID" json:"module,omitempty"`
	Title        string     `gorm:"size:200;not null" json:"title"`
	Description  string     `gorm:"type:text" json:"description"`
	TimeLimit    int        `json:"timeLimit"` // minutes, 0 = unlimited
	MaxAttempts  int        `gorm:"default:2" json:"maxAttempts"`
	PassingScore int        `gorm:"default:70" json:"passingScore"`
	Questions    []Question `gorm:"foreignKey:QuizID" json:"questions,omitempty"`
}

func (Quiz) TableName() string {
	return "quizzes"
}

// swagger:model Question
type Question struct {
	BaseModel
	QuizID  uint             `gorm:"index;not null" json:"quizId"`
	Text    string           `gorm:"type:text;not null" json:"text"`
	Points  int              `gorm:"default:1" json:"points"`
	Options []QuestionOption `gorm:"foreignKey:QuestionID" json:"options,omitempty"`
}

func (Question) TableName() string {
	return "questions"
}

// swagger:model QuestionOption
type QuestionOption struct {
	BaseModel
	QuestionID uint   `gorm:"index;not null" json:"questionId"`
	Text       string `gorm:"type:text;not null" json:"text"`
	Correct    bool   `gorm:"default:false" json:"correct"`
}

func (QuestionOption) TableName() string {
	return "question_options"
}
