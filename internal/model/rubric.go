package model

// swagger:model Rubric
type Rubric struct {
	BaseModel
	Name        string            `gorm:"size:200;not null" json:"name"`
	Description string            `gorm:"type:text" json:"description"`
	MaxScore    int               `json:"maxScore"`
	Criteria    []RubricCriterion `gorm:"foreignKey:RubricID" json:"criteria,omitempty"`
}

func (Rubric) TableName() string {
	return "rubrics"
}

// swagger:model RubricCriterion
type RubricCriterion struct {
	BaseModel
	RubricID    uint   `gorm:"index;not null" json:"rubricId"`
	Name        string `gorm:"size:200;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	MaxPoints   int    `json:"maxPoints"`
	OrderNumber int    `json:"orderNumber"`
}

func (RubricCriterion) TableName() string {
	return "rubric_criteria"
}
