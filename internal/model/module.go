package model

// Module is an ordered unit within a course holding exactly one content item:
// a video lesson, a quiz, or a reflection assignment.
// swagger:model Module
type Module struct {
	BaseModel
	CourseID    uint    `gorm:"index;not null" json:"courseId"`
	Course      *Course `gorm:"foreignKey:CourseID" json:"course,omitempty"`
	Title       string  `gorm:"size:200;not null" json:"title"`
	Description string  `gorm:"type:text" json:"description"`
	OrderNumber int     `gorm:"not null" json:"orderNumber"`
}

func (Module) TableName() string {
	return "modules"
}
