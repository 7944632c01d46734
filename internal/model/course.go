package model

// swagger:model Course
type Course struct {
	BaseModel
	Title       string `gorm:"size:200;not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	ImageURL    string `gorm:"size:255" json:"imageUrl"`
	Active      bool   `gorm:"default:true" json:"active"`
	TeacherID   uint   `gorm:"index;not null" json:"teacherId"`
	Teacher     *User  `gorm:"foreignKey:TeacherID" json:"teacher,omitempty"`
}

func (Course) TableName() string {
	return "courses"
}
