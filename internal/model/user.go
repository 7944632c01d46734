package model

type UserRole string

const (
	RoleStudent UserRole = "student"
	RoleTeacher UserRole = "teacher"
	RoleAdmin   UserRole = "admin"
)

// swagger:model User
type User struct {
	BaseModel
	Email     string   `gorm:"size:100;uniqueIndex;not null" json:"email"`
	FirstName string   `gorm:"size:100;not null" json:"firstName"`
	LastName  string   `gorm:"size:100;not null" json:"lastName"`
	Password  string   `gorm:"size:100;not null" json:"-"`
	Phone     string   `gorm:"size:30" json:"phone"`
	Role      UserRole `gorm:"size:20;default:'student'" json:"role"`
	Active    bool     `gorm:"default:true" json:"active"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
