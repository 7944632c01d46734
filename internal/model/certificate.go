package model

import "time"

// Certificate proves course completion. The code is a public token that can
// be verified without authentication.
// swagger:model Certificate
type Certificate struct {
	BaseModel
	StudentID       uint      `gorm:"not null;uniqueIndex:idx_certificate_student_course" json:"studentId"`
	Student         *User     `gorm:"foreignKey:StudentID" json:"student,omitempty"`
	CourseID        uint      `gorm:"not null;uniqueIndex:idx_certificate_student_course" json:"courseId"`
	Course          *Course   `gorm:"foreignKey:CourseID" json:"course,omitempty"`
	CertificateCode string    `gorm:"size:36;uniqueIndex;not null" json:"certificateCode"`
	FinalScore      float64   `json:"finalScore"`
	Grade           string    `gorm:"size:20" json:"grade"`
	CertificateURL  string    `gorm:"size:255" json:"certificateUrl"`
	IssuedAt        time.Time `json:"issuedAt"`
	IssuedByID      *uint     `json:"issuedById"`
	IssuedBy        *User     `gorm:"foreignKey:IssuedByID" json:"issuedBy,omitempty"`
}

func (Certificate) TableName() string {
	return "certificates"
}
