package model

type PortfolioItemType string

const (
	PortfolioItemReflection  PortfolioItemType = "REFLECTION"
	PortfolioItemCertificate PortfolioItemType = "CERTIFICATE"
	PortfolioItemQuizResult  PortfolioItemType = "QUIZ_RESULT"
	PortfolioItemCustom      PortfolioItemType = "CUSTOM"
)

// swagger:model Portfolio
type Portfolio struct {
	BaseModel
	StudentID uint            `gorm:"uniqueIndex;not null" json:"studentId"`
	Student   *User           `gorm:"foreignKey:StudentID" json:"student,omitempty"`
	Items     []PortfolioItem `gorm:"foreignKey:PortfolioID" json:"items,omitempty"`
}

func (Portfolio) TableName() string {
	return "portfolios"
}

// PortfolioItem references an achievement (reflection, certificate, quiz
// result) surfaced in a student's profile.
// swagger:model PortfolioItem
type PortfolioItem struct {
	BaseModel
	PortfolioID uint              `gorm:"index;not null" json:"portfolioId"`
	Title       string            `gorm:"size:200;not null" json:"title"`
	Description string            `gorm:"type:text" json:"description"`
	Type        PortfolioItemType `gorm:"size:20;not null" json:"type"`
	ReferenceID *uint             `json:"referenceId"`
	FileURL     string            `gorm:"size:255" json:"fileUrl"`
}

func (PortfolioItem) TableName() string {
	return "portfolio_items"
}
