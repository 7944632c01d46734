package model

// Forum is scoped to either a course or a single module; exactly one of the
// two references is set.
// swagger:model Forum
type Forum struct {
	BaseModel
	CourseID    *uint   `gorm:"index" json:"courseId"`
	Course      *Course `gorm:"foreignKey:CourseID" json:"course,omitempty"`
	ModuleID    *uint   `gorm:"index" json:"moduleId"`
	Module      *Module `gorm:"foreignKey:ModuleID" json:"module,omitempty"`
	Title       string  `gorm:"size:200;not null" json:"title"`
	Description string  `gorm:"type:text" json:"description"`
}

func (Forum) TableName() string {
	return "forums"
}

// ForumPost replies form a tree via ParentPostID.
// swagger:model ForumPost
type ForumPost struct {
	BaseModel
	ForumID       uint       `gorm:"index;not null" json:"forumId"`
	AuthorID      uint       `gorm:"index;not null" json:"authorId"`
	Author        *User      `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	ParentPostID  *uint      `gorm:"index" json:"parentPostId"`
	ParentPost    *ForumPost `gorm:"foreignKey:ParentPostID" json:"-"`
	Title         string     `gorm:"size:200" json:"title"`
	Content       string     `gorm:"type:text;not null" json:"content"`
	AttachmentURL string     `gorm:"size:255" json:"attachmentUrl"`
}

func (ForumPost) TableName() string {
	return "forum_posts"
}
