package model

type NotificationType string

const (
	NotificationAssignmentGraded  NotificationType = "ASSIGNMENT_GRADED"
	NotificationNewAssignment     NotificationType = "NEW_ASSIGNMENT"
	NotificationCourseUpdate      NotificationType = "COURSE_UPDATE"
	NotificationForumReply        NotificationType = "FORUM_REPLY"
	NotificationChatMessage       NotificationType = "CHAT_MESSAGE"
	NotificationCertificateIssued NotificationType = "CERTIFICATE_ISSUED"
)

// swagger:model Notification
type Notification struct {
	BaseModel
	UserID      uint             `gorm:"index;not null" json:"userId"`
	Title       string           `gorm:"size:200" json:"title"`
	Message     string           `gorm:"type:text;not null" json:"message"`
	Type        NotificationType `gorm:"size:30;not null" json:"type"`
	RelatedLink string           `gorm:"size:255" json:"relatedLink"`
	IsRead      bool             `gorm:"default:false" json:"isRead"`
}

func (Notification) TableName() string {
	return "notifications"
}
