package model

type VideoType string

const (
	VideoTypeURL    VideoType = "URL"
	VideoTypeUpload VideoType = "UPLOAD"
)

// swagger:model VideoLesson
type VideoLesson struct {
	BaseModel
	// Unique index keeps a module from holding more than one lesson even
	// under concurrent create requests.
	ModuleID     uint      `gorm:"uniqueIndex;not null" json:"moduleId"`
	Module       *Module   `gorm:"foreignKey:ModuleID" json:"module,omitempty"`
	Title        string    `gorm:"size:200;not null" json:"title"`
	Description  string    `gorm:"type:text" json:"description"`
	VideoURL     string    `gorm:"size:255" json:"videoUrl"`
	VideoType    VideoType `gorm:"size:10;default:'URL'" json:"videoType"`
	Duration     int       `json:"duration"`
	ThumbnailURL string    `gorm:"size:255" json:"thumbnailUrl"`
	Transcript   string    `gorm:"type:text" json:"transcript"`
	PdfURL       string    `gorm:"size:255" json:"pdfUrl"`
	PdfFileName  string    `gorm:"size:255" json:"pdfFileName"`
}

func (VideoLesson) TableName() string {
	return "video_lessons"
}
