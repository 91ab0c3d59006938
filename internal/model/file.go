package model

import "time"

// FileUpload records one stored binary. The file itself lives on disk under
// the configured uploads directory; StoredName is unique per upload.
type FileUpload struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	OriginalName string    `gorm:"column:original_name" json:"original_name"`
	StoredName   string    `gorm:"column:stored_name;uniqueIndex" json:"stored_name"`
	Size         int64     `gorm:"column:size" json:"size"`
	ContentType  string    `gorm:"column:content_type" json:"content_type"`
	CreatedAt    time.Time `json:"created_at"`
}

func (FileUpload) TableName() string { return "file_uploads" }
