package models

import (
	"time"

	"github.com/google/uuid"
)

// CVDocument is the catalog entry for an uploaded CV. The file itself lives
// in the upload directory under Filename.
type CVDocument struct {
	Filename    string    `gorm:"type:text;primaryKey" json:"filename"`
	SizeBytes   int64     `json:"size_bytes"`
	ContentType string    `gorm:"type:text" json:"content_type"`
	UploadedAt  time.Time `gorm:"autoCreateTime" json:"uploaded_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (d *CVDocument) TableName() string {
	return "cv_documents"
}

type TailoredDocument struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Filename   string    `gorm:"type:text;uniqueIndex" json:"filename"`
	SourceCV   string    `gorm:"type:text;index" json:"source_cv"`
	Keywords   []string  `gorm:"type:text;serializer:json" json:"keywords"`
	KeyPhrases []string  `gorm:"type:text;serializer:json" json:"key_phrases"`
	CreatedAt  time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}

func (TailoredDocument) TableName() string {
	return "tailored_documents"
}
