package models

import (
	"time"
)

// TransformRequest is the body of POST /api/time-travel.
type TransformRequest struct {
	TimePeriod string `json:"timeperiod"`
	ImageData  string `json:"imageData"`
}

type TransformResponse struct {
	Success    bool   `json:"success"`
	Image      string `json:"image"`
	Stored     bool   `json:"stored"`
	Filename   string `json:"filename,omitempty"`
	TimePeriod string `json:"timeperiod"`
}

// ImageListing is derived from store metadata on every request.
type ImageListing struct {
	Key      string    `json:"key"`
	URL      string    `json:"url"`
	Size     int64     `json:"size"`
	Uploaded time.Time `json:"uploaded"`
}

// Transformation is one history row written after a successful transform.
type Transformation struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	EraID       string    `json:"era_id" gorm:"not null;index"`
	Filename    string    `json:"filename,omitempty"`
	Stored      bool      `json:"stored" gorm:"not null;default:false"`
	ContentType string    `json:"content_type" gorm:"not null"`
	Size        int64     `json:"size" gorm:"not null"`
	Provider    string    `json:"provider" gorm:"not null"`
	Model       string    `json:"model" gorm:"not null"`
	CreatedAt   time.Time `json:"created_at" gorm:"index"`
}
