package model

import "time"

type Photo struct {
	ID          string    `json:"photo_id"`
	UserID      string    `json:"user_id"`
	MarathonID  *string   `json:"marathon_id,omitempty"`
	Filename    string    `json:"filename"`
	URL         string    `json:"url"`
	Size        int64     `json:"size"`
	ContentType string    `json:"content_type"`
	Numbers     []string  `json:"detected_numbers"`
	UploadedAt  time.Time `json:"upload_time"`
}

type Marathon struct {
	ID        string    `json:"marathon_id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	EventDate time.Time `json:"event_date"`
	Location  string    `json:"location"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type MarathonRequest struct {
	Name      string `json:"name" validate:"required,max=100"`
	EventDate string `json:"event_date" validate:"required,datetime=2006-01-02"`
	Location  string `json:"location" validate:"required,max=200"`
	IsActive  *bool  `json:"is_active,omitempty"`
}

type PhotoPage struct {
	Photos     []*Photo    `json:"photos"`
	Marathons  []*Marathon `json:"marathons"`
	Page       int         `json:"page"`
	PageSize   int         `json:"page_size"`
	Total      int         `json:"total"`
	TotalPages int         `json:"total_pages"`
}
