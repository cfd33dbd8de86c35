package entity

import "time"

// Event is a promotional happening. Names are unique case-insensitively,
// enforced by a scan before insert/update rather than a DB constraint.
type Event struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `json:"description"`
	Locations   string    `json:"locations"`
	ImgURL      *string   `json:"img_url"`
	ImgPath     *string   `json:"-"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Event) TableName() string { return "event" }
