package entity

import "time"

// Category is a menu grouping. Names are stored upper-cased; uniqueness is
// checked against the loaded list in the dashboard, not by the table.
type Category struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func (Category) TableName() string { return "category" }
