package entity

import "time"

// Menu is a sellable item. Price is in currency minor units (no fractions).
// ImgPath keeps the storage-relative object path alongside the public URL so
// cleanup never has to reverse-engineer the path from the URL.
type Menu struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `json:"description"`
	Price       int64     `json:"price"`
	CategoryID  *string   `gorm:"size:36;index" json:"category_id"`
	ImgURL      *string   `json:"img_url"`
	ImgPath     *string   `json:"-"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Menu) TableName() string { return "menu" }
