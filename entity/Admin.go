package entity

import (
	"gorm.io/gorm"
)

// Admin is the single operator account, seeded from env at boot.
type Admin struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `json:"-"`
}
