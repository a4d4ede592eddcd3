package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username string `gorm:"uniqueIndex;size:150;not null" json:"username"`
	Email    string `gorm:"size:254" json:"email"`
	Password string `json:"-"`
	IsAdmin  bool   `gorm:"not null;default:false" json:"is_admin"`

	// membership lives in user_groups; never serialized with the user
	Groups []Group    `gorm:"many2many:user_groups;" json:"-"`
	Orders []Order    `json:"-"`
	Cart   []CartLine `json:"-"`
}
