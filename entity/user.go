package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Email    string `gorm:"index" json:"email"`
	Password string `json:"-"`
	Role     Role   `gorm:"not null;default:customer" json:"role"`

	// Relations — preload only when needed
	CartLines          []CartLine `json:"-"`
	Orders             []Order    `json:"-"`
	AssignedDeliveries []Order    `gorm:"foreignKey:DeliveryCrewID" json:"-"`
}
