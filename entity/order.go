package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Order is an immutable snapshot of a cart at placement time. Only Status
// and DeliveryCrewID may change afterwards.
type Order struct {
	gorm.Model
	UserID uint `gorm:"not null;index" json:"userId"`
	User   User `json:"-"`

	DeliveryCrewID *uint `gorm:"index" json:"deliveryCrewId"`
	DeliveryCrew   *User `json:"-"`

	// false = placed, true = delivered
	Status bool            `gorm:"not null;default:false" json:"status"`
	Date   time.Time       `gorm:"not null" json:"date"`
	Total  decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total"`

	Lines []OrderLine `json:"lines"`
}
