package entity

import (
	"time"
)

// OrderLine copies (menu item, quantity) from a cart line when the order is
// placed. The unit price is not carried over; it is baked into Order.Total.
type OrderLine struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"-"`

	OrderID uint  `gorm:"not null;index" json:"orderId"`
	Order   Order `json:"-"`

	MenuItemID uint     `gorm:"not null" json:"menuItemId"`
	MenuItem   MenuItem `json:"menuItem"`

	Quantity int `gorm:"not null" json:"quantity"`
}
