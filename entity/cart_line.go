package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartLine is one (user, menu item) row in the basket. No soft delete:
// clearing the cart removes rows for real, otherwise the unique pair index
// would trip on re-adding a previously cleared item.
type CartLine struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	UserID uint `gorm:"uniqueIndex:idx_cart_user_item;not null" json:"userId"`
	User   User `json:"-"`

	MenuItemID uint     `gorm:"uniqueIndex:idx_cart_user_item;not null" json:"menuItemId"`
	MenuItem   MenuItem `json:"menuItem"`

	Quantity  int             `gorm:"not null" json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"unitPrice"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"` // quantity × unit price
}
