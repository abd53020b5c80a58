package services

import (
	"errors"

	"backend/entity"
	"backend/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CartService owns the per-user basket. The only mutations are add-one-line
// and clear-all; there is no per-line update or delete.
type CartService struct {
	DB          *gorm.DB
	CartRepo    *repository.CartRepository
	CatalogRepo *repository.CatalogRepository
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, catr *repository.CatalogRepository) *CartService {
	return &CartService{DB: db, CartRepo: cr, CatalogRepo: catr}
}

func (s *CartService) List(userID uint) ([]entity.CartLine, error) {
	return s.CartRepo.ListForUser(userID)
}

type AddToCartIn struct {
	MenuItemID uint `json:"menuItemId" binding:"required"`
	Quantity   int  `json:"quantity" binding:"required"`
}

// Add snapshots the current menu price onto a new line. One line per
// (user, menu item) pair; a second add of the same item is rejected.
func (s *CartService) Add(userID uint, in *AddToCartIn) (*entity.CartLine, error) {
	if in.Quantity < 1 {
		return nil, Validation("quantity must be at least 1")
	}

	item, err := s.CatalogRepo.GetMenuItem(in.MenuItemID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	exists, err := s.CartRepo.LineExists(userID, in.MenuItemID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyInCart
	}

	line := &entity.CartLine{
		UserID:     userID,
		MenuItemID: item.ID,
		Quantity:   in.Quantity,
		UnitPrice:  item.Price,
		Price:      item.Price.Mul(decimal.NewFromInt(int64(in.Quantity))),
	}
	if err := s.CartRepo.Create(line); err != nil {
		// concurrent add of the same pair loses on the unique index
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyInCart
		}
		return nil, err
	}
	line.MenuItem = *item
	return line, nil
}

// Clear is idempotent; clearing an empty cart succeeds.
func (s *CartService) Clear(userID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.ClearForUser(tx, userID)
	})
}
