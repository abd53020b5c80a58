package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

func (r *CartRepository) ListForUser(userID uint) ([]entity.CartLine, error) {
	return r.ListForUserTx(r.DB, userID)
}

// ListForUserTx reads the cart through the given transaction so callers can
// pin the lines they are about to consume.
func (r *CartRepository) ListForUserTx(tx *gorm.DB, userID uint) ([]entity.CartLine, error) {
	var lines []entity.CartLine
	err := tx.Where("user_id = ?", userID).
		Preload("MenuItem").
		Order("id").
		Find(&lines).Error
	return lines, err
}

func (r *CartRepository) LineExists(userID, menuItemID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&entity.CartLine{}).
		Where("user_id = ? AND menu_item_id = ?", userID, menuItemID).
		Count(&count).Error
	return count > 0, err
}

// Create relies on the (user_id, menu_item_id) unique index for the race
// between concurrent adds of the same pair.
func (r *CartRepository) Create(line *entity.CartLine) error {
	return r.DB.Create(line).Error
}

func (r *CartRepository) ClearForUser(tx *gorm.DB, userID uint) error {
	return tx.Where("user_id = ?", userID).Delete(&entity.CartLine{}).Error
}

// DeleteLines removes exactly the given rows, leaving any line added since
// the caller read the cart untouched.
func (r *CartRepository) DeleteLines(tx *gorm.DB, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	return tx.Delete(&entity.CartLine{}, ids).Error
}
