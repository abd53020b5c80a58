package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type UserRepository struct{ DB *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{DB: db} }

func (r *UserRepository) Create(u *entity.User) error {
	return r.DB.Create(u).Error
}

func (r *UserRepository) FindByID(id uint) (*entity.User, error) {
	var u entity.User
	if err := r.DB.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindByUsername(username string) (*entity.User, error) {
	var u entity.User
	if err := r.DB.Where("username = ?", username).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) CountByUsername(username string) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.User{}).Where("username = ?", username).Count(&count).Error
	return count, err
}

func (r *UserRepository) ListByRole(role entity.Role) ([]entity.User, error) {
	var users []entity.User
	err := r.DB.Where("role = ?", role).Order("id").Find(&users).Error
	return users, err
}

func (r *UserRepository) FindByIDAndRole(id uint, role entity.Role) (*entity.User, error) {
	var u entity.User
	if err := r.DB.Where("id = ? AND role = ?", id, role).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) UpdateRole(id uint, role entity.Role) error {
	return r.DB.Model(&entity.User{}).Where("id = ?", id).Update("role", role).Error
}

// Delete removes the account and its cart. Orders are kept for the books.
// The delete is unscoped: a soft-deleted row would keep the username
// occupying the unique index forever.
func (r *UserRepository) Delete(tx *gorm.DB, id uint) error {
	if err := tx.Where("user_id = ?", id).Delete(&entity.CartLine{}).Error; err != nil {
		return err
	}
	return tx.Unscoped().Delete(&entity.User{}, id).Error
}
