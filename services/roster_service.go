package services

import (
	"errors"
	"strings"

	"backend/entity"
	"backend/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// RosterService manages the manager and delivery-crew staff rosters.
type RosterService struct {
	DB       *gorm.DB
	UserRepo *repository.UserRepository
}

func NewRosterService(db *gorm.DB, userRepo *repository.UserRepository) *RosterService {
	return &RosterService{DB: db, UserRepo: userRepo}
}

func (s *RosterService) List(role entity.Role) ([]entity.User, error) {
	return s.UserRepo.ListByRole(role)
}

type AddStaffIn struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Add assigns the role to an existing account, or registers a new one with
// it when the username is unknown.
func (s *RosterService) Add(role entity.Role, in *AddStaffIn) (*entity.User, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" {
		return nil, Validation("username is required")
	}

	existing, err := s.UserRepo.FindByUsername(username)
	if err == nil {
		if err := s.UserRepo.UpdateRole(existing.ID, role); err != nil {
			return nil, err
		}
		return s.UserRepo.FindByID(existing.ID)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if in.Password == "" {
		return nil, Validation("password is required")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Username: username,
		Email:    strings.ToLower(strings.TrimSpace(in.Email)),
		Password: string(hashed),
		Role:     role,
	}
	if err := s.UserRepo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, Validation("username already registered")
		}
		return nil, err
	}
	return user, nil
}

// Remove deletes the whole account, not just the role — the destructive
// behavior the API has always had. Callers are warned in the API docs.
func (s *RosterService) Remove(role entity.Role, userID uint) error {
	user, err := s.UserRepo.FindByIDAndRole(userID, role)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.UserRepo.Delete(tx, user.ID)
	})
}
