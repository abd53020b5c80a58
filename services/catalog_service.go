package services

import (
	"errors"
	"strings"

	"backend/entity"
	"backend/repository"
	"backend/utils"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CatalogService owns categories and menu items.
type CatalogService struct {
	Repo *repository.CatalogRepository
}

func NewCatalogService(repo *repository.CatalogRepository) *CatalogService {
	return &CatalogService{Repo: repo}
}

// ---------------- Categories ----------------

func (s *CatalogService) ListCategories() ([]entity.Category, error) {
	return s.Repo.ListCategories()
}

type CreateCategoryIn struct {
	Title string `json:"title" binding:"required"`
	Slug  string `json:"slug"`
}

func (s *CatalogService) CreateCategory(in *CreateCategoryIn) (*entity.Category, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, Validation("title is required")
	}
	slug := strings.TrimSpace(in.Slug)
	if slug == "" {
		slug = utils.Slugify(title)
	}

	count, err := s.Repo.CountCategoriesBySlug(slug)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, Validation("category slug already exists")
	}

	cat := &entity.Category{Title: title, Slug: slug}
	if err := s.Repo.CreateCategory(cat); err != nil {
		return nil, err
	}
	return cat, nil
}

// ---------------- Menu items ----------------

func (s *CatalogService) ListMenuItems(q repository.MenuItemQuery) ([]entity.MenuItem, int64, error) {
	return s.Repo.ListMenuItems(q)
}

func (s *CatalogService) GetMenuItem(id uint) (*entity.MenuItem, error) {
	item, err := s.Repo.GetMenuItem(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return item, err
}

type CreateMenuItemIn struct {
	Title      string          `json:"title" binding:"required"`
	Price      decimal.Decimal `json:"price" binding:"required"`
	CategoryID uint            `json:"categoryId" binding:"required"`
	Featured   bool            `json:"featured"`
}

func (s *CatalogService) CreateMenuItem(in *CreateMenuItemIn) (*entity.MenuItem, error) {
	if !in.Price.IsPositive() {
		return nil, Validation("price must be positive")
	}
	ok, err := s.Repo.CategoryExists(in.CategoryID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, Validation("category not found")
	}

	item := &entity.MenuItem{
		Title:      strings.TrimSpace(in.Title),
		Price:      in.Price,
		CategoryID: in.CategoryID,
		Featured:   in.Featured,
	}
	if err := s.Repo.CreateMenuItem(item); err != nil {
		return nil, err
	}
	return s.GetMenuItem(item.ID)
}

// UpdateMenuItemIn carries only the fields present in the request body;
// nil means "leave unchanged", so the same shape serves PUT and PATCH.
type UpdateMenuItemIn struct {
	Title      *string          `json:"title"`
	Price      *decimal.Decimal `json:"price"`
	CategoryID *uint            `json:"categoryId"`
	Featured   *bool            `json:"featured"`
}

func (s *CatalogService) UpdateMenuItem(id uint, in *UpdateMenuItemIn) (*entity.MenuItem, error) {
	if _, err := s.GetMenuItem(id); err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if in.Title != nil {
		fields["title"] = strings.TrimSpace(*in.Title)
	}
	if in.Price != nil {
		if !in.Price.IsPositive() {
			return nil, Validation("price must be positive")
		}
		fields["price"] = *in.Price
	}
	if in.CategoryID != nil {
		ok, err := s.Repo.CategoryExists(*in.CategoryID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, Validation("category not found")
		}
		fields["category_id"] = *in.CategoryID
	}
	if in.Featured != nil {
		fields["featured"] = *in.Featured
	}

	if len(fields) > 0 {
		if err := s.Repo.UpdateMenuItem(id, fields); err != nil {
			return nil, err
		}
	}
	return s.GetMenuItem(id)
}

func (s *CatalogService) DeleteMenuItem(id uint) error {
	if _, err := s.GetMenuItem(id); err != nil {
		return err
	}
	return s.Repo.DeleteMenuItem(id)
}
