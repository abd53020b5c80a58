package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type CatalogRepository struct{ DB *gorm.DB }

func NewCatalogRepository(db *gorm.DB) *CatalogRepository { return &CatalogRepository{DB: db} }

// ---------------- Categories ----------------

func (r *CatalogRepository) ListCategories() ([]entity.Category, error) {
	var cats []entity.Category
	err := r.DB.Order("id").Find(&cats).Error
	return cats, err
}

func (r *CatalogRepository) CreateCategory(cat *entity.Category) error {
	return r.DB.Create(cat).Error
}

func (r *CatalogRepository) CategoryExists(id uint) (bool, error) {
	var count int64
	err := r.DB.Model(&entity.Category{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *CatalogRepository) CountCategoriesBySlug(slug string) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Category{}).Where("slug = ?", slug).Count(&count).Error
	return count, err
}

// ---------------- Menu items ----------------

// MenuItemQuery mirrors the list query params: free-text search over the
// item title or its category title, whitelist ordering with an optional
// leading "-", and page/perPage pagination.
type MenuItemQuery struct {
	Search   string
	Ordering string
	Page     int
	PerPage  int
}

var menuItemOrderings = map[string]string{
	"price":    "menu_items.price",
	"category": "categories.title",
}

func (r *CatalogRepository) ListMenuItems(q MenuItemQuery) ([]entity.MenuItem, int64, error) {
	if q.Page <= 0 {
		q.Page = 1
	}
	if q.PerPage <= 0 || q.PerPage > 100 {
		q.PerPage = 10
	}
	offset := (q.Page - 1) * q.PerPage

	filtered := func() *gorm.DB {
		db := r.DB.Model(&entity.MenuItem{}).
			Joins("LEFT JOIN categories ON categories.id = menu_items.category_id")
		if q.Search != "" {
			pattern := "%" + q.Search + "%"
			db = db.Where("menu_items.title LIKE ? OR categories.title LIKE ?", pattern, pattern)
		}
		return db
	}

	var total int64
	if err := filtered().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order := "menu_items.id"
	if col, dir, ok := parseOrdering(q.Ordering, menuItemOrderings); ok {
		order = col + " " + dir
	}

	var items []entity.MenuItem
	err := filtered().Preload("Category").
		Order(order).Limit(q.PerPage).Offset(offset).
		Find(&items).Error
	return items, total, err
}

func (r *CatalogRepository) GetMenuItem(id uint) (*entity.MenuItem, error) {
	var item entity.MenuItem
	if err := r.DB.Preload("Category").First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *CatalogRepository) CreateMenuItem(item *entity.MenuItem) error {
	return r.DB.Create(item).Error
}

func (r *CatalogRepository) UpdateMenuItem(id uint, fields map[string]any) error {
	return r.DB.Model(&entity.MenuItem{}).Where("id = ?", id).Updates(fields).Error
}

func (r *CatalogRepository) DeleteMenuItem(id uint) error {
	return r.DB.Delete(&entity.MenuItem{}, id).Error
}

// parseOrdering resolves an ordering param ("price", "-price" for
// descending) against a column whitelist.
func parseOrdering(ordering string, allowed map[string]string) (col, dir string, ok bool) {
	dir = "ASC"
	if len(ordering) > 0 && ordering[0] == '-' {
		dir = "DESC"
		ordering = ordering[1:]
	}
	col, ok = allowed[ordering]
	return col, dir, ok
}
