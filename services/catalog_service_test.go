package services

import (
	"testing"

	"backend/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newCatalogService(db *gorm.DB) *CatalogService {
	return NewCatalogService(repository.NewCatalogRepository(db))
}

func TestCreateCategoryDerivesSlug(t *testing.T) {
	db := newTestDB(t)
	svc := newCatalogService(db)

	cat, err := svc.CreateCategory(&CreateCategoryIn{Title: "Main Dishes"})
	require.NoError(t, err)
	require.Equal(t, "main-dishes", cat.Slug)

	// duplicate slug rejected
	_, err = svc.CreateCategory(&CreateCategoryIn{Title: "Main Dishes"})
	require.True(t, IsValidation(err))
}

func TestCreateMenuItemValidation(t *testing.T) {
	db := newTestDB(t)
	svc := newCatalogService(db)

	cat, err := svc.CreateCategory(&CreateCategoryIn{Title: "Mains"})
	require.NoError(t, err)

	_, err = svc.CreateMenuItem(&CreateMenuItemIn{
		Title: "Pizza", Price: decimal.RequireFromString("0"), CategoryID: cat.ID,
	})
	require.True(t, IsValidation(err))

	_, err = svc.CreateMenuItem(&CreateMenuItemIn{
		Title: "Pizza", Price: decimal.RequireFromString("9.00"), CategoryID: 999,
	})
	require.True(t, IsValidation(err))

	item, err := svc.CreateMenuItem(&CreateMenuItemIn{
		Title: "Pizza", Price: decimal.RequireFromString("9.00"), CategoryID: cat.ID,
	})
	require.NoError(t, err)
	require.Equal(t, "Mains", item.Category.Title)
}

func TestUpdateMenuItemPartial(t *testing.T) {
	db := newTestDB(t)
	svc := newCatalogService(db)

	cat := createCategory(t, db, "Mains", "mains")
	item := createMenuItem(t, db, "Pizza", "9.00", cat.ID)

	featured := true
	updated, err := svc.UpdateMenuItem(item.ID, &UpdateMenuItemIn{Featured: &featured})
	require.NoError(t, err)
	require.True(t, updated.Featured)
	require.Equal(t, "Pizza", updated.Title)
	requireDecimalEqual(t, "9.00", updated.Price)

	bad := decimal.RequireFromString("-1")
	_, err = svc.UpdateMenuItem(item.ID, &UpdateMenuItemIn{Price: &bad})
	require.True(t, IsValidation(err))

	_, err = svc.UpdateMenuItem(9999, &UpdateMenuItemIn{Featured: &featured})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestListMenuItemsSearchOrderingPagination(t *testing.T) {
	db := newTestDB(t)
	svc := newCatalogService(db)

	mains := createCategory(t, db, "Mains", "mains")
	desserts := createCategory(t, db, "Desserts", "desserts")

	createMenuItem(t, db, "Pizza", "9.00", mains.ID)
	createMenuItem(t, db, "Pasta", "7.50", mains.ID)
	createMenuItem(t, db, "Lemon Cake", "4.00", desserts.ID)

	// search matches the item title
	items, total, err := svc.ListMenuItems(repository.MenuItemQuery{Search: "pizz"})
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	require.Equal(t, "Pizza", items[0].Title)

	// search matches the category title too
	items, total, err = svc.ListMenuItems(repository.MenuItemQuery{Search: "dessert"})
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	require.Equal(t, "Lemon Cake", items[0].Title)

	// ordering by price, both directions
	items, _, err = svc.ListMenuItems(repository.MenuItemQuery{Ordering: "price"})
	require.NoError(t, err)
	require.Equal(t, "Lemon Cake", items[0].Title)

	items, _, err = svc.ListMenuItems(repository.MenuItemQuery{Ordering: "-price"})
	require.NoError(t, err)
	require.Equal(t, "Pizza", items[0].Title)

	// pagination
	items, total, err = svc.ListMenuItems(repository.MenuItemQuery{Page: 2, PerPage: 2})
	require.NoError(t, err)
	require.EqualValues(t, 3, total)
	require.Len(t, items, 1)

	// an unknown ordering column falls back to id order
	items, _, err = svc.ListMenuItems(repository.MenuItemQuery{Ordering: "password"})
	require.NoError(t, err)
	require.Equal(t, "Pizza", items[0].Title)
}

func TestDeleteMenuItem(t *testing.T) {
	db := newTestDB(t)
	svc := newCatalogService(db)

	cat := createCategory(t, db, "Mains", "mains")
	item := createMenuItem(t, db, "Pizza", "9.00", cat.ID)

	require.NoError(t, svc.DeleteMenuItem(item.ID))
	_, err := svc.GetMenuItem(item.ID)
	require.ErrorIs(t, err, ErrNotFound)

	require.ErrorIs(t, svc.DeleteMenuItem(item.ID), ErrNotFound)
}
