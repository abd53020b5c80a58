package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type OrderRepository struct{ DB *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository { return &OrderRepository{DB: db} }

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateOrderLine(tx *gorm.DB, line *entity.OrderLine) error {
	return tx.Create(line).Error
}

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.Preload("Lines.MenuItem").
		Preload("User").
		First(&o, orderID).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// OrderScope restricts the listing to what the caller may see. The zero
// value means no restriction (admin / manager).
type OrderScope struct {
	OwnerID        uint // only orders placed by this user
	DeliveryCrewID uint // only orders assigned to this crew member
}

// OrderQuery mirrors the list query params: search matches the owner's
// username, ordering is whitelisted, page/perPage paginate.
type OrderQuery struct {
	Search   string
	Ordering string
	Page     int
	PerPage  int
}

var orderOrderings = map[string]string{
	"total":  "orders.total",
	"status": "orders.status",
	"date":   "orders.date",
}

func (r *OrderRepository) ListOrders(scope OrderScope, q OrderQuery) ([]entity.Order, int64, error) {
	if q.Page <= 0 {
		q.Page = 1
	}
	if q.PerPage <= 0 || q.PerPage > 100 {
		q.PerPage = 10
	}
	offset := (q.Page - 1) * q.PerPage

	filtered := func() *gorm.DB {
		db := r.DB.Model(&entity.Order{}).
			Joins("JOIN users ON users.id = orders.user_id")
		if scope.OwnerID != 0 {
			db = db.Where("orders.user_id = ?", scope.OwnerID)
		}
		if scope.DeliveryCrewID != 0 {
			db = db.Where("orders.delivery_crew_id = ?", scope.DeliveryCrewID)
		}
		if q.Search != "" {
			db = db.Where("users.username LIKE ?", "%"+q.Search+"%")
		}
		return db
	}

	var total int64
	if err := filtered().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order := "orders.id DESC"
	if col, dir, ok := parseOrdering(q.Ordering, orderOrderings); ok {
		order = col + " " + dir
	}

	var orders []entity.Order
	err := filtered().Preload("Lines.MenuItem").Preload("User").
		Order(order).Limit(q.PerPage).Offset(offset).
		Find(&orders).Error
	return orders, total, err
}

func (r *OrderRepository) UpdateOrder(orderID uint, fields map[string]any) error {
	return r.DB.Model(&entity.Order{}).Where("id = ?", orderID).Updates(fields).Error
}

func (r *OrderRepository) DeleteOrder(orderID uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", orderID).Delete(&entity.OrderLine{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Order{}, orderID).Error
	})
}
