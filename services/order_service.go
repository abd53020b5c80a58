package services

import (
	"context"
	"errors"
	"time"

	"backend/entity"
	"backend/notify"
	"backend/repository"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderService converts carts into immutable order snapshots and exposes
// role-scoped views and updates of them.
type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	CartRepo *repository.CartRepository
	UserRepo *repository.UserRepository

	Publisher notify.Publisher
	Logger    zerolog.Logger
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	cartRepo *repository.CartRepository,
	userRepo *repository.UserRepository,
	publisher notify.Publisher,
	logger zerolog.Logger,
) *OrderService {
	if publisher == nil {
		publisher = notify.Noop{}
	}
	return &OrderService{
		DB:        db,
		Repo:      repo,
		CartRepo:  cartRepo,
		UserRepo:  userRepo,
		Publisher: publisher,
		Logger:    logger,
	}
}

// Place turns the caller's cart into an order. The cart is read, copied and
// cleared inside one transaction, and only the rows that were read get
// deleted: a line added concurrently stays in the cart for the next order.
func (s *OrderService) Place(ctx context.Context, userID uint) (*entity.Order, error) {
	var order entity.Order
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		lines, err := s.CartRepo.ListForUserTx(tx, userID)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			return ErrEmptyCart
		}

		total := decimal.Zero
		ids := make([]uint, 0, len(lines))
		for _, line := range lines {
			total = total.Add(line.Price)
			ids = append(ids, line.ID)
		}

		order = entity.Order{
			UserID: userID,
			Status: false,
			Date:   time.Now().UTC().Truncate(24 * time.Hour),
			Total:  total,
		}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}
		for _, line := range lines {
			ol := entity.OrderLine{
				OrderID:    order.ID,
				MenuItemID: line.MenuItemID,
				Quantity:   line.Quantity,
			}
			if err := s.Repo.CreateOrderLine(tx, &ol); err != nil {
				return err
			}
		}
		return s.CartRepo.DeleteLines(tx, ids)
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, notify.OrderEvent{
		Type:    notify.EventOrderPlaced,
		OrderID: order.ID,
		UserID:  order.UserID,
		Total:   order.Total,
	})
	return s.Repo.GetOrder(order.ID)
}

// List applies the role visibility rules: staff see everything, delivery
// crew see their assignments, customers see their own orders.
func (s *OrderService) List(userID uint, role entity.Role, q repository.OrderQuery) ([]entity.Order, int64, error) {
	var scope repository.OrderScope
	switch {
	case role.IsStaff():
	case role == entity.RoleDeliveryCrew:
		scope.DeliveryCrewID = userID
	default:
		scope.OwnerID = userID
	}
	return s.Repo.ListOrders(scope, q)
}

func (s *OrderService) Get(userID uint, role entity.Role, orderID uint) (*entity.Order, error) {
	order, err := s.Repo.GetOrder(orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	switch {
	case role.IsStaff():
	case role == entity.RoleDeliveryCrew:
		if order.DeliveryCrewID == nil || *order.DeliveryCrewID != userID {
			return nil, ErrForbidden
		}
	default:
		if order.UserID != userID {
			return nil, ErrForbidden
		}
	}
	return order, nil
}

// UpdateOrderIn carries the two mutable order fields; nil leaves a field
// unchanged.
type UpdateOrderIn struct {
	DeliveryCrewID *uint `json:"deliveryCrewId"`
	Status         *bool `json:"status"`
}

// Update: staff may change both the crew assignment and the status; the
// assigned crew member may flip the status only. Everyone else is refused.
func (s *OrderService) Update(ctx context.Context, userID uint, role entity.Role, orderID uint, in *UpdateOrderIn) (*entity.Order, error) {
	order, err := s.Repo.GetOrder(orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	fields := map[string]any{}
	switch {
	case role.IsStaff():
		if in.DeliveryCrewID != nil {
			if _, err := s.UserRepo.FindByIDAndRole(*in.DeliveryCrewID, entity.RoleDeliveryCrew); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return nil, Validation("delivery crew user not found")
				}
				return nil, err
			}
			fields["delivery_crew_id"] = *in.DeliveryCrewID
		}
		if in.Status != nil {
			fields["status"] = *in.Status
		}
	case role == entity.RoleDeliveryCrew:
		if order.DeliveryCrewID == nil || *order.DeliveryCrewID != userID {
			return nil, ErrForbidden
		}
		if in.DeliveryCrewID != nil {
			return nil, ErrForbidden
		}
		if in.Status != nil {
			fields["status"] = *in.Status
		}
	default:
		return nil, ErrForbidden
	}

	if len(fields) > 0 {
		if err := s.Repo.UpdateOrder(orderID, fields); err != nil {
			return nil, err
		}
	}

	updated, err := s.Repo.GetOrder(orderID)
	if err != nil {
		return nil, err
	}

	if in.DeliveryCrewID != nil && role.IsStaff() {
		s.publish(ctx, notify.OrderEvent{
			Type:           notify.EventOrderAssigned,
			OrderID:        updated.ID,
			UserID:         updated.UserID,
			DeliveryCrewID: updated.DeliveryCrewID,
			Total:          updated.Total,
			Delivered:      updated.Status,
		})
	}
	if in.Status != nil && *in.Status && !order.Status {
		s.publish(ctx, notify.OrderEvent{
			Type:           notify.EventOrderDelivered,
			OrderID:        updated.ID,
			UserID:         updated.UserID,
			DeliveryCrewID: updated.DeliveryCrewID,
			Total:          updated.Total,
			Delivered:      true,
		})
	}
	return updated, nil
}

func (s *OrderService) Delete(orderID uint) error {
	if _, err := s.Repo.GetOrder(orderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.Repo.DeleteOrder(orderID)
}

// publish never fails the calling operation; a dead broker costs an event,
// not an order.
func (s *OrderService) publish(ctx context.Context, ev notify.OrderEvent) {
	if err := s.Publisher.Publish(ctx, ev); err != nil {
		s.Logger.Warn().Err(err).Uint("orderId", ev.OrderID).Str("event", ev.Type).Msg("publish order event failed")
	}
}
