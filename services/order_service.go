package services

import (
	"time"

	"github.com/Antdol/LittleLemonAPI/authz"
	"github.com/Antdol/LittleLemonAPI/entity"
	"github.com/Antdol/LittleLemonAPI/pkg/apperr"
	"github.com/Antdol/LittleLemonAPI/repository"

	"github.com/cockroachdb/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderService struct {
	DB        *gorm.DB
	Repo      *repository.OrderRepository
	CartRepo  *repository.CartRepository
	GroupRepo *repository.GroupRepository

	Now func() time.Time
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	cartRepo *repository.CartRepository,
	groupRepo *repository.GroupRepository,
) *OrderService {
	return &OrderService{DB: db, Repo: repo, CartRepo: cartRepo, GroupRepo: groupRepo, Now: time.Now}
}

type OrderItemView struct {
	MenuItemID uint            `json:"menuitem"`
	Title      string          `json:"title"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	Price      decimal.Decimal `json:"price"`
}

type OrderDetail struct {
	entity.Order
	Items []OrderItemView `json:"items"`
}

type OrderListOut struct {
	Count   int64          `json:"count"`
	Page    int            `json:"page"`
	PerPage int            `json:"perpage"`
	Results []entity.Order `json:"results"`
}

func (s *OrderService) today() time.Time {
	y, m, d := s.Now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Checkout turns the user's cart into an order. Order, items, running total
// and the cart purge commit together or not at all.
func (s *OrderService) Checkout(userID uint) (*OrderDetail, error) {
	var out *OrderDetail
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		lines, err := s.CartRepo.LockLines(tx, userID)
		if err != nil {
			return errors.Wrap(err, "read cart")
		}
		if len(lines) == 0 {
			return apperr.Validation("cart is empty")
		}

		order := entity.Order{
			UserID: userID,
			Status: entity.StatusPending,
			Total:  decimal.Zero,
			Date:   s.today(),
		}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return errors.Wrap(err, "create order")
		}

		items := make([]OrderItemView, 0, len(lines))
		for _, l := range lines {
			oi := entity.OrderItem{
				OrderID:    order.ID,
				MenuItemID: l.MenuItemID,
				Quantity:   l.Quantity,
				UnitPrice:  l.UnitPrice,
				Price:      l.Price,
			}
			if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
				return errors.Wrapf(err, "create order item for menu item %d", l.MenuItemID)
			}
			order.Total = order.Total.Add(oi.Price)
			if order.Total.GreaterThan(MaxOrderTotal) {
				return apperr.Validation("order total must be at most %s", MaxOrderTotal.StringFixed(2))
			}
			if err := s.Repo.UpdateTotal(tx, order.ID, order.Total); err != nil {
				return errors.Wrap(err, "update order total")
			}
			items = append(items, OrderItemView{
				MenuItemID: oi.MenuItemID, Quantity: oi.Quantity, UnitPrice: oi.UnitPrice, Price: oi.Price,
			})
		}

		n, err := s.CartRepo.ClearCart(tx, userID)
		if err != nil {
			return errors.Wrap(err, "clear cart")
		}
		if n != int64(len(lines)) {
			// another request touched the cart between our read and the purge
			return apperr.Conflict("cart changed during checkout, please retry")
		}

		out = &OrderDetail{Order: order, Items: items}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// List shows managers every order, delivery crew the orders assigned to
// them and customers their own.
func (s *OrderService) List(p authz.Principal, status string, page repository.Page) (*OrderListOut, error) {
	f := repository.OrderFilter{Page: page}
	switch {
	case p.IsManager():
	case p.IsDeliveryCrew():
		f.Scope.DeliveryCrewID = p.UserID
	default:
		f.Scope.UserID = p.UserID
	}
	if status != "" {
		st := entity.OrderStatus(status)
		if !st.Valid() {
			return nil, apperr.Validation("unknown status %q", status)
		}
		f.Status = st
	}

	orders, total, err := s.Repo.List(f)
	if err != nil {
		return nil, errors.Wrap(err, "list orders")
	}
	if orders == nil {
		orders = []entity.Order{}
	}
	return &OrderListOut{Count: total, Page: page.Number, PerPage: page.PerPage, Results: orders}, nil
}

func (s *OrderService) load(orderID uint) (*entity.Order, error) {
	o, err := s.Repo.GetOrder(orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("The order does not exist")
	}
	if err != nil {
		return nil, errors.Wrap(err, "load order")
	}
	return o, nil
}

func canView(p authz.Principal, o *entity.Order) bool {
	return p.IsManager() || o.UserID == p.UserID || isAssigned(p, o)
}

func isAssigned(p authz.Principal, o *entity.Order) bool {
	return p.IsDeliveryCrew() && o.DeliveryCrewID != nil && *o.DeliveryCrewID == p.UserID
}

// Detail returns an order with its line items to its owner, a manager or
// the delivery crew assigned to it.
func (s *OrderService) Detail(p authz.Principal, orderID uint) (*OrderDetail, error) {
	o, err := s.load(orderID)
	if err != nil {
		return nil, err
	}
	if !canView(p, o) {
		return nil, apperr.Forbidden("You do not have permission to view this order.")
	}
	items, err := s.Repo.GetOrderItems(o.ID)
	if err != nil {
		return nil, errors.Wrap(err, "load order items")
	}
	out := &OrderDetail{Order: *o, Items: make([]OrderItemView, 0, len(items))}
	for _, it := range items {
		out.Items = append(out.Items, OrderItemView{
			MenuItemID: it.MenuItemID, Title: it.MenuItem.Title,
			Quantity: it.Quantity, UnitPrice: it.UnitPrice, Price: it.Price,
		})
	}
	return out, nil
}

// Replace is the manager's PUT: status and delivery_crew must both be sent.
func (s *OrderService) Replace(p authz.Principal, orderID uint, body map[string]RawField) (*entity.Order, error) {
	if !p.IsManager() {
		return nil, apperr.Forbidden("Only managers can replace an order.")
	}
	return s.managerUpdate(orderID, body, true)
}

// Patch lets a manager change any mutable field and the assigned delivery
// crew change the status, and nothing else, of their own orders.
func (s *OrderService) Patch(p authz.Principal, orderID uint, body map[string]RawField) (*entity.Order, error) {
	if p.IsManager() {
		return s.managerUpdate(orderID, body, false)
	}
	if !p.IsDeliveryCrew() {
		return nil, apperr.Forbidden("You do not have permission to do this.")
	}

	o, err := s.load(orderID)
	if err != nil {
		return nil, err
	}
	if !isAssigned(p, o) {
		return nil, apperr.Forbidden("This order is not assigned to you.")
	}
	raw, ok := body["status"]
	if !ok || len(body) != 1 {
		return nil, apperr.Forbidden("Delivery crew can only update the status.")
	}
	st, err := parseStatus(raw)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.Update(o.ID, map[string]any{"status": st}); err != nil {
		return nil, errors.Wrap(err, "update order status")
	}
	o.Status = st
	return o, nil
}

func (s *OrderService) managerUpdate(orderID uint, body map[string]RawField, full bool) (*entity.Order, error) {
	o, err := s.load(orderID)
	if err != nil {
		return nil, err
	}
	fields, err := s.orderFields(body, full)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.Update(o.ID, fields); err != nil {
		return nil, errors.Wrap(err, "update order")
	}
	return s.load(o.ID)
}

// orderFields validates a manager payload into column updates.
func (s *OrderService) orderFields(body map[string]RawField, full bool) (map[string]any, error) {
	if len(body) == 0 {
		return nil, apperr.Validation("no fields to update")
	}
	if full {
		for _, k := range []string{"status", "delivery_crew"} {
			if _, ok := body[k]; !ok {
				return nil, apperr.Validation("%s: this field is required", k)
			}
		}
	}

	fields := map[string]any{}
	for k, raw := range body {
		switch k {
		case "status":
			st, err := parseStatus(raw)
			if err != nil {
				return nil, err
			}
			fields["status"] = st
		case "delivery_crew":
			id, err := raw.OptionalUint()
			if err != nil {
				return nil, apperr.Validation("delivery_crew must be a user id or null")
			}
			if id != nil {
				ok, err := s.GroupRepo.HasRole(*id, entity.GroupDeliveryCrew)
				if err != nil {
					return nil, errors.Wrap(err, "check delivery crew")
				}
				if !ok {
					return nil, apperr.Validation("user %d is not part of the delivery crew", *id)
				}
			}
			fields["delivery_crew_id"] = id
		case "date":
			d, err := raw.Date()
			if err != nil {
				return nil, apperr.Validation("date must be YYYY-MM-DD")
			}
			fields["date"] = d
		case "user", "total", "id", "items":
			return nil, apperr.Validation("%s cannot be changed", k)
		default:
			return nil, apperr.Validation("unknown field %q", k)
		}
	}
	return fields, nil
}

func parseStatus(raw RawField) (entity.OrderStatus, error) {
	var s string
	if err := raw.Decode(&s); err != nil || !entity.OrderStatus(s).Valid() {
		return "", apperr.Validation("status must be one of pending, out-for-delivery, delivered")
	}
	return entity.OrderStatus(s), nil
}

func (s *OrderService) Delete(orderID uint) error {
	if _, err := s.load(orderID); err != nil {
		return err
	}
	return errors.Wrap(s.Repo.Delete(orderID), "delete order")
}
