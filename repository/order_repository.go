package repository

import (
	"github.com/Antdol/LittleLemonAPI/entity"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Orders ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) UpdateTotal(tx *gorm.DB, orderID uint, total decimal.Decimal) error {
	return tx.Model(&entity.Order{}).Where("id = ?", orderID).Update("total", total).Error
}

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// OrderScope restricts a listing to what the caller may see. Zero values
// mean no restriction.
type OrderScope struct {
	UserID         uint
	DeliveryCrewID uint
}

type OrderFilter struct {
	Scope  OrderScope
	Status entity.OrderStatus
	Page   Page
}

func (r *OrderRepository) List(f OrderFilter) ([]entity.Order, int64, error) {
	q := r.DB.Model(&entity.Order{})
	if f.Scope.UserID != 0 {
		q = q.Where("user_id = ?", f.Scope.UserID)
	}
	if f.Scope.DeliveryCrewID != 0 {
		q = q.Where("delivery_crew_id = ?", f.Scope.DeliveryCrewID)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var out []entity.Order
	if err := f.Page.Apply(q.Order("id DESC")).Find(&out).Error; err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

// Update writes only the given columns.
func (r *OrderRepository) Update(orderID uint, fields map[string]any) error {
	return r.DB.Model(&entity.Order{}).Where("id = ?", orderID).Updates(fields).Error
}

// Delete removes the order and its items in one transaction.
func (r *OrderRepository) Delete(orderID uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", orderID).Delete(&entity.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Order{}, orderID).Error
	})
}

// ---------------- Order Items ----------------

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) GetOrderItems(orderID uint) ([]entity.OrderItem, error) {
	var items []entity.OrderItem
	err := r.DB.Where("order_id = ?", orderID).
		Preload("MenuItem").
		Order("id").
		Find(&items).Error
	return items, err
}
