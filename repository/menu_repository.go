package repository

import (
	"github.com/Antdol/LittleLemonAPI/entity"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

// MenuOrderFields are the public names accepted in ?ordering=.
var MenuOrderFields = map[string]string{
	"id":       "menu_items.id",
	"title":    "menu_items.title",
	"price":    "menu_items.price",
	"featured": "menu_items.featured",
	"category": "menu_items.category_id",
}

type MenuFilter struct {
	Category string // slug or title
	ToPrice  *decimal.Decimal
	Search   string
	Ordering []SortField
	Page     Page
}

// List returns one page of menu items and the number of items matching f.
func (r *MenuRepository) List(f MenuFilter) ([]entity.MenuItem, int64, error) {
	q := r.DB.Model(&entity.MenuItem{})
	if f.Category != "" {
		q = q.Joins("JOIN categories c ON c.id = menu_items.category_id").
			Where("c.slug = ? OR c.title = ?", f.Category, f.Category)
	}
	if f.ToPrice != nil {
		q = q.Where("menu_items.price <= ?", *f.ToPrice)
	}
	if f.Search != "" {
		q = q.Where("LOWER(menu_items.title) LIKE ? ESCAPE '!'", "%"+likeTerm(f.Search)+"%")
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []entity.MenuItem
	q = applyOrdering(q, f.Ordering, "menu_items.id")
	if err := f.Page.Apply(q).Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *MenuRepository) FindByID(id uint) (*entity.MenuItem, error) {
	var m entity.MenuItem
	if err := r.DB.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MenuRepository) FindByTitle(title string) (*entity.MenuItem, error) {
	var m entity.MenuItem
	if err := r.DB.Where("title = ?", title).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MenuRepository) Create(m *entity.MenuItem) error {
	return r.DB.Create(m).Error
}

// Update writes only the given columns.
func (r *MenuRepository) Update(id uint, fields map[string]any) error {
	return r.DB.Model(&entity.MenuItem{}).Where("id = ?", id).Updates(fields).Error
}

// Delete removes the item and any cart lines pointing at it. Items that
// already appear on an order are kept; the caller gets ok=false.
func (r *MenuRepository) Delete(id uint) (ok bool, err error) {
	err = r.DB.Transaction(func(tx *gorm.DB) error {
		var refs int64
		if err := tx.Model(&entity.OrderItem{}).Where("menu_item_id = ?", id).Count(&refs).Error; err != nil {
			return err
		}
		if refs > 0 {
			return nil
		}
		if err := tx.Where("menu_item_id = ?", id).Delete(&entity.CartLine{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&entity.MenuItem{}, id).Error; err != nil {
			return err
		}
		ok = true
		return nil
	})
	return ok, err
}
