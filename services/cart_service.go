package services

import (
	"github.com/Antdol/LittleLemonAPI/entity"
	"github.com/Antdol/LittleLemonAPI/pkg/apperr"
	"github.com/Antdol/LittleLemonAPI/repository"

	"github.com/cockroachdb/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CartService struct {
	DB       *gorm.DB
	CartRepo *repository.CartRepository
	MenuRepo *repository.MenuRepository
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, mr *repository.MenuRepository) *CartService {
	return &CartService{DB: db, CartRepo: cr, MenuRepo: mr}
}

type AddToCartIn struct {
	MenuItem string `json:"menuitem" binding:"required"`
	Quantity int    `json:"quantity" binding:"required"`
}

type CartLineView struct {
	ID         uint            `json:"id"`
	MenuItemID uint            `json:"menuitem"`
	Title      string          `json:"title"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	Price      decimal.Decimal `json:"price"`
}

type CartView struct {
	Items []CartLineView  `json:"items"`
	Total decimal.Decimal `json:"total"`
}

func (s *CartService) Get(userID uint) (*CartView, error) {
	lines, err := s.CartRepo.ListForUser(userID)
	if err != nil {
		return nil, errors.Wrap(err, "load cart")
	}
	out := &CartView{Items: make([]CartLineView, 0, len(lines)), Total: decimal.Zero}
	for _, l := range lines {
		out.Items = append(out.Items, CartLineView{
			ID: l.ID, MenuItemID: l.MenuItemID, Title: l.MenuItem.Title,
			Quantity: l.Quantity, UnitPrice: l.UnitPrice, Price: l.Price,
		})
		out.Total = out.Total.Add(l.Price)
	}
	return out, nil
}

// Add puts a menu item into the cart at its current price. Re-adding the
// same item replaces the line's quantity instead of accumulating.
func (s *CartService) Add(userID uint, in *AddToCartIn) (*entity.CartLine, error) {
	if err := ValidateQuantity(in.Quantity); err != nil {
		return nil, err
	}
	m, err := s.MenuRepo.FindByTitle(in.MenuItem)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("The item does not exist")
	}
	if err != nil {
		return nil, errors.Wrap(err, "find menu item")
	}
	if err := ValidatePrice(m.Price); err != nil {
		return nil, err
	}

	price := LinePrice(in.Quantity, m.Price)
	if price.GreaterThan(MaxLinePrice) {
		return nil, apperr.Validation("line price must be at most %s", MaxLinePrice.StringFixed(2))
	}

	line := &entity.CartLine{
		UserID:     userID,
		MenuItemID: m.ID,
		Quantity:   in.Quantity,
		UnitPrice:  m.Price,
		Price:      price,
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.Upsert(tx, line)
	})
	if err != nil {
		return nil, errors.Wrap(err, "upsert cart line")
	}
	return line, nil
}

// Clear empties the cart; clearing an empty cart succeeds.
func (s *CartService) Clear(userID uint) error {
	_, err := s.CartRepo.ClearCart(s.DB, userID)
	return errors.Wrap(err, "clear cart")
}
