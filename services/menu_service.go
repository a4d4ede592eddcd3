package services

import (
	"github.com/Antdol/LittleLemonAPI/entity"
	"github.com/Antdol/LittleLemonAPI/pkg/apperr"
	"github.com/Antdol/LittleLemonAPI/repository"
	"github.com/Antdol/LittleLemonAPI/utils"

	"github.com/cockroachdb/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type MenuService struct {
	Repo    *repository.MenuRepository
	CatRepo *repository.CategoryRepository
}

func NewMenuService(repo *repository.MenuRepository, catRepo *repository.CategoryRepository) *MenuService {
	return &MenuService{Repo: repo, CatRepo: catRepo}
}

// MenuQuery is the raw query string of GET /menu-items.
type MenuQuery struct {
	Category string `form:"category"`
	ToPrice  string `form:"to_price"`
	Search   string `form:"search"`
	Ordering string `form:"ordering"`
	PerPage  string `form:"perpage"`
	Page     string `form:"page"`
}

type MenuListOut struct {
	Count   int64             `json:"count"`
	Page    int               `json:"page"`
	PerPage int               `json:"perpage"`
	Results []entity.MenuItem `json:"results"`
}

// MenuItemIn is shared by POST, PUT and PATCH; pointers tell which fields
// were sent.
type MenuItemIn struct {
	Title    *string          `json:"title"`
	Price    *decimal.Decimal `json:"price"`
	Featured *bool            `json:"featured"`
	Category *uint            `json:"category"`
}

func (s *MenuService) List(q MenuQuery) (*MenuListOut, error) {
	page, err := ParsePage(q.PerPage, q.Page)
	if err != nil {
		return nil, err
	}
	f := repository.MenuFilter{Category: q.Category, Search: q.Search, Page: page}
	if q.ToPrice != "" {
		p, err := decimal.NewFromString(q.ToPrice)
		if err != nil {
			return nil, apperr.Validation("to_price must be a number")
		}
		f.ToPrice = &p
	}
	if q.Ordering != "" {
		fields, bad := repository.ParseOrdering(q.Ordering, repository.MenuOrderFields)
		if bad != "" {
			return nil, apperr.Validation("cannot order by %q", bad)
		}
		f.Ordering = fields
	}

	items, total, err := s.Repo.List(f)
	if err != nil {
		return nil, errors.Wrap(err, "list menu items")
	}
	if items == nil {
		items = []entity.MenuItem{}
	}
	return &MenuListOut{Count: total, Page: page.Number, PerPage: page.PerPage, Results: items}, nil
}

func (s *MenuService) Get(id uint) (*entity.MenuItem, error) {
	m, err := s.Repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("The item does not exist")
	}
	return m, errors.Wrap(err, "find menu item")
}

func (s *MenuService) Create(in *MenuItemIn) (*entity.MenuItem, error) {
	fields, err := s.validate(in, true)
	if err != nil {
		return nil, err
	}
	m := &entity.MenuItem{
		Title:      fields["title"].(string),
		Price:      fields["price"].(decimal.Decimal),
		CategoryID: fields["category_id"].(uint),
	}
	if f, ok := fields["featured"]; ok {
		m.Featured = f.(bool)
	}
	if err := s.Repo.Create(m); err != nil {
		return nil, duplicateTitle(err)
	}
	return m, nil
}

// Update applies a PUT (full) or PATCH (partial) to an existing item.
func (s *MenuService) Update(id uint, in *MenuItemIn, full bool) (*entity.MenuItem, error) {
	if _, err := s.Get(id); err != nil {
		return nil, err
	}
	fields, err := s.validate(in, full)
	if err != nil {
		return nil, err
	}
	if full {
		if _, ok := fields["featured"]; !ok {
			fields["featured"] = false
		}
	}
	if len(fields) == 0 {
		return nil, apperr.Validation("no fields to update")
	}
	if err := s.Repo.Update(id, fields); err != nil {
		return nil, duplicateTitle(err)
	}
	return s.Get(id)
}

func (s *MenuService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	ok, err := s.Repo.Delete(id)
	if err != nil {
		return errors.Wrap(err, "delete menu item")
	}
	if !ok {
		return apperr.Conflict("The item is part of existing orders and cannot be deleted.")
	}
	return nil
}

// validate turns the sent fields into column values. With required set,
// title, price and category must all be present.
func (s *MenuService) validate(in *MenuItemIn, required bool) (map[string]any, error) {
	if required {
		switch {
		case in.Title == nil:
			return nil, apperr.Validation("title: this field is required")
		case in.Price == nil:
			return nil, apperr.Validation("price: this field is required")
		case in.Category == nil:
			return nil, apperr.Validation("category: this field is required")
		}
	}

	fields := map[string]any{}
	if in.Title != nil {
		title := utils.CleanText(*in.Title)
		if title == "" {
			return nil, apperr.Validation("title: this field may not be blank")
		}
		if len(title) > 255 {
			return nil, apperr.Validation("title: at most 255 characters")
		}
		fields["title"] = title
	}
	if in.Price != nil {
		if err := ValidatePrice(*in.Price); err != nil {
			return nil, err
		}
		fields["price"] = *in.Price
	}
	if in.Featured != nil {
		fields["featured"] = *in.Featured
	}
	if in.Category != nil {
		ok, err := s.CatRepo.Exists(*in.Category)
		if err != nil {
			return nil, errors.Wrap(err, "check category")
		}
		if !ok {
			return nil, apperr.Validation("category: invalid id %d", *in.Category)
		}
		fields["category_id"] = *in.Category
	}
	return fields, nil
}

func duplicateTitle(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperr.Validation("a menu item with this title already exists")
	}
	return errors.Wrap(err, "save menu item")
}
