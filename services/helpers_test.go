package services

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/Antdol/LittleLemonAPI/authz"
	"github.com/Antdol/LittleLemonAPI/entity"
	"github.com/Antdol/LittleLemonAPI/repository"
	"github.com/Antdol/LittleLemonAPI/testutils"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fixture struct {
	db     *gorm.DB
	cart   *CartService
	orders *OrderService
	menu   *MenuService
	cats   *CategoryService
	groups *GroupService
	auth   *AuthService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testutils.NewDB(t)
	users := repository.NewUserRepository(db)
	groups := repository.NewGroupRepository(db)
	catRepo := repository.NewCategoryRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	cartRepo := repository.NewCartRepository(db)

	orders := NewOrderService(db, repository.NewOrderRepository(db), cartRepo, groups)
	orders.Now = func() time.Time { return time.Date(2024, 3, 9, 18, 30, 0, 0, time.UTC) }

	return &fixture{
		db:     db,
		cart:   NewCartService(db, cartRepo, menuRepo),
		orders: orders,
		menu:   NewMenuService(menuRepo, catRepo),
		cats:   NewCategoryService(catRepo),
		groups: NewGroupService(users, groups),
		auth:   NewAuthService(users, groups, "test-secret", time.Hour),
	}
}

func (f *fixture) principal(t *testing.T, u *entity.User) authz.Principal {
	t.Helper()
	p, err := f.groups.LoadPrincipal(u.ID)
	require.NoError(t, err)
	return p
}

// body builds an order update payload the way the controller decodes it.
func body(t *testing.T, js string) map[string]RawField {
	t.Helper()
	var m map[string]RawField
	require.NoError(t, json.Unmarshal([]byte(js), &m))
	return m
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func requireDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	require.Truef(t, dec(want).Equal(got), "want %s, got %s", want, got)
}
