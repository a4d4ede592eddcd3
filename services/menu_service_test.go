package services

import (
	"fmt"
	"testing"

	"github.com/Antdol/LittleLemonAPI/entity"
	"github.com/Antdol/LittleLemonAPI/pkg/apperr"
	"github.com/Antdol/LittleLemonAPI/testutils"

	"github.com/cockroachdb/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestMenuCreatePriceBound(t *testing.T) {
	f := newFixture(t)
	cat := testutils.CreateCategory(t, f.db, "mains")

	_, err := f.menu.Create(&MenuItemIn{Title: ptr("Free Bread"), Price: ptr(decimal.Zero), Category: &cat.ID})
	assert.True(t, errors.Is(err, apperr.ErrValidation))

	_, err = f.menu.Create(&MenuItemIn{Title: ptr("Cheap Bread"), Price: ptr(dec("0.99")), Category: &cat.ID})
	assert.True(t, errors.Is(err, apperr.ErrValidation))

	m, err := f.menu.Create(&MenuItemIn{Title: ptr("Bread"), Price: ptr(dec("1.00")), Category: &cat.ID})
	require.NoError(t, err)
	requireDecimal(t, "1", m.Price)
}

func TestMenuCreateValidation(t *testing.T) {
	f := newFixture(t)
	cat := testutils.CreateCategory(t, f.db, "mains")
	missing := uint(999)

	cases := map[string]*MenuItemIn{
		"no title":      {Price: ptr(dec("3")), Category: &cat.ID},
		"markup only":   {Title: ptr("<b></b>"), Price: ptr(dec("3")), Category: &cat.ID},
		"no category":   {Title: ptr("Soup"), Price: ptr(dec("3"))},
		"bad category":  {Title: ptr("Soup"), Price: ptr(dec("3")), Category: &missing},
		"three decimal": {Title: ptr("Soup"), Price: ptr(dec("3.005")), Category: &cat.ID},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := f.menu.Create(in)
			assert.True(t, errors.Is(err, apperr.ErrValidation))
		})
	}
}

func TestMenuTitleIsSanitized(t *testing.T) {
	f := newFixture(t)
	cat := testutils.CreateCategory(t, f.db, "mains")

	m, err := f.menu.Create(&MenuItemIn{
		Title: ptr(`<script>alert(1)</script>Lemon <b>Cake</b>`), Price: ptr(dec("6")), Category: &cat.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, "Lemon Cake", m.Title)

	_, err = f.menu.Create(&MenuItemIn{Title: ptr("Lemon Cake"), Price: ptr(dec("7")), Category: &cat.ID})
	assert.True(t, errors.Is(err, apperr.ErrValidation), "duplicate title")
}

func TestMenuTitleEncodedMarkup(t *testing.T) {
	f := newFixture(t)
	cat := testutils.CreateCategory(t, f.db, "mains")

	m, err := f.menu.Create(&MenuItemIn{
		Title: ptr("&lt;script&gt;alert(1)&lt;/script&gt;Pasta"), Price: ptr(dec("9")), Category: &cat.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, "Pasta", m.Title)

	var stored entity.MenuItem
	require.NoError(t, f.db.First(&stored, m.ID).Error)
	assert.NotContains(t, stored.Title, "<")

	_, err = f.menu.Create(&MenuItemIn{
		Title: ptr("&lt;img src=x onerror=alert(1)&gt;"), Price: ptr(dec("9")), Category: &cat.ID,
	})
	assert.True(t, errors.Is(err, apperr.ErrValidation), "nothing left after stripping")

	_, err = f.menu.Update(m.ID, &MenuItemIn{Title: ptr("&lt;b&gt;Pasta&lt;/b&gt; Bake")}, false)
	require.NoError(t, err)
	require.NoError(t, f.db.First(&stored, m.ID).Error)
	assert.Equal(t, "Pasta Bake", stored.Title)
}

func TestMenuListPagination(t *testing.T) {
	f := newFixture(t)
	cat := testutils.CreateCategory(t, f.db, "mains")
	for i := 1; i <= 25; i++ {
		testutils.CreateMenuItem(t, f.db, cat, fmt.Sprintf("Dish %02d", i), "5.00")
	}

	out, err := f.menu.List(MenuQuery{Page: "3"})
	require.NoError(t, err)
	assert.EqualValues(t, 25, out.Count)
	assert.Equal(t, 10, out.PerPage)
	assert.Len(t, out.Results, 5)

	out, err = f.menu.List(MenuQuery{Page: "4"})
	require.NoError(t, err)
	assert.Empty(t, out.Results)
	assert.NotNil(t, out.Results)

	_, err = f.menu.List(MenuQuery{PerPage: "11"})
	assert.True(t, errors.Is(err, apperr.ErrValidation))

	out, err = f.menu.List(MenuQuery{PerPage: "10"})
	require.NoError(t, err)
	assert.Len(t, out.Results, 10)
}

func TestMenuListFilters(t *testing.T) {
	f := newFixture(t)
	mains := testutils.CreateCategory(t, f.db, "mains")
	desserts := testutils.CreateCategory(t, f.db, "desserts")
	testutils.CreateMenuItem(t, f.db, mains, "Greek Salad", "12.50")
	testutils.CreateMenuItem(t, f.db, mains, "Bruschetta", "7.00")
	testutils.CreateMenuItem(t, f.db, desserts, "Lemon Dessert", "5.00")
	testutils.CreateMenuItem(t, f.db, desserts, "Lemon Tart", "7.00")

	titles := func(items []entity.MenuItem) []string {
		var out []string
		for _, m := range items {
			out = append(out, m.Title)
		}
		return out
	}

	out, err := f.menu.List(MenuQuery{Category: "desserts"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Lemon Dessert", "Lemon Tart"}, titles(out.Results))

	out, err = f.menu.List(MenuQuery{Category: "Mains"})
	require.NoError(t, err)
	assert.Len(t, out.Results, 2, "category by title")

	out, err = f.menu.List(MenuQuery{ToPrice: "7"})
	require.NoError(t, err)
	assert.Len(t, out.Results, 3)

	out, err = f.menu.List(MenuQuery{Search: "lemon"})
	require.NoError(t, err)
	assert.Len(t, out.Results, 2)

	out, err = f.menu.List(MenuQuery{Ordering: "-price,title"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Greek Salad", "Bruschetta", "Lemon Tart", "Lemon Dessert"}, titles(out.Results))

	_, err = f.menu.List(MenuQuery{Ordering: "secret"})
	assert.True(t, errors.Is(err, apperr.ErrValidation))

	_, err = f.menu.List(MenuQuery{ToPrice: "cheap"})
	assert.True(t, errors.Is(err, apperr.ErrValidation))
}

func TestMenuUpdate(t *testing.T) {
	f := newFixture(t)
	cat := testutils.CreateCategory(t, f.db, "mains")
	m := testutils.CreateMenuItem(t, f.db, cat, "Soup", "4.00")

	got, err := f.menu.Update(m.ID, &MenuItemIn{Price: ptr(dec("4.75"))}, false)
	require.NoError(t, err)
	assert.Equal(t, "Soup", got.Title)
	requireDecimal(t, "4.75", got.Price)

	_, err = f.menu.Update(m.ID, &MenuItemIn{Price: ptr(dec("5"))}, true)
	assert.True(t, errors.Is(err, apperr.ErrValidation), "PUT needs every field")

	got, err = f.menu.Update(m.ID, &MenuItemIn{
		Title: ptr("Soup of the Day"), Price: ptr(dec("5")), Featured: ptr(true), Category: &cat.ID,
	}, true)
	require.NoError(t, err)
	assert.Equal(t, "Soup of the Day", got.Title)
	assert.True(t, got.Featured)

	_, err = f.menu.Update(m.ID+50, &MenuItemIn{Price: ptr(dec("5"))}, false)
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
}

func TestMenuDelete(t *testing.T) {
	f := newFixture(t)
	cat := testutils.CreateCategory(t, f.db, "mains")
	soup := testutils.CreateMenuItem(t, f.db, cat, "Soup", "4.00")
	salad := testutils.CreateMenuItem(t, f.db, cat, "Salad", "6.00")
	u := testutils.CreateUser(t, f.db, "alice")

	_, err := f.cart.Add(u.ID, &AddToCartIn{MenuItem: "Soup", Quantity: 1})
	require.NoError(t, err)
	require.NoError(t, f.menu.Delete(soup.ID))

	_, err = f.menu.Get(soup.ID)
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
	view, err := f.cart.Get(u.ID)
	require.NoError(t, err)
	assert.Empty(t, view.Items)

	_, err = f.cart.Add(u.ID, &AddToCartIn{MenuItem: "Salad", Quantity: 1})
	require.NoError(t, err)
	_, err = f.orders.Checkout(u.ID)
	require.NoError(t, err)

	err = f.menu.Delete(salad.ID)
	assert.True(t, errors.Is(err, apperr.ErrConflict))
}

func TestMenuSearchTreatsWildcardsLiterally(t *testing.T) {
	f := newFixture(t)
	cat := testutils.CreateCategory(t, f.db, "mains")
	testutils.CreateMenuItem(t, f.db, cat, "50% Off Salad", "5.00")
	testutils.CreateMenuItem(t, f.db, cat, "500 Burger", "9.00")
	testutils.CreateMenuItem(t, f.db, cat, "Chef_Special", "12.00")
	testutils.CreateMenuItem(t, f.db, cat, "Chef Special", "12.00")

	out, err := f.menu.List(MenuQuery{Search: "50%"})
	require.NoError(t, err)
	require.Len(t, out.Results, 1)
	assert.Equal(t, "50% Off Salad", out.Results[0].Title)

	out, err = f.menu.List(MenuQuery{Search: "chef_"})
	require.NoError(t, err)
	require.Len(t, out.Results, 1)
	assert.Equal(t, "Chef_Special", out.Results[0].Title)
}
