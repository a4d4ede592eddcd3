package services

import (
	"testing"

	"github.com/Antdol/LittleLemonAPI/entity"
	"github.com/Antdol/LittleLemonAPI/pkg/apperr"
	"github.com/Antdol/LittleLemonAPI/testutils"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartAddComputesLinePrice(t *testing.T) {
	f := newFixture(t)
	cat := testutils.CreateCategory(t, f.db, "mains")
	testutils.CreateMenuItem(t, f.db, cat, "Greek Salad", "4.50")
	u := testutils.CreateUser(t, f.db, "alice")

	line, err := f.cart.Add(u.ID, &AddToCartIn{MenuItem: "Greek Salad", Quantity: 2})
	require.NoError(t, err)
	requireDecimal(t, "4.50", line.UnitPrice)
	requireDecimal(t, "9.00", line.Price)

	view, err := f.cart.Get(u.ID)
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, "Greek Salad", view.Items[0].Title)
	requireDecimal(t, "9.00", view.Total)
}

func TestCartAddOverwritesQuantity(t *testing.T) {
	f := newFixture(t)
	cat := testutils.CreateCategory(t, f.db, "mains")
	testutils.CreateMenuItem(t, f.db, cat, "Bruschetta", "3.00")
	u := testutils.CreateUser(t, f.db, "alice")

	_, err := f.cart.Add(u.ID, &AddToCartIn{MenuItem: "Bruschetta", Quantity: 2})
	require.NoError(t, err)
	_, err = f.cart.Add(u.ID, &AddToCartIn{MenuItem: "Bruschetta", Quantity: 5})
	require.NoError(t, err)

	var lines []entity.CartLine
	require.NoError(t, f.db.Where("user_id = ?", u.ID).Find(&lines).Error)
	require.Len(t, lines, 1)
	assert.Equal(t, 5, lines[0].Quantity)
	requireDecimal(t, "15.00", lines[0].Price)
}

func TestCartAddRejects(t *testing.T) {
	f := newFixture(t)
	cat := testutils.CreateCategory(t, f.db, "mains")
	testutils.CreateMenuItem(t, f.db, cat, "Bruschetta", "3.00")
	u := testutils.CreateUser(t, f.db, "alice")

	_, err := f.cart.Add(u.ID, &AddToCartIn{MenuItem: "Pizza", Quantity: 1})
	assert.True(t, errors.Is(err, apperr.ErrNotFound))

	_, err = f.cart.Add(u.ID, &AddToCartIn{MenuItem: "Bruschetta", Quantity: 0})
	assert.True(t, errors.Is(err, apperr.ErrValidation))

	var n int64
	require.NoError(t, f.db.Model(&entity.CartLine{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestCartIsPerUser(t *testing.T) {
	f := newFixture(t)
	cat := testutils.CreateCategory(t, f.db, "mains")
	testutils.CreateMenuItem(t, f.db, cat, "Bruschetta", "3.00")
	alice := testutils.CreateUser(t, f.db, "alice")
	bob := testutils.CreateUser(t, f.db, "bob")

	_, err := f.cart.Add(alice.ID, &AddToCartIn{MenuItem: "Bruschetta", Quantity: 1})
	require.NoError(t, err)
	_, err = f.cart.Add(bob.ID, &AddToCartIn{MenuItem: "Bruschetta", Quantity: 3})
	require.NoError(t, err)

	require.NoError(t, f.cart.Clear(alice.ID))
	require.NoError(t, f.cart.Clear(alice.ID))

	view, err := f.cart.Get(alice.ID)
	require.NoError(t, err)
	assert.Empty(t, view.Items)
	requireDecimal(t, "0", view.Total)

	view, err = f.cart.Get(bob.ID)
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, 3, view.Items[0].Quantity)
}

func TestCartAddBounds(t *testing.T) {
	f := newFixture(t)
	cat := testutils.CreateCategory(t, f.db, "mains")
	testutils.CreateMenuItem(t, f.db, cat, "Lobster", "9999.99")
	testutils.CreateMenuItem(t, f.db, cat, "Olives", "1.00")
	u := testutils.CreateUser(t, f.db, "alice")

	_, err := f.cart.Add(u.ID, &AddToCartIn{MenuItem: "Olives", Quantity: 1000000000})
	assert.True(t, errors.Is(err, apperr.ErrValidation), "quantity above the cap")

	_, err = f.cart.Add(u.ID, &AddToCartIn{MenuItem: "Lobster", Quantity: 101})
	assert.True(t, errors.Is(err, apperr.ErrValidation), "line price above the column")

	var n int64
	require.NoError(t, f.db.Model(&entity.CartLine{}).Count(&n).Error)
	assert.Zero(t, n)

	line, err := f.cart.Add(u.ID, &AddToCartIn{MenuItem: "Lobster", Quantity: 100})
	require.NoError(t, err)
	requireDecimal(t, "999999.00", line.Price)

	line, err = f.cart.Add(u.ID, &AddToCartIn{MenuItem: "Olives", Quantity: MaxQuantity})
	require.NoError(t, err)
	requireDecimal(t, "1000.00", line.Price)
}
